// Package schema defines the annotation vocabulary shared by every figure:
// expected category values per column, index weight tables, color palettes,
// and bilingual display labels.
package schema

// Annotation column names recognized in input files.
const (
	ColText              = "text"
	ColSpeaker           = "speaker"
	ColSpeakerRole       = "speaker_role"
	ColUtteranceType     = "utterance_type"
	ColThemePrimary      = "theme_primary"
	ColTone              = "tone"
	ColResponseType      = "response_type"
	ColEmotionalRegister = "emotional_register"
	ColSpeechAct         = "speech_act"
	ColGeopoliticalFrame = "geopolitical_frame"
	ColPositioning       = "france_positioning"
	ColTemporality       = "temporality"
	ColActors            = "actors"
	ColEntities          = "entities_mentioned"
	ColPolicyContent     = "policy_content"
	ColIssueStances      = "issue_stances"
)

// Expected holds the allowed values per annotated column, used by schema
// validation. List-valued columns are flattened before checking.
var Expected = map[string][]string{
	ColSpeechAct: {
		"STATING", "DIAGNOSING", "DENOUNCING", "PROPOSING", "EXHORTING",
		"REASSURING", "FRAMING", "THANKING", "WARNING", "REJECTING", "COMMITTING",
	},
	ColGeopoliticalFrame: {
		"DISORDER", "POWER_POLITICS", "MULTILATERAL_DECLINE", "EXISTENTIAL_THREAT",
		"RECOLONIZATION", "FRAGMENTATION", "BRUTALIZATION", "VASSALIZATION",
		"REACTIONARY_INTERNATIONAL",
		"OPPORTUNITY", "RESILIENCE", "COOPERATION", "MULTILATERAL_RENEWAL",
		"PROGRESS", "SOLIDARITY", "LEADERSHIP_OPPORTUNITY", "STRATEGIC_ADVANTAGE",
		"REFORM_MOMENTUM",
		"NONE",
	},
	ColPositioning: {
		"ACTIVE_AGENT", "REACTIVE_AGENT", "VICTIM", "MODEL", "PARTNER",
		"LEADER", "RELIABLE_ALLY", "POWER", "NOT_APPLICABLE",
	},
	ColEmotionalRegister: {
		"ALARMIST", "COMBATIVE", "CONFIDENT", "INDIGNANT", "PRAGMATIC",
		"SOLEMN", "DEFIANT", "GRATEFUL", "EXASPERATED", "NEUTRAL",
	},
	ColTemporality: {
		"PAST_ACHIEVEMENT", "PAST_DIAGNOSIS", "PRESENT_CRISIS", "PRESENT_OBSERVATION",
		"FUTURE_ACTION", "FUTURE_RISK", "CONTINUITY", "RUPTURE", "ATEMPORAL",
	},
	ColUtteranceType: {"question", "statement", "response"},
	ColSpeakerRole:   {"political_leader", "government_official", "journalist", "unknown"},
	ColTone: {
		"triumphant", "threatening", "reassuring", "factual",
		"dismissive", "confrontational", "deferential",
	},
	ColResponseType: {"direct", "partial", "pivot", "deflection", "attack", "null"},
	ColThemePrimary: {
		"governance", "legal_justice", "military_operation", "diplomatic_relations",
		"humanitarian", "economic_resources", "security_threat", "domestic_politics",
		"personal_narrative", "meta_communication",
	},
}

// EmotionalRegisterWeights map registers to tone scores.
// Negative = alarm/combative, positive = confident/calm.
var EmotionalRegisterWeights = map[string]float64{
	"ALARMIST":    -2.0,
	"COMBATIVE":   -1.5,
	"INDIGNANT":   -1.5,
	"DEFIANT":     -1.0,
	"EXASPERATED": -0.5,
	"PRAGMATIC":   0.0,
	"NEUTRAL":     0.0,
	"SOLEMN":      0.5,
	"GRATEFUL":    1.0,
	"CONFIDENT":   1.5,
}

// ToneWeights map per-utterance tone annotations to posture scores.
// Negative = aggressive, positive = peaceful, 0 = neutral.
var ToneWeights = map[string]float64{
	"threatening":     -2.0,
	"confrontational": -1.5,
	"dismissive":      -1.0,
	"triumphant":      -0.5,
	"factual":         0.0,
	"reassuring":      1.0,
	"deferential":     1.5,
}

// SpecificityWeights score policy proposals from vague to concrete.
var SpecificityWeights = map[string]float64{
	"CONCRETE":     1.0,
	"PROGRAMMATIC": 0.6,
	"ASPIRATIONAL": 0.2,
}

// ResponseTypeScores score answer directness during Q&A.
var ResponseTypeScores = map[string]float64{
	"direct":     1.0,
	"partial":    0.5,
	"attack":     0.25,
	"pivot":      0.0,
	"deflection": 0.0,
}

// Frame groupings used by the worldview index and the frames figure.
var (
	ThreatFrames = []string{
		"DISORDER", "POWER_POLITICS", "MULTILATERAL_DECLINE", "EXISTENTIAL_THREAT",
		"BRUTALIZATION", "VASSALIZATION", "RECOLONIZATION", "FRAGMENTATION",
		"REACTIONARY_INTERNATIONAL",
	}
	OpportunityFrames = []string{
		"OPPORTUNITY", "RESILIENCE", "COOPERATION", "MULTILATERAL_RENEWAL",
		"PROGRESS", "SOLIDARITY", "LEADERSHIP_OPPORTUNITY", "STRATEGIC_ADVANTAGE",
		"REFORM_MOMENTUM",
	}
)

// Positioning groupings used by the agency index and the agency figure.
var (
	ActivePositions      = []string{"ACTIVE_AGENT", "LEADER", "POWER", "MODEL"}
	CooperativePositions = []string{"PARTNER", "RELIABLE_ALLY"}
	ReactivePositions    = []string{"REACTIVE_AGENT", "VICTIM"}
)

// Speech act groupings used by the action orientation index.
var (
	ActionActs      = []string{"PROPOSING", "EXHORTING", "COMMITTING"}
	DescriptiveActs = []string{"STATING", "DIAGNOSING", "FRAMING"}
)

// Register groupings used when matching timeline peaks to excerpts.
var (
	PositiveRegisters = map[string]bool{"CONFIDENT": true, "GRATEFUL": true, "SOLEMN": true}
	NegativeRegisters = map[string]bool{
		"ALARMIST": true, "COMBATIVE": true, "INDIGNANT": true,
		"DEFIANT": true, "EXASPERATED": true,
	}
	NeutralRegisters = map[string]bool{"NEUTRAL": true, "PRAGMATIC": true}
)

// ExcludedThemes are meta/procedural themes ignored by Q&A topic analysis.
var ExcludedThemes = map[string]bool{"meta_communication": true}

// OfficialRoles are the speaker roles counted as the podium side of a
// press conference.
var OfficialRoles = map[string]bool{
	"political_leader":    true,
	"government_official": true,
}
