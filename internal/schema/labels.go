package schema

// LabelSet holds every display string a figure needs in one language.
type LabelSet struct {
	Lang string

	// Figure chrome.
	ReadingGuide string
	Source       string
	Sentences    string
	Speakers     string
	Questions    string
	Peak         string
	Trough       string

	// Index names.
	DiplomaticTone    string
	Worldview         string
	Agency            string
	PolicyAmbition    string
	ActionOrientation string
	Posture           string
	Directness        string
	Gratitude         string
	Animosity         string

	// Axis poles.
	Threat      string
	Opportunity string
	Aggressive  string
	Peaceful    string
	Passive     string
	Active      string
	Vague       string
	Concrete    string
	Negative    string
	Positive    string

	// Category display names keyed by annotation value.
	Frames     map[string]string
	Positions  map[string]string
	Registers  map[string]string
	SpeechActs map[string]string
	Themes     map[string]string
	Tones      map[string]string
	Responses  map[string]string
	Stances    map[string]string
}

var labelsEN = LabelSet{
	Lang:         "en",
	ReadingGuide: "How to read this figure",
	Source:       "Source",
	Sentences:    "sentences",
	Speakers:     "speakers",
	Questions:    "questions",
	Peak:         "Peak",
	Trough:       "Trough",

	DiplomaticTone:    "Diplomatic tone index",
	Worldview:         "Geopolitical anxiety index",
	Agency:            "Agency index",
	PolicyAmbition:    "Policy ambition index",
	ActionOrientation: "Action orientation",
	Posture:           "Rhetorical posture",
	Directness:        "Directness score",
	Gratitude:         "Gratitude index",
	Animosity:         "Animosity index",

	Threat:      "Threat",
	Opportunity: "Opportunity",
	Aggressive:  "Aggressive",
	Peaceful:    "Conciliatory",
	Passive:     "Passive",
	Active:      "Active",
	Vague:       "Aspirational",
	Concrete:    "Concrete",
	Negative:    "Negative",
	Positive:    "Positive",

	Frames: map[string]string{
		"DISORDER":                  "World disorder",
		"POWER_POLITICS":            "Power politics",
		"MULTILATERAL_DECLINE":      "Multilateral decline",
		"EXISTENTIAL_THREAT":        "Existential threat",
		"RECOLONIZATION":            "Recolonization",
		"FRAGMENTATION":             "Fragmentation",
		"BRUTALIZATION":             "Brutalization",
		"VASSALIZATION":             "Vassalization",
		"REACTIONARY_INTERNATIONAL": "Reactionary international",
		"OPPORTUNITY":               "Opportunity",
		"RESILIENCE":                "Resilience",
		"COOPERATION":               "Cooperation",
		"MULTILATERAL_RENEWAL":      "Multilateral renewal",
		"PROGRESS":                  "Progress",
		"SOLIDARITY":                "Solidarity",
		"LEADERSHIP_OPPORTUNITY":    "Leadership opportunity",
		"STRATEGIC_ADVANTAGE":       "Strategic advantage",
		"REFORM_MOMENTUM":           "Reform momentum",
	},
	Positions: map[string]string{
		"ACTIVE_AGENT":   "Active agent",
		"REACTIVE_AGENT": "Reactive agent",
		"VICTIM":         "Victim",
		"MODEL":          "Model",
		"PARTNER":        "Partner",
		"LEADER":         "Leader",
		"RELIABLE_ALLY":  "Reliable ally",
		"POWER":          "Power",
	},
	Registers: map[string]string{
		"ALARMIST":    "Alarmist",
		"COMBATIVE":   "Combative",
		"CONFIDENT":   "Confident",
		"INDIGNANT":   "Indignant",
		"PRAGMATIC":   "Pragmatic",
		"SOLEMN":      "Solemn",
		"DEFIANT":     "Defiant",
		"GRATEFUL":    "Grateful",
		"EXASPERATED": "Exasperated",
		"NEUTRAL":     "Neutral",
	},
	SpeechActs: map[string]string{
		"STATING":    "Stating",
		"DIAGNOSING": "Diagnosing",
		"DENOUNCING": "Denouncing",
		"PROPOSING":  "Proposing",
		"EXHORTING":  "Exhorting",
		"REASSURING": "Reassuring",
		"FRAMING":    "Framing",
		"THANKING":   "Thanking",
		"WARNING":    "Warning",
		"REJECTING":  "Rejecting",
		"COMMITTING": "Committing",
	},
	Themes: map[string]string{
		"governance":           "Governance",
		"legal_justice":        "Legal & justice",
		"military_operation":   "Military operations",
		"diplomatic_relations": "Diplomatic relations",
		"humanitarian":         "Humanitarian",
		"economic_resources":   "Economy & resources",
		"security_threat":      "Security threats",
		"domestic_politics":    "Domestic politics",
		"personal_narrative":   "Personal narrative",
		"meta_communication":   "Meta communication",
	},
	Tones: map[string]string{
		"triumphant":      "Triumphant",
		"threatening":     "Threatening",
		"reassuring":      "Reassuring",
		"factual":         "Factual",
		"dismissive":      "Dismissive",
		"confrontational": "Confrontational",
		"deferential":     "Deferential",
	},
	Responses: map[string]string{
		"direct":     "Direct answer",
		"partial":    "Partial answer",
		"pivot":      "Pivot",
		"deflection": "Deflection",
		"attack":     "Attack",
	},
	Stances: map[string]string{
		"SUPPORT":     "Support",
		"OPPOSITION":  "Opposition",
		"CONDITIONAL": "Conditional",
		"AMBIGUOUS":   "Ambiguous",
	},
}

var labelsFR = LabelSet{
	Lang:         "fr",
	ReadingGuide: "Comment lire cette figure",
	Source:       "Source",
	Sentences:    "phrases",
	Speakers:     "intervenants",
	Questions:    "questions",
	Peak:         "Pic",
	Trough:       "Creux",

	DiplomaticTone:    "Indice de tonalité diplomatique",
	Worldview:         "Indice d'anxiété géopolitique",
	Agency:            "Indice d'agentivité",
	PolicyAmbition:    "Indice d'ambition politique",
	ActionOrientation: "Orientation vers l'action",
	Posture:           "Posture rhétorique",
	Directness:        "Score de franchise",
	Gratitude:         "Indice de gratitude",
	Animosity:         "Indice d'animosité",

	Threat:      "Menace",
	Opportunity: "Opportunité",
	Aggressive:  "Agressif",
	Peaceful:    "Conciliant",
	Passive:     "Passif",
	Active:      "Actif",
	Vague:       "Aspirationnel",
	Concrete:    "Concret",
	Negative:    "Négatif",
	Positive:    "Positif",

	Frames: map[string]string{
		"DISORDER":                  "Désordre mondial",
		"POWER_POLITICS":            "Politique de puissance",
		"MULTILATERAL_DECLINE":      "Déclin du multilatéralisme",
		"EXISTENTIAL_THREAT":        "Menace existentielle",
		"RECOLONIZATION":            "Recolonisation",
		"FRAGMENTATION":             "Fragmentation",
		"BRUTALIZATION":             "Brutalisation",
		"VASSALIZATION":             "Vassalisation",
		"REACTIONARY_INTERNATIONAL": "Internationale réactionnaire",
		"OPPORTUNITY":               "Opportunité",
		"RESILIENCE":                "Résilience",
		"COOPERATION":               "Coopération",
		"MULTILATERAL_RENEWAL":      "Renouveau multilatéral",
		"PROGRESS":                  "Progrès",
		"SOLIDARITY":                "Solidarité",
		"LEADERSHIP_OPPORTUNITY":    "Opportunité de leadership",
		"STRATEGIC_ADVANTAGE":       "Avantage stratégique",
		"REFORM_MOMENTUM":           "Élan réformateur",
	},
	Positions: map[string]string{
		"ACTIVE_AGENT":   "Agent actif",
		"REACTIVE_AGENT": "Agent réactif",
		"VICTIM":         "Victime",
		"MODEL":          "Modèle",
		"PARTNER":        "Partenaire",
		"LEADER":         "Leader",
		"RELIABLE_ALLY":  "Allié fiable",
		"POWER":          "Puissance",
	},
	Registers: map[string]string{
		"ALARMIST":    "Alarmiste",
		"COMBATIVE":   "Combatif",
		"CONFIDENT":   "Confiant",
		"INDIGNANT":   "Indigné",
		"PRAGMATIC":   "Pragmatique",
		"SOLEMN":      "Solennel",
		"DEFIANT":     "Défiant",
		"GRATEFUL":    "Reconnaissant",
		"EXASPERATED": "Exaspéré",
		"NEUTRAL":     "Neutre",
	},
	SpeechActs: map[string]string{
		"STATING":    "Constat",
		"DIAGNOSING": "Diagnostic",
		"DENOUNCING": "Dénonciation",
		"PROPOSING":  "Proposition",
		"EXHORTING":  "Exhortation",
		"REASSURING": "Réassurance",
		"FRAMING":    "Cadrage",
		"THANKING":   "Remerciement",
		"WARNING":    "Avertissement",
		"REJECTING":  "Rejet",
		"COMMITTING": "Engagement",
	},
	Themes: map[string]string{
		"governance":           "Gouvernance",
		"legal_justice":        "Droit et justice",
		"military_operation":   "Opérations militaires",
		"diplomatic_relations": "Relations diplomatiques",
		"humanitarian":         "Humanitaire",
		"economic_resources":   "Économie et ressources",
		"security_threat":      "Menaces sécuritaires",
		"domestic_politics":    "Politique intérieure",
		"personal_narrative":   "Récit personnel",
		"meta_communication":   "Méta-communication",
	},
	Tones: map[string]string{
		"triumphant":      "Triomphant",
		"threatening":     "Menaçant",
		"reassuring":      "Rassurant",
		"factual":         "Factuel",
		"dismissive":      "Méprisant",
		"confrontational": "Conflictuel",
		"deferential":     "Déférent",
	},
	Responses: map[string]string{
		"direct":     "Réponse directe",
		"partial":    "Réponse partielle",
		"pivot":      "Pivot",
		"deflection": "Esquive",
		"attack":     "Attaque",
	},
	Stances: map[string]string{
		"SUPPORT":     "Soutien",
		"OPPOSITION":  "Opposition",
		"CONDITIONAL": "Conditionnel",
		"AMBIGUOUS":   "Ambigu",
	},
}

// Labels returns the label set for lang, falling back to English for any
// unrecognized language code.
func Labels(lang string) LabelSet {
	if lang == "fr" {
		return labelsFR
	}
	return labelsEN
}

// Display looks up value in m and falls back to the raw annotation value
// when no translation exists, so unexpected categories still render.
func Display(m map[string]string, value string) string {
	if s, ok := m[value]; ok {
		return s
	}
	return value
}
