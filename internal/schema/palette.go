package schema

// Base palette shared by every figure.
const (
	ColorBackground = "#10141c"
	ColorPanel      = "#1a2030"
	ColorPanelEdge  = "#2a3245"
	ColorText       = "#e8eaf0"
	ColorMuted      = "#8a93a8"
	ColorAccent     = "#d9a441"

	ColorThreat      = "#c0504d"
	ColorOpportunity = "#4f8f6b"
)

// NeutralBar is the fill for bars with no signed meaning.
const NeutralBar = "#5a6680"

// RegisterColors color each emotional register from alarm (red) through
// neutral greys to confidence (green).
var RegisterColors = map[string]string{
	"ALARMIST":    "#c0504d",
	"COMBATIVE":   "#b8653f",
	"INDIGNANT":   "#b07a3c",
	"DEFIANT":     "#a08448",
	"EXASPERATED": "#8f8a5c",
	"PRAGMATIC":   "#7d8a93",
	"NEUTRAL":     "#6f7a88",
	"SOLEMN":      "#6b87a3",
	"GRATEFUL":    "#5f9a82",
	"CONFIDENT":   "#4f8f6b",
}

// ToneColors color per-utterance tone categories.
var ToneColors = map[string]string{
	"threatening":     "#c0504d",
	"confrontational": "#b8653f",
	"dismissive":      "#a08448",
	"triumphant":      "#d9a441",
	"factual":         "#6f7a88",
	"reassuring":      "#5f9a82",
	"deferential":     "#4f8f6b",
}

// ResponseColors color Q&A response types from direct (green) to
// evasive (red).
var ResponseColors = map[string]string{
	"direct":     "#4f8f6b",
	"partial":    "#8f8a5c",
	"pivot":      "#b07a3c",
	"deflection": "#b8653f",
	"attack":     "#c0504d",
}

// ThemeColors give each question/response theme a stable hue.
var ThemeColors = map[string]string{
	"governance":           "#6b87a3",
	"legal_justice":        "#7a6ba3",
	"military_operation":   "#a36b6b",
	"diplomatic_relations": "#5f9a82",
	"humanitarian":         "#d9a441",
	"economic_resources":   "#8f9a5c",
	"security_threat":      "#c0504d",
	"domestic_politics":    "#a07a8f",
	"personal_narrative":   "#8a93a8",
	"meta_communication":   "#5a6680",
}

// ValenceColor maps an annotation valence to a fill.
func ValenceColor(valence string) string {
	switch valence {
	case "POSITIVE", "positive":
		return ColorOpportunity
	case "NEGATIVE", "negative":
		return ColorThreat
	default:
		return NeutralBar
	}
}
