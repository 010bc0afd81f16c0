package schema

import "strings"

// ActorAliases folds spelling and language variants of the same actor into
// one canonical name before aggregation.
var ActorAliases = map[string]string{
	"etats-unis":         "United States",
	"états-unis":         "United States",
	"usa":                "United States",
	"u.s.":               "United States",
	"us":                 "United States",
	"united states":      "United States",
	"america":            "United States",
	"amerique":           "United States",
	"amérique":           "United States",
	"russie":             "Russia",
	"russia":             "Russia",
	"kremlin":            "Russia",
	"chine":              "China",
	"china":              "China",
	"ukraine":            "Ukraine",
	"europe":             "Europe",
	"union europeenne":   "European Union",
	"union européenne":   "European Union",
	"european union":     "European Union",
	"eu":                 "European Union",
	"ue":                 "European Union",
	"france":             "France",
	"otan":               "NATO",
	"nato":               "NATO",
	"onu":                "United Nations",
	"un":                 "United Nations",
	"united nations":     "United Nations",
	"nations unies":      "United Nations",
	"israel":             "Israel",
	"israël":             "Israel",
	"iran":               "Iran",
	"hamas":              "Hamas",
	"gaza":               "Gaza",
	"palestine":          "Palestine",
	"quebec":             "Quebec",
	"québec":             "Quebec",
	"canada":             "Canada",
	"poutine":            "Vladimir Putin",
	"putin":              "Vladimir Putin",
	"vladimir poutine":   "Vladimir Putin",
	"vladimir putin":     "Vladimir Putin",
	"trump":              "Donald Trump",
	"donald trump":       "Donald Trump",
	"president trump":    "Donald Trump",
	"zelensky":           "Volodymyr Zelensky",
	"zelenskyy":          "Volodymyr Zelensky",
	"volodymyr zelensky": "Volodymyr Zelensky",
	"netanyahu":          "Benjamin Netanyahu",
	"benjamin netanyahu": "Benjamin Netanyahu",
	"biden":              "Joe Biden",
	"joe biden":          "Joe Biden",
	"maduro":             "Nicolas Maduro",
	"nicolas maduro":     "Nicolas Maduro",
	"nicolás maduro":     "Nicolas Maduro",
	"maduro regime":      "Nicolas Maduro",
	"regime maduro":      "Nicolas Maduro",
	"régime maduro":      "Nicolas Maduro",
	"venezuela":          "Venezuela",
	"caracas":            "Venezuela",
	"cuba":               "Cuba",
}

// NormalizeActor returns the canonical name for an actor mention. Unknown
// actors keep their original form with surrounding whitespace trimmed.
func NormalizeActor(name string) string {
	trimmed := strings.TrimSpace(name)
	if canonical, ok := ActorAliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// In-group / out-group entity partitions for the animosity index. Names are
// matched after NormalizeActor.
var (
	UsEntities = map[string]bool{
		"United States": true,
		"Israel":        true,
		"NATO":          true,
		"Europe":        true,
		"France":        true,
		"Canada":        true,
		"Quebec":        true,
	}
	ThemEntities = map[string]bool{
		"Russia":             true,
		"China":              true,
		"Iran":               true,
		"Hamas":              true,
		"Vladimir Putin":     true,
		"North Korea":        true,
		"Venezuela":          true,
		"Taliban":            true,
		"Islamic State":      true,
		"Hezbollah":          true,
		"Bashar al-Assad":    true,
		"Nicolas Maduro":     true,
		"Cuba":               true,
		"Kim Jong-un":        true,
		"Ayatollah":          true,
		"Muslim Brotherhood": true,
	}
)
