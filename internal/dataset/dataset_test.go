package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadCSVWithJSONCells(t *testing.T) {
	csv := "text,speaker,emotional_register,geopolitical_frame,actors\n" +
		`"We will act.",Leader,CONFIDENT,"[""COOPERATION"",""PROGRESS""]","[{""actor"":""Russie"",""mention_type"":""direct"",""valence"":""NEGATIVE""}]"` + "\n" +
		`"The danger grows.",Leader,ALARMIST,"[""DISORDER""]",` + "\n"
	path := writeFile(t, "in.csv", csv)

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(d.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(d.Rows))
	}
	if d.TextColumn != "text" {
		t.Fatalf("text column = %q, want text", d.TextColumn)
	}
	r := d.Rows[0]
	if r.EmotionalRegister != "CONFIDENT" {
		t.Fatalf("register = %q", r.EmotionalRegister)
	}
	if len(r.Frames) != 2 || r.Frames[0] != "COOPERATION" {
		t.Fatalf("frames = %v", r.Frames)
	}
	if len(r.Actors) != 1 || r.Actors[0].Name != "Russia" {
		t.Fatalf("actors = %v, want normalized Russia", r.Actors)
	}
	if r.Actors[0].Valence != "NEGATIVE" {
		t.Fatalf("valence = %q", r.Actors[0].Valence)
	}
}

func TestLoadJSONL(t *testing.T) {
	jsonl := `{"sentence":"First.","speaker":"A","tone":"factual"}` + "\n" +
		"\n" +
		`{"sentence":"Second.","speaker":"B","tone":"threatening"}` + "\n"
	path := writeFile(t, "in.jsonl", jsonl)

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(d.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(d.Rows))
	}
	if d.TextColumn != "sentence" {
		t.Fatalf("text column = %q, want sentence", d.TextColumn)
	}
	if d.Rows[1].Tone != "threatening" {
		t.Fatalf("tone = %q", d.Rows[1].Tone)
	}
}

func TestAnnotationColumnExpansion(t *testing.T) {
	records := []Record{
		{
			"text":   "Hello.",
			"labels": `{"emotional_register":"SOLEMN","speech_act":["THANKING"],"policy_content":{"present":true,"specificity":"CONCRETE","domain":"defense"}}`,
		},
	}
	d, err := Parse(records)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r := d.Rows[0]
	if r.EmotionalRegister != "SOLEMN" {
		t.Fatalf("register = %q", r.EmotionalRegister)
	}
	if len(r.SpeechActs) != 1 || r.SpeechActs[0] != "THANKING" {
		t.Fatalf("speech acts = %v", r.SpeechActs)
	}
	if r.Policy == nil || !r.Policy.Present || r.Policy.Specificity != "CONCRETE" {
		t.Fatalf("policy = %+v", r.Policy)
	}
	if !d.HasColumn("emotional_register") {
		t.Fatal("expanded column not recorded")
	}
}

func TestMalformedCellsCoerceToEmpty(t *testing.T) {
	records := []Record{
		{
			"text":               "Broken cells.",
			"geopolitical_frame": `["DISORDER"`,
			"actors":             `[{"actor": }]`,
			"policy_content":     `{present: true}`,
		},
	}
	d, err := Parse(records)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r := d.Rows[0]
	if len(r.Frames) != 0 {
		t.Fatalf("frames = %v, want empty", r.Frames)
	}
	if len(r.Actors) != 0 {
		t.Fatalf("actors = %v, want empty", r.Actors)
	}
	if r.Policy != nil {
		t.Fatalf("policy = %+v, want nil", r.Policy)
	}
}

func TestParseNoTextColumn(t *testing.T) {
	if _, err := Parse([]Record{{"speaker": "A"}}); err == nil {
		t.Fatal("expected error for missing text column")
	}
}

func TestBasicStats(t *testing.T) {
	records := []Record{
		{"text": "One two three.", "speaker": "A", "utterance_type": "question", "theme_primary": "governance"},
		{"text": "Four five.", "speaker": "B", "utterance_type": "response", "theme_primary": "governance"},
		{"text": "Six.", "speaker": "B", "utterance_type": "statement", "theme_primary": "humanitarian"},
	}
	d, err := Parse(records)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	s := d.BasicStats()
	if s.Sentences != 3 || s.Speakers != 2 || s.Questions != 1 {
		t.Fatalf("stats = %+v", s)
	}
	if s.WordCount != 6 {
		t.Fatalf("word count = %d, want 6", s.WordCount)
	}
	if s.ThemeCounts["governance"] != 2 {
		t.Fatalf("theme counts = %v", s.ThemeCounts)
	}
}

func TestValidate(t *testing.T) {
	records := []Record{
		{"text": "A.", "emotional_register": "CONFIDENT", "tone": "factual"},
		{"text": "B.", "emotional_register": "BOGUS", "tone": ""},
	}
	rep := Validate(records)
	if rep.Rows != 2 {
		t.Fatalf("rows = %d", rep.Rows)
	}
	if rep.TextColumn != "text" {
		t.Fatalf("text column = %q", rep.TextColumn)
	}
	var register, tone *ColumnCheck
	for i := range rep.Checks {
		switch rep.Checks[i].Column {
		case "emotional_register":
			register = &rep.Checks[i]
		case "tone":
			tone = &rep.Checks[i]
		}
	}
	if register == nil || !register.Present {
		t.Fatal("emotional_register check missing")
	}
	if len(register.Invalid) != 1 || register.Invalid[0].Value != "BOGUS" {
		t.Fatalf("invalid = %v", register.Invalid)
	}
	if tone.NonNull != 1 || tone.Nulls != 1 {
		t.Fatalf("tone check = %+v", tone)
	}
	if rep.OK() {
		t.Fatal("report with invalid values should not be OK")
	}
}
