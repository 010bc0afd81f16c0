package report

import (
	"strings"
	"testing"

	"github.com/discourselab/speechviz/internal/dataset"
)

func TestRenderFullReport(t *testing.T) {
	records := []dataset.Record{
		{
			"text": "We must act together now.", "speaker": "Leader",
			"speaker_role": "political_leader", "utterance_type": "statement",
			"theme_primary": "diplomatic_relations", "tone": "reassuring",
			"emotional_register": "CONFIDENT",
			"speech_act":         `["PROPOSING"]`,
			"geopolitical_frame": `["COOPERATION"]`,
			"france_positioning": `["LEADER"]`,
			"policy_content":     `{"present":true,"domain":"defense","specificity":"CONCRETE"}`,
		},
		{
			"text": "The threat is real.", "speaker": "Leader",
			"speaker_role": "political_leader", "utterance_type": "statement",
			"theme_primary": "security_threat", "tone": "threatening",
			"emotional_register": "ALARMIST",
			"speech_act":         `["WARNING"]`,
			"geopolitical_frame": `["DISORDER"]`,
		},
		{
			"text": "Will you commit troops?", "speaker": "Reporter",
			"speaker_role": "journalist", "utterance_type": "question",
			"theme_primary": "military_operation",
		},
		{
			"text": "Yes, and here is how.", "speaker": "Leader",
			"speaker_role": "political_leader", "utterance_type": "response",
			"theme_primary": "military_operation", "response_type": "direct",
		},
	}
	d, err := dataset.Parse(records)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	out := Render(d)
	for _, want := range []string{
		"SUMMARY STATISTICS",
		"COMPOSITE INDICES",
		"Diplomatic tone index",
		"Worldview index",
		"Agency index",
		"Policy ambition index",
		"Action orientation",
		"Rhetorical posture, Leader",
		"Directness score",
		"GEOPOLITICAL FRAMES",
		"(T) DISORDER",
		"(O) COOPERATION",
		"SPEECH ACTS",
		"EMOTIONAL REGISTERS",
		"QUESTION AND ANSWER",
		"#",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q\n%s", want, out)
		}
	}
}

func TestRenderSparseInput(t *testing.T) {
	d, err := dataset.Parse([]dataset.Record{{"text": "Only text here."}})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out := Render(d)
	if !strings.Contains(out, "SUMMARY STATISTICS") {
		t.Fatal("summary section missing")
	}
	if strings.Contains(out, "GEOPOLITICAL FRAMES") {
		t.Fatal("frame section should be absent without frame annotations")
	}
}
