package indices

import (
	"math"
	"testing"

	"github.com/discourselab/speechviz/internal/dataset"
	"github.com/discourselab/speechviz/internal/schema"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDiplomaticTone(t *testing.T) {
	rows := []dataset.Row{
		{EmotionalRegister: "ALARMIST"},  // -2.0
		{EmotionalRegister: "CONFIDENT"}, // +1.5
		{EmotionalRegister: "NEUTRAL"},   // 0.0
		{EmotionalRegister: ""},          // skipped
	}
	got := DiplomaticTone(rows)
	want := (-2.0 + 1.5 + 0.0) / 3 / 2
	if !almostEqual(got.Value, want) {
		t.Fatalf("tone = %v, want %v", got.Value, want)
	}
	if got.N != 3 {
		t.Fatalf("n = %d, want 3", got.N)
	}
}

func TestDiplomaticToneEmptyDefault(t *testing.T) {
	got := DiplomaticTone(nil)
	if got.Value != 0 || got.N != 0 {
		t.Fatalf("empty tone = %+v, want zero", got)
	}
}

func TestWorldviewCombinesFrameAndTone(t *testing.T) {
	rows := []dataset.Row{
		{Frames: []string{"DISORDER", "EXISTENTIAL_THREAT"}},
		{Frames: []string{"COOPERATION"}},
		{EmotionalRegister: "CONFIDENT"},
	}
	got := Worldview(rows)
	if got.ThreatN != 2 || got.OpportunityN != 1 {
		t.Fatalf("frame counts = %d/%d", got.ThreatN, got.OpportunityN)
	}
	if !almostEqual(got.FrameBalance, (1.0-2.0)/3.0) {
		t.Fatalf("frame balance = %v", got.FrameBalance)
	}
	// 3 frame observations, 1 tone observation.
	if !almostEqual(got.WeightFrame, 0.75) || !almostEqual(got.WeightTone, 0.25) {
		t.Fatalf("weights = %v/%v", got.WeightFrame, got.WeightTone)
	}
	want := got.FrameBalance*0.75 + got.ToneIndex*0.25
	if !almostEqual(got.Value, want) {
		t.Fatalf("worldview = %v, want %v", got.Value, want)
	}
}

func TestWorldviewEmptyDefault(t *testing.T) {
	got := Worldview(nil)
	if got.Value != 0 {
		t.Fatalf("empty worldview = %v, want 0", got.Value)
	}
}

func TestAgency(t *testing.T) {
	rows := []dataset.Row{
		{Positions: []string{"ACTIVE_AGENT", "LEADER"}},
		{Positions: []string{"PARTNER"}},
		{Positions: []string{"VICTIM", "NOT_APPLICABLE"}},
	}
	got := Agency(rows)
	if got.Active != 2 || got.Cooperative != 1 || got.Reactive != 1 {
		t.Fatalf("counts = %+v", got)
	}
	want := (2*1.0 + 1*0.7 + 1*0.3) / 4
	if !almostEqual(got.Value, want) {
		t.Fatalf("agency = %v, want %v", got.Value, want)
	}
}

func TestAgencyEmptyDefault(t *testing.T) {
	if got := Agency(nil); got.Value != 0.5 {
		t.Fatalf("empty agency = %v, want 0.5", got.Value)
	}
}

func TestPolicyAmbition(t *testing.T) {
	rows := []dataset.Row{
		{Policy: &dataset.Policy{Present: true, Specificity: "CONCRETE"}},     // 1.0
		{Policy: &dataset.Policy{Present: true, Specificity: "ASPIRATIONAL"}}, // 0.2
		{Policy: &dataset.Policy{Present: false, Specificity: "CONCRETE"}},    // skipped
		{Policy: nil},
	}
	got := PolicyAmbition(rows)
	if !almostEqual(got.Value, 0.6) || got.N != 2 {
		t.Fatalf("ambition = %+v", got)
	}
	if got := PolicyAmbition(nil); got.Value != 0.5 {
		t.Fatalf("empty ambition = %v, want 0.5", got.Value)
	}
}

func TestActionOrientation(t *testing.T) {
	rows := []dataset.Row{
		{SpeechActs: []string{"PROPOSING", "STATING"}},
		{SpeechActs: []string{"EXHORTING"}},
		{SpeechActs: []string{"DENOUNCING"}}, // neither bucket
	}
	got := ActionOrientation(rows)
	if got.Action != 2 || got.Descriptive != 1 {
		t.Fatalf("counts = %+v", got)
	}
	if !almostEqual(got.Value, 2.0/3.0) {
		t.Fatalf("action = %v", got.Value)
	}
	if got := ActionOrientation(nil); got.Value != 0.5 {
		t.Fatalf("empty action = %v, want 0.5", got.Value)
	}
}

func TestPosturePerSpeaker(t *testing.T) {
	rows := []dataset.Row{
		{Speaker: "Leader", SpeakerRole: "political_leader", Tone: "threatening"},
		{Speaker: "Leader", SpeakerRole: "political_leader", Tone: "factual"},
		{Speaker: "Aide", SpeakerRole: "government_official", Tone: "reassuring"},
		{Speaker: "Press", SpeakerRole: "journalist", Tone: "confrontational"}, // excluded
	}
	got := Posture(rows)
	if len(got) != 2 {
		t.Fatalf("speakers = %d, want 2", len(got))
	}
	if got[0].Speaker != "Leader" || got[0].N != 2 {
		t.Fatalf("first = %+v", got[0])
	}
	if !almostEqual(got[0].Value, -1.0) {
		t.Fatalf("leader posture = %v, want -1", got[0].Value)
	}
	if !almostEqual(got[1].Value, 1.0) {
		t.Fatalf("aide posture = %v, want 1", got[1].Value)
	}
}

func TestGratitude(t *testing.T) {
	rows := []dataset.Row{
		{SpeechActs: []string{"THANKING"}},
		{SpeechActs: []string{"STATING"}},
		{SpeechActs: []string{"THANKING", "STATING"}},
		{}, // unannotated rows still count toward the total
	}
	got := Gratitude(rows)
	if got.Thanking != 2 || got.N != 4 || !almostEqual(got.Value, 0.5) {
		t.Fatalf("gratitude = %+v", got)
	}
}

func TestGratitudeSparseAnnotation(t *testing.T) {
	rows := []dataset.Row{
		{SpeechActs: []string{"THANKING"}},
		{SpeechActs: []string{"STATING"}},
		{},
		{},
	}
	got := Gratitude(rows)
	if !almostEqual(got.Value, 0.25) {
		t.Fatalf("gratitude = %v, want 0.25", got.Value)
	}
}

func TestAnimosity(t *testing.T) {
	rows := []dataset.Row{
		{Entities: []dataset.Entity{
			{Name: "United States", Valence: "POSITIVE"},
			{Name: "Russia", Valence: "NEGATIVE"},
		}},
		{Entities: []dataset.Entity{
			{Name: "Russia", Valence: "NEGATIVE"},
			{Name: "Elbonia", Valence: "NEGATIVE"}, // not in either group
		}},
	}
	got := Animosity(rows)
	if got.UsN != 1 || got.ThemN != 2 {
		t.Fatalf("counts = %+v", got)
	}
	if !almostEqual(got.UsScore, 1.0) || !almostEqual(got.ThemScore, -1.0) {
		t.Fatalf("scores = %v/%v", got.UsScore, got.ThemScore)
	}
	if !almostEqual(got.Value, 1.0) {
		t.Fatalf("animosity = %v, want 1", got.Value)
	}
	if got := Animosity(nil); got.Value != 0 {
		t.Fatalf("empty animosity = %v, want 0", got.Value)
	}
}

func TestAnimosityCountsNormalizedOutGroupMentions(t *testing.T) {
	rows := []dataset.Row{
		{Entities: []dataset.Entity{
			{Name: schema.NormalizeActor("Maduro"), Valence: "NEGATIVE"},
			{Name: schema.NormalizeActor("maduro regime"), Valence: "NEGATIVE"},
		}},
	}
	got := Animosity(rows)
	if got.ThemN != 2 {
		t.Fatalf("ThemN = %d, want 2", got.ThemN)
	}
	if !almostEqual(got.ThemScore, -1.0) || !almostEqual(got.Value, 0.5) {
		t.Fatalf("animosity = %+v", got)
	}
}

func TestActorProfiles(t *testing.T) {
	rows := []dataset.Row{
		{Actors: []dataset.Actor{
			{Name: "Russia", Valence: "NEGATIVE"},
			{Name: "Ukraine", Valence: "POSITIVE"},
		}},
		{Actors: []dataset.Actor{
			{Name: "Russia", Valence: "NEGATIVE"},
			{Name: "Russia", Valence: "NEUTRAL"},
		}},
	}
	got := ActorProfiles(rows, 2)
	if len(got) != 1 {
		t.Fatalf("profiles = %v, want Russia only", got)
	}
	p := got[0]
	if p.Name != "Russia" || p.Mentions != 3 || p.Negative != 2 || p.Neutral != 1 {
		t.Fatalf("profile = %+v", p)
	}
	if !almostEqual(p.Net, -2.0/3.0) {
		t.Fatalf("net = %v", p.Net)
	}
}
