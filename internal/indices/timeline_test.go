package indices

import (
	"math"
	"testing"

	"github.com/discourselab/speechviz/internal/dataset"
)

func TestRollingMean(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6}
	got := RollingMean(values, 3, 2)
	// window 3 centered: index 0 sees [1 2], index 2 sees [2 3 4].
	if !almostEqual(got[0], 1.5) {
		t.Fatalf("got[0] = %v, want 1.5", got[0])
	}
	if !almostEqual(got[2], 3.0) {
		t.Fatalf("got[2] = %v, want 3", got[2])
	}
}

func TestRollingMeanMinPeriods(t *testing.T) {
	got := RollingMean([]float64{1, 2}, 10, 3)
	for i, v := range got {
		if !math.IsNaN(v) {
			t.Fatalf("got[%d] = %v, want NaN below min periods", i, v)
		}
	}
}

func TestFindPeaks(t *testing.T) {
	// Flat line with two well separated bumps.
	y := make([]float64, 100)
	y[20] = 1.0
	y[19], y[21] = 0.5, 0.5
	y[70] = 0.8
	y[69], y[71] = 0.4, 0.4
	peaks := FindPeaks(y, 0.25, 15)
	if len(peaks) != 2 || peaks[0] != 20 || peaks[1] != 70 {
		t.Fatalf("peaks = %v, want [20 70]", peaks)
	}
}

func TestFindPeaksMinDistanceKeepsHigher(t *testing.T) {
	y := make([]float64, 50)
	y[10] = 1.0
	y[15] = 0.6
	peaks := FindPeaks(y, 0.25, 15)
	if len(peaks) != 1 || peaks[0] != 10 {
		t.Fatalf("peaks = %v, want the higher one at 10", peaks)
	}
}

func TestFindPeaksProminenceFilter(t *testing.T) {
	y := []float64{0, 0.1, 0, 0.1, 0}
	if peaks := FindPeaks(y, 0.25, 1); len(peaks) != 0 {
		t.Fatalf("peaks = %v, want none below prominence", peaks)
	}
}

func TestPrepareTimeline(t *testing.T) {
	var rows []dataset.Row
	for i := 0; i < 60; i++ {
		tone := "factual"
		register := "NEUTRAL"
		if i >= 25 && i < 35 {
			tone = "threatening"
			register = "ALARMIST"
		}
		rows = append(rows, dataset.Row{
			Index:             i,
			Text:              "Sentence with content.",
			Speaker:           "Leader",
			Tone:              tone,
			EmotionalRegister: register,
		})
	}
	tl := PrepareTimeline(rows)
	if tl == nil {
		t.Fatal("timeline is nil")
	}
	if len(tl.Curve) != 400 {
		t.Fatalf("curve points = %d, want 400", len(tl.Curve))
	}
	var negPeaks int
	for _, p := range tl.Peaks {
		if p.Sign < 0 {
			negPeaks++
			if p.Excerpt == "" {
				t.Fatal("negative peak without excerpt")
			}
		}
	}
	if negPeaks == 0 {
		t.Fatal("expected at least one negative peak over the threatening stretch")
	}
}

func TestPrepareTimelineTooFewRows(t *testing.T) {
	rows := []dataset.Row{
		{Index: 0, Tone: "factual"},
		{Index: 1, Tone: "factual"},
	}
	if tl := PrepareTimeline(rows); tl != nil {
		t.Fatalf("timeline = %+v, want nil for sparse input", tl)
	}
}

func TestExtractQABlocks(t *testing.T) {
	rows := []dataset.Row{
		{Index: 0, Speaker: "Anchor", SpeakerRole: "journalist", UtteranceType: "question", ThemePrimary: "governance"},
		{Index: 1, Speaker: "Anchor", SpeakerRole: "journalist", UtteranceType: "question", ThemePrimary: "meta_communication"},
		{Index: 2, Speaker: "Leader", SpeakerRole: "political_leader", UtteranceType: "response", ThemePrimary: "governance", ResponseType: "direct"},
		{Index: 3, Speaker: "Leader", SpeakerRole: "political_leader", UtteranceType: "statement", ThemePrimary: "economic_resources"},
		{Index: 4, Speaker: "Anchor", SpeakerRole: "journalist", UtteranceType: "question", ThemePrimary: "security_threat"},
		{Index: 5, Speaker: "Leader", SpeakerRole: "political_leader", UtteranceType: "response", ResponseType: "pivot"},
	}
	blocks := ExtractQABlocks(rows)
	if len(blocks) != 2 {
		t.Fatalf("blocks = %d, want 2", len(blocks))
	}
	b := blocks[0]
	if len(b.QuestionRows) != 2 || len(b.ResponseRows) != 2 {
		t.Fatalf("block rows = %+v", b)
	}
	if len(b.QuestionThemes) != 1 || b.QuestionThemes[0] != "governance" {
		t.Fatalf("question themes = %v, meta theme should be excluded", b.QuestionThemes)
	}
	if len(b.ResponseTypes) != 1 || b.ResponseTypes[0] != "direct" {
		t.Fatalf("response types = %v", b.ResponseTypes)
	}
	if blocks[1].ResponseTypes[0] != "pivot" {
		t.Fatalf("second block = %+v", blocks[1])
	}
}

func TestDirectness(t *testing.T) {
	rows := []dataset.Row{
		{ResponseType: "direct"},     // 1.0
		{ResponseType: "partial"},    // 0.5
		{ResponseType: "deflection"}, // 0.0
		{ResponseType: ""},
	}
	got := Directness(rows)
	if got.N != 3 || !almostEqual(got.Value, 0.5) {
		t.Fatalf("directness = %+v", got)
	}
	if got.Counts["direct"] != 1 {
		t.Fatalf("counts = %v", got.Counts)
	}
	if got := Directness(nil); got.Value != 0.5 {
		t.Fatalf("empty directness = %v, want 0.5", got.Value)
	}
}
