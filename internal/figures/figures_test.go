package figures

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/discourselab/speechviz/internal/dataset"
	"github.com/discourselab/speechviz/internal/excerpt"
)

func testData(t *testing.T) *dataset.Dataset {
	t.Helper()
	var records []dataset.Record
	for i := 0; i < 40; i++ {
		tone := "factual"
		register := "NEUTRAL"
		if i%7 == 0 {
			tone = "threatening"
			register = "ALARMIST"
		}
		records = append(records, dataset.Record{
			"text":               "The situation demands a collective answer and we will provide one.",
			"speaker":            "Leader",
			"speaker_role":       "political_leader",
			"utterance_type":     "statement",
			"theme_primary":      "diplomatic_relations",
			"tone":               tone,
			"emotional_register": register,
			"speech_act":         `["PROPOSING"]`,
			"geopolitical_frame": `["DISORDER","COOPERATION"]`,
			"france_positioning": `["ACTIVE_AGENT"]`,
			"actors":             `[{"actor":"Russia","mention_type":"direct","valence":"NEGATIVE"}]`,
			"entities_mentioned": `[{"entity":"Russia","type":"country","valence":"NEGATIVE"},{"entity":"France","type":"country","valence":"POSITIVE"}]`,
			"policy_content":     `{"present":true,"domain":"defense","action_type":"INCREASE","specificity":"CONCRETE","summary":"More defense spending."}`,
		})
	}
	records = append(records,
		dataset.Record{
			"text":           "What is your answer to the critics?",
			"speaker":        "Reporter",
			"speaker_role":   "journalist",
			"utterance_type": "question",
			"theme_primary":  "governance",
		},
		dataset.Record{
			"text":           "I will answer that directly.",
			"speaker":        "Leader",
			"speaker_role":   "political_leader",
			"utterance_type": "response",
			"theme_primary":  "governance",
			"response_type":  "direct",
		},
	)
	d, err := dataset.Parse(records)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	d.Path = "fixture.csv"
	return d
}

func TestAllGeneratorsOrderedAndComplete(t *testing.T) {
	gens := All()
	if len(gens) != 9 {
		t.Fatalf("generators = %d, want 9", len(gens))
	}
	for i, g := range gens {
		if g.ID != i+1 {
			t.Fatalf("generator %d has id %d", i, g.ID)
		}
		if g.Slug == "" || g.TitleEN == "" || g.TitleFR == "" {
			t.Fatalf("generator %d incomplete: %+v", g.ID, g)
		}
	}
}

func TestEveryFigureBuildsInBothLanguages(t *testing.T) {
	d := testData(t)
	for _, lang := range []string{"fr", "en"} {
		for _, g := range All() {
			excerpt.Reset()
			ctx := NewContext(d, lang)
			html, err := g.Build(ctx)
			if err != nil {
				t.Fatalf("fig %d (%s, %s): %v", g.ID, g.Slug, lang, err)
			}
			if !strings.Contains(html, "<!DOCTYPE html>") {
				t.Fatalf("fig %d missing doctype", g.ID)
			}
			if !strings.Contains(html, esc(g.Title(lang))) {
				t.Fatalf("fig %d (%s) missing its title", g.ID, lang)
			}
			if !strings.Contains(html, ctx.L.ReadingGuide) {
				t.Fatalf("fig %d (%s) missing reading guide", g.ID, lang)
			}
		}
	}
	excerpt.Reset()
}

func TestFiguresSkipWithoutColumns(t *testing.T) {
	d, err := dataset.Parse([]dataset.Record{
		{"text": "Just a sentence.", "speaker": "A"},
		{"text": "Another one.", "speaker": "A"},
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	d.Path = "bare.csv"
	ctx := NewContext(d, "en")
	for _, id := range []int{2, 3, 4, 5, 7, 8, 9} {
		g, ok := ByID(id)
		if !ok {
			t.Fatalf("no generator %d", id)
		}
		if _, err := g.Build(ctx); err != ErrSkip {
			t.Fatalf("fig %d on bare data: err = %v, want ErrSkip", id, err)
		}
	}
}

func TestHTMLEscaping(t *testing.T) {
	d, err := dataset.Parse([]dataset.Record{
		{"text": "Quote with <script> & ampersand.", "speaker": "A <b>bold</b>",
			"emotional_register": "CONFIDENT"},
		{"text": "Second sentence here.", "speaker": "A", "emotional_register": "NEUTRAL"},
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	d.Path = "esc.csv"
	g, _ := ByID(1)
	html, err := g.Build(NewContext(d, "en"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatal("unescaped user text in output")
	}
}

func TestManifestWrite(t *testing.T) {
	dir := t.TempDir()
	m := NewManifest("input.csv", []string{"en"})
	m.Files = append(m.Files, ManifestFile{Figure: 1, Slug: "dashboard", Lang: "en", HTML: "fig01_dashboard_en.html"})
	if err := m.Write(dir); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var got Manifest
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.RunID == "" || got.Input != "input.csv" || len(got.Files) != 1 {
		t.Fatalf("manifest = %+v", got)
	}
}

func TestFileName(t *testing.T) {
	g, _ := ByID(4)
	if got := FileName(g, "fr", "html"); got != "fig04_timeline_fr.html" {
		t.Fatalf("file name = %q", got)
	}
}
