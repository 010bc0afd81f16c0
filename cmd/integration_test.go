package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/discourselab/speechviz/internal/figures"
)

func writeFixture(t *testing.T) string {
	t.Helper()
	rows := []string{
		"text,speaker,speaker_role,utterance_type,theme_primary,tone,emotional_register,speech_act,geopolitical_frame,france_positioning",
	}
	for i := 0; i < 30; i++ {
		tone := "factual"
		register := "NEUTRAL"
		if i%6 == 0 {
			tone = "reassuring"
			register = "CONFIDENT"
		}
		rows = append(rows,
			`"We keep our commitments to our partners.",Leader,political_leader,statement,diplomatic_relations,`+
				tone+`,`+register+`,"[""COMMITTING""]","[""COOPERATION""]","[""LEADER""]"`)
	}
	path := filepath.Join(t.TempDir(), "speech.csv")
	if err := os.WriteFile(path, []byte(strings.Join(rows, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestGenerateEndToEnd(t *testing.T) {
	data := writeFixture(t)
	out := t.TempDir()

	rootCmd.SetArgs([]string{
		"generate", "--data", data, "--out", out, "--lang", "en", "--png=false",
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("generate: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(out, "manifest.json"))
	if err != nil {
		t.Fatalf("manifest missing: %v", err)
	}
	var m figures.Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("manifest: %v", err)
	}
	if m.RunID == "" || len(m.Files) == 0 {
		t.Fatalf("manifest = %+v", m)
	}
	for _, f := range m.Files {
		if f.Lang != "en" {
			t.Fatalf("unexpected language in %+v", f)
		}
		if _, err := os.Stat(filepath.Join(out, f.HTML)); err != nil {
			t.Fatalf("listed file missing: %v", err)
		}
		if f.PNG != "" {
			t.Fatalf("png recorded with --png=false: %+v", f)
		}
	}
}

func TestGenerateSingleFigure(t *testing.T) {
	data := writeFixture(t)
	out := t.TempDir()

	rootCmd.SetArgs([]string{
		"generate", "--data", data, "--out", out, "--lang", "fr", "--fig", "1", "--png=false",
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("generate --fig 1: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "fig01_dashboard_fr.html")); err != nil {
		t.Fatalf("dashboard missing: %v", err)
	}
}

func TestGenerateRejectsBadLang(t *testing.T) {
	data := writeFixture(t)
	rootCmd.SetArgs([]string{
		"generate", "--data", data, "--out", t.TempDir(), "--lang", "de", "--png=false",
	})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for unsupported language")
	}
}
