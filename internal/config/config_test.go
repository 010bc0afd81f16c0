package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	c, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.OutputDir != "figures" {
		t.Fatalf("output_dir = %q", c.OutputDir)
	}
	if !c.ExportPNG {
		t.Fatal("export_png default should be true")
	}
	if c.PNGWidth != 1920 || c.PNGHeight != 1080 {
		t.Fatalf("viewport = %dx%d", c.PNGWidth, c.PNGHeight)
	}
	if len(c.Languages) != 2 || c.Languages[0] != "fr" || c.Languages[1] != "en" {
		t.Fatalf("languages = %v", c.Languages)
	}
	if c.ExcerptMinLen != 160 || c.ExcerptMaxLen != 360 || c.ExcerptLimit != 3 {
		t.Fatalf("excerpt bounds = %d/%d/%d", c.ExcerptMinLen, c.ExcerptMaxLen, c.ExcerptLimit)
	}
	if c.MinActorMentions != 3 {
		t.Fatalf("min_actor_mentions = %d", c.MinActorMentions)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	c, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c.OutputDir = "out"
	c.ExportPNG = false
	c.ExcerptLimit = 5
	if err := Save(c, cfgFile); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.OutputDir != "out" || got.ExportPNG || got.ExcerptLimit != 5 {
		t.Fatalf("round trip = %+v", got)
	}
}
