// Package figures renders the annotated transcript as self-contained HTML
// figures. Each generator is independent and skips cleanly when its columns
// are absent from the input.
package figures

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/discourselab/speechviz/internal/dataset"
	"github.com/discourselab/speechviz/internal/excerpt"
	"github.com/discourselab/speechviz/internal/schema"
	"github.com/discourselab/speechviz/internal/utils"
)

// ErrSkip signals that the input lacks the columns a figure needs. Callers
// report it as a skip, not a failure.
var ErrSkip = errors.New("insufficient data for figure")

// Context carries everything a generator needs for one build.
type Context struct {
	Data             *dataset.Dataset
	Lang             string
	L                schema.LabelSet
	Excerpts         excerpt.Options
	MinActorMentions int
	Source           string
}

// NewContext builds a figure context with defaults filled in.
func NewContext(d *dataset.Dataset, lang string) *Context {
	return &Context{
		Data:             d,
		Lang:             lang,
		L:                schema.Labels(lang),
		Excerpts:         excerpt.DefaultOptions(),
		MinActorMentions: 3,
		Source:           filepath.Base(d.Path),
	}
}

// Generator is one figure builder.
type Generator struct {
	ID      int
	Slug    string
	TitleEN string
	TitleFR string
	Build   func(*Context) (string, error)
}

// Title returns the figure title in the given language.
func (g Generator) Title(lang string) string {
	if lang == "fr" {
		return g.TitleFR
	}
	return g.TitleEN
}

var generators []Generator

func register(g Generator) {
	generators = append(generators, g)
}

// All returns every registered generator in figure-number order.
func All() []Generator {
	out := append([]Generator(nil), generators...)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].ID < out[i].ID {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

// ByID looks a generator up by its figure number.
func ByID(id int) (Generator, bool) {
	for _, g := range generators {
		if g.ID == id {
			return g, true
		}
	}
	return Generator{}, false
}

// ManifestFile records one produced artifact.
type ManifestFile struct {
	Figure int    `json:"figure"`
	Slug   string `json:"slug"`
	Lang   string `json:"lang"`
	HTML   string `json:"html"`
	PNG    string `json:"png,omitempty"`
}

// Manifest records one generation run.
type Manifest struct {
	RunID       string         `json:"run_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Input       string         `json:"input"`
	Languages   []string       `json:"languages"`
	Files       []ManifestFile `json:"files"`
	Skipped     []string       `json:"skipped,omitempty"`
}

// NewManifest starts a manifest for one run.
func NewManifest(input string, languages []string) *Manifest {
	return &Manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Input:       input,
		Languages:   languages,
	}
}

// Write stores the manifest as manifest.json in dir.
func (m *Manifest) Write(dir string) error {
	b, err := utils.PrettyJSON(m)
	if err != nil {
		return err
	}
	if err := utils.SafeWriteFile(filepath.Join(dir, "manifest.json"), b); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// FileName is the canonical on-disk name for a figure artifact.
func FileName(g Generator, lang, ext string) string {
	return fmt.Sprintf("fig%02d_%s_%s.%s", g.ID, g.Slug, lang, ext)
}
