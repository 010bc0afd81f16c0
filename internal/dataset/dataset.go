// Package dataset loads annotated transcript files and turns each record
// into a typed Row. Annotations arrive either as flat columns or as a single
// JSON object column; both paths end in the same Row shape.
package dataset

import (
	"sort"
	"strings"
)

// Actor is one actor mention inside a sentence.
type Actor struct {
	Name        string `json:"actor"`
	MentionType string `json:"mention_type"`
	Valence     string `json:"valence"`
}

// Entity is one named-entity mention inside a sentence.
type Entity struct {
	Name    string `json:"entity"`
	Type    string `json:"type"`
	Valence string `json:"valence"`
}

// Policy is the policy-content annotation of a sentence.
type Policy struct {
	Present     bool   `json:"present"`
	Domain      string `json:"domain"`
	ActionType  string `json:"action_type"`
	Specificity string `json:"specificity"`
	Summary     string `json:"summary"`
}

// Stance is one issue-stance annotation.
type Stance struct {
	Issue    string `json:"issue"`
	Type     string `json:"stance_type"`
	Content  string `json:"stance_content"`
	Explicit bool   `json:"explicit"`
}

// Row is one annotated sentence. Every field is optional; consumers check
// for the zero value and skip what is absent.
type Row struct {
	Index int

	Text              string
	Speaker           string
	SpeakerRole       string
	UtteranceType     string
	ThemePrimary      string
	Tone              string
	ResponseType      string
	EmotionalRegister string

	SpeechActs  []string
	Frames      []string
	Positions   []string
	Temporality []string

	Actors   []Actor
	Entities []Entity
	Policy   *Policy
	Stances  []Stance
}

// Dataset is a parsed transcript file.
type Dataset struct {
	Path       string
	Rows       []Row
	Columns    []string
	TextColumn string
}

// HasColumn reports whether the source file carried the named column
// (directly or via an expanded annotation object).
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Speakers returns distinct speaker names in order of first appearance.
func (d *Dataset) Speakers() []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range d.Rows {
		if r.Speaker == "" || seen[r.Speaker] {
			continue
		}
		seen[r.Speaker] = true
		out = append(out, r.Speaker)
	}
	return out
}

// Stats are the basic corpus counts shown on the dashboard and report.
type Stats struct {
	Sentences   int
	Speakers    int
	Questions   int
	WordCount   int
	ThemeCounts map[string]int
}

// BasicStats computes corpus-level counts in one pass.
func (d *Dataset) BasicStats() Stats {
	s := Stats{ThemeCounts: map[string]int{}}
	s.Sentences = len(d.Rows)
	s.Speakers = len(d.Speakers())
	for _, r := range d.Rows {
		if r.UtteranceType == "question" {
			s.Questions++
		}
		s.WordCount += len(strings.Fields(r.Text))
		if r.ThemePrimary != "" {
			s.ThemeCounts[r.ThemePrimary]++
		}
	}
	return s
}

// CountValues tallies the values produced by extract across all rows,
// returned as (value, count) pairs sorted by descending count.
func CountValues(rows []Row, extract func(Row) []string) []ValueCount {
	counts := map[string]int{}
	for _, r := range rows {
		for _, v := range extract(r) {
			if v != "" {
				counts[v]++
			}
		}
	}
	out := make([]ValueCount, 0, len(counts))
	for v, n := range counts {
		out = append(out, ValueCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// ValueCount is a tally entry for one categorical value.
type ValueCount struct {
	Value string
	Count int
}
