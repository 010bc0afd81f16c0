// Package excerpt selects quotable sentences for figures and guarantees
// that no excerpt is reused across figures within a run.
package excerpt

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Selection defaults, overridable from config.
const (
	DefaultMinLen = 160
	DefaultMaxLen = 360
	DefaultLimit  = 3
)

var (
	mu   sync.Mutex
	used = map[string]bool{}
)

var (
	sentenceEnd = regexp.MustCompile(`[.!?](\s|$)`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// FirstSentence returns the first sentence of text, punctuation included.
func FirstSentence(text string) string {
	text = strings.TrimSpace(text)
	if loc := sentenceEnd.FindStringIndex(text); loc != nil {
		return strings.TrimSpace(text[:loc[0]+1])
	}
	return text
}

// Key normalizes an excerpt for dedup: first sentence, whitespace collapsed,
// lowercased.
func Key(text string) string {
	s := FirstSentence(text)
	s = whitespace.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}

// Used reports whether an equivalent excerpt was already placed on a figure.
func Used(text string) bool {
	mu.Lock()
	defer mu.Unlock()
	return used[Key(text)]
}

// Mark records an excerpt as placed.
func Mark(text string) {
	k := Key(text)
	if k == "" {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	used[k] = true
}

// Reset clears the registry. Tests and multi-run processes call it between
// runs.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	used = map[string]bool{}
}

// Options control candidate filtering.
type Options struct {
	MinLen int
	MaxLen int
	Limit  int
}

// DefaultOptions returns the standard excerpt selection bounds.
func DefaultOptions() Options {
	return Options{MinLen: DefaultMinLen, MaxLen: DefaultMaxLen, Limit: DefaultLimit}
}

// Select picks up to opts.Limit unused excerpts from candidates. Candidates
// whose first sentence fits the length window are preferred, shortest first;
// when none fit, the unfiltered pool is used. Selected excerpts are marked
// used.
func Select(candidates []string, opts Options) []string {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if opts.MaxLen <= 0 {
		opts.MaxLen = DefaultMaxLen
	}

	var fitted []string
	for _, c := range candidates {
		n := len([]rune(FirstSentence(c)))
		if n >= opts.MinLen && n <= opts.MaxLen {
			fitted = append(fitted, c)
		}
	}
	pool := fitted
	if len(pool) == 0 {
		pool = append([]string(nil), candidates...)
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return len(FirstSentence(pool[i])) < len(FirstSentence(pool[j]))
	})

	var out []string
	seen := map[string]bool{}
	for _, c := range pool {
		k := Key(c)
		if k == "" || seen[k] || Used(c) {
			continue
		}
		seen[k] = true
		Mark(c)
		out = append(out, c)
		if len(out) >= opts.Limit {
			break
		}
	}
	return out
}
