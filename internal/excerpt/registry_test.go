package excerpt

import (
	"strings"
	"testing"
)

func TestFirstSentence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"One sentence only", "One sentence only"},
		{"First here. Second there.", "First here."},
		{"Really? Yes.", "Really?"},
		{"  Padded!  Next.", "Padded!"},
	}
	for _, c := range cases {
		if got := FirstSentence(c.in); got != c.want {
			t.Fatalf("FirstSentence(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestKeyNormalizes(t *testing.T) {
	a := Key("The  Danger\n GROWS.  And more.")
	b := Key("the danger grows. something else.")
	if a != b {
		t.Fatalf("keys differ: %q vs %q", a, b)
	}
}

func TestSelectDedupAcrossCalls(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	mk := func(s string) string {
		// Pad into the preferred length window.
		return s + " " + strings.Repeat("x", 200-len(s)) + "."
	}
	c1 := mk("Alpha statement")
	c2 := mk("Beta statement")

	first := Select([]string{c1, c2}, DefaultOptions())
	if len(first) != 2 {
		t.Fatalf("first select = %d excerpts, want 2", len(first))
	}
	second := Select([]string{c1, c2}, DefaultOptions())
	if len(second) != 0 {
		t.Fatalf("reused excerpts across calls: %v", second)
	}
}

func TestSelectFallsBackWhenNoneFit(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	short := []string{"Tiny one.", "Tiny two."}
	got := Select(short, DefaultOptions())
	if len(got) != 2 {
		t.Fatalf("fallback select = %d, want 2", len(got))
	}
}

func TestSelectHonorsLimit(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var cands []string
	for _, s := range []string{"A", "B", "C", "D", "E"} {
		cands = append(cands, s+strings.Repeat("y", 199)+".")
	}
	got := Select(cands, Options{MinLen: 160, MaxLen: 360, Limit: 3})
	if len(got) != 3 {
		t.Fatalf("limit ignored: got %d", len(got))
	}
}
