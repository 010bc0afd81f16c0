package schema

import "testing"

func TestNormalizeActor(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Russie", "Russia"},
		{"  russie ", "Russia"},
		{"USA", "United States"},
		{"Maduro", "Nicolas Maduro"},
		{"maduro regime", "Nicolas Maduro"},
		{"Nicolás Maduro", "Nicolas Maduro"},
		{"Caracas", "Venezuela"},
		{"Elbonia", "Elbonia"},
		{"  Elbonia ", "Elbonia"},
	}
	for _, c := range cases {
		if got := NormalizeActor(c.in); got != c.want {
			t.Fatalf("NormalizeActor(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestAliasesResolveToGroupedEntities(t *testing.T) {
	for _, name := range []string{"Maduro", "Poutine", "Cuba", "chine"} {
		if canonical := NormalizeActor(name); !ThemEntities[canonical] {
			t.Fatalf("NormalizeActor(%q) = %q, not in out-group table", name, canonical)
		}
	}
	for _, name := range []string{"états-unis", "Québec", "NATO"} {
		if canonical := NormalizeActor(name); !UsEntities[canonical] {
			t.Fatalf("NormalizeActor(%q) = %q, not in in-group table", name, canonical)
		}
	}
}
