package indices

import (
	"sort"

	"github.com/discourselab/speechviz/internal/dataset"
)

// ActorProfile aggregates every mention of one actor or entity.
type ActorProfile struct {
	Name     string
	Mentions int
	Positive int
	Negative int
	Neutral  int
	Net      float64 // (positive-negative)/mentions
}

type mention struct {
	name    string
	valence string
}

// ActorProfiles tallies actor mentions across the transcript, dropping
// actors below minMentions, ordered by mention count then name.
func ActorProfiles(rows []dataset.Row, minMentions int) []ActorProfile {
	return profiles(rows, minMentions, func(r dataset.Row) []mention {
		out := make([]mention, 0, len(r.Actors))
		for _, a := range r.Actors {
			out = append(out, mention{a.Name, a.Valence})
		}
		return out
	})
}

// EntityProfiles is ActorProfiles over the entities_mentioned column.
func EntityProfiles(rows []dataset.Row, minMentions int) []ActorProfile {
	return profiles(rows, minMentions, func(r dataset.Row) []mention {
		out := make([]mention, 0, len(r.Entities))
		for _, e := range r.Entities {
			out = append(out, mention{e.Name, e.Valence})
		}
		return out
	})
}

func profiles(rows []dataset.Row, minMentions int, extract func(dataset.Row) []mention) []ActorProfile {
	byName := map[string]*ActorProfile{}
	for _, r := range rows {
		for _, m := range extract(r) {
			p := byName[m.name]
			if p == nil {
				p = &ActorProfile{Name: m.name}
				byName[m.name] = p
			}
			p.Mentions++
			switch m.valence {
			case "POSITIVE":
				p.Positive++
			case "NEGATIVE":
				p.Negative++
			default:
				p.Neutral++
			}
		}
	}
	var out []ActorProfile
	for _, p := range byName {
		if p.Mentions < minMentions {
			continue
		}
		p.Net = float64(p.Positive-p.Negative) / float64(p.Mentions)
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Mentions != out[j].Mentions {
			return out[i].Mentions > out[j].Mentions
		}
		return out[i].Name < out[j].Name
	})
	return out
}
