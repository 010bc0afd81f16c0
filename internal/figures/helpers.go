package figures

import (
	"sort"

	"github.com/discourselab/speechviz/internal/dataset"
	"github.com/discourselab/speechviz/internal/excerpt"
	"github.com/discourselab/speechviz/internal/schema"
)

func pick(lang, fr, en string) string {
	if lang == "fr" {
		return fr
	}
	return en
}

func titleOf(id int, lang string) string {
	g, ok := ByID(id)
	if !ok {
		return ""
	}
	return g.Title(lang)
}

// themeBarRows turns theme counts into bar rows, largest first, capped at
// limit.
func themeBarRows(counts map[string]int, ctx *Context, limit int) []BarRow {
	type kv struct {
		theme string
		n     int
	}
	var all []kv
	for t, n := range counts {
		all = append(all, kv{t, n})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].n != all[j].n {
			return all[i].n > all[j].n
		}
		return all[i].theme < all[j].theme
	})
	if len(all) > limit {
		all = all[:limit]
	}
	var rows []BarRow
	for _, e := range all {
		color := schema.ThemeColors[e.theme]
		if color == "" {
			color = schema.NeutralBar
		}
		rows = append(rows, BarRow{
			Label: schema.Display(ctx.L.Themes, e.theme),
			Value: float64(e.n),
			Count: e.n,
			Color: color,
		})
	}
	return rows
}

// excerptsWhere picks deduplicated quotes from rows matching keep.
func excerptsWhere(ctx *Context, keep func(dataset.Row) bool, limit int) []dataset.Row {
	var candidates []string
	byText := map[string]dataset.Row{}
	for _, r := range ctx.Data.Rows {
		if r.Text == "" || !keep(r) {
			continue
		}
		candidates = append(candidates, r.Text)
		byText[r.Text] = r
	}
	opts := ctx.Excerpts
	if limit > 0 {
		opts.Limit = limit
	}
	var out []dataset.Row
	for _, text := range excerpt.Select(candidates, opts) {
		out = append(out, byText[text])
	}
	return out
}

func hasAnyList(rows []dataset.Row, extract func(dataset.Row) []string) bool {
	for _, r := range rows {
		if len(extract(r)) > 0 {
			return true
		}
	}
	return false
}
