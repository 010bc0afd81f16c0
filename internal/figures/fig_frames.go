package figures

import (
	"strings"

	"github.com/discourselab/speechviz/internal/dataset"
	"github.com/discourselab/speechviz/internal/indices"
	"github.com/discourselab/speechviz/internal/schema"
)

func init() {
	register(Generator{
		ID:      2,
		Slug:    "frames",
		TitleEN: "Geopolitical framing: threat vs opportunity",
		TitleFR: "Cadrage géopolitique : menace ou opportunité",
		Build:   buildFrames,
	})
}

func buildFrames(ctx *Context) (string, error) {
	rows := ctx.Data.Rows
	if !hasAnyList(rows, func(r dataset.Row) []string { return r.Frames }) {
		return "", ErrSkip
	}
	l := ctx.L

	counts := dataset.CountValues(rows, func(r dataset.Row) []string { return r.Frames })
	threat := map[string]bool{}
	for _, f := range schema.ThreatFrames {
		threat[f] = true
	}
	opportunity := map[string]bool{}
	for _, f := range schema.OpportunityFrames {
		opportunity[f] = true
	}

	var bars []BarRow
	for _, c := range counts {
		switch {
		case threat[c.Value]:
			bars = append(bars, BarRow{
				Label: schema.Display(l.Frames, c.Value),
				Value: -float64(c.Count),
				Count: c.Count,
				Color: schema.ColorThreat,
			})
		case opportunity[c.Value]:
			bars = append(bars, BarRow{
				Label: schema.Display(l.Frames, c.Value),
				Value: float64(c.Count),
				Count: c.Count,
				Color: schema.ColorOpportunity,
			})
		}
	}
	if len(bars) == 0 {
		return "", ErrSkip
	}
	if len(bars) > 14 {
		bars = bars[:14]
	}

	wv := indices.Worldview(rows)

	var quotes strings.Builder
	quoted := excerptsWhere(ctx, func(r dataset.Row) bool {
		for _, f := range r.Frames {
			if threat[f] || opportunity[f] {
				return true
			}
		}
		return false
	}, 3)
	for _, r := range quoted {
		quotes.WriteString(quoteCard(r.Text, r.Speaker))
	}

	left := column("flex:3",
		panel(pick(ctx.Lang, "Cadres par fréquence", "Frames by frequency"), "flex:1",
			HBars(bars, 1050, 30)))
	rightContent := "<div style=\"text-align:center\">" +
		Gauge(wv.Value, -1, 1, l.Worldview, l.Threat, l.Opportunity, 340) + "</div>"
	if quotes.Len() > 0 {
		rightContent += quotes.String()
	}
	right := column("flex:2",
		panel(pick(ctx.Lang, "Indice et extraits", "Index and excerpts"), "flex:1", rightContent))

	page := Page{
		Title: titleOf(2, ctx.Lang),
		Subtitle: pick(ctx.Lang,
			"Répartition des cadres géopolitiques mobilisés dans le discours",
			"Distribution of the geopolitical frames mobilized in the speech"),
		Lang: ctx.Lang,
		Body: left + right,
		Guide: guideText(l.ReadingGuide+".",
			pick(ctx.Lang,
				"Les barres rouges (gauche) comptent les cadres de menace, les vertes (droite) les cadres d'opportunité. Le cadran combine cet équilibre avec le registre émotionnel.",
				"Red bars (left) count threat frames, green bars (right) opportunity frames. The dial combines this balance with the emotional register.")),
		Source: l.Source + ": " + ctx.Source,
	}
	return page.HTML(), nil
}
