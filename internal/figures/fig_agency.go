package figures

import (
	"github.com/discourselab/speechviz/internal/dataset"
	"github.com/discourselab/speechviz/internal/indices"
	"github.com/discourselab/speechviz/internal/schema"
)

func init() {
	register(Generator{
		ID:      7,
		Slug:    "agency",
		TitleEN: "Self-positioning: agent, partner or victim",
		TitleFR: "Positionnement de soi : agent, partenaire ou victime",
		Build:   buildAgency,
	})
}

func buildAgency(ctx *Context) (string, error) {
	rows := ctx.Data.Rows
	if !hasAnyList(rows, func(r dataset.Row) []string { return r.Positions }) {
		return "", ErrSkip
	}
	l := ctx.L

	counts := dataset.CountValues(rows, func(r dataset.Row) []string { return r.Positions })
	active := map[string]bool{}
	for _, p := range schema.ActivePositions {
		active[p] = true
	}
	coop := map[string]bool{}
	for _, p := range schema.CooperativePositions {
		coop[p] = true
	}
	reactive := map[string]bool{}
	for _, p := range schema.ReactivePositions {
		reactive[p] = true
	}

	var bars []BarRow
	for _, c := range counts {
		var color string
		switch {
		case active[c.Value]:
			color = schema.ColorOpportunity
		case coop[c.Value]:
			color = schema.ColorAccent
		case reactive[c.Value]:
			color = schema.ColorThreat
		default:
			continue // NOT_APPLICABLE and stray values
		}
		bars = append(bars, BarRow{
			Label: schema.Display(l.Positions, c.Value),
			Value: float64(c.Count),
			Count: c.Count,
			Color: color,
		})
	}
	if len(bars) == 0 {
		return "", ErrSkip
	}

	agency := indices.Agency(rows)

	var quotes string
	for _, r := range excerptsWhere(ctx, func(r dataset.Row) bool {
		for _, p := range r.Positions {
			if active[p] || reactive[p] {
				return true
			}
		}
		return false
	}, 2) {
		quotes += quoteCard(r.Text, r.Speaker)
	}

	left := column("flex:3",
		panel(pick(ctx.Lang, "Positionnements par fréquence", "Positionings by frequency"), "flex:1",
			HBars(bars, 1050, 32)))
	rightContent := "<div style=\"text-align:center\">" +
		Gauge(agency.Value, 0, 1, l.Agency, l.Passive, l.Active, 340) + "</div>"
	rightContent += quotes
	right := column("flex:2",
		panel(pick(ctx.Lang, "Indice d'agentivité", "Agency index"), "flex:1", rightContent))

	page := Page{
		Title: titleOf(7, ctx.Lang),
		Subtitle: pick(ctx.Lang,
			"Comment l'orateur situe son pays dans l'action collective",
			"How the speaker places their country in collective action"),
		Lang: ctx.Lang,
		Body: left + right,
		Guide: guideText(l.ReadingGuide+".",
			pick(ctx.Lang,
				"Vert : positions d'agent (meneur, modèle, puissance). Doré : positions coopératives. Rouge : positions subies. L'indice pondère ces trois familles (1,0 / 0,7 / 0,3).",
				"Green: agent positions (leader, model, power). Gold: cooperative positions. Red: positions undergone. The index weights the three families (1.0 / 0.7 / 0.3).")),
		Source: l.Source + ": " + ctx.Source,
	}
	return page.HTML(), nil
}
