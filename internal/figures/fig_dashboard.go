package figures

import (
	"fmt"
	"strings"

	"github.com/discourselab/speechviz/internal/indices"
)

func init() {
	register(Generator{
		ID:      1,
		Slug:    "dashboard",
		TitleEN: "Analysis dashboard",
		TitleFR: "Tableau de bord de l'analyse",
		Build:   buildDashboard,
	})
}

func buildDashboard(ctx *Context) (string, error) {
	rows := ctx.Data.Rows
	if len(rows) == 0 {
		return "", ErrSkip
	}
	l := ctx.L
	stats := ctx.Data.BasicStats()

	cards := []string{
		statCard(fmt.Sprintf("%d", stats.Sentences), l.Sentences),
		statCard(fmt.Sprintf("%d", stats.Speakers), l.Speakers),
	}
	if stats.Questions > 0 {
		cards = append(cards, statCard(fmt.Sprintf("%d", stats.Questions), l.Questions))
	}
	cards = append(cards, statCard(fmt.Sprintf("%d", stats.WordCount), pick(ctx.Lang, "mots", "words")))

	type gaugeSpec struct {
		value    float64
		lo, hi   float64
		label    string
		from, to string
		ok       bool
	}
	tone := indices.DiplomaticTone(rows)
	worldview := indices.Worldview(rows)
	agency := indices.Agency(rows)
	ambition := indices.PolicyAmbition(rows)
	action := indices.ActionOrientation(rows)

	specs := []gaugeSpec{
		{tone.Value, -1, 1, l.DiplomaticTone, l.Aggressive, l.Peaceful, tone.N > 0},
		{worldview.Value, -1, 1, l.Worldview, l.Threat, l.Opportunity, worldview.ThreatN+worldview.OpportunityN+worldview.ToneN > 0},
		{agency.Value, 0, 1, l.Agency, l.Passive, l.Active, agency.Active+agency.Cooperative+agency.Reactive > 0},
		{ambition.Value, 0, 1, l.PolicyAmbition, l.Vague, l.Concrete, ambition.N > 0},
		{action.Value, 0, 1, l.ActionOrientation, l.Negative, l.Positive, action.Action+action.Descriptive > 0},
	}

	var gauges strings.Builder
	for _, s := range specs {
		if !s.ok {
			continue
		}
		gauges.WriteString("<div style=\"flex:1;text-align:center\">")
		gauges.WriteString(Gauge(s.value, s.lo, s.hi, s.label, s.from, s.to, 300))
		gauges.WriteString("</div>")
	}
	if gauges.Len() == 0 {
		return "", ErrSkip
	}

	themeBars := themeBarRows(stats.ThemeCounts, ctx, 8)

	body := column("flex:1",
		panel(pick(ctx.Lang, "Corpus", "Corpus"), "",
			"<div class=\"cards\">"+strings.Join(cards, "")+"</div>")+
			panel(pick(ctx.Lang, "Indices composites", "Composite indices"), "flex:1",
				"<div style=\"display:flex;align-items:center;flex:1\">"+gauges.String()+"</div>")+
			panel(pick(ctx.Lang, "Thèmes dominants", "Dominant themes"), "",
				HBars(themeBars, 1700, 24)))

	page := Page{
		Title: titleOf(1, ctx.Lang),
		Subtitle: pick(ctx.Lang,
			"Vue d'ensemble des indices calculés sur l'ensemble du corpus annoté",
			"Overview of the indices computed over the full annotated corpus"),
		Lang: ctx.Lang,
		Body: body,
		Guide: guideText(l.ReadingGuide+".",
			pick(ctx.Lang,
				"Chaque cadran résume un indice composite. La position de l'aiguille situe le discours entre les deux pôles indiqués sous le cadran.",
				"Each dial summarizes one composite index. The needle places the speech between the two poles printed under the dial.")),
		Source: l.Source + ": " + ctx.Source,
	}
	return page.HTML(), nil
}
