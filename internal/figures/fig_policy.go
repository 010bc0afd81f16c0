package figures

import (
	"fmt"
	"sort"
	"strings"

	"github.com/discourselab/speechviz/internal/indices"
	"github.com/discourselab/speechviz/internal/schema"
)

func init() {
	register(Generator{
		ID:      5,
		Slug:    "policy",
		TitleEN: "Policy content: domains and ambition",
		TitleFR: "Contenu politique : domaines et ambition",
		Build:   buildPolicy,
	})
}

func buildPolicy(ctx *Context) (string, error) {
	rows := ctx.Data.Rows

	domainCounts := map[string]int{}
	specCounts := map[string]int{}
	actionCounts := map[string]int{}
	total := 0
	for _, r := range rows {
		if r.Policy == nil || !r.Policy.Present {
			continue
		}
		total++
		if r.Policy.Domain != "" {
			domainCounts[r.Policy.Domain]++
		}
		if r.Policy.Specificity != "" {
			specCounts[r.Policy.Specificity]++
		}
		if r.Policy.ActionType != "" {
			actionCounts[r.Policy.ActionType]++
		}
	}
	if total == 0 {
		return "", ErrSkip
	}
	l := ctx.L

	type kv struct {
		k string
		n int
	}
	var domains []kv
	for k, n := range domainCounts {
		domains = append(domains, kv{k, n})
	}
	sort.Slice(domains, func(i, j int) bool {
		if domains[i].n != domains[j].n {
			return domains[i].n > domains[j].n
		}
		return domains[i].k < domains[j].k
	})
	if len(domains) > 10 {
		domains = domains[:10]
	}
	var domainBars []BarRow
	for _, d := range domains {
		domainBars = append(domainBars, BarRow{
			Label: strings.ReplaceAll(d.k, "_", " "),
			Value: float64(d.n),
			Count: d.n,
			Color: schema.NeutralBar,
		})
	}

	specOrder := []string{"CONCRETE", "PROGRAMMATIC", "ASPIRATIONAL"}
	specColors := map[string]string{
		"CONCRETE":     schema.ColorOpportunity,
		"PROGRAMMATIC": schema.ColorAccent,
		"ASPIRATIONAL": schema.ColorThreat,
	}
	specLabels := map[string]map[string]string{
		"CONCRETE":     {"fr": "Concret", "en": "Concrete"},
		"PROGRAMMATIC": {"fr": "Programmatique", "en": "Programmatic"},
		"ASPIRATIONAL": {"fr": "Aspirationnel", "en": "Aspirational"},
	}
	var segments []DonutSegment
	for _, s := range specOrder {
		if specCounts[s] == 0 {
			continue
		}
		segments = append(segments, DonutSegment{
			Label: specLabels[s][ctx.Lang],
			Value: float64(specCounts[s]),
			Color: specColors[s],
		})
	}

	ambition := indices.PolicyAmbition(rows)

	left := column("flex:3",
		panel(pick(ctx.Lang, "Domaines d'intervention", "Policy domains"), "flex:1",
			HBars(domainBars, 1050, 30)+
				fmt.Sprintf("<div class=\"note\">%s</div>", esc(pick(ctx.Lang,
					fmt.Sprintf("%d phrases portent un contenu de politique publique.", total),
					fmt.Sprintf("%d sentences carry policy content.", total))))))
	right := column("flex:2",
		panel(pick(ctx.Lang, "Degré de précision", "Degree of specificity"), "",
			Donut(segments, fmt.Sprintf("%d", total), 260))+
			panel(l.PolicyAmbition, "flex:1",
				"<div style=\"text-align:center\">"+
					Gauge(ambition.Value, 0, 1, l.PolicyAmbition, l.Vague, l.Concrete, 320)+
					"</div>"))

	page := Page{
		Title: titleOf(5, ctx.Lang),
		Subtitle: pick(ctx.Lang,
			"Ce que le discours propose, et avec quel degré de précision",
			"What the speech proposes, and how precisely"),
		Lang: ctx.Lang,
		Body: left + right,
		Guide: guideText(l.ReadingGuide+".",
			pick(ctx.Lang,
				"L'indice d'ambition pondère les annonces : 1,0 pour une mesure concrète, 0,6 pour un programme, 0,2 pour une aspiration.",
				"The ambition index weights announcements: 1.0 for a concrete measure, 0.6 for a program, 0.2 for an aspiration.")),
		Source: l.Source + ": " + ctx.Source,
	}
	return page.HTML(), nil
}
