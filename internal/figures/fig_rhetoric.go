package figures

import (
	"fmt"

	"github.com/discourselab/speechviz/internal/dataset"
	"github.com/discourselab/speechviz/internal/indices"
	"github.com/discourselab/speechviz/internal/schema"
)

func init() {
	register(Generator{
		ID:      6,
		Slug:    "rhetoric",
		TitleEN: "Rhetorical machinery: acts and registers",
		TitleFR: "Mécanique rhétorique : actes et registres",
		Build:   buildRhetoric,
	})
}

func buildRhetoric(ctx *Context) (string, error) {
	rows := ctx.Data.Rows
	hasActs := hasAnyList(rows, func(r dataset.Row) []string { return r.SpeechActs })
	registerCounts := dataset.CountValues(rows, func(r dataset.Row) []string {
		if r.EmotionalRegister == "" {
			return nil
		}
		return []string{r.EmotionalRegister}
	})
	if !hasActs && len(registerCounts) == 0 {
		return "", ErrSkip
	}
	l := ctx.L

	var actBars []BarRow
	if hasActs {
		actCounts := dataset.CountValues(rows, func(r dataset.Row) []string { return r.SpeechActs })
		action := map[string]bool{}
		for _, a := range schema.ActionActs {
			action[a] = true
		}
		for _, c := range actCounts {
			color := schema.NeutralBar
			if action[c.Value] {
				color = schema.ColorAccent
			}
			actBars = append(actBars, BarRow{
				Label: schema.Display(l.SpeechActs, c.Value),
				Value: float64(c.Count),
				Count: c.Count,
				Color: color,
			})
		}
		if len(actBars) > 11 {
			actBars = actBars[:11]
		}
	}

	var segments []DonutSegment
	totalRegisters := 0
	for _, c := range registerCounts {
		totalRegisters += c.Count
	}
	for i, c := range registerCounts {
		if i >= 6 {
			break
		}
		color := schema.RegisterColors[c.Value]
		if color == "" {
			color = schema.NeutralBar
		}
		segments = append(segments, DonutSegment{
			Label: schema.Display(l.Registers, c.Value),
			Value: float64(c.Count),
			Color: color,
		})
	}

	action := indices.ActionOrientation(rows)
	tone := indices.DiplomaticTone(rows)

	var leftContent string
	if len(actBars) > 0 {
		leftContent = HBars(actBars, 1050, 30)
	} else {
		leftContent = fmt.Sprintf("<div class=\"note\">%s</div>", esc(pick(ctx.Lang,
			"Aucun acte de parole annoté.", "No annotated speech acts.")))
	}
	left := column("flex:3",
		panel(pick(ctx.Lang, "Actes de parole", "Speech acts"), "flex:1", leftContent))

	rightPanels := ""
	if len(segments) > 0 {
		rightPanels += panel(pick(ctx.Lang, "Registres émotionnels", "Emotional registers"), "",
			Donut(segments, fmt.Sprintf("%d", totalRegisters), 250))
	}
	gauges := ""
	if action.Action+action.Descriptive > 0 {
		gauges += "<div style=\"flex:1;text-align:center\">" +
			Gauge(action.Value, 0, 1, l.ActionOrientation,
				pick(ctx.Lang, "décrire", "describe"), pick(ctx.Lang, "agir", "act"), 280) +
			"</div>"
	}
	if tone.N > 0 {
		gauges += "<div style=\"flex:1;text-align:center\">" +
			Gauge(tone.Value, -1, 1, l.DiplomaticTone, l.Aggressive, l.Peaceful, 280) +
			"</div>"
	}
	if gauges != "" {
		rightPanels += panel(pick(ctx.Lang, "Indices", "Indices"), "flex:1",
			"<div style=\"display:flex;align-items:center;flex:1\">"+gauges+"</div>")
	}
	right := column("flex:2", rightPanels)

	page := Page{
		Title: titleOf(6, ctx.Lang),
		Subtitle: pick(ctx.Lang,
			"Comment le discours fait ce qu'il fait : actes, registres, orientation",
			"How the speech does what it does: acts, registers, orientation"),
		Lang: ctx.Lang,
		Body: left + right,
		Guide: guideText(l.ReadingGuide+".",
			pick(ctx.Lang,
				"Les barres dorées comptent les actes tournés vers l'action (proposer, exhorter, s'engager). L'orientation vers l'action rapporte ces actes aux actes descriptifs.",
				"Gold bars count action-facing acts (proposing, exhorting, committing). Action orientation is their share against descriptive acts.")),
		Source: l.Source + ": " + ctx.Source,
	}
	return page.HTML(), nil
}
