package figures

import (
	"fmt"

	"github.com/discourselab/speechviz/internal/dataset"
	"github.com/discourselab/speechviz/internal/indices"
	"github.com/discourselab/speechviz/internal/schema"
)

func init() {
	register(Generator{
		ID:      9,
		Slug:    "usthem",
		TitleEN: "In-group and out-group: us versus them",
		TitleFR: "Endogroupe et exogroupe : nous contre eux",
		Build:   buildUsThem,
	})
}

func buildUsThem(ctx *Context) (string, error) {
	rows := ctx.Data.Rows
	animosity := indices.Animosity(rows)
	if animosity.UsN == 0 && animosity.ThemN == 0 {
		return "", ErrSkip
	}
	l := ctx.L

	usSeg, usTotal := valenceSegments(rows, schema.UsEntities, l)
	themSeg, themTotal := valenceSegments(rows, schema.ThemEntities, l)

	left := ""
	if usTotal > 0 {
		left += panel(pick(ctx.Lang, "Mentions de l'endogroupe", "In-group mentions"), "flex:1",
			Donut(usSeg, fmt.Sprintf("%d", usTotal), 240))
	}
	if themTotal > 0 {
		left += panel(pick(ctx.Lang, "Mentions de l'exogroupe", "Out-group mentions"), "flex:1",
			Donut(themSeg, fmt.Sprintf("%d", themTotal), 240))
	}
	leftCol := column("flex:3", left)

	rightContent := "<div style=\"text-align:center\">" +
		Gauge(animosity.Value, -1, 1, l.Animosity,
			pick(ctx.Lang, "inversée", "inverted"), pick(ctx.Lang, "polarisée", "polarized"), 340) +
		"</div>"
	rightContent += fmt.Sprintf("<div class=\"note\">%s</div>", esc(pick(ctx.Lang,
		fmt.Sprintf("Endogroupe : score %.2f sur %d mentions. Exogroupe : score %.2f sur %d mentions.",
			animosity.UsScore, animosity.UsN, animosity.ThemScore, animosity.ThemN),
		fmt.Sprintf("In-group: score %.2f over %d mentions. Out-group: score %.2f over %d mentions.",
			animosity.UsScore, animosity.UsN, animosity.ThemScore, animosity.ThemN))))

	var quotes string
	for _, r := range excerptsWhere(ctx, func(r dataset.Row) bool {
		for _, e := range r.Entities {
			if schema.ThemEntities[e.Name] && e.Valence == "NEGATIVE" {
				return true
			}
		}
		return false
	}, 2) {
		quotes += quoteCard(r.Text, r.Speaker)
	}
	rightContent += quotes
	rightCol := column("flex:2",
		panel(l.Animosity, "flex:1", rightContent))

	page := Page{
		Title: titleOf(9, ctx.Lang),
		Subtitle: pick(ctx.Lang,
			"Valence des mentions selon l'appartenance au camp de l'orateur",
			"Valence of mentions by membership in the speaker's camp"),
		Lang: ctx.Lang,
		Body: leftCol + rightCol,
		Guide: guideText(l.ReadingGuide+".",
			pick(ctx.Lang,
				"Chaque groupe reçoit un score (mentions positives − négatives) / total. L'indice d'animosité est la moitié de l'écart entre le score de l'endogroupe et celui de l'exogroupe.",
				"Each group gets a score of (positive − negative mentions) / total. The animosity index is half the gap between the in-group and out-group scores.")),
		Source: l.Source + ": " + ctx.Source,
	}
	return page.HTML(), nil
}

func valenceSegments(rows []dataset.Row, group map[string]bool, l schema.LabelSet) ([]DonutSegment, int) {
	var pos, neg, neutral int
	for _, r := range rows {
		for _, e := range r.Entities {
			if !group[e.Name] {
				continue
			}
			switch e.Valence {
			case "POSITIVE":
				pos++
			case "NEGATIVE":
				neg++
			default:
				neutral++
			}
		}
	}
	total := pos + neg + neutral
	var segs []DonutSegment
	if pos > 0 {
		segs = append(segs, DonutSegment{Label: l.Positive, Value: float64(pos), Color: schema.ColorOpportunity})
	}
	if neg > 0 {
		segs = append(segs, DonutSegment{Label: l.Negative, Value: float64(neg), Color: schema.ColorThreat})
	}
	if neutral > 0 {
		segs = append(segs, DonutSegment{Label: pick(l.Lang, "Neutre", "Neutral"), Value: float64(neutral), Color: schema.NeutralBar})
	}
	return segs, total
}
