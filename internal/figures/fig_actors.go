package figures

import (
	"fmt"
	"strings"

	"github.com/discourselab/speechviz/internal/dataset"
	"github.com/discourselab/speechviz/internal/indices"
	"github.com/discourselab/speechviz/internal/schema"
)

func init() {
	register(Generator{
		ID:      3,
		Slug:    "actors",
		TitleEN: "Actors: who is talked about, and how",
		TitleFR: "Acteurs : de qui parle-t-on, et comment",
		Build:   buildActors,
	})
}

func buildActors(ctx *Context) (string, error) {
	profiles := indices.ActorProfiles(ctx.Data.Rows, ctx.MinActorMentions)
	if len(profiles) == 0 {
		profiles = indices.EntityProfiles(ctx.Data.Rows, ctx.MinActorMentions)
	}
	if len(profiles) == 0 {
		return "", ErrSkip
	}
	l := ctx.L
	if len(profiles) > 12 {
		profiles = profiles[:12]
	}

	var netBars, mentionBars []BarRow
	for _, p := range profiles {
		color := schema.ColorOpportunity
		if p.Net < 0 {
			color = schema.ColorThreat
		} else if p.Net == 0 {
			color = schema.NeutralBar
		}
		netBars = append(netBars, BarRow{Label: p.Name, Value: p.Net, Color: color})
		mentionBars = append(mentionBars, BarRow{
			Label: p.Name, Value: float64(p.Mentions), Count: p.Mentions, Color: schema.NeutralBar,
		})
	}

	mentioned := map[string]bool{}
	for _, p := range profiles {
		mentioned[p.Name] = true
	}
	var quotes strings.Builder
	for _, r := range excerptsWhere(ctx, func(r dataset.Row) bool {
		for _, a := range r.Actors {
			if mentioned[a.Name] {
				return true
			}
		}
		for _, e := range r.Entities {
			if mentioned[e.Name] {
				return true
			}
		}
		return false
	}, 2) {
		quotes.WriteString(quoteCard(r.Text, r.Speaker))
	}

	left := column("flex:3",
		panel(pick(ctx.Lang, "Valence nette par acteur", "Net valence per actor"), "flex:1",
			HBars(netBars, 1050, 28)+
				fmt.Sprintf("<div class=\"note\">%s</div>", esc(pick(ctx.Lang,
					"Valence nette = (mentions positives − négatives) / total des mentions.",
					"Net valence = (positive − negative mentions) / total mentions.")))))
	rightContent := HBars(mentionBars, 620, 24)
	if quotes.Len() > 0 {
		rightContent += quotes.String()
	}
	right := column("flex:2",
		panel(pick(ctx.Lang, "Volume de mentions", "Mention volume"), "flex:1", rightContent))

	page := Page{
		Title: titleOf(3, ctx.Lang),
		Subtitle: pick(ctx.Lang,
			fmt.Sprintf("Acteurs mentionnés au moins %d fois", ctx.MinActorMentions),
			fmt.Sprintf("Actors mentioned at least %d times", ctx.MinActorMentions)),
		Lang: ctx.Lang,
		Body: left + right,
		Guide: guideText(l.ReadingGuide+".",
			pick(ctx.Lang,
				"Une barre verte vers la droite signale un acteur évoqué positivement, une barre rouge vers la gauche un acteur évoqué négativement.",
				"A green bar to the right marks an actor spoken of positively, a red bar to the left one spoken of negatively.")),
		Source: l.Source + ": " + ctx.Source,
	}
	return page.HTML(), nil
}
