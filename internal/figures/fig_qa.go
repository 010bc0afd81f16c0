package figures

import (
	"fmt"

	"github.com/discourselab/speechviz/internal/indices"
	"github.com/discourselab/speechviz/internal/schema"
)

func init() {
	register(Generator{
		ID:      8,
		Slug:    "qa",
		TitleEN: "Question time: what gets answered",
		TitleFR: "Jeu des questions : ce qui obtient réponse",
		Build:   buildQA,
	})
}

func buildQA(ctx *Context) (string, error) {
	rows := ctx.Data.Rows
	blocks := indices.ExtractQABlocks(rows)
	if len(blocks) == 0 {
		return "", ErrSkip
	}
	l := ctx.L

	directness := indices.Directness(rows)

	respOrder := []string{"direct", "partial", "pivot", "deflection", "attack"}
	var segments []DonutSegment
	totalResponses := 0
	for _, rt := range respOrder {
		n := directness.Counts[rt]
		if n == 0 {
			continue
		}
		totalResponses += n
		segments = append(segments, DonutSegment{
			Label: schema.Display(l.Responses, rt),
			Value: float64(n),
			Color: schema.ResponseColors[rt],
		})
	}

	// Theme -> response-type flow over blocks.
	linkCounts := map[[2]string]int{}
	for _, b := range blocks {
		for _, theme := range b.QuestionThemes {
			for _, rt := range b.ResponseTypes {
				linkCounts[[2]string{theme, rt}]++
			}
		}
	}
	var links []FlowLink
	for _, theme := range orderedThemes(blocks) {
		for _, rt := range respOrder {
			n := linkCounts[[2]string{theme, rt}]
			if n == 0 {
				continue
			}
			links = append(links, FlowLink{
				From:  schema.Display(l.Themes, theme),
				To:    schema.Display(l.Responses, rt),
				Value: float64(n),
				Color: schema.ResponseColors[rt],
			})
		}
	}

	left := column("flex:3",
		panel(pick(ctx.Lang, "Des thèmes aux types de réponse", "From themes to response types"), "flex:1",
			Flow(links, 1040, 620)))

	rightContent := ""
	if len(segments) > 0 {
		rightContent += Donut(segments, fmt.Sprintf("%d", totalResponses), 250)
	}
	rightContent += "<div style=\"text-align:center;margin-top:14px\">" +
		Gauge(directness.Value, 0, 1, l.Directness,
			pick(ctx.Lang, "esquive", "evasive"), pick(ctx.Lang, "directe", "direct"), 300) +
		"</div>"
	rightContent += fmt.Sprintf("<div class=\"note\">%s</div>", esc(pick(ctx.Lang,
		fmt.Sprintf("%d blocs question-réponse identifiés.", len(blocks)),
		fmt.Sprintf("%d question-answer blocks identified.", len(blocks)))))
	right := column("flex:2",
		panel(pick(ctx.Lang, "Types de réponse et franchise", "Response types and directness"), "flex:1", rightContent))

	page := Page{
		Title: titleOf(8, ctx.Lang),
		Subtitle: pick(ctx.Lang,
			"Questions des journalistes et stratégies de réponse",
			"Journalists' questions and answering strategies"),
		Lang: ctx.Lang,
		Body: left + right,
		Guide: guideText(l.ReadingGuide+".",
			pick(ctx.Lang,
				"Chaque ruban relie un thème de question au type de réponse obtenu. Le score de franchise pondère les réponses : directe 1,0, partielle 0,5, attaque 0,25, pivot ou esquive 0.",
				"Each ribbon links a question theme to the response type it drew. The directness score weights answers: direct 1.0, partial 0.5, attack 0.25, pivot or deflection 0.")),
		Source: l.Source + ": " + ctx.Source,
	}
	return page.HTML(), nil
}

// orderedThemes lists question themes by frequency across blocks.
func orderedThemes(blocks []indices.QABlock) []string {
	counts := map[string]int{}
	var order []string
	for _, b := range blocks {
		for _, t := range b.QuestionThemes {
			if counts[t] == 0 {
				order = append(order, t)
			}
			counts[t]++
		}
	}
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			if counts[order[j]] > counts[order[i]] {
				order[i], order[j] = order[j], order[i]
			}
		}
	}
	if len(order) > 8 {
		order = order[:8]
	}
	return order
}
