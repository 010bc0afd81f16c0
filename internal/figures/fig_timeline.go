package figures

import (
	"fmt"
	"math"
	"strings"

	"github.com/discourselab/speechviz/internal/indices"
	"github.com/discourselab/speechviz/internal/schema"
)

func init() {
	register(Generator{
		ID:      4,
		Slug:    "timeline",
		TitleEN: "Emotional trajectory of the speech",
		TitleFR: "Trajectoire émotionnelle du discours",
		Build:   buildTimeline,
	})
}

func buildTimeline(ctx *Context) (string, error) {
	tl := indices.PrepareTimeline(ctx.Data.Rows)
	if tl == nil || len(tl.Curve) == 0 {
		return "", ErrSkip
	}
	l := ctx.L

	svg := timelineSVG(tl, 1760, 560, ctx)

	var cards strings.Builder
	shown := 0
	for _, p := range tl.Peaks {
		if p.Excerpt == "" || shown >= 4 {
			continue
		}
		kind := l.Peak
		if p.Sign < 0 {
			kind = l.Trough
		}
		attrib := kind
		if p.Speaker != "" {
			attrib = fmt.Sprintf("%s, %s", p.Speaker, strings.ToLower(kind))
		}
		cards.WriteString("<div style=\"flex:1;min-width:0\">" + quoteCard(p.Excerpt, attrib) + "</div>")
		shown++
	}

	body := column("flex:1",
		panel(pick(ctx.Lang, "Courbe de tonalité lissée", "Smoothed tone curve"), "flex:1", svg)+
			panel(pick(ctx.Lang, "Moments saillants", "Salient moments"), "",
				"<div style=\"display:flex;gap:18px\">"+cards.String()+"</div>"))

	page := Page{
		Title: titleOf(4, ctx.Lang),
		Subtitle: pick(ctx.Lang,
			"Tonalité phrase par phrase, moyenne glissante et pics détectés",
			"Sentence-by-sentence tone, rolling mean and detected peaks"),
		Lang: ctx.Lang,
		Body: body,
		Guide: guideText(l.ReadingGuide+".",
			pick(ctx.Lang,
				"La courbe lisse la tonalité des phrases dans l'ordre du discours. Les zones au-dessus de zéro sont apaisées, celles en dessous tendues. Les marqueurs signalent les pics les plus marqués.",
				"The curve smooths sentence tone in speech order. Zones above zero read as calm, below zero as tense. Markers flag the most pronounced peaks.")),
		Source: l.Source + ": " + ctx.Source,
	}
	return page.HTML(), nil
}

// timelineSVG draws the resampled curve with a zero axis, signed area
// shading and peak markers.
func timelineSVG(tl *indices.Timeline, width, height int, ctx *Context) string {
	w, h := float64(width), float64(height)
	padL, padR, padT, padB := 50.0, 20.0, 20.0, 40.0
	plotW, plotH := w-padL-padR, h-padT-padB

	minX, maxX := tl.Curve[0].X, tl.Curve[len(tl.Curve)-1].X
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range tl.Curve {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	minY = math.Min(minY, -0.5)
	maxY = math.Max(maxY, 0.5)

	sx := func(x float64) float64 { return padL + (x-minX)/(maxX-minX)*plotW }
	sy := func(y float64) float64 { return padT + (maxY-y)/(maxY-minY)*plotH }
	zeroY := sy(0)

	var path, area strings.Builder
	for i, p := range tl.Curve {
		cmd := "L"
		if i == 0 {
			cmd = "M"
			fmt.Fprintf(&area, "M %.1f %.1f ", sx(p.X), zeroY)
		}
		fmt.Fprintf(&path, "%s %.1f %.1f ", cmd, sx(p.X), sy(p.Y))
		fmt.Fprintf(&area, "L %.1f %.1f ", sx(p.X), sy(p.Y))
	}
	fmt.Fprintf(&area, "L %.1f %.1f Z", sx(maxX), zeroY)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" viewBox="0 0 %.0f %.0f">`, width, height, w, h)
	fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`,
		padL, zeroY, w-padR, zeroY, schema.ColorPanelEdge)
	fmt.Fprintf(&b, `<path d="%s" fill="%s" fill-opacity="0.18"/>`, area.String(), schema.ColorAccent)
	fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="%s" stroke-width="2.5"/>`, path.String(), schema.ColorAccent)

	for _, p := range tl.Peaks {
		// Peaks store row indices; place the marker at the matching x.
		x := sx(peakX(tl, p))
		y := sy(p.Value)
		color := schema.ColorOpportunity
		label := "▲"
		if p.Sign < 0 {
			color = schema.ColorThreat
			label = "▼"
		}
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="6" fill="%s"/>`, x, y, color)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="14" fill="%s">%s</text>`,
			x, y-12, color, label)
	}

	fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-size="13" fill="%s">%s</text>`,
		padL, h-10, schema.ColorMuted,
		esc(pick(ctx.Lang, "début du discours", "start of speech")))
	fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="end" font-size="13" fill="%s">%s</text>`,
		w-padR, h-10, schema.ColorMuted,
		esc(pick(ctx.Lang, "fin", "end")))
	fmt.Fprintf(&b, `<text x="14" y="%.1f" font-size="12" fill="%s" transform="rotate(-90 14 %.1f)" text-anchor="middle">%s</text>`,
		padT+plotH/2, schema.ColorMuted, padT+plotH/2,
		esc(pick(ctx.Lang, "tendu ← → apaisé", "tense ← → calm")))
	b.WriteString("</svg>")
	return b.String()
}

// peakX finds the smoothed-sample position whose source row matches the
// peak, falling back to the curve midpoint.
func peakX(tl *indices.Timeline, p indices.Peak) float64 {
	for i, idx := range tl.RowIndex {
		if idx == p.RowIndex {
			return float64(i)
		}
	}
	return (tl.Curve[0].X + tl.Curve[len(tl.Curve)-1].X) / 2
}
