package figures

import (
	"fmt"
	"math"
	"strings"

	"github.com/discourselab/speechviz/internal/schema"
)

// SVG widget builders shared by the figure generators. All widgets are
// self-contained <svg> strings sized by their callers.

// Gauge draws a semicircular dial. value is normalized into [0,1] between
// lo and hi before drawing; the raw value is printed under the needle.
func Gauge(value, lo, hi float64, label, leftLabel, rightLabel string, width int) string {
	if hi <= lo {
		hi = lo + 1
	}
	norm := (value - lo) / (hi - lo)
	if norm < 0 {
		norm = 0
	}
	if norm > 1 {
		norm = 1
	}

	w := float64(width)
	h := w * 0.62
	cx, cy := w/2, h*0.78
	r := w * 0.36

	arc := func(from, to float64, color string, strokeWidth float64) string {
		a0 := math.Pi * (1 - from)
		a1 := math.Pi * (1 - to)
		x0, y0 := cx+r*math.Cos(a0), cy-r*math.Sin(a0)
		x1, y1 := cx+r*math.Cos(a1), cy-r*math.Sin(a1)
		return fmt.Sprintf(
			`<path d="M %.1f %.1f A %.1f %.1f 0 0 1 %.1f %.1f" fill="none" stroke="%s" stroke-width="%.1f" stroke-linecap="round"/>`,
			x0, y0, r, r, x1, y1, color, strokeWidth)
	}

	needleAngle := math.Pi * (1 - norm)
	nx, ny := cx+(r-14)*math.Cos(needleAngle), cy-(r-14)*math.Sin(needleAngle)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%.0f" viewBox="0 0 %.0f %.0f">`, width, h, w, h)
	b.WriteString(arc(0, 1, schema.ColorPanelEdge, 14))
	b.WriteString(arc(0, norm, needleColor(norm), 14))
	fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="3"/>`,
		cx, cy, nx, ny, schema.ColorText)
	fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="6" fill="%s"/>`, cx, cy, schema.ColorText)
	fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="%.0f" font-weight="700" fill="%s">%.2f</text>`,
		cx, cy-r*0.35, w*0.085, schema.ColorText, value)
	fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="%.0f" fill="%s">%s</text>`,
		cx, h-6, w*0.055, schema.ColorMuted, esc(label))
	fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="start" font-size="%.0f" fill="%s">%s</text>`,
		cx-r, cy+18, w*0.045, schema.ColorMuted, esc(leftLabel))
	fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="end" font-size="%.0f" fill="%s">%s</text>`,
		cx+r, cy+18, w*0.045, schema.ColorMuted, esc(rightLabel))
	b.WriteString("</svg>")
	return b.String()
}

func needleColor(norm float64) string {
	switch {
	case norm < 0.35:
		return schema.ColorThreat
	case norm > 0.65:
		return schema.ColorOpportunity
	default:
		return schema.ColorAccent
	}
}

// BarRow is one row of a horizontal bar chart.
type BarRow struct {
	Label string
	Value float64
	Count int
	Color string
}

// HBars draws labeled horizontal bars scaled to the largest absolute value.
// Negative values extend left of a center axis, so the same widget serves
// plain rankings and diverging charts.
func HBars(rows []BarRow, width, barHeight int) string {
	if len(rows) == 0 {
		return ""
	}
	maxAbs := 0.0
	hasNeg := false
	for _, r := range rows {
		if a := math.Abs(r.Value); a > maxAbs {
			maxAbs = a
		}
		if r.Value < 0 {
			hasNeg = true
		}
	}
	if maxAbs == 0 {
		maxAbs = 1
	}

	w := float64(width)
	labelW := w * 0.28
	gap := 8.0
	rowH := float64(barHeight) + gap
	h := rowH*float64(len(rows)) + 4

	plotW := w - labelW - 70
	axis := labelW
	if hasNeg {
		axis = labelW + plotW/2
		plotW = plotW / 2
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%.0f" viewBox="0 0 %.0f %.0f">`, width, h, w, h)
	if hasNeg {
		fmt.Fprintf(&b, `<line x1="%.1f" y1="0" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`,
			axis, axis, h, schema.ColorPanelEdge)
	}
	for i, r := range rows {
		y := float64(i) * rowH
		barW := math.Abs(r.Value) / maxAbs * plotW
		x := axis
		if r.Value < 0 {
			x = axis - barW
		}
		color := r.Color
		if color == "" {
			color = schema.NeutralBar
		}
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="end" font-size="14" fill="%s">%s</text>`,
			labelW-10, y+float64(barHeight)/2+5, schema.ColorText, esc(r.Label))
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%d" rx="3" fill="%s"/>`,
			x, y, barW, barHeight, color)
		valX := axis + barW + 8
		anchor := "start"
		if r.Value < 0 {
			valX = axis - barW - 8
			anchor = "end"
		}
		label := fmt.Sprintf("%d", r.Count)
		if r.Count == 0 {
			label = fmt.Sprintf("%.2f", r.Value)
		}
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="%s" font-size="13" fill="%s">%s</text>`,
			valX, y+float64(barHeight)/2+5, anchor, schema.ColorMuted, label)
	}
	b.WriteString("</svg>")
	return b.String()
}

// DonutSegment is one slice of a donut chart.
type DonutSegment struct {
	Label string
	Value float64
	Color string
}

// Donut draws a donut chart with a centered headline value and a legend to
// the right.
func Donut(segments []DonutSegment, center string, size int) string {
	total := 0.0
	for _, s := range segments {
		total += s.Value
	}
	if total <= 0 {
		return ""
	}

	s := float64(size)
	cx, cy := s/2, s/2
	r := s * 0.38
	stroke := s * 0.13
	circ := 2 * math.Pi * r

	legendW := 230
	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" viewBox="0 0 %.0f %.0f">`, size+legendW, size, s+float64(legendW), s)

	offset := 0.0
	for _, seg := range segments {
		frac := seg.Value / total
		dash := frac * circ
		fmt.Fprintf(&b,
			`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="%.1f" stroke-dasharray="%.2f %.2f" stroke-dashoffset="%.2f" transform="rotate(-90 %.1f %.1f)"/>`,
			cx, cy, r, seg.Color, stroke, dash, circ-dash, -offset, cx, cy)
		offset += dash
	}
	fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="%.0f" font-weight="700" fill="%s">%s</text>`,
		cx, cy+7, s*0.11, schema.ColorText, esc(center))

	ly := cy - float64(len(segments)-1)*13
	for _, seg := range segments {
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="12" height="12" rx="2" fill="%s"/>`,
			s+10, ly-10, seg.Color)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-size="13" fill="%s">%s (%.0f%%)</text>`,
			s+28, ly, schema.ColorText, esc(seg.Label), 100*seg.Value/total)
		ly += 26
	}
	b.WriteString("</svg>")
	return b.String()
}

// FlowLink is one ribbon of a two-column flow diagram.
type FlowLink struct {
	From  string
	To    string
	Value float64
	Color string
}

// Flow draws a simplified two-column sankey: sources on the left, targets
// on the right, ribbon thickness proportional to value.
func Flow(links []FlowLink, width, height int) string {
	if len(links) == 0 {
		return ""
	}
	fromTotals := map[string]float64{}
	toTotals := map[string]float64{}
	var fromOrder, toOrder []string
	total := 0.0
	for _, l := range links {
		if _, ok := fromTotals[l.From]; !ok {
			fromOrder = append(fromOrder, l.From)
		}
		if _, ok := toTotals[l.To]; !ok {
			toOrder = append(toOrder, l.To)
		}
		fromTotals[l.From] += l.Value
		toTotals[l.To] += l.Value
		total += l.Value
	}
	if total <= 0 {
		return ""
	}

	w, h := float64(width), float64(height)
	pad := 6.0
	scale := (h - pad*float64(len(fromOrder)+len(toOrder))) / total
	if scale <= 0 {
		scale = 1
	}
	nodeW := 12.0
	leftX := w * 0.22
	rightX := w * 0.78

	fromY := map[string]float64{}
	y := 0.0
	for _, f := range fromOrder {
		fromY[f] = y
		y += fromTotals[f]*scale + pad
	}
	toY := map[string]float64{}
	y = 0.0
	for _, t := range toOrder {
		toY[t] = y
		y += toTotals[t]*scale + pad
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" viewBox="0 0 %.0f %.0f">`, width, height, w, h)

	fromCursor := map[string]float64{}
	toCursor := map[string]float64{}
	for _, l := range links {
		th := l.Value * scale
		y0 := fromY[l.From] + fromCursor[l.From] + th/2
		y1 := toY[l.To] + toCursor[l.To] + th/2
		fromCursor[l.From] += th
		toCursor[l.To] += th
		mx := (leftX + rightX) / 2
		fmt.Fprintf(&b,
			`<path d="M %.1f %.1f C %.1f %.1f %.1f %.1f %.1f %.1f" fill="none" stroke="%s" stroke-width="%.1f" stroke-opacity="0.55"/>`,
			leftX+nodeW, y0, mx, y0, mx, y1, rightX, y1, l.Color, math.Max(th, 1.5))
	}
	for _, f := range fromOrder {
		th := fromTotals[f] * scale
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="2" fill="%s"/>`,
			leftX, fromY[f], nodeW, th, schema.ColorPanelEdge)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="end" font-size="13" fill="%s">%s</text>`,
			leftX-8, fromY[f]+th/2+4, schema.ColorText, esc(f))
	}
	for _, t := range toOrder {
		th := toTotals[t] * scale
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="2" fill="%s"/>`,
			rightX, toY[t], nodeW, th, schema.ColorPanelEdge)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-size="13" fill="%s">%s</text>`,
			rightX+nodeW+8, toY[t]+th/2+4, schema.ColorText, esc(t))
	}
	b.WriteString("</svg>")
	return b.String()
}
