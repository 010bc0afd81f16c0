package figures

import (
	"fmt"
	"html"
	"strings"

	"github.com/discourselab/speechviz/internal/schema"
)

// Canvas size every figure renders at. PNG export clips to the same box.
const (
	CanvasWidth  = 1920
	CanvasHeight = 1080
)

func esc(s string) string {
	return html.EscapeString(s)
}

var baseCSS = fmt.Sprintf(`
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    width: %dpx; height: %dpx;
    background: %s; color: %s;
    font-family: 'Inter', 'Helvetica Neue', Arial, sans-serif;
    overflow: hidden;
  }
  .canvas { width: %dpx; height: %dpx; padding: 36px 48px; display: flex; flex-direction: column; }
  .header { margin-bottom: 20px; }
  .header h1 { font-size: 34px; font-weight: 700; letter-spacing: 0.2px; }
  .header .subtitle { font-size: 18px; color: %s; margin-top: 6px; }
  .content { flex: 1; display: flex; gap: 24px; min-height: 0; }
  .column { display: flex; flex-direction: column; gap: 24px; min-width: 0; }
  .panel {
    background: %s; border: 1px solid %s; border-radius: 10px;
    padding: 22px 26px; display: flex; flex-direction: column;
  }
  .panel h2 { font-size: 19px; font-weight: 600; margin-bottom: 14px; color: %s; }
  .panel .note { font-size: 13px; color: %s; margin-top: 8px; }
  .cards { display: flex; gap: 18px; }
  .stat-card { flex: 1; background: %s; border: 1px solid %s; border-radius: 10px; padding: 18px 22px; }
  .stat-card .value { font-size: 40px; font-weight: 700; color: %s; }
  .stat-card .label { font-size: 14px; color: %s; margin-top: 4px; }
  .quote {
    font-family: 'Source Serif 4', Georgia, serif; font-size: 16px; line-height: 1.45;
    font-style: italic; border-left: 3px solid %s; padding: 8px 14px; margin-top: 10px;
    color: %s;
  }
  .quote .attrib { display: block; font-style: normal; font-size: 13px; color: %s; margin-top: 6px; }
  .guide {
    margin-top: 20px; background: %s; border: 1px solid %s; border-radius: 10px;
    padding: 14px 22px; font-size: 14px; color: %s; line-height: 1.5;
  }
  .guide b { color: %s; }
  .source { font-size: 12px; color: %s; margin-top: 10px; text-align: right; }
`,
	CanvasWidth, CanvasHeight,
	schema.ColorBackground, schema.ColorText,
	CanvasWidth, CanvasHeight,
	schema.ColorMuted,
	schema.ColorPanel, schema.ColorPanelEdge,
	schema.ColorText, schema.ColorMuted,
	schema.ColorPanel, schema.ColorPanelEdge,
	schema.ColorAccent, schema.ColorMuted,
	schema.ColorAccent, schema.ColorText, schema.ColorMuted,
	schema.ColorPanel, schema.ColorPanelEdge, schema.ColorMuted, schema.ColorText,
	schema.ColorMuted,
)

// Page assembles a complete self-contained figure document.
type Page struct {
	Title    string
	Subtitle string
	Lang     string
	Body     string // content panels
	Guide    string // reading-guide html, already escaped by the builder
	Source   string
}

// HTML renders the page. Everything is inline so the file opens anywhere
// and screenshots without network access.
func (p Page) HTML() string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&b, "<html lang=%q>\n<head>\n<meta charset=\"utf-8\">\n", p.Lang)
	fmt.Fprintf(&b, "<title>%s</title>\n", esc(p.Title))
	b.WriteString("<style>")
	b.WriteString(baseCSS)
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString("<div class=\"canvas\">\n")
	b.WriteString("<div class=\"header\">")
	fmt.Fprintf(&b, "<h1>%s</h1>", esc(p.Title))
	if p.Subtitle != "" {
		fmt.Fprintf(&b, "<div class=\"subtitle\">%s</div>", esc(p.Subtitle))
	}
	b.WriteString("</div>\n")
	b.WriteString("<div class=\"content\">\n")
	b.WriteString(p.Body)
	b.WriteString("\n</div>\n")
	if p.Guide != "" {
		fmt.Fprintf(&b, "<div class=\"guide\">%s</div>\n", p.Guide)
	}
	if p.Source != "" {
		fmt.Fprintf(&b, "<div class=\"source\">%s</div>\n", esc(p.Source))
	}
	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}

// panel wraps content in a titled panel box. Extra styles land on the
// panel div.
func panel(title, style, content string) string {
	if style != "" {
		style = fmt.Sprintf(" style=%q", style)
	}
	return fmt.Sprintf("<div class=\"panel\"%s><h2>%s</h2>%s</div>", style, esc(title), content)
}

func column(style, content string) string {
	if style != "" {
		style = fmt.Sprintf(" style=%q", style)
	}
	return fmt.Sprintf("<div class=\"column\"%s>%s</div>", style, content)
}

func statCard(value, label string) string {
	return fmt.Sprintf(
		"<div class=\"stat-card\"><div class=\"value\">%s</div><div class=\"label\">%s</div></div>",
		esc(value), esc(label))
}

func quoteCard(text, attribution string) string {
	q := fmt.Sprintf("<div class=\"quote\">“%s”", esc(text))
	if attribution != "" {
		q += fmt.Sprintf("<span class=\"attrib\">— %s</span>", esc(attribution))
	}
	return q + "</div>"
}

// guideText builds the reading-guide block: a bold lead-in followed by
// prose.
func guideText(lead, text string) string {
	return fmt.Sprintf("<b>%s</b> %s", esc(lead), esc(text))
}
