package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"synthml/domain/chart"
)

const fontFamily = `ui-sans-serif, system-ui, -apple-system, "Segoe UI", sans-serif`

// canvas is an outer drawing surface with a plot rectangle. Geometry from
// domain/chart lives in a 0..100 square that is stretched over the plot.
type canvas struct {
	width, height float64
	left, top     float64
	plotW, plotH  float64
}

func (c canvas) px(x float64) float64 { return c.left + x/100*c.plotW }
func (c canvas) py(y float64) float64 { return c.top + y/100*c.plotH }

func (c canvas) open(buf *bytes.Buffer, label string) {
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" role="img" aria-label="%s" font-family="%s">`+"\n",
		num(c.width), num(c.height), escapeXML(label), escapeXML(fontFamily))
}

// openPlot starts the nested 0..100 viewport. Strokes keep their width
// when the viewport is stretched.
func (c canvas) openPlot(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <svg x="%s" y="%s" width="%s" height="%s" viewBox="0 0 100 100" preserveAspectRatio="none" overflow="visible">`+"\n",
		num(c.left), num(c.top), num(c.plotW), num(c.plotH))
}

func closePlot(buf *bytes.Buffer) { buf.WriteString("  </svg>\n") }
func closeSVG(buf *bytes.Buffer)  { buf.WriteString("</svg>\n") }

func text(buf *bytes.Buffer, x, y float64, anchor, class, s string) {
	fmt.Fprintf(buf, `  <text x="%s" y="%s" text-anchor="%s" class="%s">%s</text>`+"\n",
		num(x), num(y), anchor, class, escapeXML(s))
}

func styleBlock(buf *bytes.Buffer) {
	buf.WriteString(`  <style>
    .c-axis { fill: #6B7280; font-size: 10px; }
    .c-title { fill: #111827; font-size: 12px; font-weight: 600; }
    .c-value { fill: #374151; font-size: 10px; }
    .c-cell { font-size: 10px; }
    .c-grid { stroke: #E5E7EB; stroke-width: 1; vector-effect: non-scaling-stroke; }
    @media (prefers-color-scheme: dark) {
      .c-axis, .c-value { fill: #9CA3AF; }
      .c-title { fill: #F9FAFB; }
      .c-grid { stroke: #374151; }
    }
  </style>
`)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return ""
	}
	return buf.String()
}

func num(v float64) string { return chart.FormatCoord(v) }
