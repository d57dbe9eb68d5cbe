package render

import (
	"bytes"
	"fmt"

	"synthml/domain/chart"
)

const (
	colorOriginal  = "#3B82F6"
	colorSynthetic = "#8B5CF6"
	colorThreshold = "#F59E0B"
	colorInlier    = "#93C5FD"
	colorOutlier   = "#EF4444"
)

func writeTimeline(buf *bytes.Buffer, tl chart.Timeline) {
	c := canvas{width: 600, height: 260, left: 40, top: 20, plotW: 540, plotH: 200}
	c.open(buf, "Quality score over time")
	styleBlock(buf)

	for _, tick := range []float64{0, 25, 50, 75, 100} {
		y := c.py(100 - tick)
		fmt.Fprintf(buf, `  <line class="c-grid" x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n", num(c.left), num(y), num(c.left+c.plotW), num(y))
		text(buf, c.left-6, y+3, "end", "c-axis", num(tick))
	}

	c.openPlot(buf)
	if tl.Area != "" {
		fmt.Fprintf(buf, `    <path d="%s" fill="%s" fill-opacity="0.12" stroke="none"/>`+"\n", tl.Area, colorOriginal)
		fmt.Fprintf(buf, `    <path d="%s" fill="none" stroke="%s" stroke-width="2" vector-effect="non-scaling-stroke"/>`+"\n", tl.Line, colorOriginal)
	}
	fmt.Fprintf(buf, `    <line x1="0" y1="%s" x2="100" y2="%s" stroke="%s" stroke-dasharray="4 4" vector-effect="non-scaling-stroke"/>`+"\n",
		num(tl.ThresholdY), num(tl.ThresholdY), colorThreshold)
	closePlot(buf)

	// Markers go in outer coordinates so they stay round.
	for _, p := range tl.Points {
		fmt.Fprintf(buf, `  <circle cx="%s" cy="%s" r="4" fill="%s"><title>%s: %s</title></circle>`+"\n",
			num(c.px(p.X)), num(c.py(p.Y)), p.Color, escapeXML(p.Date), num(p.Score))
		text(buf, c.px(p.X), c.top+c.plotH+16, "middle", "c-axis", p.Label)
	}
	text(buf, c.left+c.plotW, c.py(tl.ThresholdY)-4, "end", "c-axis", fmt.Sprintf("Threshold %s", num(tl.Threshold)))
	closeSVG(buf)
}

func writeCorrelation(buf *bytes.Buffer, g chart.CorrelationGrid) {
	const cell = 48.0
	n := float64(len(g.Columns))
	left, top := 80.0, 24.0
	c := canvas{width: left + n*cell + 10, height: top + n*cell + 44}
	c.open(buf, "Correlation matrix")
	styleBlock(buf)

	for j, name := range g.Columns {
		text(buf, left+float64(j)*cell+cell/2, top-8, "middle", "c-axis", name)
	}
	for i, row := range g.Rows {
		y := top + float64(i)*cell
		if i < len(g.Columns) {
			text(buf, left-6, y+cell/2+3, "end", "c-axis", g.Columns[i])
		}
		for j, cl := range row {
			x := left + float64(j)*cell
			fg := "#FFFFFF"
			if cl.Bucket.DarkText() {
				fg = "#1F2937"
			}
			fmt.Fprintf(buf, `  <g><title>%s</title><rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
				escapeXML(cl.Title), num(x), num(y), num(cell-1), num(cell-1), cl.Fill)
			fmt.Fprintf(buf, `<text x="%s" y="%s" text-anchor="middle" class="c-cell" fill="%s">%s</text></g>`+"\n",
				num(x+cell/2), num(y+cell/2+3), fg, escapeXML(cl.Label))
		}
	}

	ly := top + n*cell + 14
	for i, stop := range g.Legend {
		x := left + float64(i)*70
		fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="12" height="12" fill="%s"/>`+"\n", num(x), num(ly), stop.Fill)
		text(buf, x+16, ly+10, "start", "c-axis", stop.Label)
	}
	closeSVG(buf)
}

func writeDistribution(buf *bytes.Buffer, d chart.DistributionComparison) {
	c := canvas{width: 600, height: 280, left: 40, top: 30, plotW: 540, plotH: 200}
	c.open(buf, fmt.Sprintf("Distribution comparison: %s", d.Column))
	styleBlock(buf)
	text(buf, c.left, 16, "start", "c-title", d.Column)

	n := len(d.Bars)
	if n > 0 {
		slot := c.plotW / float64(n)
		barW := slot * 0.35
		for i, b := range d.Bars {
			x := c.left + float64(i)*slot + slot*0.15
			oh := b.OriginalHeight / 100 * c.plotH
			sh := b.SyntheticHeight / 100 * c.plotH
			base := c.top + c.plotH
			fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"><title>%s original: %s</title></rect>`+"\n",
				num(x), num(base-oh), num(barW), num(oh), colorOriginal, escapeXML(b.Bin), num(b.Original))
			fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"><title>%s synthetic: %s</title></rect>`+"\n",
				num(x+barW), num(base-sh), num(barW), num(sh), colorSynthetic, escapeXML(b.Bin), num(b.Synthetic))
			if b.ShowLabel {
				text(buf, x+barW, base+14, "middle", "c-axis", b.Bin)
			}
		}
	}

	legend(buf, c.left, c.height-18, []legendItem{{"Original", colorOriginal}, {"Synthetic", colorSynthetic}})
	text(buf, c.width-10, c.height-8, "end", "c-value",
		fmt.Sprintf("KL %.3f  JS %.3f", d.KLDivergence, d.JensenShannon))
	closeSVG(buf)
}

func writeScatter(buf *bytes.Buffer, s chart.Scatter) {
	c := canvas{width: 420, height: 340, left: 50, top: 20, plotW: 350, plotH: 270}
	c.open(buf, "Outlier detection")
	styleBlock(buf)
	fmt.Fprintf(buf, `  <rect class="c-grid" x="%s" y="%s" width="%s" height="%s" fill="none"/>`+"\n",
		num(c.left), num(c.top), num(c.plotW), num(c.plotH))

	for _, p := range s.Points {
		fill, r := colorInlier, 3.0
		if p.IsOutlier {
			fill, r = colorOutlier, 4.0
		}
		fmt.Fprintf(buf, `  <circle cx="%s" cy="%s" r="%s" fill="%s" fill-opacity="0.8"><title>%s</title></circle>`+"\n",
			num(c.px(p.X)), num(c.py(p.Y)), num(r), fill, escapeXML(p.Title))
	}

	text(buf, c.left+c.plotW/2, c.top+c.plotH+20, "middle", "c-axis", s.XLabel)
	fmt.Fprintf(buf, `  <text x="14" y="%s" text-anchor="middle" class="c-axis" transform="rotate(-90 14 %s)">%s</text>`+"\n",
		num(c.top+c.plotH/2), num(c.top+c.plotH/2), escapeXML(s.YLabel))
	text(buf, c.width-10, c.height-6, "end", "c-value", s.Summary())
	closeSVG(buf)
}

func writeMetricBars(buf *bytes.Buffer, bars []chart.MetricBar) {
	const rowH = 36.0
	c := canvas{width: 480, left: 110, top: 10, plotW: 320}
	c.height = c.top + float64(len(bars))*rowH + 30
	c.open(buf, "Quality metrics")
	styleBlock(buf)

	for i, b := range bars {
		y := c.top + float64(i)*rowH
		text(buf, c.left-8, y+16, "end", "c-axis", b.Name)
		fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="%s" height="10" rx="2" fill="%s"/>`+"\n",
			num(c.left), num(y+4), num(b.OriginalWidth/100*c.plotW), colorOriginal)
		fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="%s" height="10" rx="2" fill="%s"/>`+"\n",
			num(c.left), num(y+16), num(b.SyntheticWidth/100*c.plotW), colorSynthetic)
		text(buf, c.left+c.plotW+6, y+24, "start", "c-value", fmt.Sprintf("%.0f%%", b.Synthetic*100))
	}
	legend(buf, c.left, c.height-16, []legendItem{{"Original", colorOriginal}, {"Synthetic", colorSynthetic}})
	closeSVG(buf)
}

func writeRadar(buf *bytes.Buffer, r chart.Radar) {
	c := canvas{width: 360, height: 360, left: 30, top: 30, plotW: 300, plotH: 300}
	c.open(buf, "Privacy risk")
	styleBlock(buf)

	c.openPlot(buf)
	for _, ring := range r.Rings {
		fmt.Fprintf(buf, `    <polygon class="c-grid" points="%s" fill="none"/>`+"\n", ring)
	}
	for _, s := range r.Spokes {
		fmt.Fprintf(buf, `    <line class="c-grid" x1="50" y1="50" x2="%s" y2="%s"/>`+"\n", num(s.AxisX), num(s.AxisY))
	}
	if r.Threshold != "" {
		fmt.Fprintf(buf, `    <polygon points="%s" fill="none" stroke="%s" stroke-dasharray="3 3" vector-effect="non-scaling-stroke"/>`+"\n",
			r.Threshold, colorThreshold)
	}
	if r.Polygon != "" {
		fmt.Fprintf(buf, `    <polygon points="%s" fill="%s" fill-opacity="0.25" stroke="%s" stroke-width="2" vector-effect="non-scaling-stroke"/>`+"\n",
			r.Polygon, colorOutlier, colorOutlier)
	}
	closePlot(buf)

	for _, s := range r.Spokes {
		anchor := "middle"
		switch {
		case s.AxisX > 52:
			anchor = "start"
		case s.AxisX < 48:
			anchor = "end"
		}
		lx := 50 + (s.AxisX-50)*1.12
		ly := 50 + (s.AxisY-50)*1.12
		text(buf, c.px(lx), c.py(ly)+3, anchor, "c-axis", fmt.Sprintf("%s (%.0f%%)", s.Metric, s.Risk*100))
	}
	closeSVG(buf)
}

func writeResources(buf *bytes.Buffer, rc chart.ResourceChart) {
	c := canvas{width: 600, height: 260, left: 40, top: 20, plotW: 540, plotH: 190}
	c.open(buf, "Resource usage")
	styleBlock(buf)

	for _, tick := range []float64{0, 50, 100} {
		y := c.py(100 - tick)
		fmt.Fprintf(buf, `  <line class="c-grid" x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n", num(c.left), num(y), num(c.left+c.plotW), num(y))
		text(buf, c.left-6, y+3, "end", "c-axis", num(tick)+"%")
	}
	c.openPlot(buf)
	for _, s := range rc.Series {
		fmt.Fprintf(buf, `    <polyline points="%s" fill="none" stroke="%s" stroke-width="2" vector-effect="non-scaling-stroke"/>`+"\n",
			s.Points, s.Color)
	}
	closePlot(buf)
	for _, l := range rc.Labels {
		text(buf, c.px(l.X), c.top+c.plotH+14, "middle", "c-axis", l.Text)
	}

	items := make([]legendItem, len(rc.Series))
	for i, s := range rc.Series {
		items[i] = legendItem{s.Name, s.Color}
	}
	legend(buf, c.left, c.height-14, items)
	closeSVG(buf)
}

type legendItem struct {
	label, color string
}

func legend(buf *bytes.Buffer, x, y float64, items []legendItem) {
	for i, it := range items {
		lx := x + float64(i)*90
		fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="10" height="10" rx="2" fill="%s"/>`+"\n", num(lx), num(y-9), it.color)
		text(buf, lx+14, y, "start", "c-axis", it.label)
	}
}
