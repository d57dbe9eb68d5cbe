package chart

import "fmt"

// ScatterPoint is an outlier point in viewport coordinates.
type ScatterPoint struct {
	ID        string  `json:"id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	IsOutlier bool    `json:"isOutlier"`
	Title     string  `json:"title"`
}

// Scatter is the outlier chart ready to draw.
type Scatter struct {
	XLabel         string         `json:"xLabel"`
	YLabel         string         `json:"yLabel"`
	Points         []ScatterPoint `json:"points"`
	OutlierCount   int            `json:"outlierCount"`
	OutlierPercent float64        `json:"outlierPercent"`
	Total          int            `json:"total"`
}

// BuildScatter scales both axes with DefaultPadding. The y axis is inverted
// so larger values plot higher.
func BuildScatter(points []OutlierPoint, xLabel, yLabel string) Scatter {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	xScale := NewLinearScale(xs, WithPadding(DefaultPadding))
	yScale := NewLinearScale(ys, WithPadding(DefaultPadding), Inverted())

	sc := Scatter{XLabel: xLabel, YLabel: yLabel, Total: len(points), Points: make([]ScatterPoint, len(points))}
	for i, p := range points {
		title := p.Label
		if title == "" {
			title = fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
		}
		if p.IsOutlier {
			sc.OutlierCount++
		}
		sc.Points[i] = ScatterPoint{
			ID:        p.ID,
			X:         xScale.Scale(p.X),
			Y:         yScale.Scale(p.Y),
			IsOutlier: p.IsOutlier,
			Title:     title,
		}
	}
	sc.OutlierPercent = Round1(Percent(float64(sc.OutlierCount), float64(sc.Total)))
	return sc
}

// Summary is the caption printed under the scatter plot.
func (s Scatter) Summary() string {
	return fmt.Sprintf("Outliers: %d (%.1f%%)", s.OutlierCount, s.OutlierPercent)
}
