package chart

import (
	"fmt"
	"strings"
)

// ResourceSeries is one utilisation line of the monitoring chart.
type ResourceSeries struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	Points string `json:"points"`
}

// ResourceChart is the hourly utilisation chart.
type ResourceChart struct {
	Series []ResourceSeries `json:"series"`
	Labels []AxisLabel      `json:"labels"`
}

// AxisLabel is a tick label at a horizontal viewport position.
type AxisLabel struct {
	X    float64 `json:"x"`
	Text string  `json:"text"`
}

// BuildResourceChart draws CPU, memory and storage on a fixed 0..100 axis.
// Every fourth sample gets a tick label.
func BuildResourceChart(samples []ResourceSample) ResourceChart {
	y := NewLinearScale(nil, WithDomain(0, 100), Inverted())
	n := len(samples)
	x := func(i int) float64 {
		if n <= 1 {
			return Midpoint
		}
		return float64(i) / float64(n-1) * 100
	}

	series := []struct {
		name, color string
		value       func(ResourceSample) float64
	}{
		{"CPU", "#3B82F6", func(s ResourceSample) float64 { return s.CPU }},
		{"Memory", "#8B5CF6", func(s ResourceSample) float64 { return s.Memory }},
		{"Storage", "#10B981", func(s ResourceSample) float64 { return s.Storage }},
	}

	var rc ResourceChart
	for _, s := range series {
		pts := make([]string, n)
		for i, sample := range samples {
			pts[i] = fmt.Sprintf("%s,%s", FormatCoord(x(i)), FormatCoord(clampPercent(y.Scale(s.value(sample)))))
		}
		rc.Series = append(rc.Series, ResourceSeries{Name: s.name, Color: s.color, Points: strings.Join(pts, " ")})
	}
	for i, sample := range samples {
		if i%4 == 0 {
			rc.Labels = append(rc.Labels, AxisLabel{X: x(i), Text: sample.Time})
		}
	}
	return rc
}
