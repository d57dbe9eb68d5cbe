package chart

import (
	"fmt"
	"math"
	"strings"
)

// RadarMaxRisk is the outer ring of the privacy radar.
const RadarMaxRisk = 0.3

// RadarSpoke is one axis of the radar in viewport coordinates.
type RadarSpoke struct {
	Metric  string  `json:"metric"`
	Risk    float64 `json:"risk"`
	MaxRisk float64 `json:"maxRisk"`
	AxisX   float64 `json:"axisX"`
	AxisY   float64 `json:"axisY"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	OverMax bool    `json:"overMax"`
}

// Radar is the privacy risk polygon centred in a 100x100 viewport.
type Radar struct {
	Spokes    []RadarSpoke `json:"spokes"`
	Polygon   string       `json:"polygon"`
	Threshold string       `json:"threshold"`
	Rings     []string     `json:"rings"`
}

const radarRadius = 40.0

// BuildRadar lays out one spoke per metric clockwise from twelve o'clock.
func BuildRadar(metrics []RiskMetric) Radar {
	scale := NewLinearScale(nil, WithDomain(0, RadarMaxRisk))
	n := len(metrics)
	r := Radar{Spokes: make([]RadarSpoke, n)}
	if n == 0 {
		return r
	}

	point := func(i int, frac float64) (float64, float64) {
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		return 50 + radarRadius*frac*math.Cos(angle), 50 + radarRadius*frac*math.Sin(angle)
	}

	value := make([]string, n)
	limit := make([]string, n)
	for i, m := range metrics {
		frac := clampPercent(scale.Scale(m.Risk)) / 100
		ax, ay := point(i, 1)
		x, y := point(i, frac)
		lx, ly := point(i, clampPercent(scale.Scale(m.MaxRisk))/100)
		r.Spokes[i] = RadarSpoke{
			Metric: m.Metric, Risk: m.Risk, MaxRisk: m.MaxRisk,
			AxisX: ax, AxisY: ay, X: x, Y: y,
			OverMax: m.Risk > m.MaxRisk,
		}
		value[i] = fmt.Sprintf("%s,%s", FormatCoord(x), FormatCoord(y))
		limit[i] = fmt.Sprintf("%s,%s", FormatCoord(lx), FormatCoord(ly))
	}
	r.Polygon = strings.Join(value, " ")
	r.Threshold = strings.Join(limit, " ")

	for _, frac := range []float64{0.25, 0.5, 0.75, 1} {
		ring := make([]string, n)
		for i := range metrics {
			x, y := point(i, frac)
			ring[i] = fmt.Sprintf("%s,%s", FormatCoord(x), FormatCoord(y))
		}
		r.Rings = append(r.Rings, strings.Join(ring, " "))
	}
	return r
}
