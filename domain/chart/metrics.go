package chart

import (
	"math"
	"strings"
)

// Tone grades a 0..100 score.
type Tone string

const (
	ToneGood Tone = "good"
	ToneFair Tone = "fair"
	TonePoor Tone = "poor"
)

// ScoreTone is good from 80, fair from 60 and poor below.
func ScoreTone(score float64) Tone {
	switch {
	case score >= 80:
		return ToneGood
	case score >= 60:
		return ToneFair
	default:
		return TonePoor
	}
}

// TextClass returns the text colour for the tone.
func (t Tone) TextClass() string {
	switch t {
	case ToneGood:
		return "text-green-600"
	case ToneFair:
		return "text-yellow-600"
	default:
		return "text-red-600"
	}
}

// PassRate is the rounded share of passed tests, or 0 with no tests.
func PassRate(passed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(passed) / float64(total) * 100))
}

// UsageBar is a resource meter such as CPU or the job queue.
type UsageBar struct {
	Label   string  `json:"label"`
	Current float64 `json:"current"`
	Max     float64 `json:"max"`
	Unit    string  `json:"unit"`
	Percent float64 `json:"percent"`
	Level   Level   `json:"level"`
	Class   string  `json:"class"`
}

// UsageLevel is critical above 90 percent and a warning above 70.
func UsageLevel(pct float64) Level {
	switch {
	case pct > 90:
		return LevelCritical
	case pct > 70:
		return LevelWarning
	default:
		return LevelHealthy
	}
}

// BuildUsageBar computes the fill of a meter.
func BuildUsageBar(label string, current, max float64, unit string) UsageBar {
	pct := Percent(current, max)
	lvl := UsageLevel(pct)
	return UsageBar{
		Label:   label,
		Current: current,
		Max:     max,
		Unit:    unit,
		Percent: pct,
		Level:   lvl,
		Class:   lvl.Class(),
	}
}

// MetricBar is one original/synthetic comparison row on a fixed 0..1 axis.
type MetricBar struct {
	Name           string  `json:"name"`
	Original       float64 `json:"original"`
	Synthetic      float64 `json:"synthetic"`
	OriginalWidth  float64 `json:"originalWidth"`
	SyntheticWidth float64 `json:"syntheticWidth"`
}

// BuildMetricBars places every metric on the unit domain.
func BuildMetricBars(points []MetricPoint) []MetricBar {
	scale := NewLinearScale(nil, WithDomain(0, 1))
	out := make([]MetricBar, len(points))
	for i, p := range points {
		out[i] = MetricBar{
			Name:           p.Name,
			Original:       p.Original,
			Synthetic:      p.Synthetic,
			OriginalWidth:  clampPercent(scale.Scale(p.Original)),
			SyntheticWidth: clampPercent(scale.Scale(p.Synthetic)),
		}
	}
	return out
}

// IsPositiveChange reads a metric card delta such as "+12%" or "-3.1%".
func IsPositiveChange(change string) bool {
	return !strings.Contains(change, "-")
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
