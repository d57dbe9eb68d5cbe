package chart

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Midpoint is returned by a scale whose domain has no width.
const Midpoint = 50.0

// DefaultPadding keeps markers off the plot edge.
const DefaultPadding = 0.1

// LinearScale maps a numeric domain onto 0..100.
type LinearScale struct {
	Min      float64
	Max      float64
	Padding  float64
	Invert   bool
	fixed    bool
	hasRange bool
}

// ScaleOption configures a LinearScale.
type ScaleOption func(*LinearScale)

// WithPadding widens the domain by ratio*range on each side.
func WithPadding(ratio float64) ScaleOption {
	return func(s *LinearScale) {
		if ratio > 0 && !math.IsInf(ratio, 0) {
			s.Padding = ratio
		}
	}
}

// Inverted flips the output so larger values sit nearer the top of an SVG.
func Inverted() ScaleOption {
	return func(s *LinearScale) { s.Invert = true }
}

// WithDomain pins the domain instead of deriving it from the data.
func WithDomain(min, max float64) ScaleOption {
	return func(s *LinearScale) {
		s.Min, s.Max = min, max
		s.fixed = true
	}
}

// NewLinearScale derives the domain from the finite entries of values.
func NewLinearScale(values []float64, opts ...ScaleOption) LinearScale {
	s := LinearScale{}
	for _, opt := range opts {
		opt(&s)
	}
	if !s.fixed {
		finite := make([]float64, 0, len(values))
		for _, v := range values {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				finite = append(finite, v)
			}
		}
		lo, errMin := stats.Min(finite)
		hi, errMax := stats.Max(finite)
		if errMin == nil && errMax == nil {
			s.Min, s.Max = lo, hi
		}
	}
	s.hasRange = s.Max > s.Min && !math.IsInf(s.Max-s.Min, 0)
	return s
}

// Degenerate reports whether every input maps to Midpoint.
func (s LinearScale) Degenerate() bool {
	return !s.hasRange
}

// Scale returns v's position in percent. It never returns NaN or Inf.
func (s LinearScale) Scale(v float64) float64 {
	if !s.hasRange || math.IsNaN(v) {
		return Midpoint
	}
	var out float64
	switch {
	case math.IsInf(v, 1):
		out = 100
	case math.IsInf(v, -1):
		out = 0
	default:
		span := s.Max - s.Min
		pad := span * s.Padding
		out = (v - (s.Min - pad)) / (span + 2*pad) * 100
	}
	if s.Invert {
		return 100 - out
	}
	return out
}

// ScaleAll scales every value in order.
func (s LinearScale) ScaleAll(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = s.Scale(v)
	}
	return out
}

// Percent returns part/whole*100, or 0 when whole is zero.
func Percent(part, whole float64) float64 {
	if whole == 0 || math.IsNaN(part) || math.IsNaN(whole) {
		return 0
	}
	return part / whole * 100
}

// Round1 rounds to one decimal place for display.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
