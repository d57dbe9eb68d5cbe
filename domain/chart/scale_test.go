package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearScale(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		opts   []ScaleOption
		input  float64
		want   float64
	}{
		{"min maps to 0", []float64{10, 20, 30}, nil, 10, 0},
		{"max maps to 100", []float64{10, 20, 30}, nil, 30, 100},
		{"midpoint", []float64{10, 20, 30}, nil, 20, 50},
		{"padded min", []float64{10, 20, 30}, []ScaleOption{WithPadding(0.1)}, 10, 2.0 / 24 * 100},
		{"padded max", []float64{10, 20, 30}, []ScaleOption{WithPadding(0.1)}, 30, 22.0 / 24 * 100},
		{"inverted min", []float64{10, 20, 30}, []ScaleOption{Inverted()}, 10, 100},
		{"inverted max", []float64{10, 20, 30}, []ScaleOption{Inverted()}, 30, 0},
		{"fixed domain", nil, []ScaleOption{WithDomain(0, 1)}, 0.25, 25},
		{"nan values ignored", []float64{math.NaN(), 0, 10}, nil, 0, 0},
		{"positive infinity input", []float64{0, 10}, nil, math.Inf(1), 100},
		{"negative infinity input", []float64{0, 10}, nil, math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewLinearScale(tt.values, tt.opts...)
			assert.InDelta(t, tt.want, s.Scale(tt.input), 1e-9)
		})
	}
}

func TestLinearScaleDegenerateDomain(t *testing.T) {
	cases := map[string][]float64{
		"constant": {5, 5, 5},
		"single":   {42},
		"empty":    nil,
		"all nan":  {math.NaN(), math.NaN()},
	}
	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			for _, opts := range [][]ScaleOption{nil, {WithPadding(0.1)}, {Inverted()}} {
				s := NewLinearScale(values, opts...)
				assert.True(t, s.Degenerate())
				for _, v := range []float64{-1, 0, 5, 42, 1e9} {
					got := s.Scale(v)
					assert.Equal(t, Midpoint, got)
					assert.False(t, math.IsNaN(got) || math.IsInf(got, 0))
				}
			}
		})
	}
}

func TestLinearScalePaddingIsSymmetric(t *testing.T) {
	s := NewLinearScale([]float64{3, 7, 11, 19}, WithPadding(DefaultPadding))
	lo, hi := s.Scale(3), s.Scale(19)
	assert.Greater(t, lo, 0.0)
	assert.Less(t, hi, 100.0)
	assert.InDelta(t, 100, lo+hi, 1e-9)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, Percent(5, 0))
	assert.Equal(t, 50.0, Percent(5, 10))
	assert.Equal(t, 0.0, Percent(math.NaN(), 10))
	assert.Equal(t, 46.9, Round1(Percent(150, 320)))
}

func TestFormatCoord(t *testing.T) {
	tests := map[float64]string{
		100:          "100",
		0:            "0",
		12.5:         "12.5",
		8.3333333333: "8.33",
		0.1:          "0.1",
		-4.25:        "-4.25",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatCoord(in), "FormatCoord(%v)", in)
	}
}
