package testkit

import (
	"math/rand/v2"
	"strconv"

	"gonum.org/v1/gonum/stat/distuv"

	"synthml/domain/chart"
)

// OutlierGeneratorConfig configures the scatter plot point generator
type OutlierGeneratorConfig struct {
	Count       int     `json:"count"`
	Seed        int64   `json:"seed"`
	OutlierRate float64 `json:"outlier_rate"`
	Max         float64 `json:"max"`
}

// DefaultOutlierConfig returns the settings used by the data-quality page
func DefaultOutlierConfig() OutlierGeneratorConfig {
	return OutlierGeneratorConfig{
		Count:       100,
		Seed:        42,
		OutlierRate: 0.1,
		Max:         100,
	}
}

// OutlierGenerator produces uniformly scattered points with a share of them
// flagged as outliers. Output is fully determined by the seed.
type OutlierGenerator struct {
	config  OutlierGeneratorConfig
	coord   distuv.Uniform
	outlier distuv.Bernoulli
}

// NewOutlierGenerator creates a new generator
func NewOutlierGenerator(config OutlierGeneratorConfig) *OutlierGenerator {
	if config.Max <= 0 {
		config.Max = 100
	}
	// Both distributions draw from one stream so a seed fixes the whole sequence.
	src := rand.NewPCG(uint64(config.Seed), 0)
	return &OutlierGenerator{
		config:  config,
		coord:   distuv.Uniform{Min: 0, Max: config.Max, Src: src},
		outlier: distuv.Bernoulli{P: config.OutlierRate, Src: src},
	}
}

// Generate returns Count random points followed by the explicit extras.
// IDs of generated points run from 1 to Count.
func (g *OutlierGenerator) Generate(extras ...chart.OutlierPoint) []chart.OutlierPoint {
	points := make([]chart.OutlierPoint, 0, g.config.Count+len(extras))
	for i := 0; i < g.config.Count; i++ {
		points = append(points, chart.OutlierPoint{
			ID:        strconv.Itoa(i + 1),
			X:         g.coord.Rand(),
			Y:         g.coord.Rand(),
			IsOutlier: g.outlier.Rand() == 1,
		})
	}
	return append(points, extras...)
}
