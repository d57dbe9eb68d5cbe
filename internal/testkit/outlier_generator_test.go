package testkit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"synthml/domain/chart"
)

func TestOutlierGeneratorDeterministic(t *testing.T) {
	a := NewOutlierGenerator(DefaultOutlierConfig()).Generate()
	b := NewOutlierGenerator(DefaultOutlierConfig()).Generate()
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed produced different points (-a +b):\n%s", diff)
	}

	cfg := DefaultOutlierConfig()
	cfg.Seed = 7
	c := NewOutlierGenerator(cfg).Generate()
	assert.NotEqual(t, a, c)
}

func TestOutlierGeneratorBounds(t *testing.T) {
	points := NewOutlierGenerator(DefaultOutlierConfig()).Generate()
	assert.Len(t, points, 100)

	outliers := 0
	for i, p := range points {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 100.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.Less(t, p.Y, 100.0)
		assert.Equal(t, chart.OutlierPoint{}.Label, p.Label)
		if i == 0 {
			assert.Equal(t, "1", p.ID)
		}
		if p.IsOutlier {
			outliers++
		}
	}
	// roughly 10% with a wide margin for the seeded draw
	assert.InDelta(t, 10, outliers, 9)
}

func TestOutlierGeneratorAppendsExtras(t *testing.T) {
	extras := []chart.OutlierPoint{
		{ID: "101", X: 95, Y: 5, IsOutlier: true},
		{ID: "102", X: 5, Y: 95, IsOutlier: true},
	}
	points := NewOutlierGenerator(OutlierGeneratorConfig{Count: 3, Seed: 1, OutlierRate: 0}).Generate(extras...)

	assert.Len(t, points, 5)
	assert.Equal(t, extras, points[3:])
	for _, p := range points[:3] {
		assert.False(t, p.IsOutlier)
	}
}

func TestOutlierRateOneFlagsEverything(t *testing.T) {
	points := NewOutlierGenerator(OutlierGeneratorConfig{Count: 20, Seed: 3, OutlierRate: 1}).Generate()
	for _, p := range points {
		assert.True(t, p.IsOutlier)
	}
}
