package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCompleteness(t *testing.T) {
	bars := BuildCompleteness([]CompletenessRow{
		{Column: "customer_id", Completeness: 1.0},
		{Column: "phone_number", Completeness: 0.72},
		{Column: "shipping_date", Completeness: 0.88, Issues: []string{"Missing for some recent orders", "Late sync"}},
		{Column: "legacy_code", Completeness: 0.69},
	})

	require.Len(t, bars, 4)
	assert.Equal(t, []string{"legacy_code", "phone_number", "shipping_date", "customer_id"},
		[]string{bars[0].Column, bars[1].Column, bars[2].Column, bars[3].Column})
	assert.Equal(t, LevelCritical, bars[0].Level)
	assert.Equal(t, "bg-red-500", bars[0].Class)
	assert.Equal(t, LevelWarning, bars[1].Level)
	assert.Equal(t, 72, bars[1].Percent)
	assert.Equal(t, "Missing for some recent orders, Late sync", bars[2].Summary)
	assert.Equal(t, LevelHealthy, bars[3].Level)
	assert.Equal(t, 100, bars[3].Percent)
}

func TestBuildScatter(t *testing.T) {
	sc := BuildScatter([]OutlierPoint{
		{ID: "1", X: 0, Y: 0},
		{ID: "2", X: 10, Y: 10, IsOutlier: true, Label: "suspicious"},
	}, "Amount ($)", "Items Count")

	require.Len(t, sc.Points, 2)
	assert.InDelta(t, 100.0/12, sc.Points[0].X, 1e-9)
	assert.InDelta(t, 100-100.0/12, sc.Points[0].Y, 1e-9)
	assert.InDelta(t, 100-100.0/12, sc.Points[1].X, 1e-9)
	assert.InDelta(t, 100.0/12, sc.Points[1].Y, 1e-9)
	assert.Equal(t, "(0.00, 0.00)", sc.Points[0].Title)
	assert.Equal(t, "suspicious", sc.Points[1].Title)
	assert.Equal(t, "Outliers: 1 (50.0%)", sc.Summary())

	empty := BuildScatter(nil, "x", "y")
	assert.Equal(t, 0.0, empty.OutlierPercent)
	assert.Equal(t, "Outliers: 0 (0.0%)", empty.Summary())
}

func TestScoreToneAndPassRate(t *testing.T) {
	assert.Equal(t, ToneGood, ScoreTone(80))
	assert.Equal(t, ToneFair, ScoreTone(79.9))
	assert.Equal(t, ToneFair, ScoreTone(60))
	assert.Equal(t, TonePoor, ScoreTone(59))
	assert.Equal(t, "text-green-600", ScoreTone(96).TextClass())

	assert.Equal(t, 75, PassRate(18, 24))
	assert.Equal(t, 0, PassRate(0, 0))
}

func TestBuildUsageBar(t *testing.T) {
	tests := []struct {
		current, max float64
		wantPct      float64
		wantLevel    Level
	}{
		{85, 100, 85, LevelWarning},
		{95, 100, 95, LevelCritical},
		{12, 20, 60, LevelHealthy},
		{70, 100, 70, LevelHealthy},
		{5, 0, 0, LevelHealthy},
	}
	for _, tt := range tests {
		bar := BuildUsageBar("CPU", tt.current, tt.max, "%")
		assert.Equal(t, tt.wantPct, bar.Percent)
		assert.Equal(t, tt.wantLevel, bar.Level)
	}
}

func TestBuildMetricBars(t *testing.T) {
	bars := BuildMetricBars([]MetricPoint{{Name: "Accuracy", Original: 0.92, Synthetic: 0.89}, {Name: "Odd", Original: 1.2, Synthetic: -0.1}})
	assert.InDelta(t, 92, bars[0].OriginalWidth, 1e-9)
	assert.InDelta(t, 89, bars[0].SyntheticWidth, 1e-9)
	assert.Equal(t, 100.0, bars[1].OriginalWidth)
	assert.Equal(t, 0.0, bars[1].SyntheticWidth)

	assert.True(t, IsPositiveChange("+12%"))
	assert.False(t, IsPositiveChange("-3.1%"))
}

func TestBuildRadar(t *testing.T) {
	r := BuildRadar([]RiskMetric{
		{Metric: "Re-identification", Risk: 0.15, MaxRisk: 0.2},
		{Metric: "Attribute Disclosure", Risk: 0.3, MaxRisk: 0.25},
		{Metric: "Membership Inference", Risk: 0, MaxRisk: 0.2},
		{Metric: "Linkage", Risk: 0.1, MaxRisk: 0.2},
	})

	require.Len(t, r.Spokes, 4)
	top := r.Spokes[0]
	assert.InDelta(t, 50, top.AxisX, 1e-9)
	assert.InDelta(t, 10, top.AxisY, 1e-9)
	assert.InDelta(t, 30, top.Y, 1e-9)
	assert.True(t, r.Spokes[1].OverMax)
	assert.InDelta(t, 90, r.Spokes[1].X, 1e-9)
	assert.Len(t, r.Rings, 4)
	assert.NotContains(t, r.Polygon, "NaN")

	assert.Empty(t, BuildRadar(nil).Polygon)
}

func TestBuildResourceChart(t *testing.T) {
	rc := BuildResourceChart([]ResourceSample{
		{Time: "00:00", CPU: 40, Memory: 50, Storage: 70},
		{Time: "01:00", CPU: 120, Memory: 55, Storage: 71},
	})
	require.Len(t, rc.Series, 3)
	assert.Equal(t, "0,60 100,0", rc.Series[0].Points)
	require.Len(t, rc.Labels, 1)
	assert.Equal(t, "00:00", rc.Labels[0].Text)

	single := BuildResourceChart([]ResourceSample{{Time: "00:00", CPU: 10}})
	assert.Equal(t, "50,90", single.Series[0].Points)
	assert.False(t, math.IsNaN(single.Labels[0].X))
}
