package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qualityHistory() []TimelinePoint {
	return []TimelinePoint{
		{Date: "2023-03-29", Score: 82},
		{Date: "2023-02-01", Score: 74},
		{Date: "2023-02-08", Score: 76},
		{Date: "2023-02-15", Score: 68},
		{Date: "2023-02-22", Score: 75},
		{Date: "2023-03-01", Score: 79},
		{Date: "2023-03-08", Score: 77},
		{Date: "2023-03-15", Score: 82},
		{Date: "2023-03-22", Score: 80},
	}
}

func TestBuildTimeline(t *testing.T) {
	tl, err := BuildTimeline(qualityHistory(), DefaultQualityThreshold)
	require.NoError(t, err)
	require.Len(t, tl.Points, 9)

	first, last := tl.Points[0], tl.Points[8]
	assert.Equal(t, "2023-02-01", first.Date)
	assert.Equal(t, "2/1", first.Label)
	assert.Equal(t, 0.0, first.X)
	assert.Equal(t, 26.0, first.Y)
	assert.Equal(t, 100.0, last.X)
	assert.Equal(t, "3/29", last.Label)

	assert.True(t, tl.Points[2].BelowThreshold)
	assert.Equal(t, "#EF4444", tl.Points[2].Color)
	assert.False(t, tl.Points[1].BelowThreshold)

	assert.Equal(t, "82", tl.Current)
	assert.Equal(t, 77.0, tl.Average)
	assert.Equal(t, TrendImproving, tl.Trend)
	assert.Equal(t, 30.0, tl.ThresholdY)

	assert.True(t, strings.HasPrefix(tl.Line, "M 0 26 L 0 26 L 12.5 24"))
	assert.Equal(t, tl.Line+" L 100 100 L 0 100 Z", tl.Area)
}

func TestBuildTimelineTwoPoints(t *testing.T) {
	tl, err := BuildTimeline([]TimelinePoint{
		{Date: "2023-02-08", Score: 60},
		{Date: "2023-02-01", Score: 74},
	}, DefaultQualityThreshold)
	require.NoError(t, err)

	assert.Equal(t, "M 0 26 L 0 26 L 100 40", tl.Line)
	assert.Equal(t, "M 0 26 L 0 26 L 100 40 L 100 100 L 0 100 Z", tl.Area)
	assert.Equal(t, TrendDeclining, tl.Trend)
	assert.Equal(t, 67.0, tl.Average)
}

func TestBuildTimelineSinglePoint(t *testing.T) {
	tl, err := BuildTimeline([]TimelinePoint{{Date: "2023-03-15", Score: 82}}, DefaultQualityThreshold)
	require.NoError(t, err)

	require.Len(t, tl.Points, 1)
	assert.Equal(t, Midpoint, tl.Points[0].X)
	assert.Equal(t, "M 0 18 L 100 18", tl.Line)
	assert.Equal(t, "M 0 18 L 100 18 L 100 100 L 0 100 Z", tl.Area)
	assert.NotContains(t, tl.Line+tl.Area, "NaN")
	assert.Equal(t, TrendDeclining, tl.Trend)
}

func TestBuildTimelineEmpty(t *testing.T) {
	tl, err := BuildTimeline(nil, DefaultQualityThreshold)
	require.NoError(t, err)
	assert.Empty(t, tl.Points)
	assert.Empty(t, tl.Line)
	assert.Empty(t, tl.Area)
	assert.Equal(t, "N/A", tl.Current)
}

func TestBuildTimelineRejectsBadDates(t *testing.T) {
	_, err := BuildTimeline([]TimelinePoint{{Date: "last tuesday", Score: 50}}, DefaultQualityThreshold)
	assert.Error(t, err)
}

func TestBuildTimelineDoesNotReorderInput(t *testing.T) {
	in := qualityHistory()
	_, err := BuildTimeline(in, DefaultQualityThreshold)
	require.NoError(t, err)
	assert.Equal(t, "2023-03-29", in[0].Date)
}
