package chart

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/montanaflynn/stats"
)

// DefaultQualityThreshold is the score below which a timeline point is
// flagged.
const DefaultQualityThreshold = 70.0

const (
	TrendImproving = "↑ Improving"
	TrendDeclining = "↓ Declining"

	colorBelowThreshold = "#EF4444"
	colorOnTrack        = "#3B82F6"
)

// TimelineVertex is a plotted timeline point in viewport coordinates.
type TimelineVertex struct {
	Date           string  `json:"date"`
	Label          string  `json:"label"`
	Score          float64 `json:"score"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	BelowThreshold bool    `json:"belowThreshold"`
	Color          string  `json:"color"`
}

// Timeline is the quality score chart ready to draw.
type Timeline struct {
	Area       string           `json:"area"`
	Line       string           `json:"line"`
	Points     []TimelineVertex `json:"points"`
	Threshold  float64          `json:"threshold"`
	ThresholdY float64          `json:"thresholdY"`
	Current    string           `json:"current"`
	Average    float64          `json:"average"`
	Trend      string           `json:"trend"`
}

// BuildTimeline sorts a copy of points by date and lays them out with equal
// horizontal spacing. A single point is drawn at the centre with a flat
// line across the viewport.
func BuildTimeline(points []TimelinePoint, threshold float64) (Timeline, error) {
	type dated struct {
		TimelinePoint
		at time.Time
	}

	sorted := make([]dated, 0, len(points))
	for _, p := range points {
		at, err := parseDate(p.Date)
		if err != nil {
			return Timeline{}, fmt.Errorf("timeline point %q: %w", p.Date, err)
		}
		sorted = append(sorted, dated{TimelinePoint: p, at: at})
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].at.Before(sorted[j].at) })

	tl := Timeline{
		Threshold:  threshold,
		ThresholdY: 100 - threshold,
		Current:    "N/A",
		Trend:      TrendDeclining,
	}
	n := len(sorted)
	if n == 0 {
		return tl, nil
	}

	scores := make([]float64, n)
	tl.Points = make([]TimelineVertex, n)
	for i, p := range sorted {
		scores[i] = p.Score
		x := Midpoint
		if n > 1 {
			x = float64(i) / float64(n-1) * 100
		}
		below := p.Score < threshold
		color := colorOnTrack
		if below {
			color = colorBelowThreshold
		}
		tl.Points[i] = TimelineVertex{
			Date:           p.Date,
			Label:          fmt.Sprintf("%d/%d", int(p.at.Month()), p.at.Day()),
			Score:          p.Score,
			X:              x,
			Y:              100 - p.Score,
			BelowThreshold: below,
			Color:          color,
		}
	}

	tl.Line, tl.Area = timelinePaths(tl.Points)
	tl.Current = FormatCoord(scores[n-1])
	if mean, err := stats.Mean(scores); err == nil {
		tl.Average = math.Round(mean)
	}
	if scores[n-1] > scores[0] {
		tl.Trend = TrendImproving
	}
	return tl, nil
}

func timelinePaths(pts []TimelineVertex) (line, area string) {
	if len(pts) == 1 {
		y := pts[0].Y
		line = fmt.Sprintf("M 0 %s L 100 %s", FormatCoord(y), FormatCoord(y))
		return line, line + " L 100 100 L 0 100 Z"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M %s %s", FormatCoord(pts[0].X), FormatCoord(pts[0].Y))
	for _, p := range pts {
		fmt.Fprintf(&b, " L %s %s", FormatCoord(p.X), FormatCoord(p.Y))
	}
	line = b.String()
	return line, line + " L 100 100 L 0 100 Z"
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// FormatCoord prints coordinates compactly: integers without a fraction,
// everything else with at most two decimals.
func FormatCoord(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
