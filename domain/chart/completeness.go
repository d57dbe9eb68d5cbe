package chart

import (
	"math"
	"sort"
	"strings"
)

// Level grades a value against display thresholds.
type Level string

const (
	LevelHealthy  Level = "healthy"
	LevelWarning  Level = "warning"
	LevelCritical Level = "critical"
)

// Class returns the bar colour used for the level.
func (l Level) Class() string {
	switch l {
	case LevelCritical:
		return "bg-red-500"
	case LevelWarning:
		return "bg-yellow-500"
	default:
		return "bg-green-500"
	}
}

// CompletenessBar is one rendered row of the completeness chart.
type CompletenessBar struct {
	Column  string   `json:"column"`
	Percent int      `json:"percent"`
	Level   Level    `json:"level"`
	Class   string   `json:"class"`
	Issues  []string `json:"issues,omitempty"`
	Summary string   `json:"summary,omitempty"`
}

// CompletenessLevel is critical below 0.7 and a warning below 0.9.
func CompletenessLevel(c float64) Level {
	switch {
	case c < 0.7:
		return LevelCritical
	case c < 0.9:
		return LevelWarning
	default:
		return LevelHealthy
	}
}

// BuildCompleteness sorts a copy of rows with the least complete first.
func BuildCompleteness(rows []CompletenessRow) []CompletenessBar {
	sorted := append([]CompletenessRow(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Completeness < sorted[j].Completeness })

	out := make([]CompletenessBar, len(sorted))
	for i, r := range sorted {
		lvl := CompletenessLevel(r.Completeness)
		out[i] = CompletenessBar{
			Column:  r.Column,
			Percent: int(math.Round(r.Completeness * 100)),
			Level:   lvl,
			Class:   lvl.Class(),
			Issues:  r.Issues,
			Summary: strings.Join(r.Issues, ", "),
		}
	}
	return out
}
