// Package chart holds the display math shared by every chart on the
// dashboard: linear scaling into a 0..100 viewport, colour buckets and the
// SVG path strings the templates draw. Everything here is pure.
package chart

// MetricPoint compares a single quality metric across the original and
// synthetic datasets.
type MetricPoint struct {
	Name      string  `json:"name" yaml:"name"`
	Original  float64 `json:"original" yaml:"original"`
	Synthetic float64 `json:"synthetic" yaml:"synthetic"`
}

// CorrelationMatrix is square by convention with a unit diagonal. Neither
// property is enforced.
type CorrelationMatrix struct {
	Columns []string    `json:"columns" yaml:"columns"`
	Matrix  [][]float64 `json:"matrix" yaml:"matrix"`
}

// CompletenessRow is the share of non-null values in one column.
type CompletenessRow struct {
	Column       string   `json:"column" yaml:"column"`
	Completeness float64  `json:"completeness" yaml:"completeness"`
	Issues       []string `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// DistributionBin is one histogram bucket.
type DistributionBin struct {
	Bin   string  `json:"bin" yaml:"bin"`
	Count float64 `json:"count" yaml:"count"`
}

// OutlierPoint is one point of the outlier scatter plot.
type OutlierPoint struct {
	ID        string  `json:"id" yaml:"id"`
	X         float64 `json:"x" yaml:"x"`
	Y         float64 `json:"y" yaml:"y"`
	IsOutlier bool    `json:"isOutlier" yaml:"isOutlier"`
	Label     string  `json:"label,omitempty" yaml:"label,omitempty"`
}

// TimelinePoint is a quality score on an ISO-8601 date.
type TimelinePoint struct {
	Date  string  `json:"date" yaml:"date"`
	Score float64 `json:"score" yaml:"score"`
}

// RiskMetric is one spoke of the privacy risk radar.
type RiskMetric struct {
	Metric  string  `json:"metric" yaml:"metric"`
	Risk    float64 `json:"risk" yaml:"risk"`
	MaxRisk float64 `json:"maxRisk" yaml:"maxRisk"`
}

// ResourceSample is one hourly reading of cluster utilisation in percent.
type ResourceSample struct {
	Time    string  `json:"time" yaml:"time"`
	CPU     float64 `json:"cpu" yaml:"cpu"`
	Memory  float64 `json:"memory" yaml:"memory"`
	Storage float64 `json:"storage" yaml:"storage"`
}
