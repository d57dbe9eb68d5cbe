package chart

import "fmt"

// CorrelationBucket is one of the ten colour bands of the heat map.
type CorrelationBucket int

const (
	BucketPerfect CorrelationBucket = iota
	BucketStrongPositive
	BucketModeratePositive
	BucketWeakPositive
	BucketSlightPositive
	BucketNeutral
	BucketSlightNegative
	BucketWeakNegative
	BucketModerateNegative
	BucketStrongNegative
)

// CorrelationBuckets lists every bucket from +1 down to -1.
var CorrelationBuckets = []CorrelationBucket{
	BucketPerfect, BucketStrongPositive, BucketModeratePositive, BucketWeakPositive,
	BucketSlightPositive, BucketNeutral, BucketSlightNegative, BucketWeakNegative,
	BucketModerateNegative, BucketStrongNegative,
}

// ClassifyCorrelation walks the threshold ladder top-down. NaN fails every
// comparison and lands in the last bucket.
func ClassifyCorrelation(v float64) CorrelationBucket {
	switch {
	case v >= 1:
		return BucketPerfect
	case v > 0.7:
		return BucketStrongPositive
	case v > 0.5:
		return BucketModeratePositive
	case v > 0.3:
		return BucketWeakPositive
	case v > 0.1:
		return BucketSlightPositive
	case v > -0.1:
		return BucketNeutral
	case v > -0.3:
		return BucketSlightNegative
	case v > -0.5:
		return BucketWeakNegative
	case v > -0.7:
		return BucketModerateNegative
	default:
		return BucketStrongNegative
	}
}

// Class returns the stylesheet class for the bucket.
func (b CorrelationBucket) Class() string {
	switch b {
	case BucketPerfect:
		return "bg-blue-600"
	case BucketStrongPositive:
		return "bg-blue-500"
	case BucketModeratePositive:
		return "bg-blue-400"
	case BucketWeakPositive:
		return "bg-blue-300"
	case BucketSlightPositive:
		return "bg-blue-200"
	case BucketNeutral:
		return "bg-gray-200"
	case BucketSlightNegative:
		return "bg-red-200"
	case BucketWeakNegative:
		return "bg-red-300"
	case BucketModerateNegative:
		return "bg-red-400"
	case BucketStrongNegative:
		return "bg-red-500"
	}
	panic(fmt.Sprintf("chart: unmapped correlation bucket %d", int(b)))
}

// Fill returns the hex colour used when the bucket is drawn as SVG.
func (b CorrelationBucket) Fill() string {
	switch b {
	case BucketPerfect:
		return "#2563EB"
	case BucketStrongPositive:
		return "#3B82F6"
	case BucketModeratePositive:
		return "#60A5FA"
	case BucketWeakPositive:
		return "#93C5FD"
	case BucketSlightPositive:
		return "#BFDBFE"
	case BucketNeutral:
		return "#E5E7EB"
	case BucketSlightNegative:
		return "#FECACA"
	case BucketWeakNegative:
		return "#FCA5A5"
	case BucketModerateNegative:
		return "#F87171"
	case BucketStrongNegative:
		return "#EF4444"
	}
	panic(fmt.Sprintf("chart: unmapped correlation bucket %d", int(b)))
}

// DarkText reports whether labels on this bucket need dark ink.
func (b CorrelationBucket) DarkText() bool {
	return b >= BucketWeakPositive && b <= BucketWeakNegative
}

// CorrelationCell is one rendered square of the heat map.
type CorrelationCell struct {
	Row    string            `json:"row"`
	Column string            `json:"column"`
	Value  float64           `json:"value"`
	Label  string            `json:"label"`
	Title  string            `json:"title"`
	Bucket CorrelationBucket `json:"bucket"`
	Class  string            `json:"class"`
	Fill   string            `json:"fill"`
}

// CorrelationGrid is the heat map laid out row by row.
type CorrelationGrid struct {
	Columns []string            `json:"columns"`
	Rows    [][]CorrelationCell `json:"rows"`
	Legend  []LegendStop        `json:"legend"`
}

// LegendStop is one swatch of the heat map legend.
type LegendStop struct {
	Label string `json:"label"`
	Class string `json:"class"`
	Fill  string `json:"fill"`
}

// NewCorrelationGrid lays out the matrix. Ragged rows keep only the cells
// they have, and a missing column name falls back to its index.
func NewCorrelationGrid(m CorrelationMatrix) CorrelationGrid {
	name := func(i int) string {
		if i < len(m.Columns) {
			return m.Columns[i]
		}
		return fmt.Sprintf("col_%d", i)
	}

	grid := CorrelationGrid{Columns: m.Columns, Legend: correlationLegend()}
	for i, row := range m.Matrix {
		cells := make([]CorrelationCell, len(row))
		for j, v := range row {
			b := ClassifyCorrelation(v)
			cells[j] = CorrelationCell{
				Row:    name(i),
				Column: name(j),
				Value:  v,
				Label:  fmt.Sprintf("%.2f", v),
				Title:  fmt.Sprintf("%s ↔ %s: %.2f", name(i), name(j), v),
				Bucket: b,
				Class:  b.Class(),
				Fill:   b.Fill(),
			}
		}
		grid.Rows = append(grid.Rows, cells)
	}
	return grid
}

func correlationLegend() []LegendStop {
	stops := []struct {
		label string
		b     CorrelationBucket
	}{
		{"-1.0", BucketStrongNegative},
		{"-0.5", BucketWeakNegative},
		{"0", BucketNeutral},
		{"+0.5", BucketWeakPositive},
		{"+1.0", BucketPerfect},
	}
	out := make([]LegendStop, len(stops))
	for i, s := range stops {
		out[i] = LegendStop{Label: s.label, Class: s.b.Class(), Fill: s.b.Fill()}
	}
	return out
}
