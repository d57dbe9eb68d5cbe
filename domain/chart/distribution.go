package chart

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// smoothing keeps empty bins from producing infinite divergence.
const smoothing = 1e-9

// DistributionBar is one original/synthetic pair of the comparison chart.
type DistributionBar struct {
	Bin             string  `json:"bin"`
	Original        float64 `json:"original"`
	Synthetic       float64 `json:"synthetic"`
	OriginalHeight  float64 `json:"originalHeight"`
	SyntheticHeight float64 `json:"syntheticHeight"`
	ShowLabel       bool    `json:"showLabel"`
}

// DistributionComparison is the side-by-side histogram plus divergence.
type DistributionComparison struct {
	Column        string            `json:"column"`
	Bars          []DistributionBar `json:"bars"`
	MaxCount      float64           `json:"maxCount"`
	KLDivergence  float64           `json:"klDivergence"`
	JensenShannon float64           `json:"jensenShannon"`
}

// CompareDistributions pairs the two series by position. Heights are
// relative to the largest count in either series, so both share an axis.
// Bins present in only one series are drawn with a zero partner.
func CompareDistributions(column string, original, synthetic []DistributionBin) DistributionComparison {
	n := len(original)
	if len(synthetic) > n {
		n = len(synthetic)
	}

	orig := make([]float64, n)
	synth := make([]float64, n)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		if i < len(original) {
			orig[i] = nonNegative(original[i].Count)
			labels[i] = original[i].Bin
		}
		if i < len(synthetic) {
			synth[i] = nonNegative(synthetic[i].Count)
			if labels[i] == "" {
				labels[i] = synthetic[i].Bin
			}
		}
	}

	maxCount := 0.0
	if n > 0 {
		maxCount = math.Max(floats.Max(orig), floats.Max(synth))
	}

	dc := DistributionComparison{Column: column, MaxCount: maxCount, Bars: make([]DistributionBar, n)}
	for i := 0; i < n; i++ {
		dc.Bars[i] = DistributionBar{
			Bin:             labels[i],
			Original:        orig[i],
			Synthetic:       synth[i],
			OriginalHeight:  Percent(orig[i], maxCount),
			SyntheticHeight: Percent(synth[i], maxCount),
			ShowLabel:       i%2 == 0,
		}
	}
	dc.KLDivergence, dc.JensenShannon = Divergence(orig, synth)
	return dc
}

// Divergence returns the Kullback-Leibler divergence of synthetic from
// original and their Jensen-Shannon divergence, both in nats. Empty or
// all-zero series yield zero.
func Divergence(original, synthetic []float64) (kl, js float64) {
	if len(original) == 0 || len(original) != len(synthetic) {
		return 0, 0
	}
	if floats.Sum(original) == 0 || floats.Sum(synthetic) == 0 {
		return 0, 0
	}
	p := normalize(original)
	q := normalize(synthetic)

	m := make([]float64, len(p))
	floats.AddTo(m, p, q)
	floats.Scale(0.5, m)

	kl = stat.KullbackLeibler(p, q)
	js = 0.5*stat.KullbackLeibler(p, m) + 0.5*stat.KullbackLeibler(q, m)
	return kl, js
}

func normalize(counts []float64) []float64 {
	out := make([]float64, len(counts))
	for i, c := range counts {
		out[i] = c + smoothing
	}
	floats.Scale(1/floats.Sum(out), out)
	return out
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
