// Package render draws dashboard charts as SVG from the geometry computed
// in domain/chart.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"synthml/domain/chart"
	"synthml/domain/core"
	apperrors "synthml/internal/errors"
	"synthml/internal/testkit"
)

// Chart names accepted by Render and Geometry.
const (
	ChartTimeline       = "timeline"
	ChartCorrelation    = "correlation"
	ChartDistribution   = "distribution"
	ChartOutliers       = "outliers"
	ChartQualityMetrics = "quality-metrics"
	ChartPrivacyRadar   = "privacy-radar"
	ChartResources      = "resources"
)

// Names lists every chart in page order.
func Names() []string {
	return []string{
		ChartTimeline, ChartCorrelation, ChartDistribution, ChartOutliers,
		ChartQualityMetrics, ChartPrivacyRadar, ChartResources,
	}
}

// Renderer turns fixture data into chart geometry and SVG.
type Renderer struct {
	kit       *testkit.TestKit
	threshold float64
}

type Option func(*Renderer)

// WithThreshold sets the quality score the timeline marks as the minimum.
func WithThreshold(t float64) Option { return func(r *Renderer) { r.threshold = t } }

func NewRenderer(kit *testkit.TestKit, opts ...Option) *Renderer {
	r := &Renderer{kit: kit, threshold: chart.DefaultQualityThreshold}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes a standalone SVG document for the named chart using
// default options.
func Render(w io.Writer, name string, kit *testkit.TestKit) error {
	return NewRenderer(kit).Render(w, name)
}

// Normalize strips an optional ".svg" or ".json" suffix from a route
// parameter.
func Normalize(name string) string {
	name = strings.TrimSuffix(name, ".svg")
	return strings.TrimSuffix(name, ".json")
}

// Geometry returns the computed chart model, as served by the JSON API.
func (r *Renderer) Geometry(name string) (any, error) {
	switch Normalize(name) {
	case ChartTimeline:
		return r.Timeline()
	case ChartCorrelation:
		return r.Correlation(), nil
	case ChartDistribution:
		return r.Distribution(), nil
	case ChartOutliers:
		return r.Scatter(), nil
	case ChartQualityMetrics:
		return r.QualityMetrics(), nil
	case ChartPrivacyRadar:
		return r.PrivacyRadar(), nil
	case ChartResources:
		return r.Resources(), nil
	}
	return nil, unknownChart(name)
}

// Render writes the named chart as an SVG document with an XML prolog.
func (r *Renderer) Render(w io.Writer, name string) error {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	if err := r.write(&buf, name); err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return apperrors.Wrapf(err, "write chart %s", name)
	}
	return nil
}

// Inline returns the chart markup for embedding in an HTML page.
func (r *Renderer) Inline(name string) (string, error) {
	var buf bytes.Buffer
	if err := r.write(&buf, name); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) write(buf *bytes.Buffer, name string) error {
	switch Normalize(name) {
	case ChartTimeline:
		tl, err := r.Timeline()
		if err != nil {
			return err
		}
		writeTimeline(buf, tl)
	case ChartCorrelation:
		writeCorrelation(buf, r.Correlation())
	case ChartDistribution:
		writeDistribution(buf, r.Distribution())
	case ChartOutliers:
		writeScatter(buf, r.Scatter())
	case ChartQualityMetrics:
		writeMetricBars(buf, r.QualityMetrics())
	case ChartPrivacyRadar:
		writeRadar(buf, r.PrivacyRadar())
	case ChartResources:
		writeResources(buf, r.Resources())
	default:
		return unknownChart(name)
	}
	return nil
}

func (r *Renderer) Timeline() (chart.Timeline, error) {
	tl, err := chart.BuildTimeline(r.kit.DataQuality().Timeline, r.threshold)
	if err != nil {
		return chart.Timeline{}, apperrors.Wrap(err, "build timeline")
	}
	return tl, nil
}

func (r *Renderer) Correlation() chart.CorrelationGrid {
	return chart.NewCorrelationGrid(r.kit.DataQuality().Correlation)
}

func (r *Renderer) Distribution() chart.DistributionComparison {
	d := r.kit.DataQuality().Distribution
	return chart.CompareDistributions(d.Column, d.Original, d.Synthetic)
}

func (r *Renderer) Scatter() chart.Scatter {
	o := r.kit.DataQuality().Outliers
	return chart.BuildScatter(o.Points, o.XLabel, o.YLabel)
}

func (r *Renderer) QualityMetrics() []chart.MetricBar {
	return chart.BuildMetricBars(r.kit.Overview().QualityMetrics)
}

func (r *Renderer) PrivacyRadar() chart.Radar {
	return chart.BuildRadar(r.kit.Overview().PrivacyRisks)
}

func (r *Renderer) Resources() chart.ResourceChart {
	return chart.BuildResourceChart(r.kit.Monitoring().Resources)
}

func unknownChart(name string) error {
	return apperrors.Wrapf(fmt.Errorf("%w: %s", core.ErrChartNotFound, name), "unknown chart %q", name)
}
