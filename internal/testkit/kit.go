// Package testkit holds the mock datasets behind every dashboard page.
// Fixtures are embedded YAML, validated once at load time.
package testkit

import (
	"bytes"
	"embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"synthml/domain/badge"
	"synthml/domain/chart"
	"synthml/domain/core"
)

//go:embed fixtures/*.yaml
var fixtureFS embed.FS

// TestKit provides the loaded page fixtures
type TestKit struct {
	marketing   Marketing
	overview    Overview
	dataQuality DataQuality
	dataSources DataSources
	models      Models
	monitoring  Monitoring
	exports     Exports
	team        Team
	settings    Settings
}

// NewTestKit loads fixtures with the default outlier generator settings
func NewTestKit() (*TestKit, error) {
	return NewTestKitWithConfig(DefaultOutlierConfig())
}

// NewTestKitWithConfig loads and validates every fixture file and generates
// the outlier scatter points.
func NewTestKitWithConfig(outliers OutlierGeneratorConfig) (*TestKit, error) {
	k := &TestKit{}
	files := []struct {
		name string
		dst  any
	}{
		{"marketing.yaml", &k.marketing},
		{"overview.yaml", &k.overview},
		{"data_quality.yaml", &k.dataQuality},
		{"data_sources.yaml", &k.dataSources},
		{"models.yaml", &k.models},
		{"monitoring.yaml", &k.monitoring},
		{"exports.yaml", &k.exports},
		{"team.yaml", &k.team},
		{"settings.yaml", &k.settings},
	}
	for _, f := range files {
		if err := loadFixture(f.name, f.dst); err != nil {
			return nil, err
		}
	}
	if err := k.validate(); err != nil {
		return nil, err
	}

	gen := NewOutlierGenerator(outliers)
	k.dataQuality.Outliers.Points = gen.Generate(k.dataQuality.Outliers.Fixed...)
	return k, nil
}

// MustNewTestKit is NewTestKit for callers where fixtures failing to load is
// a build defect.
func MustNewTestKit() *TestKit {
	k, err := NewTestKit()
	if err != nil {
		panic(err)
	}
	return k
}

func loadFixture(name string, dst any) error {
	data, err := fixtureFS.ReadFile("fixtures/" + name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %s: %v", core.ErrInvalidFixture, name, err)
	}
	return nil
}

// The page accessors below share the loaded fixtures with every caller and
// must be treated as read-only. DataQuality and TestsByStatus return copies.
func (k *TestKit) Marketing() Marketing     { return k.marketing }
func (k *TestKit) Overview() Overview       { return k.overview }
func (k *TestKit) DataQuality() DataQuality { return k.dataQuality.clone() }
func (k *TestKit) DataSources() DataSources { return k.dataSources }
func (k *TestKit) Models() Models           { return k.models }
func (k *TestKit) Monitoring() Monitoring   { return k.monitoring }
func (k *TestKit) Exports() Exports         { return k.exports }
func (k *TestKit) Team() Team               { return k.team }
func (k *TestKit) Settings() Settings       { return k.settings }

// TestsByStatus filters the data-quality tests. An empty status returns all.
func (k *TestKit) TestsByStatus(status badge.TestStatus) []TestResult {
	if status == "" {
		return cloneTests(k.dataQuality.Tests)
	}
	var out []TestResult
	for _, t := range k.dataQuality.Tests {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return cloneTests(out)
}

// ModelsByType groups models in the order types are declared.
func (k *TestKit) ModelsByType() map[badge.ModelType][]Model {
	out := make(map[badge.ModelType][]Model)
	for _, m := range k.models.Models {
		out[m.Type] = append(out[m.Type], m)
	}
	return out
}

// validate re-parses every enum field and the timeline dates so a typo in a
// fixture fails at startup rather than panicking in a template. Parsed enum
// values are written back, so a fixture spelling like "Passed" is stored in
// its canonical form.
func (k *TestKit) validate() error {
	for i := range k.overview.Activity {
		a := &k.overview.Activity[i]
		st, err := badge.ParseActivityStatus(string(a.Status))
		if err != nil {
			return fieldError(fmt.Sprintf("overview.activity[%d].status", i), err)
		}
		a.Status = st
	}

	dq := &k.dataQuality
	for i := range dq.Tests {
		st, err := badge.ParseTestStatus(string(dq.Tests[i].Status))
		if err != nil {
			return fieldError(fmt.Sprintf("dataQuality.tests[%d].status", i), err)
		}
		dq.Tests[i].Status = st
	}
	for i, r := range dq.Completeness {
		if r.Completeness < 0 || r.Completeness > 1 {
			return core.NewValidationError(fmt.Sprintf("dataQuality.completeness[%d]", i), "completeness must be within [0, 1]")
		}
	}
	if len(dq.Distribution.Original) != len(dq.Distribution.Synthetic) {
		return core.NewValidationError("dataQuality.distribution", "original and synthetic bin counts differ")
	}
	for i, row := range dq.Correlation.Matrix {
		if len(row) != len(dq.Correlation.Columns) {
			return core.NewValidationError(fmt.Sprintf("dataQuality.correlation.matrix[%d]", i), "row length does not match columns")
		}
	}
	if _, err := chart.BuildTimeline(dq.Timeline, chart.DefaultQualityThreshold); err != nil {
		return fieldError("dataQuality.timeline", err)
	}

	for i := range k.dataSources.Sources {
		s := &k.dataSources.Sources[i]
		st, err := badge.ParseSourceStatus(string(s.Status))
		if err != nil {
			return fieldError(fmt.Sprintf("dataSources.sources[%d].status", i), err)
		}
		s.Status = st
	}
	for i := range k.models.Models {
		m := &k.models.Models[i]
		st, err := badge.ParseModelStatus(string(m.Status))
		if err != nil {
			return fieldError(fmt.Sprintf("models[%d].status", i), err)
		}
		typ, err := badge.ParseModelType(string(m.Type))
		if err != nil {
			return fieldError(fmt.Sprintf("models[%d].type", i), err)
		}
		m.Status, m.Type = st, typ
	}
	for _, jobs := range [][]Job{k.monitoring.ActiveJobs, k.monitoring.CompletedJobs} {
		for i := range jobs {
			st, err := badge.ParseJobStatus(string(jobs[i].Status))
			if err != nil {
				return fieldError("monitoring.jobs["+jobs[i].ID+"].status", err)
			}
			jobs[i].Status = st
		}
	}
	for i := range k.exports.Recent {
		e := &k.exports.Recent[i]
		typ, err := badge.ParseExportType(string(e.Type))
		if err != nil {
			return fieldError("exports.recent["+e.ID+"].type", err)
		}
		st, err := badge.ParseExportStatus(string(e.Status))
		if err != nil {
			return fieldError("exports.recent["+e.ID+"].status", err)
		}
		e.Type, e.Status = typ, st
	}
	for i := range k.exports.Scheduled {
		s := &k.exports.Scheduled[i]
		typ, err := badge.ParseExportType(string(s.Type))
		if err != nil {
			return fieldError("exports.scheduled["+s.ID+"].type", err)
		}
		s.Type = typ
	}
	for i := range k.team.Members {
		m := &k.team.Members[i]
		st, err := badge.ParseMemberStatus(string(m.Status))
		if err != nil {
			return fieldError(fmt.Sprintf("team.members[%d].status", i), err)
		}
		m.Status = st
	}
	return nil
}

func (dq DataQuality) clone() DataQuality {
	dq.Tests = cloneTests(dq.Tests)
	dq.Completeness = slices.Clone(dq.Completeness)
	for i := range dq.Completeness {
		dq.Completeness[i].Issues = slices.Clone(dq.Completeness[i].Issues)
	}
	dq.Distribution.Original = slices.Clone(dq.Distribution.Original)
	dq.Distribution.Synthetic = slices.Clone(dq.Distribution.Synthetic)
	dq.Correlation.Columns = slices.Clone(dq.Correlation.Columns)
	if dq.Correlation.Matrix != nil {
		rows := make([][]float64, len(dq.Correlation.Matrix))
		for i, row := range dq.Correlation.Matrix {
			rows[i] = slices.Clone(row)
		}
		dq.Correlation.Matrix = rows
	}
	dq.Timeline = slices.Clone(dq.Timeline)
	dq.Outliers.Fixed = slices.Clone(dq.Outliers.Fixed)
	dq.Outliers.Points = slices.Clone(dq.Outliers.Points)
	return dq
}

func cloneTests(tests []TestResult) []TestResult {
	out := slices.Clone(tests)
	for i := range out {
		out[i].AffectedColumns = slices.Clone(out[i].AffectedColumns)
		if out[i].Score != nil {
			score := *out[i].Score
			out[i].Score = &score
		}
	}
	return out
}

func fieldError(field string, err error) error {
	return fmt.Errorf("%w: %s: %v", core.ErrInvalidFixture, field, err)
}
