package testkit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synthml/domain/badge"
	"synthml/domain/core"
)

func TestNewTestKitLoadsEveryPage(t *testing.T) {
	kit, err := NewTestKit()
	require.NoError(t, err)

	dq := kit.DataQuality()
	assert.Equal(t, "Customer Transactions Dataset", dq.Summary.DatasetName)
	assert.Len(t, dq.Tests, 6)
	assert.Len(t, dq.Completeness, 12)
	assert.Len(t, dq.Timeline, 9)
	assert.Len(t, dq.Correlation.Columns, 6)
	assert.Len(t, dq.Distribution.Original, 6)
	assert.Equal(t, "Amount ($)", dq.Outliers.XLabel)
	assert.Len(t, dq.Outliers.Points, 103)

	assert.Len(t, kit.Marketing().Plans, 3)
	assert.Len(t, kit.Marketing().Steps, 4)
	assert.Len(t, kit.Overview().QualityMetrics, 6)
	assert.Len(t, kit.Overview().PrivacyRisks, 6)
	assert.Len(t, kit.DataSources().Sources, 5)
	assert.Len(t, kit.DataSources().Connectors, 6)
	assert.Len(t, kit.Models().Models, 6)
	assert.Equal(t, 300, kit.Models().Form.Epochs)
	assert.Len(t, kit.Monitoring().ActiveJobs, 3)
	assert.Len(t, kit.Monitoring().CompletedJobs, 5)
	assert.Len(t, kit.Monitoring().Resources, 24)
	assert.Len(t, kit.Exports().Recent, 5)
	assert.Len(t, kit.Exports().Scheduled, 3)
	assert.Len(t, kit.Team().Members, 6)
	assert.Len(t, kit.Team().Permissions, 5)
	assert.Len(t, kit.Settings().Tabs, 8)
}

func TestOptionalScoreDecodes(t *testing.T) {
	kit := MustNewTestKit()
	for _, tr := range kit.DataQuality().Tests {
		require.NotNil(t, tr.Score, tr.TestName)
	}
	assert.Equal(t, 43.0, *kit.DataQuality().Tests[2].Score)
}

func TestEveryFixtureEnumHasABadge(t *testing.T) {
	kit := MustNewTestKit()
	assert.NotPanics(t, func() {
		for _, tr := range kit.DataQuality().Tests {
			_ = tr.Status.Badge()
		}
		for _, a := range kit.Overview().Activity {
			_ = a.Status.Badge()
		}
		for _, s := range kit.DataSources().Sources {
			_ = s.Status.Badge()
		}
		for _, m := range kit.Models().Models {
			_ = m.Status.Badge()
			_ = m.Type.Badge()
		}
		for _, j := range kit.Monitoring().ActiveJobs {
			_ = j.Status.Badge()
		}
		for _, e := range kit.Exports().Recent {
			_ = e.Type.Badge()
			_ = e.Status.Badge()
		}
		for _, m := range kit.Team().Members {
			_ = m.Status.Badge()
		}
	})
}

func TestTestsByStatus(t *testing.T) {
	kit := MustNewTestKit()

	tests := []struct {
		status badge.TestStatus
		want   int
	}{
		{"", 6},
		{badge.TestPassed, 3},
		{badge.TestWarning, 2},
		{badge.TestFailed, 1},
		{badge.TestRunning, 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got := kit.TestsByStatus(tt.status)
			assert.Len(t, got, tt.want)
			for _, r := range got {
				if tt.status != "" {
					assert.Equal(t, tt.status, r.Status)
				}
			}
		})
	}
}

func TestModelsByType(t *testing.T) {
	groups := MustNewTestKit().ModelsByType()
	assert.Len(t, groups[badge.ModelTabular], 3)
	assert.Len(t, groups[badge.ModelTimeSeries], 1)
	assert.Len(t, groups[badge.ModelText], 1)
	assert.Len(t, groups[badge.ModelImage], 1)
}

func TestValidateRejectsUnknownEnum(t *testing.T) {
	kit := MustNewTestKit()
	kit.models.Models = append([]Model{}, kit.models.Models...)
	kit.models.Models[0].Status = "retired"

	err := kit.validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidFixture))
	assert.True(t, core.IsValidationError(err))
	assert.Contains(t, err.Error(), "models[0].status")
}

func TestValidateRejectsBadTimelineDate(t *testing.T) {
	kit := MustNewTestKit()
	kit.dataQuality.Timeline = append(kit.dataQuality.Timeline[:0:0], kit.dataQuality.Timeline...)
	kit.dataQuality.Timeline[0].Date = "Feb 1"

	err := kit.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidFixture)
}

func TestValidateRejectsRaggedCorrelation(t *testing.T) {
	kit := MustNewTestKit()
	kit.dataQuality.Correlation.Matrix = [][]float64{{1, 0.5}}

	assert.ErrorIs(t, kit.validate(), core.ErrInvalidFixture)
}

func TestLoadFixtureRejectsUnknownFields(t *testing.T) {
	var dst struct {
		Name string `yaml:"name"`
	}
	err := loadFixture("team.yaml", &dst)
	assert.ErrorIs(t, err, core.ErrInvalidFixture)

	err = loadFixture("missing.yaml", &dst)
	assert.Error(t, err)
}

func TestValidateCanonicalizesEnumSpelling(t *testing.T) {
	kit := MustNewTestKit()
	kit.dataQuality.Tests[0].Status = "Passed"
	kit.dataQuality.Tests[1].Status = " failed "
	kit.models.Models[0].Type = "Time-Series"
	kit.monitoring.CompletedJobs[0].Status = "COMPLETED"
	kit.exports.Recent[0].Type = "Csv"
	kit.team.Members[0].Status = "Active"

	require.NoError(t, kit.validate())

	assert.Equal(t, badge.TestPassed, kit.dataQuality.Tests[0].Status)
	assert.Equal(t, badge.TestFailed, kit.dataQuality.Tests[1].Status)
	assert.Equal(t, badge.ModelTimeSeries, kit.models.Models[0].Type)
	assert.Equal(t, badge.JobCompleted, kit.monitoring.CompletedJobs[0].Status)
	assert.Equal(t, badge.ExportCSV, kit.exports.Recent[0].Type)
	assert.Equal(t, badge.MemberActive, kit.team.Members[0].Status)
	assert.NotPanics(t, func() {
		_ = kit.dataQuality.Tests[0].Status.Badge()
		_ = kit.dataQuality.Tests[1].Status.Badge()
		_ = kit.models.Models[0].Type.Badge()
	})
}

func TestDataQualityAccessorsReturnCopies(t *testing.T) {
	kit := MustNewTestKit()
	want := kit.DataQuality().Tests[0]

	all := kit.TestsByStatus("")
	all[0].Status = badge.TestFailed
	all[0].AffectedColumns = append(all[0].AffectedColumns[:0], "mutated")

	dq := kit.DataQuality()
	dq.Tests[0].TestName = "mutated"
	dq.Correlation.Matrix[0][0] = -1
	dq.Outliers.Points[0].X = -1

	passed := kit.TestsByStatus(badge.TestPassed)
	require.NotEmpty(t, passed)
	*passed[0].Score = -1

	fresh := kit.DataQuality()
	assert.Equal(t, want, fresh.Tests[0])
	assert.Equal(t, 1.0, fresh.Correlation.Matrix[0][0])
	assert.NotEqual(t, -1.0, fresh.Outliers.Points[0].X)
	assert.NotEqual(t, -1.0, *kit.TestsByStatus(badge.TestPassed)[0].Score)
}
