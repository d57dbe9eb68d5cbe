package report

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "synthml/internal/errors"
	"synthml/internal/testkit"
)

type mockObserver struct {
	mock.Mock
}

func (m *mockObserver) ReportExported(result string) { m.Called(result) }
func (m *mockObserver) ReportStarted()               { m.Called() }
func (m *mockObserver) ReportFinished()              { m.Called() }

func TestBuildDataQualityReport(t *testing.T) {
	kit := testkit.MustNewTestKit()

	f, err := BuildDataQualityReport(kit.DataQuality())
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetTests, SheetCompleteness}, f.GetSheetList())

	summary, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dataset", "Customer Transactions Dataset"}, summary[1])
	assert.Equal(t, []string{"Pass rate (%)", "75"}, summary[7])

	tests, err := f.GetRows(SheetTests)
	require.NoError(t, err)
	require.Len(t, tests, 7)
	assert.Equal(t, "Column Format Validation", tests[3][0])
	assert.Equal(t, "Failed", tests[3][1])
	assert.Equal(t, "43", tests[3][2])
	assert.Equal(t, "email, phone_number", tests[3][4])

	completeness, err := f.GetRows(SheetCompleteness)
	require.NoError(t, err)
	require.Len(t, completeness, 13)
	// lowest completeness first
	assert.Equal(t, []string{"phone_number", "72", "warning"}, completeness[1][:3])
	last := completeness[len(completeness)-1]
	assert.Equal(t, "100", last[1])
}

func TestBuildReportWithoutScore(t *testing.T) {
	page := testkit.DataQuality{
		Tests: []testkit.TestResult{{TestName: "Pending", Status: "running"}},
	}
	f, err := BuildDataQualityReport(page)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetTests)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pending", "Running"}, rows[1][:2])
}

func TestExportWritesWorkbook(t *testing.T) {
	obs := new(mockObserver)
	obs.On("ReportStarted").Once()
	obs.On("ReportFinished").Once()
	obs.On("ReportExported", resultOK).Once()

	e := NewExporter(testkit.MustNewTestKit(), 2, obs, nil)
	var buf bytes.Buffer
	require.NoError(t, e.Export(context.Background(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 3)
	obs.AssertExpectations(t)
}

func TestExportRejectsWhenSaturated(t *testing.T) {
	obs := new(mockObserver)
	obs.On("ReportExported", resultRejected).Once()

	e := NewExporter(testkit.MustNewTestKit(), 1, obs, nil)
	require.NoError(t, e.sem.Acquire(context.Background(), 1))
	defer e.sem.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := e.Export(ctx, &buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, apperrors.CodeUnavailable, apperrors.GetCode(err))
	assert.Equal(t, 503, apperrors.HTTPStatus(err))
	assert.Zero(t, buf.Len())
	obs.AssertExpectations(t)
	obs.AssertNotCalled(t, "ReportStarted")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("client went away") }

func TestExportWriteFailure(t *testing.T) {
	obs := new(mockObserver)
	obs.On("ReportStarted")
	obs.On("ReportFinished")
	obs.On("ReportExported", resultError).Once()

	e := NewExporter(testkit.MustNewTestKit(), 0, obs, nil)
	err := e.Export(context.Background(), failingWriter{})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInternalError, apperrors.GetCode(err))
	obs.AssertExpectations(t)
}

func TestNewExporterDefaultsConcurrency(t *testing.T) {
	e := NewExporter(testkit.MustNewTestKit(), 0, nil, nil)
	assert.True(t, e.sem.TryAcquire(DefaultConcurrency))
	assert.False(t, e.sem.TryAcquire(1))
}
