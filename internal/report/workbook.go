// Package report builds the downloadable data-quality workbook.
package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"synthml/domain/chart"
	"synthml/internal/testkit"
)

// Sheet names, in workbook order.
const (
	SheetSummary      = "Summary"
	SheetTests        = "Tests"
	SheetCompleteness = "Completeness"
)

// BuildDataQualityReport writes the summary, the test results and the
// per-column completeness into a new workbook. The caller owns the file and
// must Close it.
func BuildDataQualityReport(page testkit.DataQuality) (*excelize.File, error) {
	f := excelize.NewFile()
	ok := false
	defer func() {
		if !ok {
			f.Close()
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("rename default sheet: %w", err)
	}
	for _, name := range []string{SheetTests, SheetCompleteness} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E5E7EB"}},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := writeSummary(f, page.Summary, header); err != nil {
		return nil, err
	}
	if err := writeTests(f, page.Tests, header); err != nil {
		return nil, err
	}
	if err := writeCompleteness(f, page.Completeness, header); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	ok = true
	return f, nil
}

func writeSummary(f *excelize.File, s testkit.QualitySummary, header int) error {
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Dataset", s.DatasetName},
		{"Overall score", s.OverallScore},
		{"Tests run", s.TestsRun},
		{"Passed", s.TestsPassed},
		{"Failed", s.TestsFailed},
		{"Warnings", s.TestsWarning},
		{"Pass rate (%)", chart.PassRate(s.TestsPassed, s.TestsRun)},
		{"Columns", s.ColumnsCount},
		{"Rows", s.RowsCount},
		{"Last run", s.LastRun},
	}
	return writeTable(f, SheetSummary, rows, header, []float64{18, 36})
}

func writeTests(f *excelize.File, tests []testkit.TestResult, header int) error {
	rows := [][]interface{}{{"Test", "Status", "Score", "Runtime", "Affected columns", "Description"}}
	for _, t := range tests {
		var score interface{} = ""
		if t.Score != nil {
			score = *t.Score
		}
		rows = append(rows, []interface{}{
			t.TestName, t.Status.Badge().Label, score, t.Runtime,
			strings.Join(t.AffectedColumns, ", "), t.Description,
		})
	}
	return writeTable(f, SheetTests, rows, header, []float64{30, 10, 8, 10, 40, 60})
}

func writeCompleteness(f *excelize.File, completeness []chart.CompletenessRow, header int) error {
	rows := [][]interface{}{{"Column", "Completeness (%)", "Level", "Issues"}}
	for _, b := range chart.BuildCompleteness(completeness) {
		rows = append(rows, []interface{}{b.Column, b.Percent, string(b.Level), strings.Join(b.Issues, "; ")})
	}
	return writeTable(f, SheetCompleteness, rows, header, []float64{22, 18, 10, 40})
}

func writeTable(f *excelize.File, sheet string, rows [][]interface{}, header int, widths []float64) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	if len(rows) > 0 {
		last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, header); err != nil {
			return fmt.Errorf("style %s header: %w", sheet, err)
		}
	}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}
	return nil
}
