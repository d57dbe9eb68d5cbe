package badge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synthml/domain/core"
)

func TestCatalogMapsEveryValueOnce(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range Catalog() {
		key := e.Enum + "/" + e.Value
		assert.False(t, seen[key], "duplicate entry %s", key)
		seen[key] = true
		assert.NotEmpty(t, e.Badge.Label, key)
		assert.NotEmpty(t, e.Badge.Class, key)
	}
	assert.Len(t, seen, 4+3+3+4+4+5+6+4+3)
}

func TestExplicitLabels(t *testing.T) {
	assert.Equal(t, "Time-series", ModelTimeSeries.Badge().Label)
	assert.Equal(t, "CSV", ExportCSV.Badge().Label)
	assert.Equal(t, "Parquet", ExportParquet.Badge().Label)
	assert.Equal(t, "Connected", SourceConnected.Badge().Label)
	assert.Equal(t, "bg-amber-100 text-amber-800", ExportAPI.Badge().Class)
	assert.Equal(t, "Canceled", JobCanceled.Badge().Label)
	assert.Equal(t, "x-circle", TestFailed.Icon())
}

func TestUnmappedValuesPanic(t *testing.T) {
	assert.Panics(t, func() { TestStatus("skipped").Badge() })
	assert.Panics(t, func() { TestStatus("skipped").Icon() })
	assert.Panics(t, func() { ExportType("xml").Badge() })
	assert.Panics(t, func() { MemberStatus("").Badge() })
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		parse   func(string) (string, error)
		input   string
		want    string
		wantErr bool
	}{
		{"test status", wrap(ParseTestStatus), "passed", "passed", false},
		{"case insensitive", wrap(ParseJobStatus), " Queued ", "queued", false},
		{"hyphenated model type", wrap(ParseModelType), "time-series", "time-series", false},
		{"unknown export type", wrap(ParseExportType), "xml", "", true},
		{"empty member status", wrap(ParseMemberStatus), "", "", true},
		{"source status", wrap(ParseSourceStatus), "error", "error", false},
		{"model status", wrap(ParseModelStatus), "archived", "archived", false},
		{"activity status", wrap(ParseActivityStatus), "done", "", true},
		{"export status", wrap(ParseExportStatus), "scheduled", "scheduled", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, core.ErrInvalidStatus))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func wrap[T ~string](fn func(string) (T, error)) func(string) (string, error) {
	return func(s string) (string, error) {
		v, err := fn(s)
		return string(v), err
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Warning", Capitalize("warning"))
}
