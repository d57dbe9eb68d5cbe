package main

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/xuri/excelize/v2"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderWritesSVG(t *testing.T) {
	out, err := execute(t, "render", "timeline.svg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<?xml"))

	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		if _, err := dec.Token(); err != nil {
			assert.Equal(t, "EOF", err.Error())
			break
		}
	}
}

func TestRenderJSONHonoursThreshold(t *testing.T) {
	out, err := execute(t, "render", "timeline", "--json", "--threshold", "85")
	require.NoError(t, err)
	assert.Equal(t, 85.0, gjson.Get(out, "threshold").Float())
}

func TestRenderToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radar.svg")
	_, err := execute(t, "render", "privacy-radar", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestRenderUnknownChart(t *testing.T) {
	_, err := execute(t, "render", "pie")
	assert.Error(t, err)
}

func TestReportWritesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dq.xlsx")
	out, err := execute(t, "report", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "Summary")
}

func TestBadgesTable(t *testing.T) {
	out, err := execute(t, "badges")
	require.NoError(t, err)
	assert.Contains(t, out, "ENUM")
	assert.Contains(t, out, "test_status")
}

func TestBadgesJSON(t *testing.T) {
	out, err := execute(t, "badges", "--json")
	require.NoError(t, err)
	assert.Greater(t, gjson.Get(out, "#").Int(), int64(10))
	assert.Equal(t, "test_status", gjson.Get(out, "0.enum").String())
}

func TestScale(t *testing.T) {
	out, err := execute(t, "scale", "0", "5", "10")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"0", "0"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"5", "50"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"10", "100"}, strings.Fields(lines[3]))

	out, err = execute(t, "scale", "0", "10", "--invert")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "100"}, strings.Fields(strings.Split(out, "\n")[1]))

	out, err = execute(t, "scale", "4", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "degenerate")

	_, err = execute(t, "scale", "abc")
	assert.Error(t, err)
}

func TestDump(t *testing.T) {
	out, err := execute(t, "dump", "team")
	require.NoError(t, err)
	assert.True(t, gjson.Get(out, "members").IsArray())

	_, err = execute(t, "dump", "nope")
	assert.Error(t, err)
}

func TestMigrateRequiresDSN(t *testing.T) {
	t.Setenv("PREFERENCES_DSN", "")
	_, err := execute(t, "migrate", "up")
	assert.ErrorContains(t, err, "dsn")
}

func TestMigrateSQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "prefs.db")

	out, err := execute(t, "migrate", "up", "--dsn", dsn)
	require.NoError(t, err)
	assert.Contains(t, out, "applied 001")

	out, err = execute(t, "migrate", "up", "--dsn", dsn)
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")

	out, err = execute(t, "migrate", "status", "--dsn", dsn)
	require.NoError(t, err)
	assert.Contains(t, out, "true")
}
