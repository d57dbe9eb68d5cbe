package container

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synthml/domain/core"
	"synthml/domain/theme"
	"synthml/internal"
	"synthml/internal/config"
)

func testConfig(driver, dsn string) *config.Config {
	return &config.Config{
		Preferences: config.PreferencesConfig{Driver: driver, DSN: dsn},
		Report:      config.ReportConfig{Concurrency: 2},
		Charts:      config.ChartsConfig{OutlierSeed: 7, QualityThreshold: 80},
	}
}

func quietLogger() *internal.Logger {
	return internal.NewLoggerTo(internal.LogLevelError, "text", io.Discard)
}

func TestNewRejectsNilConfig(t *testing.T) {
	_, err := New(context.Background(), nil, nil)
	assert.Error(t, err)
}

func TestNewWithMemoryStore(t *testing.T) {
	c, err := New(context.Background(), testConfig(config.DriverMemory, ""), quietLogger())
	require.NoError(t, err)
	defer c.Shutdown(context.Background())

	assert.Nil(t, c.DB)
	require.NotNil(t, c.TestKit)
	require.NotNil(t, c.Renderer)
	require.NotNil(t, c.Exporter)

	tl, err := c.Renderer.Timeline()
	require.NoError(t, err)
	assert.Equal(t, 80.0, tl.Threshold)

	visitor := core.NewVisitorID()
	_, err = c.Preferences.SetTheme(context.Background(), visitor, "dark")
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, c.Preferences.Theme(context.Background(), visitor))
}

func TestOutlierSeedChangesPoints(t *testing.T) {
	a, err := New(context.Background(), testConfig(config.DriverMemory, ""), quietLogger())
	require.NoError(t, err)
	cfg := testConfig(config.DriverMemory, "")
	cfg.Charts.OutlierSeed = 8
	b, err := New(context.Background(), cfg, quietLogger())
	require.NoError(t, err)

	pa := a.TestKit.DataQuality().Outliers.Points
	pb := b.TestKit.DataQuality().Outliers.Points
	require.Equal(t, len(pa), len(pb))
	assert.NotEqual(t, pa[0], pb[0])
}

func TestNewWithSQLiteStore(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "prefs.db")
	ctx := context.Background()

	c, err := New(ctx, testConfig(config.DriverSQLite, dsn), quietLogger())
	require.NoError(t, err)
	require.NotNil(t, c.DB)

	visitor := core.NewVisitorID()
	_, err = c.Preferences.SetTheme(ctx, visitor, "system")
	require.NoError(t, err)
	require.NoError(t, c.Shutdown(ctx))

	// Reopening runs no migrations and sees the saved row.
	c, err = New(ctx, testConfig(config.DriverSQLite, dsn), quietLogger())
	require.NoError(t, err)
	defer c.Shutdown(ctx)
	assert.Equal(t, theme.System, c.Preferences.Theme(ctx, visitor))
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, err := New(context.Background(), testConfig("mongo", ""), quietLogger())
	assert.ErrorContains(t, err, "unsupported preferences driver")
}
