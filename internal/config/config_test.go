package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synthml/internal/errors"
)

var configKeys = []string{
	"PORT", "GIN_MODE", "SHUTDOWN_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT",
	"PREFERENCES_DRIVER", "PREFERENCES_DSN", "ADMIN_HOST", "ADMIN_PORT", "ADMIN_ENABLED",
	"REPORT_CONCURRENCY", "OUTLIER_SEED", "QUALITY_THRESHOLD",
}

func clearEnv(t *testing.T) {
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.GinMode)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, DriverMemory, cfg.Preferences.Driver)
	assert.Equal(t, "6060", cfg.Admin.Port)
	assert.Equal(t, "127.0.0.1:6060", cfg.Admin.Addr())
	assert.True(t, cfg.Admin.Enabled)
	assert.Equal(t, int64(4), cfg.Report.Concurrency)
	assert.Equal(t, int64(42), cfg.Charts.OutlierSeed)
	assert.Equal(t, 70.0, cfg.Charts.QualityThreshold)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("PREFERENCES_DRIVER", "sqlite3")
	t.Setenv("PREFERENCES_DSN", "file:prefs.db")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("REPORT_CONCURRENCY", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, DriverSQLite, cfg.Preferences.Driver)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(4), cfg.Report.Concurrency, "unparseable values fall back to the default")
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"non numeric port", map[string]string{"PORT": "http"}},
		{"unknown gin mode", map[string]string{"GIN_MODE": "verbose"}},
		{"admin port clash", map[string]string{"PORT": "6060"}},
		{"sql driver without dsn", map[string]string{"PREFERENCES_DRIVER": "postgres"}},
		{"unknown driver", map[string]string{"PREFERENCES_DRIVER": "redis"}},
		{"zero concurrency", map[string]string{"REPORT_CONCURRENCY": "0"}},
		{"threshold out of range", map[string]string{"QUALITY_THRESHOLD": "120"}},
		{"unknown log format", map[string]string{"LOG_FORMAT": "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}

func TestAdminAddrOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADMIN_HOST", "0.0.0.0")
	t.Setenv("ADMIN_PORT", "7070")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:7070", cfg.Admin.Addr())
}
