package config

import (
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"synthml/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server      ServerConfig
	Logging     LoggingConfig
	Preferences PreferencesConfig
	Admin       AdminConfig
	Report      ReportConfig
	Charts      ChartsConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration
}

// LoggingConfig selects verbosity and encoding of the process logger
type LoggingConfig struct {
	Level  string
	Format string
}

// PreferencesConfig selects where theme preferences are stored
type PreferencesConfig struct {
	Driver string
	DSN    string
}

// AdminConfig holds the pprof/metrics listener settings. Host defaults to
// loopback.
type AdminConfig struct {
	Host    string
	Port    string
	Enabled bool
}

// Addr is the admin listen address.
func (c AdminConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// ReportConfig bounds spreadsheet export work
type ReportConfig struct {
	Concurrency int64
}

// ChartsConfig tunes the mock chart data
type ChartsConfig struct {
	OutlierSeed      int64
	QualityThreshold float64
}

// Preference store drivers
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:      *loadServerConfig(),
		Logging:     *loadLoggingConfig(),
		Preferences: *loadPreferencesConfig(),
		Admin:       *loadAdminConfig(),
		Report:      ReportConfig{Concurrency: int64(getEnvIntOrDefault("REPORT_CONCURRENCY", 4))},
		Charts: ChartsConfig{
			OutlierSeed:      int64(getEnvIntOrDefault("OUTLIER_SEED", 42)),
			QualityThreshold: getEnvFloatOrDefault("QUALITY_THRESHOLD", 70),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:            getEnvOrDefault("PORT", "8080"),
		GinMode:         getEnvOrDefault("GIN_MODE", "debug"),
		ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func loadLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level:  strings.ToUpper(getEnvOrDefault("LOG_LEVEL", "INFO")),
		Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text")),
	}
}

func loadPreferencesConfig() *PreferencesConfig {
	return &PreferencesConfig{
		Driver: strings.ToLower(getEnvOrDefault("PREFERENCES_DRIVER", DriverMemory)),
		DSN:    getEnvOrDefault("PREFERENCES_DSN", ""),
	}
}

func loadAdminConfig() *AdminConfig {
	return &AdminConfig{
		Host:    getEnvOrDefault("ADMIN_HOST", "127.0.0.1"),
		Port:    getEnvOrDefault("ADMIN_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("ADMIN_ENABLED", true),
	}
}

func validateConfig(config *Config) error {
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid("PORT must be numeric, got " + strconv.Quote(config.Server.Port))
	}
	switch config.Server.GinMode {
	case "debug", "release", "test":
	default:
		return errors.ConfigInvalid("GIN_MODE must be debug, release or test")
	}
	if config.Admin.Enabled {
		if _, err := strconv.Atoi(config.Admin.Port); err != nil {
			return errors.ConfigInvalid("ADMIN_PORT must be numeric")
		}
		if config.Admin.Port == config.Server.Port {
			return errors.ConfigInvalid("ADMIN_PORT must differ from PORT")
		}
	}
	switch config.Logging.Format {
	case "text", "json":
	default:
		return errors.ConfigInvalid("LOG_FORMAT must be text or json")
	}
	switch config.Preferences.Driver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if config.Preferences.DSN == "" {
			return errors.ConfigInvalid("PREFERENCES_DSN is required for driver " + config.Preferences.Driver)
		}
	default:
		return errors.ConfigInvalid("PREFERENCES_DRIVER must be memory, sqlite3 or postgres")
	}
	if config.Report.Concurrency < 1 {
		return errors.ConfigInvalid("REPORT_CONCURRENCY must be at least 1")
	}
	if t := config.Charts.QualityThreshold; t < 0 || t > 100 {
		return errors.ConfigInvalid("QUALITY_THRESHOLD must be within 0..100")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
