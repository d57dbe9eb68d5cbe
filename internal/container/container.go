// Package container wires configuration into the services the web server
// and the CLI share, and owns their lifecycle.
package container

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"synthml/adapters/memory"
	"synthml/adapters/sqldb"
	"synthml/adapters/sqldb/migrations"
	"synthml/internal"
	"synthml/internal/config"
	"synthml/internal/metrics"
	"synthml/internal/preferences"
	"synthml/internal/render"
	"synthml/internal/report"
	"synthml/internal/testkit"
	"synthml/ports"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Infrastructure
	DB      *sqlx.DB
	Metrics *metrics.Recorder

	// Preference storage
	PreferenceRepo ports.PreferenceRepository
	Preferences    *preferences.Service

	// Mock data and everything derived from it
	TestKit  *testkit.TestKit
	Renderer *render.Renderer
	Exporter *report.Exporter
}

// New builds every component. The preference store is opened and migrated
// here, so New fails fast on a bad DSN.
func New(ctx context.Context, cfg *config.Config, logger *internal.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}

	c := &Container{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.NewRecorder(),
	}

	if err := c.initTestKit(); err != nil {
		return nil, err
	}
	if err := c.initPreferences(ctx); err != nil {
		return nil, err
	}

	c.Renderer = render.NewRenderer(c.TestKit, render.WithThreshold(cfg.Charts.QualityThreshold))
	c.Exporter = report.NewExporter(c.TestKit, cfg.Report.Concurrency, c.Metrics, logger)

	logger.Debug("container initialized (preferences: %s)", cfg.Preferences.Driver)
	return c, nil
}

// initTestKit loads the fixtures with the configured outlier seed
func (c *Container) initTestKit() error {
	outliers := testkit.DefaultOutlierConfig()
	outliers.Seed = c.Config.Charts.OutlierSeed

	kit, err := testkit.NewTestKitWithConfig(outliers)
	if err != nil {
		return fmt.Errorf("failed to load test kit: %w", err)
	}
	c.TestKit = kit
	return nil
}

// initPreferences selects the preference repository for the configured driver
func (c *Container) initPreferences(ctx context.Context) error {
	switch c.Config.Preferences.Driver {
	case config.DriverMemory:
		c.PreferenceRepo = memory.NewPreferenceRepository()
	case config.DriverSQLite, config.DriverPostgres:
		db, err := sqldb.Open(ctx, c.Config.Preferences.Driver, c.Config.Preferences.DSN)
		if err != nil {
			return err
		}
		applied, err := migrations.NewMigrator(db).Up(ctx)
		if err != nil {
			db.Close()
			return fmt.Errorf("preference store migration failed: %w", err)
		}
		if len(applied) > 0 {
			c.Logger.Info("applied %d preference store migrations: %v", len(applied), applied)
		}
		c.DB = db
		c.PreferenceRepo = sqldb.NewPreferenceRepository(db)
	default:
		return fmt.Errorf("unsupported preferences driver %q", c.Config.Preferences.Driver)
	}

	c.Preferences = preferences.NewService(c.PreferenceRepo, c.Metrics, c.Logger)
	return nil
}

// Shutdown releases the preference store
func (c *Container) Shutdown(ctx context.Context) error {
	if c.Preferences != nil {
		return c.Preferences.Close()
	}
	return nil
}
