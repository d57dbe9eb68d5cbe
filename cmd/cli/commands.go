package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"synthml/adapters/sqldb"
	"synthml/adapters/sqldb/migrations"
	"synthml/app"
	"synthml/domain/badge"
	"synthml/domain/chart"
	"synthml/internal"
	"synthml/internal/config"
	"synthml/internal/render"
	"synthml/internal/report"
	"synthml/internal/testkit"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "synthml",
		Short:         "SynthML CLI for rendering charts, reports and fixtures offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newRenderCmd(),
		newReportCmd(),
		newBadgesCmd(),
		newScaleCmd(),
		newDumpCmd(),
		newMigrateCmd(),
	)
	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard server, configured from the environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := internal.NewLoggerTo(internal.ParseLogLevel(cfg.Logging.Level), cfg.Logging.Format, cmd.ErrOrStderr())
			internal.DefaultLogger = logger
			defer logger.Sync()
			gin.SetMode(cfg.Server.GinMode)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx, cfg, logger)
		},
	}
}

// output opens path for writing, or returns the command's stdout for "-"
// and "". The returned close func is always safe to call.
func output(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, f.Close, nil
}

func loadKit(seed int64) (*testkit.TestKit, error) {
	cfg := testkit.DefaultOutlierConfig()
	cfg.Seed = seed
	return testkit.NewTestKitWithConfig(cfg)
}

func newRenderCmd() *cobra.Command {
	var (
		out       string
		seed      int64
		threshold float64
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "render <chart>",
		Short: "Render a dashboard chart as SVG or JSON geometry",
		Long: `Render one of the dashboard charts from the mock data.

Example: synthml render timeline -o timeline.svg`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: render.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kit, err := loadKit(seed)
			if err != nil {
				return err
			}
			r := render.NewRenderer(kit, render.WithThreshold(threshold))
			name := render.Normalize(args[0])

			w, closeFn, err := output(cmd, out)
			if err != nil {
				return err
			}
			defer closeFn()

			if asJSON {
				geometry, err := r.Geometry(name)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				if err := enc.Encode(geometry); err != nil {
					return err
				}
				return closeFn()
			}
			if err := r.Render(w, name); err != nil {
				return err
			}
			return closeFn()
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "-", "Output file, - for stdout")
	cmd.Flags().Int64Var(&seed, "seed", testkit.DefaultOutlierConfig().Seed, "Seed for the generated outlier points")
	cmd.Flags().Float64Var(&threshold, "threshold", chart.DefaultQualityThreshold, "Quality score threshold marked on the timeline")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print chart geometry as JSON instead of SVG")

	return cmd
}

func newReportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the data-quality workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kit, err := testkit.NewTestKit()
			if err != nil {
				return err
			}
			w, closeFn, err := output(cmd, out)
			if err != nil {
				return err
			}
			defer closeFn()

			if err := report.NewExporter(kit, 1, nil, nil).Export(cmd.Context(), w); err != nil {
				return err
			}
			if err := closeFn(); err != nil {
				return err
			}
			if out != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "data-quality.xlsx", "Output file, - for stdout")
	return cmd
}

func newBadgesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "badges",
		Short: "List every status value with its badge label and classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := badge.Catalog()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ENUM\tVALUE\tLABEL\tCLASS")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Enum, e.Value, e.Badge.Label, e.Badge.Class)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func newScaleCmd() *cobra.Command {
	var (
		padding float64
		invert  bool
	)

	cmd := &cobra.Command{
		Use:   "scale <values...>",
		Short: "Map values onto the 0..100 chart viewport",
		Long: `Scale values the way the charts do: min to 0, max to 100.

Example: synthml scale 3 7 11 --padding 0.1 --invert`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]float64, len(args))
			for i, a := range args {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("invalid value %q: %w", a, err)
				}
				values[i] = v
			}

			opts := []chart.ScaleOption{chart.WithPadding(padding)}
			if invert {
				opts = append(opts, chart.Inverted())
			}
			s := chart.NewLinearScale(values, opts...)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VALUE\tPOSITION")
			for i, v := range values {
				fmt.Fprintf(tw, "%s\t%s\n", args[i], chart.FormatCoord(s.Scale(v)))
			}
			if s.Degenerate() {
				fmt.Fprintln(tw, "(degenerate domain: every value maps to the midpoint)")
			}
			return tw.Flush()
		},
	}

	cmd.Flags().Float64Var(&padding, "padding", 0, "Widen the domain by this ratio of its range on each side")
	cmd.Flags().BoolVar(&invert, "invert", false, "Map the maximum to 0 instead of 100 (SVG y axis)")
	return cmd
}

func newDumpCmd() *cobra.Command {
	pages := map[string]func(*testkit.TestKit) any{
		"marketing":    func(k *testkit.TestKit) any { return k.Marketing() },
		"overview":     func(k *testkit.TestKit) any { return k.Overview() },
		"data-quality": func(k *testkit.TestKit) any { return k.DataQuality() },
		"data-sources": func(k *testkit.TestKit) any { return k.DataSources() },
		"models":       func(k *testkit.TestKit) any { return k.Models() },
		"monitoring":   func(k *testkit.TestKit) any { return k.Monitoring() },
		"exports":      func(k *testkit.TestKit) any { return k.Exports() },
		"team":         func(k *testkit.TestKit) any { return k.Team() },
		"settings":     func(k *testkit.TestKit) any { return k.Settings() },
	}

	cmd := &cobra.Command{
		Use:   "dump <page>",
		Short: "Print the mock data behind a page as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			get, ok := pages[args[0]]
			if !ok {
				return fmt.Errorf("unknown page %q", args[0])
			}
			kit, err := testkit.NewTestKit()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(get(kit))
		},
	}
	return cmd
}

func newMigrateCmd() *cobra.Command {
	var driver, dsn string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect the preference store schema",
	}
	cmd.PersistentFlags().StringVar(&driver, "driver", "sqlite3", "Database driver: sqlite3 or postgres")
	cmd.PersistentFlags().StringVar(&dsn, "dsn", os.Getenv("PREFERENCES_DSN"), "Database DSN")

	withMigrator := func(ctx context.Context, fn func(*migrations.Migrator) error) error {
		if dsn == "" {
			return fmt.Errorf("--dsn or PREFERENCES_DSN is required")
		}
		db, err := sqldb.Open(ctx, driver, dsn)
		if err != nil {
			return err
		}
		defer db.Close()
		return fn(migrations.NewMigrator(db))
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd.Context(), func(m *migrations.Migrator) error {
				applied, err := m.Up(cmd.Context())
				for _, v := range applied {
					fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", v)
				}
				if err == nil && len(applied) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
				}
				return err
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they have run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd.Context(), func(m *migrations.Migrator) error {
				statuses, err := m.Status(cmd.Context())
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "VERSION\tNAME\tAPPLIED")
				for _, s := range statuses {
					fmt.Fprintf(tw, "%s\t%s\t%t\n", s.Version, s.Name, s.Applied)
				}
				return tw.Flush()
			})
		},
	})
	return cmd
}
