package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aevon-lab/extremes/internal/catalog"
	corecfg "github.com/aevon-lab/extremes/internal/core/config"
	"github.com/aevon-lab/extremes/internal/core/storage"
	"github.com/aevon-lab/extremes/internal/core/storage/filesystem"
	"github.com/aevon-lab/extremes/internal/core/storage/postgres"
	"github.com/aevon-lab/extremes/internal/metrics"
	"github.com/aevon-lab/extremes/internal/migrations"
	"github.com/aevon-lab/extremes/internal/report"
	"github.com/aevon-lab/extremes/internal/server"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "extremes",
	Short:         "Find and correlate min/max occurrences across related time series.",
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "extremes.yaml", "Path to configuration file")
	rootCmd.AddCommand(serveCmd, reportCmd)
}

// seriesSource is a SeriesStore that can also report its health.
type seriesSource interface {
	storage.SeriesStore
	server.HealthChecker
}

// app holds the components shared by every command.
type app struct {
	cfg     *corecfg.Config
	store   seriesSource
	catalog *catalog.Registry
	metrics *metrics.Manager
	closer  io.Closer
}

// newApp loads the configuration and opens the configured series source.
func newApp() (*app, error) {
	// 1. Load Configuration
	cfg, err := corecfg.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	slog.Info("Loaded config", "source", cfg.Source.Type, "server", fmtAddr(cfg.Server.Host, cfg.Server.Port))

	a := &app{cfg: cfg}
	if cfg.Metrics.Enabled {
		a.metrics = metrics.NewManager()
	}

	// 2. Initialize Storage
	switch cfg.Source.Type {
	case corecfg.SourceFilesystem:
		a.store = filesystem.NewStore(cfg.Source.Path)
	default:
		db, err := postgres.Open(
			cfg.Database.DSN,
			cfg.Database.MaxOpenConns,
			cfg.Database.MaxIdleConns,
		)
		if err != nil {
			return nil, fmt.Errorf("initialize database: %w", err)
		}

		// 2.1. Run Database Migrations
		if err := migrations.RunMigrations(db, cfg.Database.AutoMigrate); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("run database migrations: %w", err)
		}

		dbAdapter, err := postgres.NewAdapterFromDB(db)
		if err != nil {
			return nil, fmt.Errorf("initialize series adapter: %w", err)
		}
		a.store = dbAdapter
		a.closer = dbAdapter
	}

	// 3. Initialize Catalog
	a.catalog = catalog.NewRegistry(a.store, cfg.Report.CacheCapacity, a.metrics)
	return a, nil
}

func (a *app) reportService() *report.Service {
	return report.NewService(a.store, a.catalog,
		report.WithMetrics(a.metrics),
		report.WithWorkers(a.cfg.Engine.Workers),
		report.WithTimeout(a.cfg.Report.TimeoutDuration()),
	)
}

func (a *app) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
