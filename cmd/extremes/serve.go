package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aevon-lab/extremes/internal/ingestion"
	"github.com/aevon-lab/extremes/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the extremes report and series ingestion HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		// 4. Initialize Services
		ingestionSvc := ingestion.NewService(a.store, a.catalog, a.metrics, a.cfg.Server.MaxBodySizeMB)
		reportSvc := a.reportService()

		// 5. Initialize Server
		srv := server.New(fmtAddr(a.cfg.Server.Host, a.cfg.Server.Port), a.store, a.cfg.Server.Mode)
		srv.Register(ingestionSvc, reportSvc)
		if a.metrics != nil {
			srv.MountMetrics(a.cfg.Metrics.Path, a.metrics.Handler())
		}

		// 6. Start Services
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Signal handler → triggers the shutdown sequence below.
		go func() {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			<-quit
			slog.Info("Signal received, shutting down...")
			cancel()
		}()

		// HTTP server blocks until ctx is cancelled.
		if err := srv.Run(ctx); err != nil {
			return err
		}

		slog.Info("Shutdown complete")
		return nil
	},
}
