package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kavia-common/gaming-database/internal/bootstrap"
	"github.com/kavia-common/gaming-database/internal/config"
	"github.com/kavia-common/gaming-database/internal/health"
	"github.com/kavia-common/gaming-database/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := config.ValidateEnv(); err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	bootstrap.SetupLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}
	for _, warning := range warnings {
		slog.Warn(warning)
	}

	// Provision the database before serving. Failure is logged, not
	// fatal: the endpoint reports unhealthy until the store is usable.
	bootstrap.EnsureDatabase(context.Background(), cfg)

	checker := health.NewFileChecker(cfg.DBPath)
	srv := server.NewServer(cfg, checker)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	// signal.Notify requires the channel to be buffered
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	slog.Info("Health server ready", "port", cfg.Port, "db_path", cfg.DBPath)

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	case sig := <-quit:
		slog.Info("Received signal", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{Server: srv})
	}
}
