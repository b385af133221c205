package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/kavia-common/gaming-database/internal/bootstrap"
	"github.com/kavia-common/gaming-database/internal/config"
	"github.com/kavia-common/gaming-database/internal/provision"
)

// Standalone one-shot provisioning of the gaming datastore. Safe to run
// any number of times; re-runs converge to the same schema and seed set.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	bootstrap.SetupLogger(cfg)

	result, err := provision.NewService(cfg).Run(context.Background())
	if err != nil {
		// Fire-and-forget provisioning: the failure is visible in logs
		// and in the health endpoint, not in the exit code.
		slog.Error("Provisioning failed", "error", err)
		return
	}

	for _, warning := range result.Warnings {
		slog.Warn("Provisioning warning", "warning", warning)
	}

	slog.Info("Database statistics",
		"tables", result.TableCount,
		"app_info_records", result.AppInfoRows)
	slog.Info("Connection info",
		"connection_string", cfg.DBConnString(),
		"file_path", cfg.DBPath)
}
