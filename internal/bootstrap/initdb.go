package bootstrap

import (
	"context"
	"log/slog"
	"os"

	"github.com/kavia-common/gaming-database/internal/config"
	"github.com/kavia-common/gaming-database/internal/provision"
)

// EnsureDatabase provisions the database when the file is missing or
// empty. Failures are logged, not returned: the health endpoint must
// still come up and report unhealthy when initialization truly failed.
func EnsureDatabase(ctx context.Context, cfg *config.Config) {
	info, err := os.Stat(cfg.DBPath)
	if err == nil && info.Size() > 0 {
		slog.Info("Database already present", "path", cfg.DBPath, "size", info.Size())
		return
	}

	slog.Info("Database missing or empty, provisioning", "path", cfg.DBPath)
	result, err := provision.NewService(cfg).Run(ctx)
	if err != nil {
		slog.Error("Database initialization failed", "error", err)
		return
	}

	for _, warning := range result.Warnings {
		slog.Warn("Provisioning warning", "warning", warning)
	}
	slog.Info("Database provisioned",
		"tables", result.TableCount,
		"app_info_records", result.AppInfoRows)
}
