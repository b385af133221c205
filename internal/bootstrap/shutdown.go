package bootstrap

import (
	"context"
	"log/slog"

	"github.com/kavia-common/gaming-database/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
}

// GracefulShutdown stops the HTTP server, letting in-flight requests
// finish within the context's deadline. Errors are logged but do not stop
// the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	slog.Info(LogMsgServerStopped)
}
