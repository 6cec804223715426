package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elizabethaxley/astrobotany/internal/server"
)

// GracefulShutdown stops the HTTP server, then closes the database
// pool once in-flight requests have drained. Errors during shutdown
// are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, srv *server.Server, dbPool *pgxpool.Pool) {
	slog.Info(LogMsgShuttingDownServer)

	if err := srv.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	dbPool.Close()

	slog.Info(LogMsgServerStopped)
}
