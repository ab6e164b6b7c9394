package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/SkinTrade_Go/internal/roulette"
	"github.com/osse101/SkinTrade_Go/internal/server"
	"github.com/osse101/SkinTrade_Go/internal/sse"
	"github.com/osse101/SkinTrade_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *worker.Scheduler
	Pool      *worker.Pool
	Spinner   *roulette.Spinner
	Hub       *sse.Hub
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in this order:
// 1. HTTP server (stop accepting new requests); open event streams are closed
//    by the hub as soon as the server starts shutting down
// 2. Scheduler and worker pool
// 3. Pending reveals, so charged spins still land in inventories
// 4. SSE hub, for servers that never started
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgShuttingDownWorkers)
	if components.Scheduler != nil {
		if err := components.Scheduler.Stop(ctx); err != nil {
			slog.Error(LogMsgSchedulerStopFailed, "error", err)
		}
	}
	if components.Pool != nil {
		components.Pool.Stop()
	}

	if components.Spinner != nil {
		slog.Info(LogMsgWaitingForReveals, "pending", components.Spinner.PendingCount())
		waitForReveals(ctx, components.Spinner)
	}

	if components.Hub != nil {
		components.Hub.Stop()
	}

	slog.Info(LogMsgServerStopped)
}

func waitForReveals(ctx context.Context, spinner *roulette.Spinner) {
	done := make(chan struct{})
	go func() {
		spinner.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		slog.Warn(LogMsgRevealsTimedOut, "pending", spinner.PendingCount())
	}
}
