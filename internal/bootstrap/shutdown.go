package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/BakeWatt_Go/internal/cookbook"
	"github.com/osse101/BakeWatt_Go/internal/game"
)

// Stopper is satisfied by the HTTP server
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server          Stopper
	CookbookService cookbook.Service
	GameService     game.Service
	Providers       *Providers
}

// GracefulShutdown stops the HTTP server first, then the services, then
// releases the database pool. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.CookbookService != nil {
		shutdownService(ctx, ServiceNameCookbook, components.CookbookService)
	}
	if components.GameService != nil {
		shutdownService(ctx, ServiceNameGame, components.GameService)
	}

	if components.Providers != nil {
		components.Providers.Close()
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
