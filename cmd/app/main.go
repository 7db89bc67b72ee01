package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/BakeWatt_Go/internal/bootstrap"
	"github.com/osse101/BakeWatt_Go/internal/config"
	"github.com/osse101/BakeWatt_Go/internal/cookbook"
	"github.com/osse101/BakeWatt_Go/internal/game"
	"github.com/osse101/BakeWatt_Go/internal/handler"
	"github.com/osse101/BakeWatt_Go/internal/server"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := config.ValidateEnv(); err != nil {
		log.Printf("Environment check: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if logFile := initLogger(cfg); logFile != nil {
		defer logFile.Close()
	}

	if warnings, err := config.ValidateEnvWithWarnings(); err == nil {
		for _, w := range warnings {
			slog.Warn("Configuration warning", "detail", w)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	providers, err := bootstrap.InitializeProviders(ctx, cfg)
	if err != nil {
		return err
	}

	cookbookService := cookbook.NewService(providers.Templates)
	gameService := game.NewService(providers.Templates, game.Options{
		Capacity: cfg.SessionCapacity,
		TTL:      cfg.SessionTTL,
	})

	var store handler.Pinger
	if providers.Store != nil {
		store = providers.Store
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, server.Services{
		Cookbook: cookbookService,
		Game:     gameService,
		Store:    store,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:          srv,
		CookbookService: cookbookService,
		GameService:     gameService,
		Providers:       providers,
	})

	if serveErr != nil {
		return fmt.Errorf("server failed: %w", serveErr)
	}
	return nil
}
