package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BakeWatt_Go/internal/catalog"
	"github.com/osse101/BakeWatt_Go/internal/config"
	"github.com/osse101/BakeWatt_Go/internal/database"
	"github.com/osse101/BakeWatt_Go/internal/database/postgres"
	"github.com/osse101/BakeWatt_Go/internal/repository"
	"github.com/osse101/BakeWatt_Go/internal/store"
)

// Providers holds the template sources used by the application. Store and
// Pool are nil when the service runs from the bundled catalog alone.
type Providers struct {
	Catalog   *catalog.Catalog
	Store     repository.RecipeStore
	Pool      *pgxpool.Pool
	Templates *store.FallbackProvider
}

// InitializeProviders loads the bundled catalog and, when configured,
// connects the postgres recipe store in front of it. An unreachable database
// leaves the bundled catalog serving on its own unless cfg.RequireDatabase is set.
func InitializeProviders(ctx context.Context, cfg *config.Config) (*Providers, error) {
	bundled, err := catalog.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded)

	opts := store.Options{CacheSize: cfg.CacheSize, CacheTTL: cfg.CacheTTL}
	providers := &Providers{Catalog: bundled}

	if !cfg.UsesDatabase() {
		slog.Info(LogMsgUsingStaticCatalog)
		providers.Templates = store.NewFallbackProvider(nil, bundled, opts)
		return providers, nil
	}

	pool, err := connectRecipeStore(ctx, cfg)
	if err != nil {
		if cfg.RequireDatabase {
			return nil, err
		}
		slog.Warn(LogMsgDatabaseUnavailable, "error", err, "host", cfg.DBHost)
		providers.Templates = store.NewFallbackProvider(nil, bundled, opts)
		return providers, nil
	}
	slog.Info(LogMsgDatabaseConnected, "host", cfg.DBHost, "database", cfg.DBName)

	providers.Pool = pool
	providers.Store = postgres.NewRecipeRepository(pool)

	if cfg.SyncCatalogOnStart {
		if _, err := SyncCatalog(ctx, bundled, providers.Store); err != nil {
			if cfg.RequireDatabase {
				pool.Close()
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
			}
			slog.Warn(LogMsgSyncSkipped, "error", err)
		}
	}

	providers.Templates = store.NewFallbackProvider(providers.Store, bundled, opts)
	return providers, nil
}

// connectRecipeStore migrates the recipe database when configured and opens its pool
func connectRecipeStore(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	if cfg.MigrateOnStart {
		if err := database.RunMigrations(ctx, cfg.GetDBConnString()); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedRunMigrations, err)
		}
	}

	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:      cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}
	return pool, nil
}

// Close releases the database pool, if any
func (p *Providers) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
}
