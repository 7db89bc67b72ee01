package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/osse101/BakeWatt_Go/internal/bootstrap"
	"github.com/osse101/BakeWatt_Go/internal/database"
	"github.com/osse101/BakeWatt_Go/internal/database/postgres"
	"github.com/osse101/BakeWatt_Go/internal/repository"
)

const envDatabaseURL = "DATABASE_URL"

var errDatabaseURLRequired = errors.New("database url required: pass -dsn or set " + envDatabaseURL)

// SyncCommand migrates a database and copies the bundled catalog into it
type SyncCommand struct {
	source repository.Catalog
}

func (c *SyncCommand) Name() string        { return "sync" }
func (c *SyncCommand) Description() string { return "Migrate the database and upsert the bundled catalog" }

func (c *SyncCommand) Run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	dsn := fs.String("dsn", os.Getenv(envDatabaseURL), "postgres connection string")
	migrate := fs.Bool("migrate", true, "apply pending migrations first")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dsn == "" {
		return errDatabaseURLRequired
	}

	if *migrate {
		if err := database.RunMigrations(ctx, *dsn); err != nil {
			return err
		}
	}

	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString: *dsn,
		MaxConns:   bootstrap.SyncConcurrency,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	result, err := bootstrap.SyncCatalog(ctx, c.source, postgres.NewRecipeRepository(pool))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Synced %d ingredients and %d templates\n", result.Ingredients, result.Templates)
	return nil
}
