package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/osse101/BakeWatt_Go/internal/catalog"
	"github.com/osse101/BakeWatt_Go/internal/cookbook"
	"github.com/osse101/BakeWatt_Go/internal/store"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	registry, err := newRegistry(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if len(args) < 1 {
		registry.PrintHelp(stderr)
		return 2
	}

	cmd, ok := registry.Get(args[0])
	if !ok {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		registry.PrintHelp(stderr)
		return 2
	}

	if err := cmd.Run(ctx, args[1:], stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newRegistry wires the commands against the bundled catalog
func newRegistry(ctx context.Context) (*Registry, error) {
	bundled, err := catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	svc := cookbook.NewService(store.NewFallbackProvider(nil, bundled, store.Options{}))

	registry := NewRegistry()
	registry.Register(&ListCommand{service: svc})
	registry.Register(&ShowCommand{service: svc})
	registry.Register(&CostCommand{service: svc})
	registry.Register(&ShoppingCommand{service: svc})
	registry.Register(&SyncCommand{source: bundled})
	return registry, nil
}
