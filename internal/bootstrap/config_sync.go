package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/BakeWatt_Go/internal/metrics"
	"github.com/osse101/BakeWatt_Go/internal/repository"
)

// SyncResult counts the records written by SyncCatalog
type SyncResult struct {
	Ingredients int
	Templates   int
}

// SyncCatalog copies every ingredient and template from src into dst.
// Ingredients are written first since template rows reference them.
// Each phase runs with bounded concurrency and stops at the first failure.
func SyncCatalog(ctx context.Context, src repository.Catalog, dst repository.RecipeStore) (*SyncResult, error) {
	slog.Info(LogMsgSyncingCatalog)

	ingredients, err := src.ListIngredients(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedListCatalog, err)
	}
	templates, err := src.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedListCatalog, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(SyncConcurrency)
	for _, ing := range ingredients {
		ing := ing
		g.Go(func() error {
			if err := dst.UpsertIngredient(gctx, ing); err != nil {
				return fmt.Errorf(ErrMsgFailedSyncIngredient+": %w", ing.ID, err)
			}
			metrics.CatalogSyncedRecords.WithLabelValues(metrics.KindIngredient).Inc()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(SyncConcurrency)
	for i := range templates {
		template := &templates[i]
		g.Go(func() error {
			if err := dst.UpsertTemplate(gctx, template); err != nil {
				return fmt.Errorf(ErrMsgFailedSyncTemplate+": %w", template.ID, err)
			}
			metrics.CatalogSyncedRecords.WithLabelValues(metrics.KindTemplate).Inc()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &SyncResult{Ingredients: len(ingredients), Templates: len(templates)}
	slog.Info(LogMsgCatalogSynced, "ingredients", result.Ingredients, "templates", result.Templates)
	return result, nil
}
