// Package store combines a remote recipe store with the bundled catalog so
// that recipes stay available when the database is empty or unreachable.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/BakeWatt_Go/internal/catalog"
	"github.com/osse101/BakeWatt_Go/internal/domain"
	"github.com/osse101/BakeWatt_Go/internal/logger"
	"github.com/osse101/BakeWatt_Go/internal/metrics"
	"github.com/osse101/BakeWatt_Go/internal/repository"
)

// Options configures the template cache
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
}

// FallbackProvider serves templates and ingredients from a primary provider,
// falling back to a secondary one. The primary may be nil, in which case
// everything comes from the fallback.
type FallbackProvider struct {
	primary  repository.Catalog
	fallback repository.Catalog
	cache    *templateCache
}

// NewFallbackProvider creates a provider. Zero options use the package defaults.
func NewFallbackProvider(primary, fallback repository.Catalog, opts Options) *FallbackProvider {
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}

	return &FallbackProvider{
		primary:  primary,
		fallback: fallback,
		cache:    newTemplateCache(opts.CacheSize, opts.CacheTTL),
	}
}

// ListTemplates returns the primary's templates, or the fallback's when the
// primary fails or has none.
func (p *FallbackProvider) ListTemplates(ctx context.Context) ([]domain.RecipeTemplate, error) {
	templates, source, err := p.listTemplates(ctx)
	if err != nil {
		return nil, err
	}
	metrics.TemplateSource.WithLabelValues(source).Inc()
	return templates, nil
}

func (p *FallbackProvider) listTemplates(ctx context.Context) ([]domain.RecipeTemplate, string, error) {
	if p.primary != nil {
		templates, err := p.primary.ListTemplates(ctx)
		switch {
		case err != nil:
			logger.FromContext(ctx).Warn(LogMsgPrimaryListFailed, "error", err)
		case len(templates) == 0:
			logger.FromContext(ctx).Info(LogMsgPrimaryListEmpty)
		default:
			return templates, metrics.SourcePrimary, nil
		}
	}

	templates, err := p.fallback.ListTemplates(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, metrics.SourceFallback, nil
}

// WarmCache loads the current template listing into the cache with a single
// listing call and reports how many templates were cached.
func (p *FallbackProvider) WarmCache(ctx context.Context) (int, error) {
	templates, source, err := p.listTemplates(ctx)
	if err != nil {
		return 0, err
	}
	for i := range templates {
		p.cache.Set(catalog.NormalizeKey(templates[i].ID), source, &templates[i])
	}
	return len(templates), nil
}

// GetTemplate resolves id in order: cache, the primary by normalized key,
// the fallback, then the primary by the id as given. Any spelling accepted by
// catalog.NormalizeKey finds the same template.
func (p *FallbackProvider) GetTemplate(ctx context.Context, id string) (*domain.RecipeTemplate, error) {
	key := catalog.NormalizeKey(id)

	if template, ok := p.cache.Get(key); ok {
		metrics.TemplateSource.WithLabelValues(metrics.SourceCache).Inc()
		return template.Clone(), nil
	}

	template, source, err := p.resolve(ctx, id, key)
	if err != nil {
		return nil, err
	}

	p.cache.Set(key, source, template)
	metrics.TemplateSource.WithLabelValues(source).Inc()
	return template.Clone(), nil
}

func (p *FallbackProvider) resolve(ctx context.Context, id, key string) (*domain.RecipeTemplate, string, error) {
	if template, ok := p.primaryTemplate(ctx, key); ok {
		return template, metrics.SourcePrimary, nil
	}

	template, err := p.fallback.GetTemplate(ctx, id)
	if err == nil {
		return template, metrics.SourceFallback, nil
	}
	if !errors.Is(err, domain.ErrRecipeNotFound) {
		logger.FromContext(ctx).Warn(LogMsgFallbackGetFailed, "error", err, "recipe", id)
	}

	// Rows written outside the sync may carry slugs that are not normalized
	if id != key {
		if template, ok := p.primaryTemplate(ctx, id); ok {
			return template, metrics.SourcePrimary, nil
		}
	}

	return nil, "", fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, id)
}

func (p *FallbackProvider) primaryTemplate(ctx context.Context, slug string) (*domain.RecipeTemplate, bool) {
	if p.primary == nil {
		return nil, false
	}
	template, err := p.primary.GetTemplate(ctx, slug)
	if err != nil {
		if !errors.Is(err, domain.ErrRecipeNotFound) {
			logger.FromContext(ctx).Warn(LogMsgPrimaryGetFailed, "error", err, "recipe", slug)
		}
		return nil, false
	}
	return template, true
}

// ListIngredients returns the primary's ingredients, or the fallback's when
// the primary fails or has none.
func (p *FallbackProvider) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	if p.primary != nil {
		ingredients, err := p.primary.ListIngredients(ctx)
		if err == nil && len(ingredients) > 0 {
			return ingredients, nil
		}
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgPrimaryIngredientsFail, "error", err)
		}
	}

	ingredients, err := p.fallback.ListIngredients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	return ingredients, nil
}

// GetIngredient looks id up in the primary first, then the fallback
func (p *FallbackProvider) GetIngredient(ctx context.Context, id string) (*domain.Ingredient, error) {
	if p.primary != nil {
		ingredient, err := p.primary.GetIngredient(ctx, id)
		if err == nil {
			return ingredient, nil
		}
		if !errors.Is(err, domain.ErrIngredientNotFound) {
			logger.FromContext(ctx).Warn(LogMsgPrimaryIngredientsFail, "error", err, "ingredient", id)
		}
	}

	return p.fallback.GetIngredient(ctx, id)
}

// InvalidateTemplate drops a single template from the cache
func (p *FallbackProvider) InvalidateTemplate(id string) {
	p.cache.Invalidate(catalog.NormalizeKey(id))
}

// ClearCache drops every cached template. Later lookups go back to the providers.
func (p *FallbackProvider) ClearCache(ctx context.Context) int {
	cleared := p.cache.Len()
	p.cache.Clear()
	logger.FromContext(ctx).Info(LogMsgCacheCleared, "entries", cleared)
	return cleared
}
