// Package cookbook is the application service over recipe templates: it
// resolves templates through a provider and runs them through the recipe and
// cost engines.
package cookbook

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/osse101/BakeWatt_Go/internal/costing"
	"github.com/osse101/BakeWatt_Go/internal/domain"
	"github.com/osse101/BakeWatt_Go/internal/logger"
	"github.com/osse101/BakeWatt_Go/internal/metrics"
	"github.com/osse101/BakeWatt_Go/internal/recipe"
	"github.com/osse101/BakeWatt_Go/internal/repository"
)

// Provider supplies templates and manages its template cache
type Provider interface {
	repository.TemplateProvider
	ClearCache(ctx context.Context) int
	WarmCache(ctx context.Context) (int, error)
}

// Service defines the interface for cookbook operations
type Service interface {
	ListRecipes(ctx context.Context) ([]domain.RecipeSummary, error)
	GetTemplate(ctx context.Context, id string) (*domain.RecipeTemplate, error)
	ProcessRecipe(ctx context.Context, id string, scaleFactor float64) (*domain.ProcessedRecipe, error)
	RecipeCost(ctx context.Context, id string, scaleFactor float64) (*domain.CostBreakdown, error)
	AmountRanges(ctx context.Context, id string, scaleFactor float64) ([]domain.IngredientRange, error)
	ShoppingList(ctx context.Context, id string, scaleFactor float64) ([]domain.ShoppingItem, error)
	FormatAmount(ctx context.Context, value float64) (string, error)
	ClearCache(ctx context.Context) int
	Shutdown(ctx context.Context) error
}

type service struct {
	provider Provider
	wg       sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewService creates a new cookbook service
func NewService(provider Provider) Service {
	return &service{provider: provider}
}

// ValidateScale rejects scale factors the engine cannot give a meaningful
// answer for: zero, negative, NaN and infinite values.
func ValidateScale(scaleFactor float64) error {
	if math.IsNaN(scaleFactor) || math.IsInf(scaleFactor, 0) || scaleFactor <= 0 {
		return fmt.Errorf("%w: %v", domain.ErrInvalidScaleFactor, scaleFactor)
	}
	return nil
}

// ListRecipes returns a summary of every available template
func (s *service) ListRecipes(ctx context.Context) ([]domain.RecipeSummary, error) {
	templates, err := s.provider.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	summaries := make([]domain.RecipeSummary, 0, len(templates))
	for i := range templates {
		summaries = append(summaries, templates[i].Summary())
	}
	return summaries, nil
}

// GetTemplate returns the unscaled template
func (s *service) GetTemplate(ctx context.Context, id string) (*domain.RecipeTemplate, error) {
	template, err := s.provider.GetTemplate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return template, nil
}

// ProcessRecipe scales a template and resolves its placeholders. Unstartable
// templates are processed too so that they can still be previewed.
func (s *service) ProcessRecipe(ctx context.Context, id string, scaleFactor float64) (*domain.ProcessedRecipe, error) {
	template, err := s.loadForScale(ctx, id, scaleFactor)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug(LogMsgProcessRecipe, "recipe", template.ID, "scale", scaleFactor)
	metrics.RecipesProcessed.WithLabelValues(template.ID).Inc()
	return recipe.ProcessRecipe(template, scaleFactor), nil
}

// RecipeCost prices the recipe at the given scale
func (s *service) RecipeCost(ctx context.Context, id string, scaleFactor float64) (*domain.CostBreakdown, error) {
	processed, err := s.ProcessRecipe(ctx, id, scaleFactor)
	if err != nil {
		return nil, err
	}

	breakdown := costing.CalculateRecipeCost(processed)
	metrics.CostCalculations.Inc()
	return &breakdown, nil
}

// AmountRanges reports the scaled bounds of every ingredient, for sliders
func (s *service) AmountRanges(ctx context.Context, id string, scaleFactor float64) ([]domain.IngredientRange, error) {
	template, err := s.loadForScale(ctx, id, scaleFactor)
	if err != nil {
		return nil, err
	}
	return recipe.AmountRanges(template, scaleFactor), nil
}

// ShoppingList returns every scaled ingredient occurrence in recipe order
func (s *service) ShoppingList(ctx context.Context, id string, scaleFactor float64) ([]domain.ShoppingItem, error) {
	processed, err := s.ProcessRecipe(ctx, id, scaleFactor)
	if err != nil {
		return nil, err
	}
	return recipe.ShoppingList(processed), nil
}

// FormatAmount renders a quantity with fraction glyphs
func (s *service) FormatAmount(_ context.Context, value float64) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidAmount, value)
	}
	return recipe.FormatAmount(value), nil
}

// ClearCache drops cached templates and reloads them in the background.
// After Shutdown the cache is still cleared but no reload is started.
func (s *service) ClearCache(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cleared := s.provider.ClearCache(ctx)
	if s.closed {
		logger.FromContext(ctx).Debug(LogMsgCacheWarmSkipped)
		return cleared
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.warmCache(context.WithoutCancel(ctx))
	}()

	return cleared
}

// warmCache reloads the template listing so the next lookups hit the cache
func (s *service) warmCache(ctx context.Context) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgCacheWarmStarted)

	warmed, err := s.provider.WarmCache(ctx)
	if err != nil {
		log.Warn(LogMsgCacheWarmFailed, "error", err)
		return
	}
	log.Debug(LogMsgCacheWarmDone, "templates", warmed)
}

// Shutdown waits for background cache warming to finish
func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgShuttingDown)

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

func (s *service) loadForScale(ctx context.Context, id string, scaleFactor float64) (*domain.RecipeTemplate, error) {
	if err := ValidateScale(scaleFactor); err != nil {
		return nil, err
	}
	return s.GetTemplate(ctx, id)
}
