package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/BakeWatt_Go/internal/domain"
	"github.com/osse101/BakeWatt_Go/internal/game"
)

// MockCookbookService is a testify mock of cookbook.Service
type MockCookbookService struct {
	mock.Mock
}

func (m *MockCookbookService) ListRecipes(ctx context.Context) ([]domain.RecipeSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecipeSummary), args.Error(1)
}

func (m *MockCookbookService) GetTemplate(ctx context.Context, id string) (*domain.RecipeTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipeTemplate), args.Error(1)
}

func (m *MockCookbookService) ProcessRecipe(ctx context.Context, id string, scaleFactor float64) (*domain.ProcessedRecipe, error) {
	args := m.Called(ctx, id, scaleFactor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProcessedRecipe), args.Error(1)
}

func (m *MockCookbookService) RecipeCost(ctx context.Context, id string, scaleFactor float64) (*domain.CostBreakdown, error) {
	args := m.Called(ctx, id, scaleFactor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostBreakdown), args.Error(1)
}

func (m *MockCookbookService) AmountRanges(ctx context.Context, id string, scaleFactor float64) ([]domain.IngredientRange, error) {
	args := m.Called(ctx, id, scaleFactor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IngredientRange), args.Error(1)
}

func (m *MockCookbookService) ShoppingList(ctx context.Context, id string, scaleFactor float64) ([]domain.ShoppingItem, error) {
	args := m.Called(ctx, id, scaleFactor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShoppingItem), args.Error(1)
}

func (m *MockCookbookService) FormatAmount(ctx context.Context, value float64) (string, error) {
	args := m.Called(ctx, value)
	return args.String(0), args.Error(1)
}

func (m *MockCookbookService) ClearCache(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

func (m *MockCookbookService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockGameService is a testify mock of game.Service
type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) NewSession(ctx context.Context) (*game.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Session), args.Error(1)
}

func (m *MockGameService) GetSession(ctx context.Context, id string) (*game.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Session), args.Error(1)
}

func (m *MockGameService) Dispatch(ctx context.Context, id string, cmd game.Command) (*game.Session, error) {
	args := m.Called(ctx, id, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Session), args.Error(1)
}

func (m *MockGameService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
