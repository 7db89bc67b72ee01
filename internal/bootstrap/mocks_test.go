package bootstrap

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/BakeWatt_Go/internal/domain"
)

// MockRecipeStore is a testify mock of repository.RecipeStore
type MockRecipeStore struct {
	mock.Mock
}

func (m *MockRecipeStore) ListTemplates(ctx context.Context) ([]domain.RecipeTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecipeTemplate), args.Error(1)
}

func (m *MockRecipeStore) GetTemplate(ctx context.Context, id string) (*domain.RecipeTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipeTemplate), args.Error(1)
}

func (m *MockRecipeStore) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ingredient), args.Error(1)
}

func (m *MockRecipeStore) GetIngredient(ctx context.Context, id string) (*domain.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ingredient), args.Error(1)
}

func (m *MockRecipeStore) UpsertIngredient(ctx context.Context, ingredient domain.Ingredient) error {
	args := m.Called(ctx, ingredient)
	return args.Error(0)
}

func (m *MockRecipeStore) UpsertTemplate(ctx context.Context, template *domain.RecipeTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockRecipeStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockStopper records server stops
type MockStopper struct {
	mock.Mock
}

func (m *MockStopper) Stop(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockShutdowner stands in for either service
type MockShutdowner struct {
	mock.Mock
}

func (m *MockShutdowner) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
