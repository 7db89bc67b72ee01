package repository

import (
	"context"

	"github.com/osse101/BakeWatt_Go/internal/domain"
)

// TemplateProvider supplies recipe templates keyed by id.
// Implementations return domain.ErrRecipeNotFound for unknown ids.
type TemplateProvider interface {
	ListTemplates(ctx context.Context) ([]domain.RecipeTemplate, error)
	GetTemplate(ctx context.Context, id string) (*domain.RecipeTemplate, error)
}

// IngredientCatalog supplies ingredient identity and cost records.
// Implementations return domain.ErrIngredientNotFound for unknown ids.
type IngredientCatalog interface {
	ListIngredients(ctx context.Context) ([]domain.Ingredient, error)
	GetIngredient(ctx context.Context, id string) (*domain.Ingredient, error)
}

// Catalog supplies both templates and the ingredients they reference
type Catalog interface {
	TemplateProvider
	IngredientCatalog
}

// RecipeStore is a writable, database-backed provider used for syncing the
// bundled catalog into persistent storage.
type RecipeStore interface {
	Catalog
	UpsertIngredient(ctx context.Context, ingredient domain.Ingredient) error
	// UpsertTemplate replaces a template and all of its steps atomically
	UpsertTemplate(ctx context.Context, template *domain.RecipeTemplate) error
	Ping(ctx context.Context) error
}
