package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BakeWatt_Go/internal/catalog"
	"github.com/osse101/BakeWatt_Go/internal/domain"
	"github.com/osse101/BakeWatt_Go/internal/recipe"
)

// seedCatalog writes the bundled catalog into the database
func seedCatalog(t *testing.T, repo *RecipeRepository) *catalog.Catalog {
	t.Helper()
	ctx := context.Background()

	c, err := catalog.Load(ctx)
	require.NoError(t, err)

	ingredients, err := c.ListIngredients(ctx)
	require.NoError(t, err)
	for _, ing := range ingredients {
		require.NoError(t, repo.UpsertIngredient(ctx, ing))
	}

	templates, err := c.ListTemplates(ctx)
	require.NoError(t, err)
	for i := range templates {
		require.NoError(t, repo.UpsertTemplate(ctx, &templates[i]))
	}
	return c
}

func TestRecipeRepository_RoundTrip(t *testing.T) {
	requireDB(t)
	resetTables(t)

	ctx := context.Background()
	repo := NewRecipeRepository(testPool).(*RecipeRepository)
	c := seedCatalog(t, repo)

	templates, err := repo.ListTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 3)

	t.Run("template fields survive", func(t *testing.T) {
		cookies := templates[0]
		assert.Equal(t, "chocolate-cookies", cookies.ID)
		assert.Equal(t, "🍪", cookies.Icon)
		assert.Equal(t, 24, cookies.BaseServings)
		assert.Equal(t, []string{"cookies", "baking"}, cookies.Categories)
		require.Len(t, cookies.Steps, 6)
		assert.Equal(t, "375", cookies.Steps[0].Parameters["temp"].String())
		assert.True(t, cookies.Steps[0].Parameters["temp"].IsNumber())
		require.NotNil(t, cookies.Steps[0].Temperature)
		assert.Equal(t, 375, *cookies.Steps[0].Temperature)
		assert.Nil(t, cookies.Steps[1].Temperature)
	})

	t.Run("groups keep order and descriptions", func(t *testing.T) {
		cream := templates[0].Steps[2]
		require.Len(t, cream.Groups, 2)
		assert.Equal(t, "fats", cream.Groups[0].Name)
		assert.Equal(t, "Fat ingredients for creaming", cream.Groups[0].Description)
		assert.Equal(t, "liquids", cream.Groups[1].Name)

		sugar := cream.Groups[0].Ingredients[1]
		assert.Equal(t, "sugar", sugar.Ingredient.ID)
		require.False(t, sugar.Amount.IsFixed())
		assert.Equal(t, 0.75, sugar.Amount.Range.Recommended)
		assert.Equal(t, DefaultFlexibleStep, sugar.Amount.Range.Step)
		assert.Equal(t, "Adjust sweetness to taste", sugar.Hint)
	})

	t.Run("processing matches the bundled catalog", func(t *testing.T) {
		local, err := c.GetTemplate(ctx, "vanilla-cupcakes")
		require.NoError(t, err)
		remote, err := repo.GetTemplate(ctx, "vanilla-cupcakes")
		require.NoError(t, err)

		want := recipe.ProcessRecipe(local, 1.5)
		got := recipe.ProcessRecipe(remote, 1.5)
		for i := range want.Steps {
			assert.Equal(t, want.Steps[i].Instructions, got.Steps[i].Instructions)
		}
		assert.Equal(t, want.Servings, got.Servings)
	})

	t.Run("unstartable template has no steps", func(t *testing.T) {
		croissant, err := repo.GetTemplate(ctx, "unstartable-croissant")
		require.NoError(t, err)
		assert.True(t, croissant.Unstartable)
		assert.Empty(t, croissant.Steps)
		assert.Contains(t, croissant.Notes, "under development")
	})
}

func TestRecipeRepository_UpsertReplacesSteps(t *testing.T) {
	requireDB(t)
	resetTables(t)

	ctx := context.Background()
	repo := NewRecipeRepository(testPool).(*RecipeRepository)
	seedCatalog(t, repo)

	cookies, err := repo.GetTemplate(ctx, "chocolate-cookies")
	require.NoError(t, err)
	cookies.Name = "Fewer Step Cookies"
	cookies.Steps = cookies.Steps[:2]
	require.NoError(t, repo.UpsertTemplate(ctx, cookies))

	reloaded, err := repo.GetTemplate(ctx, "chocolate-cookies")
	require.NoError(t, err)
	assert.Equal(t, "Fewer Step Cookies", reloaded.Name)
	assert.Len(t, reloaded.Steps, 2)
}

func TestRecipeRepository_UpsertTemplate_UnknownIngredient(t *testing.T) {
	requireDB(t)
	resetTables(t)

	ctx := context.Background()
	repo := NewRecipeRepository(testPool)

	template := &domain.RecipeTemplate{
		ID:           "toast",
		Name:         "Toast",
		Difficulty:   domain.DifficultyEasy,
		BaseServings: 1,
		Steps: []domain.RecipeStep{{
			ID:    "toast",
			Name:  "Toast",
			Order: 1,
			Ingredients: []domain.FlexibleIngredient{{
				Ingredient: domain.Ingredient{ID: "jam"},
				Amount:     domain.FixedAmount(1),
			}},
		}},
	}

	err := repo.UpsertTemplate(ctx, template)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)

	// The failed transaction must not leave a template behind
	_, err = repo.GetTemplate(ctx, "toast")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRecipeRepository_RowDefaults(t *testing.T) {
	requireDB(t)
	resetTables(t)

	ctx := context.Background()
	repo := NewRecipeRepository(testPool)

	_, err := testPool.Exec(ctx, `
		INSERT INTO ingredients (slug, name, unit) VALUES ('flour', 'Flour', 'cups');
		INSERT INTO recipe_templates (slug, name, base_servings) VALUES ('plain', 'Plain', 4);
		INSERT INTO recipe_steps (recipe_id, slug, step_order, name) VALUES (1, 'mix', 1, 'Mix');
		INSERT INTO recipe_step_ingredients (step_id, ingredient_id, amount_type, group_name)
		VALUES (1, 1, 'flexible', 'dry'), (1, 1, 'fixed', 'extras');`)
	require.NoError(t, err)

	plain, err := repo.GetTemplate(ctx, "plain")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRecipeIcon, plain.Icon)
	assert.Equal(t, domain.DefaultRecipeMinutes, plain.EstimatedTime)

	require.Len(t, plain.Steps, 1)
	groups := plain.Steps[0].Groups
	require.Len(t, groups, 2)
	assert.Equal(t, GroupDescriptionDry, groups[0].Description)
	assert.Equal(t, "extras ingredients", groups[1].Description)

	flex := groups[0].Ingredients[0]
	assert.Equal(t, domain.DefaultIngredientIcon, flex.Ingredient.Icon)
	assert.Equal(t, &domain.FlexibleAmount{Min: 0, Max: 1, Recommended: 0.5, Step: 0.1}, flex.Amount.Range)
	assert.Equal(t, domain.FixedAmount(1), groups[1].Ingredients[0].Amount)
}

func TestRecipeRepository_Ingredients(t *testing.T) {
	requireDB(t)
	resetTables(t)

	ctx := context.Background()
	repo := NewRecipeRepository(testPool)

	require.NoError(t, repo.UpsertIngredient(ctx, domain.Ingredient{ID: "flour", Name: "Flour", Unit: "cups", CostPerUnit: 0.25}))
	require.NoError(t, repo.UpsertIngredient(ctx, domain.Ingredient{ID: "flour", Name: "Bread Flour", Unit: "cups", CostPerUnit: 0.4}))

	flour, err := repo.GetIngredient(ctx, "flour")
	require.NoError(t, err)
	assert.Equal(t, "Bread Flour", flour.Name)
	assert.Equal(t, 0.4, flour.CostPerUnit)

	all, err := repo.ListIngredients(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = repo.GetIngredient(ctx, "saffron")
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
	assert.NoError(t, repo.Ping(ctx))
}
