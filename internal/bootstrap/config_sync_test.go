package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BakeWatt_Go/internal/catalog"
	"github.com/osse101/BakeWatt_Go/internal/domain"
)

func TestSyncCatalog(t *testing.T) {
	ctx := context.Background()
	bundled, err := catalog.Load(ctx)
	require.NoError(t, err)

	t.Run("writes every ingredient and template", func(t *testing.T) {
		dst := new(MockRecipeStore)
		dst.On("UpsertIngredient", mock.Anything, mock.AnythingOfType("domain.Ingredient")).Return(nil)
		dst.On("UpsertTemplate", mock.Anything, mock.AnythingOfType("*domain.RecipeTemplate")).Return(nil)

		result, err := SyncCatalog(ctx, bundled, dst)

		require.NoError(t, err)
		assert.Equal(t, 10, result.Ingredients)
		assert.Equal(t, 3, result.Templates)
		dst.AssertNumberOfCalls(t, "UpsertIngredient", 10)
		dst.AssertNumberOfCalls(t, "UpsertTemplate", 3)
	})

	t.Run("ingredient failure skips templates", func(t *testing.T) {
		dst := new(MockRecipeStore)
		dst.On("UpsertIngredient", mock.Anything, mock.Anything).Return(errors.New("disk full"))

		_, err := SyncCatalog(ctx, bundled, dst)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to sync ingredient")
		assert.Contains(t, err.Error(), "disk full")
		dst.AssertNotCalled(t, "UpsertTemplate", mock.Anything, mock.Anything)
	})

	t.Run("template failure names the template", func(t *testing.T) {
		dst := new(MockRecipeStore)
		dst.On("UpsertIngredient", mock.Anything, mock.Anything).Return(nil)
		dst.On("UpsertTemplate", mock.Anything, mock.MatchedBy(func(tpl *domain.RecipeTemplate) bool {
			return tpl.ID == "vanilla-cupcakes"
		})).Return(domain.ErrIngredientNotFound)
		dst.On("UpsertTemplate", mock.Anything, mock.Anything).Return(nil)

		_, err := SyncCatalog(ctx, bundled, dst)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
		assert.Contains(t, err.Error(), "vanilla-cupcakes")
	})

	t.Run("source failure", func(t *testing.T) {
		src := new(MockRecipeStore)
		src.On("ListIngredients", mock.Anything).Return(nil, errors.New("unreadable"))

		_, err := SyncCatalog(ctx, src, new(MockRecipeStore))

		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedListCatalog)
	})
}
