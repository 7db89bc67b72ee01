package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BakeWatt_Go/internal/domain"
)

func recipeRouter(svc *MockCookbookService) http.Handler {
	h := NewRecipeHandler(svc)
	r := chi.NewRouter()
	r.Get("/api/v1/recipes", h.HandleListRecipes)
	r.Get("/api/v1/recipes/{id}", h.HandleGetRecipe)
	r.Get("/api/v1/recipes/{id}/cost", h.HandleGetCost)
	r.Get("/api/v1/recipes/{id}/ranges", h.HandleGetRanges)
	r.Get("/api/v1/recipes/{id}/shopping-list", h.HandleGetShoppingList)
	r.Get("/api/v1/format/amount", HandleFormatAmount(svc))
	return r
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRecipeHandler_ListRecipes(t *testing.T) {
	svc := new(MockCookbookService)
	svc.On("ListRecipes", mock.Anything).Return([]domain.RecipeSummary{
		{ID: "chocolate-cookies", Name: "Chocolate Chip Cookies", StepCount: 6},
		{ID: "unstartable-croissant", Name: "Croissants", Unstartable: true},
	}, nil)

	w := serve(recipeRouter(svc), http.MethodGet, "/api/v1/recipes")

	require.Equal(t, http.StatusOK, w.Code)
	var resp RecipeListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.True(t, resp.Recipes[1].Unstartable)
}

func TestRecipeHandler_ListRecipes_StoreDown(t *testing.T) {
	svc := new(MockCookbookService)
	svc.On("ListRecipes", mock.Anything).Return(nil, domain.ErrStoreUnavailable)

	w := serve(recipeRouter(svc), http.MethodGet, "/api/v1/recipes")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgStoreUnavailableError)
}

func TestRecipeHandler_GetRecipe(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(svc *MockCookbookService)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "default scale",
			target: "/api/v1/recipes/chocolate-cookies",
			setup: func(svc *MockCookbookService) {
				svc.On("ProcessRecipe", mock.Anything, "chocolate-cookies", 1.0).
					Return(&domain.ProcessedRecipe{ID: "chocolate-cookies", Servings: 24, ScaleFactor: 1}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"servings":24`,
		},
		{
			name:   "explicit scale",
			target: "/api/v1/recipes/chocolate-cookies?scale=1.5",
			setup: func(svc *MockCookbookService) {
				svc.On("ProcessRecipe", mock.Anything, "chocolate-cookies", 1.5).
					Return(&domain.ProcessedRecipe{ID: "chocolate-cookies", Servings: 36, ScaleFactor: 1.5}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"servings":36`,
		},
		{
			name:       "zero scale",
			target:     "/api/v1/recipes/chocolate-cookies?scale=0",
			setup:      func(svc *MockCookbookService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "scale must be a positive number",
		},
		{
			name:       "unparseable scale",
			target:     "/api/v1/recipes/chocolate-cookies?scale=double",
			setup:      func(svc *MockCookbookService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "scale must be a positive number",
		},
		{
			name:       "scale above limit",
			target:     "/api/v1/recipes/chocolate-cookies?scale=1000",
			setup:      func(svc *MockCookbookService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "unknown recipe",
			target: "/api/v1/recipes/sourdough",
			setup: func(svc *MockCookbookService) {
				svc.On("ProcessRecipe", mock.Anything, "sourdough", 1.0).Return(nil, domain.ErrRecipeNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   ErrMsgRecipeNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCookbookService)
			tt.setup(svc)

			w := serve(recipeRouter(svc), http.MethodGet, tt.target)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestRecipeHandler_GetCost(t *testing.T) {
	svc := new(MockCookbookService)
	svc.On("RecipeCost", mock.Anything, "chocolate-cookies", 2.0).Return(&domain.CostBreakdown{
		TotalCost:       12.5,
		IngredientCosts: []domain.IngredientCost{{Name: "Unsalted Butter", Cost: 2}},
	}, nil)

	w := serve(recipeRouter(svc), http.MethodGet, "/api/v1/recipes/chocolate-cookies/cost?scale=2")

	require.Equal(t, http.StatusOK, w.Code)
	var resp CostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "chocolate-cookies", resp.RecipeID)
	assert.Equal(t, 2.0, resp.ScaleFactor)
	assert.Equal(t, 12.5, resp.TotalCost)
	require.Len(t, resp.IngredientCosts, 1)
}

func TestRecipeHandler_GetRanges(t *testing.T) {
	svc := new(MockCookbookService)
	svc.On("AmountRanges", mock.Anything, "vanilla-cupcakes", 1.0).Return([]domain.IngredientRange{
		{IngredientID: "sugar", Range: domain.AmountRange{Min: 0.5, Max: 1, Recommended: 0.75}},
	}, nil)

	w := serve(recipeRouter(svc), http.MethodGet, "/api/v1/recipes/vanilla-cupcakes/ranges")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"recommended":0.75`)
	assert.Contains(t, w.Body.String(), `"is_fixed":false`)
}

func TestRecipeHandler_GetShoppingList(t *testing.T) {
	svc := new(MockCookbookService)
	svc.On("ShoppingList", mock.Anything, "chocolate-cookies", 0.5).Return([]domain.ShoppingItem{
		{IngredientID: "flour", Amount: 1.125, Display: "1.125"},
	}, nil)

	w := serve(recipeRouter(svc), http.MethodGet, "/api/v1/recipes/chocolate-cookies/shopping-list?scale=0.5")

	require.Equal(t, http.StatusOK, w.Code)
	var resp ShoppingListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "flour", resp.Items[0].IngredientID)
}

func TestHandleFormatAmount(t *testing.T) {
	t.Run("formats value", func(t *testing.T) {
		svc := new(MockCookbookService)
		svc.On("FormatAmount", mock.Anything, 2.75).Return("2 ¾", nil)

		w := serve(recipeRouter(svc), http.MethodGet, "/api/v1/format/amount?value=2.75")

		require.Equal(t, http.StatusOK, w.Code)
		var resp FormatAmountResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "2 ¾", resp.Formatted)
	})

	t.Run("missing value", func(t *testing.T) {
		w := serve(recipeRouter(new(MockCookbookService)), http.MethodGet, "/api/v1/format/amount")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Missing value query parameter")
	})

	t.Run("not a number", func(t *testing.T) {
		w := serve(recipeRouter(new(MockCookbookService)), http.MethodGet, "/api/v1/format/amount?value=lots")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidValueParam)
	})

	t.Run("non-finite rejected by service", func(t *testing.T) {
		svc := new(MockCookbookService)
		svc.On("FormatAmount", mock.Anything, mock.Anything).Return("", domain.ErrInvalidAmount)

		w := serve(recipeRouter(svc), http.MethodGet, "/api/v1/format/amount?value=Inf")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidAmountError)
	})
}
