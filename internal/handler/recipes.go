package handler

import (
	"net/http"

	"github.com/osse101/BakeWatt_Go/internal/cookbook"
	"github.com/osse101/BakeWatt_Go/internal/domain"
	"github.com/osse101/BakeWatt_Go/internal/logger"
)

// RecipeHandler serves recipe listings and scaled recipe views
type RecipeHandler struct {
	service cookbook.Service
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(service cookbook.Service) *RecipeHandler {
	return &RecipeHandler{service: service}
}

// RecipeListResponse wraps the recipe summaries
type RecipeListResponse struct {
	Recipes []domain.RecipeSummary `json:"recipes"`
	Count   int                    `json:"count"`
}

// RangesResponse carries slider bounds for every ingredient of a recipe
type RangesResponse struct {
	RecipeID    string                   `json:"recipe_id"`
	ScaleFactor float64                  `json:"scale_factor"`
	Ranges      []domain.IngredientRange `json:"ranges"`
}

// ShoppingListResponse carries every ingredient needed for a batch
type ShoppingListResponse struct {
	RecipeID    string                `json:"recipe_id"`
	ScaleFactor float64               `json:"scale_factor"`
	Items       []domain.ShoppingItem `json:"items"`
}

// CostResponse carries the cost breakdown of a batch
type CostResponse struct {
	RecipeID    string  `json:"recipe_id"`
	ScaleFactor float64 `json:"scale_factor"`
	domain.CostBreakdown
}

// HandleListRecipes lists every available recipe
// @Summary List recipes
// @Description Returns a summary of every recipe template, from the database or the bundled catalog
// @Tags recipes
// @Produce json
// @Success 200 {object} RecipeListResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes [get]
func (h *RecipeHandler) HandleListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.service.ListRecipes(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgListRecipesFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, RecipeListResponse{Recipes: recipes, Count: len(recipes)})
}

// HandleGetRecipe returns a recipe processed at the requested scale
// @Summary Get processed recipe
// @Description Scales a recipe template and resolves its instruction placeholders
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Param scale query number false "Batch scale factor (default 1)"
// @Success 200 {object} domain.ProcessedRecipe
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes/{id} [get]
func (h *RecipeHandler) HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	id, scale, ok := recipeParams(w, r)
	if !ok {
		return
	}

	processed, err := h.service.ProcessRecipe(r.Context(), id, scale)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetRecipeFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, processed)
}

// HandleGetCost returns the cost breakdown of a recipe at the requested scale
// @Summary Get recipe cost
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Param scale query number false "Batch scale factor (default 1)"
// @Success 200 {object} CostResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes/{id}/cost [get]
func (h *RecipeHandler) HandleGetCost(w http.ResponseWriter, r *http.Request) {
	id, scale, ok := recipeParams(w, r)
	if !ok {
		return
	}

	breakdown, err := h.service.RecipeCost(r.Context(), id, scale)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetCostFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, CostResponse{RecipeID: id, ScaleFactor: scale, CostBreakdown: *breakdown})
}

// HandleGetRanges returns the scaled amount range of every ingredient
// @Summary Get ingredient ranges
// @Description Returns min, max and recommended amounts per ingredient for adjustment sliders
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Param scale query number false "Batch scale factor (default 1)"
// @Success 200 {object} RangesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes/{id}/ranges [get]
func (h *RecipeHandler) HandleGetRanges(w http.ResponseWriter, r *http.Request) {
	id, scale, ok := recipeParams(w, r)
	if !ok {
		return
	}

	ranges, err := h.service.AmountRanges(r.Context(), id, scale)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetRangesFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, RangesResponse{RecipeID: id, ScaleFactor: scale, Ranges: ranges})
}

// HandleGetShoppingList returns every ingredient occurrence of a batch in recipe order
// @Summary Get shopping list
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Param scale query number false "Batch scale factor (default 1)"
// @Success 200 {object} ShoppingListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes/{id}/shopping-list [get]
func (h *RecipeHandler) HandleGetShoppingList(w http.ResponseWriter, r *http.Request) {
	id, scale, ok := recipeParams(w, r)
	if !ok {
		return
	}

	items, err := h.service.ShoppingList(r.Context(), id, scale)
	if err != nil {
		respondServiceError(w, r, ErrMsgShoppingListFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, ShoppingListResponse{RecipeID: id, ScaleFactor: scale, Items: items})
}

func recipeParams(w http.ResponseWriter, r *http.Request) (string, float64, bool) {
	id, ok := GetRequiredURLParam(r, w, "id", ErrMsgMissingRecipeID)
	if !ok {
		return "", 0, false
	}
	scale, ok := GetScaleParam(r, w)
	if !ok {
		return "", 0, false
	}

	LogRequestFields(logger.FromContext(r.Context()), "recipe", id, "scale", scale)
	return id, scale, true
}
