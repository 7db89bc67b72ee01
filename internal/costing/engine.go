// Package costing prices processed recipes.
package costing

import (
	"math"

	"github.com/osse101/BakeWatt_Go/internal/domain"
)

// CostPrecision is the number of decimals kept on the recipe total
const CostPrecision = 2

// CalculateRecipeCost walks every step's ingredients and then every group's
// ingredients, pricing each occurrence as amount × cost per unit.
// Occurrences that cost nothing are left out of both the list and the total.
func CalculateRecipeCost(recipe *domain.ProcessedRecipe) domain.CostBreakdown {
	breakdown := domain.CostBreakdown{IngredientCosts: make([]domain.IngredientCost, 0)}
	if recipe == nil {
		return breakdown
	}

	total := 0.0
	add := func(ing domain.ProcessedIngredient) {
		cost := ingredientCost(ing)
		if cost > 0 {
			breakdown.IngredientCosts = append(breakdown.IngredientCosts, domain.IngredientCost{
				Name: ing.Ingredient.Name,
				Cost: cost,
			})
			total += cost
		}
	}

	for _, step := range recipe.Steps {
		for _, ing := range step.Ingredients {
			add(ing)
		}
		for _, group := range step.Groups {
			for _, ing := range group.Ingredients {
				add(ing)
			}
		}
	}

	breakdown.TotalCost = roundTo(total, CostPrecision)
	return breakdown
}

func ingredientCost(ing domain.ProcessedIngredient) float64 {
	return ing.Amount * ing.Ingredient.CostPerUnit
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
