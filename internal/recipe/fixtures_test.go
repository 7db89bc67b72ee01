package recipe

import "github.com/osse101/BakeWatt_Go/internal/domain"

var (
	flour = domain.Ingredient{ID: "flour", Name: "All-Purpose Flour", Unit: "cups", Icon: "🌾", CostPerUnit: 0.25}
	sugar = domain.Ingredient{ID: "sugar", Name: "Granulated Sugar", Unit: "cups", Icon: "🧂", CostPerUnit: 0.4}
	eggs  = domain.Ingredient{ID: "eggs", Name: "Large Eggs", Unit: "whole", Icon: "🥚", CostPerUnit: 0.3}
	salt  = domain.Ingredient{ID: "salt", Name: "Salt", Unit: "tsp", Icon: "🧂"}
)

// cookieTemplate builds a fresh template on every call so tests can compare
// an untouched copy against one that went through the engine.
func cookieTemplate() *domain.RecipeTemplate {
	return &domain.RecipeTemplate{
		ID:            "chocolate-cookies",
		Name:          "Chocolate Chip Cookies",
		Icon:          "🍪",
		Description:   "Classic cookies",
		Difficulty:    domain.DifficultyEasy,
		BaseServings:  24,
		EstimatedTime: 45,
		Categories:    []string{"cookies", "baking"},
		Steps: []domain.RecipeStep{
			{
				ID:            "preheat",
				Name:          "Preheat Oven",
				Order:         1,
				EstimatedTime: domain.IntPtr(10),
				Temperature:   domain.IntPtr(375),
				Instructions:  []string{"Preheat oven to {temp}°F"},
				Parameters:    domain.StepParameters{"temp": domain.NumberParam(375)},
			},
			{
				ID:            "mix",
				Name:          "Mix",
				Order:         2,
				EstimatedTime: domain.IntPtr(5),
				Instructions: []string{
					"Whisk together {group:dry}",
					"Cream {group:fats} until {consistency}",
				},
				Ingredients: []domain.FlexibleIngredient{
					{Ingredient: eggs, Amount: domain.FixedAmount(2)},
				},
				Groups: []domain.IngredientGroup{
					{
						Name:        "dry",
						Description: "Dry base ingredients",
						Ingredients: []domain.FlexibleIngredient{
							{Ingredient: flour, Amount: domain.FixedAmount(2.25)},
							{Ingredient: salt, Amount: domain.FixedAmount(0.5)},
						},
					},
					{
						Name:        "fats",
						Description: "Fat ingredients for creaming",
						Ingredients: []domain.FlexibleIngredient{
							{Ingredient: sugar, Amount: domain.FlexAmount(0.5, 1.25, 0.75), Hint: "Adjust sweetness to taste"},
						},
					},
				},
				Parameters: domain.StepParameters{"consistency": domain.StringParam("light and fluffy")},
			},
		},
	}
}
