package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BakeWatt_Go/internal/domain"
)

func TestScaleAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   domain.Amount
		scale    float64
		expected float64
	}{
		{"fixed doubled", domain.FixedAmount(2.25), 2, 4.5},
		{"fixed halved", domain.FixedAmount(0.5), 0.5, 0.25},
		{"fixed rounds to three decimals", domain.FixedAmount(1), 1.0 / 3.0, 0.333},
		{"flexible scales recommended", domain.FlexAmount(0.5, 1.25, 0.75), 2, 1.5},
		{"flexible rounds", domain.FlexAmount(1, 3, 2), 1.0 / 3.0, 0.667},
		{"zero scale", domain.FixedAmount(3), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ScaleAmount(tt.amount, tt.scale), 1e-9)
		})
	}
}

func TestGetAmountRange(t *testing.T) {
	t.Run("fixed reports the same value everywhere", func(t *testing.T) {
		r := GetAmountRange(domain.FixedAmount(2), 1.5)
		assert.Equal(t, domain.AmountRange{Min: 3, Max: 3, Recommended: 3, IsFixed: true}, r)
	})

	t.Run("flexible scales every bound", func(t *testing.T) {
		r := GetAmountRange(domain.FlexAmount(0.5, 1.25, 0.75), 2)
		assert.False(t, r.IsFixed)
		assert.InDelta(t, 1.0, r.Min, 1e-9)
		assert.InDelta(t, 2.5, r.Max, 1e-9)
		assert.InDelta(t, 1.5, r.Recommended, 1e-9)
	})

	t.Run("ordering preserved under positive scaling", func(t *testing.T) {
		for _, s := range []float64{0.5, 1, 1.5, 2, 3.7, 4} {
			r := GetAmountRange(domain.FlexAmount(1, 2, 1.5), s)
			assert.LessOrEqual(t, r.Min, r.Recommended)
			assert.LessOrEqual(t, r.Recommended, r.Max)
		}
	})
}

func TestInjectParameters(t *testing.T) {
	t.Run("numeric parameter renders as-is", func(t *testing.T) {
		out := InjectParameters([]string{"Bake at {temp}F"}, domain.StepParameters{"temp": domain.NumberParam(375)}, nil)
		assert.Equal(t, []string{"Bake at 375F"}, out)
	})

	t.Run("every occurrence is replaced", func(t *testing.T) {
		out := InjectParameters([]string{"{time} then {time}"}, domain.StepParameters{"time": domain.NumberParam(3)}, nil)
		assert.Equal(t, []string{"3 then 3"}, out)
	})

	t.Run("unknown placeholder stays verbatim", func(t *testing.T) {
		out := InjectParameters([]string{"Fill {fill} full at {temp}"}, domain.StepParameters{"temp": domain.NumberParam(350)}, nil)
		assert.Equal(t, []string{"Fill {fill} full at 350"}, out)
	})

	t.Run("group placeholder becomes ingredient list", func(t *testing.T) {
		groups := []domain.ProcessedGroup{{
			Name: "dry",
			Ingredients: []domain.ProcessedIngredient{
				{Ingredient: flour, Amount: 2.25},
				{Ingredient: salt, Amount: 0.5},
			},
		}}
		out := InjectParameters([]string{"Whisk {group:dry}", "Missing {group:wet}"}, nil, groups)
		assert.Equal(t, []string{"Whisk 2 ¼ cups all-purpose flour and ½ tsp salt", "Missing {group:wet}"}, out)
	})

	t.Run("input slice is not modified", func(t *testing.T) {
		in := []string{"Preheat to {temp}"}
		_ = InjectParameters(in, domain.StepParameters{"temp": domain.NumberParam(375)}, nil)
		assert.Equal(t, "Preheat to {temp}", in[0])
	})
}

func TestProcessStep(t *testing.T) {
	template := cookieTemplate()

	t.Run("time scales with square root and rounds up", func(t *testing.T) {
		tests := []struct {
			scale    float64
			expected int
		}{
			{1, 10},
			{2, 15},
			{4, 20},
			{0.5, 8},
		}
		for _, tt := range tests {
			step := ProcessStep(&template.Steps[0], tt.scale)
			require.NotNil(t, step.EstimatedTime)
			assert.Equal(t, tt.expected, *step.EstimatedTime)
		}
	})

	t.Run("temperature is scale invariant", func(t *testing.T) {
		step := ProcessStep(&template.Steps[0], 3)
		require.NotNil(t, step.Temperature)
		assert.Equal(t, 375, *step.Temperature)
		assert.Equal(t, 1, step.Order)
	})

	t.Run("zero estimate is treated as absent", func(t *testing.T) {
		step := domain.RecipeStep{ID: "rest", EstimatedTime: domain.IntPtr(0)}
		assert.Nil(t, ProcessStep(&step, 2).EstimatedTime)
	})

	t.Run("missing estimate stays missing", func(t *testing.T) {
		step := domain.RecipeStep{ID: "rest"}
		processed := ProcessStep(&step, 2)
		assert.Nil(t, processed.EstimatedTime)
		assert.Nil(t, processed.Temperature)
		assert.Empty(t, processed.Ingredients)
		assert.Empty(t, processed.Groups)
	})

	t.Run("flat and grouped ingredients scale alike", func(t *testing.T) {
		step := ProcessStep(&template.Steps[1], 2)
		require.Len(t, step.Ingredients, 1)
		assert.InDelta(t, 4.0, step.Ingredients[0].Amount, 1e-9)
		require.Len(t, step.Groups, 2)
		assert.InDelta(t, 4.5, step.Groups[0].Ingredients[0].Amount, 1e-9)
		assert.InDelta(t, 1.5, step.Groups[1].Ingredients[0].Amount, 1e-9)
		assert.Equal(t, "Adjust sweetness to taste", step.Groups[1].Ingredients[0].Hint)
		assert.Equal(t, []string{
			"Whisk together 4 ½ cups all-purpose flour and 1 tsp salt",
			"Cream 1 ½ cups granulated sugar until light and fluffy",
		}, step.Instructions)
	})
}

func TestProcessRecipe(t *testing.T) {
	t.Run("servings round from base", func(t *testing.T) {
		tests := []struct {
			scale    float64
			expected int
		}{
			{1, 24},
			{0.5, 12},
			{1.25, 30},
			{4, 96},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.expected, ProcessRecipe(cookieTemplate(), tt.scale).Servings)
		}
	})

	t.Run("half servings round up", func(t *testing.T) {
		template := cookieTemplate()
		template.BaseServings = 5
		assert.Equal(t, 3, ProcessRecipe(template, 0.5).Servings)
	})

	t.Run("template is not mutated", func(t *testing.T) {
		template := cookieTemplate()
		processed := ProcessRecipe(template, 2)
		processed.Categories[0] = "changed"
		processed.Steps[0].Parameters["temp"] = domain.NumberParam(1)

		assert.Equal(t, cookieTemplate(), template)
	})

	t.Run("metadata is carried over", func(t *testing.T) {
		processed := ProcessRecipe(cookieTemplate(), 1.5)
		assert.Equal(t, "chocolate-cookies", processed.ID)
		assert.Equal(t, 1.5, processed.ScaleFactor)
		assert.Equal(t, 45, processed.EstimatedTime)
		assert.Equal(t, domain.DifficultyEasy, processed.Difficulty)
		assert.Len(t, processed.Steps, 2)
		assert.Equal(t, []string{"Preheat oven to 375°F"}, processed.Steps[0].Instructions)
	})

	t.Run("rescaling from the template avoids drift", func(t *testing.T) {
		template := &domain.RecipeTemplate{
			ID:           "drift",
			BaseServings: 3,
			Steps: []domain.RecipeStep{{
				ID:          "only",
				Ingredients: []domain.FlexibleIngredient{{Ingredient: flour, Amount: domain.FixedAmount(1)}},
			}},
		}

		third := ProcessRecipe(template, 1.0/3.0)
		chained := roundTo(third.Steps[0].Ingredients[0].Amount*3, AmountPrecision)
		direct := ProcessRecipe(template, 1).Steps[0].Ingredients[0].Amount

		assert.InDelta(t, 0.999, chained, 1e-9)
		assert.InDelta(t, 1.0, direct, 1e-9)
	})

	t.Run("no steps yields an empty list", func(t *testing.T) {
		template := &domain.RecipeTemplate{ID: "unstartable-croissant", BaseServings: 12, Unstartable: true, Notes: "in development"}
		processed := ProcessRecipe(template, 2)
		assert.NotNil(t, processed.Steps)
		assert.Empty(t, processed.Steps)
		assert.True(t, processed.Unstartable)
		assert.Equal(t, 24, processed.Servings)
	})
}
