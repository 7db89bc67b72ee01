package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BakeWatt_Go/internal/domain"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0.5, "½"},
		{1.5, "1 ½"},
		{2, "2"},
		{0.6, "0.6"},
		{0.25, "¼"},
		{2.75, "2 ¾"},
		{0.333, "⅓"},
		{1.667, "1 ⅔"},
		{0.1, "0.1"},
		{0, "0"},
		{12, "12"},
		{3.125, "3.125"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAmount(tt.amount))
		})
	}
}

func TestFormatIngredientList(t *testing.T) {
	cupsFlour := domain.ProcessedIngredient{Ingredient: domain.Ingredient{Name: "Flour", Unit: "cups"}, Amount: 1}
	cupsSugar := domain.ProcessedIngredient{Ingredient: domain.Ingredient{Name: "Sugar", Unit: "cups"}, Amount: 1}
	wholeEggs := domain.ProcessedIngredient{Ingredient: domain.Ingredient{Name: "Eggs", Unit: "whole"}, Amount: 2}

	tests := []struct {
		name        string
		ingredients []domain.ProcessedIngredient
		expected    string
	}{
		{"empty", nil, ""},
		{"single", []domain.ProcessedIngredient{cupsFlour}, "1 cups flour"},
		{"pair", []domain.ProcessedIngredient{cupsFlour, cupsSugar}, "1 cups flour and 1 cups sugar"},
		{"oxford comma", []domain.ProcessedIngredient{cupsFlour, cupsSugar, wholeEggs}, "1 cups flour, 1 cups sugar, and 2 whole eggs"},
		{"names are lowercased", []domain.ProcessedIngredient{{Ingredient: flour, Amount: 0.75}}, "¾ cups all-purpose flour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatIngredientList(tt.ingredients))
		})
	}
}

func TestShoppingList(t *testing.T) {
	processed := ProcessRecipe(cookieTemplate(), 1)
	items := ShoppingList(processed)

	require.Len(t, items, 4)
	assert.Equal(t, "eggs", items[0].IngredientID)
	assert.Empty(t, items[0].Group)
	assert.Equal(t, "flour", items[1].IngredientID)
	assert.Equal(t, "dry", items[1].Group)
	assert.Equal(t, "2 ¼", items[1].Display)
	assert.Equal(t, "sugar", items[3].IngredientID)
	assert.Equal(t, "¾", items[3].Display)
	assert.Equal(t, "Adjust sweetness to taste", items[3].Hint)
}

func TestAmountRanges(t *testing.T) {
	ranges := AmountRanges(cookieTemplate(), 2)

	require.Len(t, ranges, 4)
	assert.True(t, ranges[0].Range.IsFixed)
	assert.Equal(t, "mix", ranges[3].StepID)
	assert.Equal(t, "fats", ranges[3].Group)
	assert.False(t, ranges[3].Range.IsFixed)
	assert.InDelta(t, 1.0, ranges[3].Range.Min, 1e-9)
	assert.InDelta(t, 2.5, ranges[3].Range.Max, 1e-9)
}

func TestUnresolvedPlaceholders(t *testing.T) {
	tokens := UnresolvedPlaceholders([]string{
		"Fill {fill} full",
		"Bake {time} minutes, then {fill} again",
		"Mix {group:wet}",
		"No tokens here",
	})
	assert.Equal(t, []string{"{fill}", "{time}", "{group:wet}"}, tokens)
	assert.Empty(t, UnresolvedPlaceholders([]string{"plain"}))
}
