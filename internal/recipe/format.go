package recipe

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/BakeWatt_Go/internal/domain"
)

// FormatAmount renders a quantity the way a cookbook would: 1.5 becomes
// "1 ½" and 0.33 becomes "⅓". Remainders without a glyph fall back to the
// plain decimal form of the whole amount.
func FormatAmount(amount float64) string {
	decimal := math.Mod(amount, 1)
	whole := math.Floor(amount)
	if whole == 0 {
		whole = 0 // normalize -0
	}

	if decimal == 0 {
		return formatNumber(whole)
	}

	key := strconv.FormatFloat(decimal, 'f', FractionPrecision, 64)
	if glyph, ok := fractionGlyphs[key]; ok {
		if whole > 0 {
			return formatNumber(whole) + " " + glyph
		}
		return glyph
	}

	return formatNumber(amount)
}

// FormatIngredientList builds an English list such as
// "1 cups flour, 1 cups sugar, and 2 whole eggs".
func FormatIngredientList(ingredients []domain.ProcessedIngredient) string {
	if len(ingredients) == 0 {
		return ""
	}

	lower := cases.Lower(language.English)
	formatted := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		formatted = append(formatted, fmt.Sprintf(ingredientPattern,
			FormatAmount(ing.Amount), ing.Ingredient.Unit, lower.String(ing.Ingredient.Name)))
	}

	switch len(formatted) {
	case 1:
		return formatted[0]
	case 2:
		return formatted[0] + listConjunction + formatted[1]
	}

	last := len(formatted) - 1
	return strings.Join(formatted[:last], listSeparator) + listOxfordPrefix + formatted[last]
}

// ShoppingList flattens a processed recipe into one line per ingredient
// occurrence: step ingredients first, then each group, in step order.
func ShoppingList(processed *domain.ProcessedRecipe) []domain.ShoppingItem {
	items := make([]domain.ShoppingItem, 0)
	for _, step := range processed.Steps {
		for _, ing := range step.Ingredients {
			items = append(items, shoppingItem(step.ID, "", ing))
		}
		for _, group := range step.Groups {
			for _, ing := range group.Ingredients {
				items = append(items, shoppingItem(step.ID, group.Name, ing))
			}
		}
	}
	return items
}

func shoppingItem(stepID, group string, ing domain.ProcessedIngredient) domain.ShoppingItem {
	return domain.ShoppingItem{
		StepID:       stepID,
		Group:        group,
		IngredientID: ing.Ingredient.ID,
		Name:         ing.Ingredient.Name,
		Icon:         ing.Ingredient.Icon,
		Unit:         ing.Ingredient.Unit,
		Amount:       ing.Amount,
		Display:      FormatAmount(ing.Amount),
		Hint:         ing.Hint,
	}
}

// AmountRanges lists the scaled range of every ingredient in a template,
// in the same traversal order as ShoppingList.
func AmountRanges(template *domain.RecipeTemplate, scaleFactor float64) []domain.IngredientRange {
	ranges := make([]domain.IngredientRange, 0)
	for _, step := range template.Steps {
		for _, ing := range step.Ingredients {
			ranges = append(ranges, ingredientRange(step.ID, "", ing, scaleFactor))
		}
		for _, group := range step.Groups {
			for _, ing := range group.Ingredients {
				ranges = append(ranges, ingredientRange(step.ID, group.Name, ing, scaleFactor))
			}
		}
	}
	return ranges
}

func ingredientRange(stepID, group string, ing domain.FlexibleIngredient, scaleFactor float64) domain.IngredientRange {
	return domain.IngredientRange{
		StepID:       stepID,
		Group:        group,
		IngredientID: ing.Ingredient.ID,
		Name:         ing.Ingredient.Name,
		Unit:         ing.Ingredient.Unit,
		Hint:         ing.Hint,
		Range:        GetAmountRange(ing.Amount, scaleFactor),
	}
}

var placeholderRe = regexp.MustCompile(`\{[^{}\s]+\}`)

// UnresolvedPlaceholders returns the distinct {token}s still present in
// instructions, in order of first appearance.
func UnresolvedPlaceholders(instructions []string) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, instruction := range instructions {
		for _, token := range placeholderRe.FindAllString(instruction, -1) {
			if !seen[token] {
				seen[token] = true
				tokens = append(tokens, token)
			}
		}
	}
	return tokens
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
