// Package recipe turns authored recipe templates into scaled, fully
// substituted recipes. Every function is pure: inputs are never modified and
// each call allocates its own output, so callers may use the package from any
// number of goroutines.
package recipe

import (
	"math"
	"sort"
	"strings"

	"github.com/osse101/BakeWatt_Go/internal/domain"
)

// ProcessRecipe scales a template and resolves all of its placeholders.
// The scale factor is not clamped; callers decide what range they allow.
func ProcessRecipe(template *domain.RecipeTemplate, scaleFactor float64) *domain.ProcessedRecipe {
	steps := make([]domain.ProcessedStep, 0, len(template.Steps))
	for i := range template.Steps {
		steps = append(steps, ProcessStep(&template.Steps[i], scaleFactor))
	}

	return &domain.ProcessedRecipe{
		ID:            template.ID,
		Name:          template.Name,
		Icon:          template.Icon,
		Description:   template.Description,
		Difficulty:    template.Difficulty,
		Servings:      roundHalfUp(float64(template.BaseServings) * scaleFactor),
		ScaleFactor:   scaleFactor,
		EstimatedTime: template.EstimatedTime,
		Categories:    append([]string{}, template.Categories...),
		Steps:         steps,
		Unstartable:   template.Unstartable,
		Notes:         template.Notes,
	}
}

// ProcessStep scales a single step. Preparation time grows with the square
// root of the scale factor; temperature does not change with batch size.
func ProcessStep(step *domain.RecipeStep, scaleFactor float64) domain.ProcessedStep {
	ingredients := scaleIngredients(step.Ingredients, scaleFactor)
	groups := scaleGroups(step.Groups, scaleFactor)

	processed := domain.ProcessedStep{
		ID:           step.ID,
		Name:         step.Name,
		Description:  step.Description,
		Order:        step.Order,
		Instructions: InjectParameters(step.Instructions, step.Parameters, groups),
		Ingredients:  ingredients,
		Groups:       groups,
		Parameters:   step.Parameters.Clone(),
	}

	// A zero estimate is treated the same as a missing one
	if step.EstimatedTime != nil && *step.EstimatedTime != 0 {
		scaled := math.Ceil(float64(*step.EstimatedTime) * math.Sqrt(scaleFactor))
		if !math.IsNaN(scaled) && !math.IsInf(scaled, 0) {
			processed.EstimatedTime = domain.IntPtr(int(scaled))
		}
	}
	if step.Temperature != nil {
		processed.Temperature = domain.IntPtr(*step.Temperature)
	}

	return processed
}

// ScaleAmount resolves an amount to a single scaled number, rounded to three
// decimals. Flexible amounts scale their recommended value.
func ScaleAmount(amount domain.Amount, scaleFactor float64) float64 {
	if amount.IsFixed() {
		return roundTo(amount.Value*scaleFactor, AmountPrecision)
	}
	return roundTo(amount.Range.Recommended*scaleFactor, AmountPrecision)
}

// GetAmountRange reports the scaled bounds of an amount. A fixed amount
// reports the same scaled value in every field.
func GetAmountRange(amount domain.Amount, scaleFactor float64) domain.AmountRange {
	if amount.IsFixed() {
		scaled := amount.Value * scaleFactor
		return domain.AmountRange{Min: scaled, Max: scaled, Recommended: scaled, IsFixed: true}
	}

	return domain.AmountRange{
		Min:         roundTo(amount.Range.Min*scaleFactor, AmountPrecision),
		Max:         roundTo(amount.Range.Max*scaleFactor, AmountPrecision),
		Recommended: roundTo(amount.Range.Recommended*scaleFactor, AmountPrecision),
		IsFixed:     false,
	}
}

// InjectParameters substitutes {key} placeholders with parameter values and
// then {group:name} placeholders with a readable ingredient list.
// Placeholders without a matching parameter or group are left untouched.
func InjectParameters(instructions []string, parameters domain.StepParameters, groups []domain.ProcessedGroup) []string {
	out := make([]string, len(instructions))
	copy(out, instructions)

	keys := make([]string, 0, len(parameters))
	for key := range parameters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i := range out {
		for _, key := range keys {
			out[i] = strings.ReplaceAll(out[i], placeholderOpen+key+placeholderClose, parameters[key].String())
		}
	}

	for _, group := range groups {
		token := placeholderOpen + groupTokenPrefix + group.Name + placeholderClose
		list := FormatIngredientList(group.Ingredients)
		for i := range out {
			out[i] = strings.ReplaceAll(out[i], token, list)
		}
	}

	return out
}

func scaleIngredients(ingredients []domain.FlexibleIngredient, scaleFactor float64) []domain.ProcessedIngredient {
	out := make([]domain.ProcessedIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, domain.ProcessedIngredient{
			Ingredient: ing.Ingredient,
			Amount:     ScaleAmount(ing.Amount, scaleFactor),
			Hint:       ing.Hint,
		})
	}
	return out
}

func scaleGroups(groups []domain.IngredientGroup, scaleFactor float64) []domain.ProcessedGroup {
	out := make([]domain.ProcessedGroup, 0, len(groups))
	for _, group := range groups {
		out = append(out, domain.ProcessedGroup{
			Name:        group.Name,
			Description: group.Description,
			Ingredients: scaleIngredients(group.Ingredients, scaleFactor),
		})
	}
	return out
}

// roundTo rounds half away from zero at the given number of decimals
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// roundHalfUp rounds to the nearest integer with ties going up
func roundHalfUp(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Floor(v + 0.5))
}
