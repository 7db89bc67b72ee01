package domain

import "slices"

// Difficulty is the author-assigned difficulty of a recipe
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulties
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// FlexibleIngredient pairs an ingredient with an authored amount
type FlexibleIngredient struct {
	Ingredient Ingredient `json:"ingredient"`
	Amount     Amount     `json:"amount"`
	Hint       string     `json:"hint,omitempty"`
}

// IngredientGroup is a named cluster of ingredients within a step.
// Instructions reference it as {group:<name>}.
type IngredientGroup struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Ingredients []FlexibleIngredient `json:"ingredients"`
}

// RecipeStep is one ordered unit of a recipe template.
// EstimatedTime is in minutes and Temperature in °F; both are optional.
type RecipeStep struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	Order         int                  `json:"order"`
	EstimatedTime *int                 `json:"estimated_time,omitempty"`
	Temperature   *int                 `json:"temperature,omitempty"`
	Instructions  []string             `json:"instructions"`
	Ingredients   []FlexibleIngredient `json:"ingredients"`
	Groups        []IngredientGroup    `json:"groups"`
	Parameters    StepParameters       `json:"parameters"`
}

// RecipeTemplate is the unscaled, authored recipe definition.
// Templates are never mutated once loaded.
type RecipeTemplate struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Icon          string       `json:"icon"`
	Description   string       `json:"description"`
	Difficulty    Difficulty   `json:"difficulty"`
	BaseServings  int          `json:"base_servings"`
	EstimatedTime int          `json:"estimated_time"`
	Categories    []string     `json:"categories"`
	Steps         []RecipeStep `json:"steps"`
	Unstartable   bool         `json:"unstartable,omitempty"`
	Notes         string       `json:"notes,omitempty"`
}

// Clone returns a deep copy of the template. Callers may modify the copy
// without affecting cached or catalog templates.
func (t *RecipeTemplate) Clone() *RecipeTemplate {
	out := *t
	out.Categories = slices.Clone(t.Categories)
	if t.Steps != nil {
		out.Steps = make([]RecipeStep, len(t.Steps))
		for i := range t.Steps {
			out.Steps[i] = t.Steps[i].clone()
		}
	}
	return &out
}

func (s *RecipeStep) clone() RecipeStep {
	out := *s
	if s.EstimatedTime != nil {
		out.EstimatedTime = IntPtr(*s.EstimatedTime)
	}
	if s.Temperature != nil {
		out.Temperature = IntPtr(*s.Temperature)
	}
	out.Instructions = slices.Clone(s.Instructions)
	out.Ingredients = cloneIngredients(s.Ingredients)
	if s.Groups != nil {
		out.Groups = make([]IngredientGroup, len(s.Groups))
		for i, g := range s.Groups {
			g.Ingredients = cloneIngredients(g.Ingredients)
			out.Groups[i] = g
		}
	}
	if s.Parameters != nil {
		out.Parameters = s.Parameters.Clone()
	}
	return out
}

func cloneIngredients(in []FlexibleIngredient) []FlexibleIngredient {
	if in == nil {
		return nil
	}
	out := make([]FlexibleIngredient, len(in))
	for i, ing := range in {
		ing.Amount = ing.Amount.Clone()
		out[i] = ing
	}
	return out
}

// Summary returns the listing view of the template
func (t *RecipeTemplate) Summary() RecipeSummary {
	return RecipeSummary{
		ID:            t.ID,
		Name:          t.Name,
		Icon:          t.Icon,
		Description:   t.Description,
		Difficulty:    t.Difficulty,
		BaseServings:  t.BaseServings,
		EstimatedTime: t.EstimatedTime,
		Categories:    append([]string(nil), t.Categories...),
		StepCount:     len(t.Steps),
		Unstartable:   t.Unstartable,
		Notes:         t.Notes,
	}
}

// RecipeSummary is the lightweight view used by recipe listings
type RecipeSummary struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Icon          string     `json:"icon"`
	Description   string     `json:"description"`
	Difficulty    Difficulty `json:"difficulty"`
	BaseServings  int        `json:"base_servings"`
	EstimatedTime int        `json:"estimated_time"`
	Categories    []string   `json:"categories"`
	StepCount     int        `json:"step_count"`
	Unstartable   bool       `json:"unstartable"`
	Notes         string     `json:"notes,omitempty"`
}

// IntPtr is a small helper for optional step fields
func IntPtr(v int) *int {
	return &v
}
