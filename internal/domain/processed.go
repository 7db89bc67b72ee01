package domain

// ProcessedIngredient is an ingredient whose amount has been resolved to a scalar
type ProcessedIngredient struct {
	Ingredient Ingredient `json:"ingredient"`
	Amount     float64    `json:"amount"`
	Hint       string     `json:"hint,omitempty"`
}

// ProcessedGroup is an ingredient group with resolved amounts
type ProcessedGroup struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Ingredients []ProcessedIngredient `json:"ingredients"`
}

// ProcessedStep is a step with scaled ingredients and substituted instructions
type ProcessedStep struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Order         int                   `json:"order"`
	EstimatedTime *int                  `json:"estimated_time,omitempty"`
	Temperature   *int                  `json:"temperature,omitempty"`
	Instructions  []string              `json:"instructions"`
	Ingredients   []ProcessedIngredient `json:"ingredients"`
	Groups        []ProcessedGroup      `json:"groups"`
	Parameters    StepParameters        `json:"parameters"`
}

// ProcessedRecipe is a template with a scale factor applied.
// It is always derived from the original template, never from another
// processed recipe.
type ProcessedRecipe struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Icon          string          `json:"icon"`
	Description   string          `json:"description"`
	Difficulty    Difficulty      `json:"difficulty"`
	Servings      int             `json:"servings"`
	ScaleFactor   float64         `json:"scale_factor"`
	EstimatedTime int             `json:"estimated_time"`
	Categories    []string        `json:"categories"`
	Steps         []ProcessedStep `json:"steps"`
	Unstartable   bool            `json:"unstartable,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// AmountRange is the scaled range of an amount, used by UI sliders
type AmountRange struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Recommended float64 `json:"recommended"`
	IsFixed     bool    `json:"is_fixed"`
}

// IngredientRange locates an AmountRange within a recipe
type IngredientRange struct {
	StepID       string      `json:"step_id"`
	Group        string      `json:"group,omitempty"`
	IngredientID string      `json:"ingredient_id"`
	Name         string      `json:"name"`
	Unit         string      `json:"unit"`
	Hint         string      `json:"hint,omitempty"`
	Range        AmountRange `json:"range"`
}

// ShoppingItem is one line of the "all ingredients needed" list
type ShoppingItem struct {
	StepID       string  `json:"step_id"`
	Group        string  `json:"group,omitempty"`
	IngredientID string  `json:"ingredient_id"`
	Name         string  `json:"name"`
	Icon         string  `json:"icon"`
	Unit         string  `json:"unit"`
	Amount       float64 `json:"amount"`
	Display      string  `json:"display"`
	Hint         string  `json:"hint,omitempty"`
}
