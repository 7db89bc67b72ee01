package domain

// Ingredient is immutable reference data describing a single pantry item.
// CostPerUnit is the price of one Unit of the ingredient.
type Ingredient struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	Icon        string  `json:"icon"`
	CostPerUnit float64 `json:"cost_per_unit"`
}

// Default display values used when a store row leaves them empty
const (
	DefaultIngredientIcon = "🥄"
	DefaultRecipeIcon     = "🍽️"
	DefaultRecipeMinutes  = 60
)
