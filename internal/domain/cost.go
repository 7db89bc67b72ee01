package domain

// IngredientCost is the cost of a single ingredient occurrence
type IngredientCost struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// CostBreakdown is the priced view of a processed recipe.
// IngredientCosts holds one entry per occurrence, in traversal order.
type CostBreakdown struct {
	TotalCost       float64          `json:"total_cost"`
	IngredientCosts []IngredientCost `json:"ingredient_costs"`
}
