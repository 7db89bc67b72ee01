package game

import "github.com/osse101/BakeWatt_Go/internal/domain"

// State is everything a player session knows about its progress.
// Template is kept so that rescaling always starts from the authored recipe.
type State struct {
	Screen      Screen                  `json:"screen"`
	Template    *domain.RecipeTemplate  `json:"-"`
	Recipe      *domain.ProcessedRecipe `json:"recipe,omitempty"`
	ScaleFactor float64                 `json:"scale_factor"`
	StepIndex   int                     `json:"step_index"`
	Notice      string                  `json:"notice,omitempty"`
}

// NewState returns the state of a session that has not picked a recipe
func NewState() State {
	return State{
		Screen:      ScreenRecipeIndex,
		ScaleFactor: DefaultScaleFactor,
	}
}

// CurrentStep returns the step being cooked, if any
func (s State) CurrentStep() *domain.ProcessedStep {
	if s.Recipe == nil || s.StepIndex < 0 || s.StepIndex >= len(s.Recipe.Steps) {
		return nil
	}
	return &s.Recipe.Steps[s.StepIndex]
}

// Command is a player action as received from a client
type Command struct {
	Type     CommandType `json:"type" validate:"required,oneof=select_recipe scale start_cooking next_step previous_step back reset"`
	RecipeID string      `json:"recipe_id,omitempty" validate:"max=100"`
	Factor   float64     `json:"factor,omitempty" validate:"gte=0"`
}

// Event is a command together with the template it resolved to
type Event struct {
	Command  Command
	Template *domain.RecipeTemplate
}
