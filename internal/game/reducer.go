package game

import (
	"fmt"
	"math"

	"github.com/osse101/BakeWatt_Go/internal/domain"
	"github.com/osse101/BakeWatt_Go/internal/recipe"
)

// Reduce applies an event to a state and returns the next state. It performs
// no I/O. A rejected event returns the input state, possibly with a notice,
// alongside the error.
func Reduce(state State, event Event) (State, error) {
	if state.ScaleFactor <= 0 {
		state.ScaleFactor = DefaultScaleFactor
	}

	switch event.Command.Type {
	case CommandSelectRecipe:
		return selectRecipe(state, event.Template)
	case CommandScale:
		return scale(state, event.Command.Factor)
	case CommandStartCooking:
		return startCooking(state)
	case CommandNextStep:
		return nextStep(state)
	case CommandPreviousStep:
		return previousStep(state)
	case CommandBack:
		return back(state), nil
	case CommandReset:
		next := NewState()
		next.ScaleFactor = state.ScaleFactor
		return next, nil
	default:
		return state, fmt.Errorf("%w: "+ErrMsgUnknownCommandFmt, domain.ErrInvalidCommand, event.Command.Type)
	}
}

func selectRecipe(state State, template *domain.RecipeTemplate) (State, error) {
	if template == nil {
		return state, domain.ErrNoRecipeSelected
	}
	if template.Unstartable {
		state.Notice = template.Notes
		return state, fmt.Errorf("%w: %s", domain.ErrRecipeUnstartable, template.ID)
	}

	state.Template = template
	state.Recipe = recipe.ProcessRecipe(template, state.ScaleFactor)
	state.StepIndex = 0
	state.Screen = ScreenRecipeDetail
	state.Notice = ""
	return state, nil
}

// scale multiplies the current factor and clamps it to the playable range.
// The recipe is reprocessed from the template so repeated rescaling never drifts.
func scale(state State, factor float64) (State, error) {
	if state.Template == nil {
		return state, domain.ErrNoRecipeSelected
	}
	if state.Screen != ScreenRecipeDetail {
		return state, wrongScreen(CommandScale, state.Screen)
	}
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return state, fmt.Errorf("%w: %v", domain.ErrInvalidScaleFactor, factor)
	}

	state.ScaleFactor = clamp(state.ScaleFactor*factor, MinScaleFactor, MaxScaleFactor)
	state.Recipe = recipe.ProcessRecipe(state.Template, state.ScaleFactor)
	state.Notice = ""
	return state, nil
}

func startCooking(state State) (State, error) {
	if state.Recipe == nil {
		return state, domain.ErrNoRecipeSelected
	}
	if state.Screen != ScreenRecipeDetail {
		return state, wrongScreen(CommandStartCooking, state.Screen)
	}
	if len(state.Recipe.Steps) == 0 {
		return state, fmt.Errorf("%w: %s has no steps", domain.ErrRecipeUnstartable, state.Recipe.ID)
	}

	state.Screen = ScreenRecipeProduction
	state.StepIndex = 0
	return state, nil
}

func nextStep(state State) (State, error) {
	if state.Recipe == nil {
		return state, domain.ErrNoRecipeSelected
	}
	if state.Screen != ScreenRecipeProduction {
		return state, wrongScreen(CommandNextStep, state.Screen)
	}

	if state.StepIndex >= len(state.Recipe.Steps)-1 {
		state.Screen = ScreenComplete
		return state, nil
	}
	state.StepIndex++
	return state, nil
}

func previousStep(state State) (State, error) {
	if state.Recipe == nil {
		return state, domain.ErrNoRecipeSelected
	}
	if state.Screen != ScreenRecipeProduction {
		return state, wrongScreen(CommandPreviousStep, state.Screen)
	}

	if state.StepIndex > 0 {
		state.StepIndex--
	}
	return state, nil
}

// back leaves production for the recipe detail and the detail for the index.
// The selected recipe is kept so the player can return to it.
func back(state State) State {
	switch state.Screen {
	case ScreenRecipeProduction, ScreenComplete:
		state.Screen = ScreenRecipeDetail
		state.StepIndex = 0
	case ScreenRecipeDetail:
		state.Screen = ScreenRecipeIndex
	}
	state.Notice = ""
	return state
}

func wrongScreen(cmd CommandType, screen Screen) error {
	return fmt.Errorf("%w: "+ErrMsgWrongScreenFmt, domain.ErrInvalidCommand, cmd, screen)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
