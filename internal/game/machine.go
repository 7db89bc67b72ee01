package game

import (
	"context"
	"fmt"

	"github.com/osse101/BakeWatt_Go/internal/domain"
	"github.com/osse101/BakeWatt_Go/internal/repository"
)

// Machine resolves the templates a command needs and then reduces it
type Machine struct {
	provider repository.TemplateProvider
}

// NewMachine creates a machine backed by the given template provider
func NewMachine(provider repository.TemplateProvider) *Machine {
	return &Machine{provider: provider}
}

// Dispatch applies cmd to state. Only select_recipe touches the provider;
// every other command works from the template already held in state.
func (m *Machine) Dispatch(ctx context.Context, state State, cmd Command) (State, error) {
	event := Event{Command: cmd, Template: state.Template}

	if cmd.Type == CommandSelectRecipe {
		if cmd.RecipeID == "" {
			return state, fmt.Errorf("%w: %s", domain.ErrInvalidCommand, ErrMsgMissingRecipeID)
		}
		template, err := m.provider.GetTemplate(ctx, cmd.RecipeID)
		if err != nil {
			return state, fmt.Errorf("%s: %w", ErrMsgResolveRecipeFailed, err)
		}
		event.Template = template
	}

	return Reduce(state, event)
}
