package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Recipe errors
	ErrMsgRecipeNotFound     = "recipe not found"
	ErrMsgRecipeUnstartable  = "recipe cannot be started"
	ErrMsgInvalidTemplate    = "invalid recipe template"
	ErrMsgInvalidScaleFactor = "scale factor must be a positive number"
	ErrMsgInvalidAmount      = "amount must be a finite number"

	// Catalog errors
	ErrMsgIngredientNotFound = "ingredient not found"

	// Store errors
	ErrMsgStoreUnavailable = "recipe store unavailable"

	// Lifecycle errors
	ErrMsgServiceShuttingDown = "service is shutting down"

	// Session errors
	ErrMsgSessionNotFound  = "session not found"
	ErrMsgNoRecipeSelected = "no recipe selected"
	ErrMsgInvalidCommand   = "invalid command"
)

var (
	ErrRecipeNotFound     = errors.New(ErrMsgRecipeNotFound)
	ErrRecipeUnstartable  = errors.New(ErrMsgRecipeUnstartable)
	ErrInvalidTemplate    = errors.New(ErrMsgInvalidTemplate)
	ErrInvalidScaleFactor = errors.New(ErrMsgInvalidScaleFactor)
	ErrInvalidAmount      = errors.New(ErrMsgInvalidAmount)

	ErrIngredientNotFound = errors.New(ErrMsgIngredientNotFound)

	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)

	ErrServiceShuttingDown = errors.New(ErrMsgServiceShuttingDown)

	ErrSessionNotFound  = errors.New(ErrMsgSessionNotFound)
	ErrNoRecipeSelected = errors.New(ErrMsgNoRecipeSelected)
	ErrInvalidCommand   = errors.New(ErrMsgInvalidCommand)
)
