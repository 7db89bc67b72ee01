package game

import "time"

// Screen identifies which panel of the bakery a session is looking at
type Screen string

const (
	ScreenRecipeIndex      Screen = "recipe-index"
	ScreenRecipeDetail     Screen = "recipe-detail"
	ScreenRecipeProduction Screen = "recipe-production"
	ScreenComplete         Screen = "complete"
)

// CommandType names a player action
type CommandType string

const (
	CommandSelectRecipe CommandType = "select_recipe"
	CommandScale        CommandType = "scale"
	CommandStartCooking CommandType = "start_cooking"
	CommandNextStep     CommandType = "next_step"
	CommandPreviousStep CommandType = "previous_step"
	CommandBack         CommandType = "back"
	CommandReset        CommandType = "reset"
)

// Scale bounds applied by the scale command
const (
	DefaultScaleFactor = 1.0
	MinScaleFactor     = 0.5
	MaxScaleFactor     = 4.0
)

// Session store defaults
const (
	DefaultSessionCapacity = 1024
	DefaultSessionTTL      = 2 * time.Hour
)

// Error message formats
const (
	ErrMsgUnknownCommandFmt   = "unknown command %q"
	ErrMsgWrongScreenFmt      = "%s is not available on screen %s"
	ErrMsgMissingRecipeID     = "select_recipe requires recipe_id"
	ErrMsgResolveRecipeFailed = "failed to resolve recipe"
	ErrMsgServiceShutDown     = "game service is shut down"
)

// Log messages
const (
	LogMsgSessionCreated    = "Game session created"
	LogMsgCommandRejected   = "Game command rejected"
	LogMsgCommandDispatched = "Game command dispatched"
	LogMsgShuttingDown      = "Game service shutting down, dropping sessions"
)
