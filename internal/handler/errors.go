package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidScaleParam = "scale must be a positive number no greater than %g"
	ErrMsgInvalidValueParam = "value must be a finite number"
	ErrMsgMissingRecipeID   = "Missing recipe ID"
	ErrMsgMissingSessionID  = "Missing session ID"

	// Recipe operation error messages
	ErrMsgListRecipesFailed   = "Failed to list recipes"
	ErrMsgGetRecipeFailed     = "Failed to get recipe"
	ErrMsgGetCostFailed       = "Failed to calculate recipe cost"
	ErrMsgGetRangesFailed     = "Failed to get amount ranges"
	ErrMsgShoppingListFailed  = "Failed to build shopping list"
	ErrMsgFormatAmountFailed  = "Failed to format amount"
	ErrMsgCreateSessionFailed = "Failed to create session"
	ErrMsgGetSessionFailed    = "Failed to get session"
	ErrMsgCommandFailed       = "Failed to apply command"
)

// Success messages for API responses
const (
	MsgCacheCleared   = "Template cache cleared"
	MsgSessionCreated = "Session created"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError      = "Something went wrong"
	ErrMsgUnknownError            = "Unknown error"
	ErrMsgRecipeNotFoundError     = "Recipe not found"
	ErrMsgIngredientNotFoundError = "Ingredient not found"
	ErrMsgRecipeUnstartableError  = "That recipe cannot be started yet"
	ErrMsgInvalidScaleError       = "Scale factor must be a positive number"
	ErrMsgInvalidAmountError      = "Amount must be a finite number"
	ErrMsgSessionNotFoundError    = "Session not found or expired"
	ErrMsgNoRecipeSelectedError   = "Select a recipe first"
	ErrMsgInvalidCommandError     = "That action is not available right now"
	ErrMsgStoreUnavailableError   = "Recipe store is temporarily unavailable. Please try again later."
	ErrMsgInvalidTemplateError    = "Recipe template is invalid"
	ErrMsgShuttingDownError       = "Server is shutting down. Please try again later."
)
