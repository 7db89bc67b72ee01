package catalog

// ==================== Bundled Files ====================

// Paths inside the embedded data filesystem
const (
	IngredientsPath       = "data/ingredients.json"
	IngredientsSchemaPath = "data/ingredients.schema.json"
	TemplatesPath         = "data/templates.yaml"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadIngredientsFailed  = "failed to read ingredients file: %w"
	ErrMsgParseIngredientsFailed = "failed to parse ingredients: %w"
	ErrMsgReadTemplatesFailed    = "failed to read templates file: %w"
	ErrMsgParseTemplatesFailed   = "failed to parse templates: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil               = "config is nil"
	ErrMsgNoIngredientsDefined    = "no ingredients defined"
	ErrMsgNoTemplatesDefined      = "no templates defined"
	ErrMsgEmptyID                 = "has empty id"
	ErrMsgEmptyName               = "has empty name"
	ErrMsgNonPositiveServings     = "must have positive base_servings"
	ErrMsgNegativeTime            = "has negative estimated_time"
	ErrMsgUnknownDifficulty       = "has unknown difficulty %q"
	ErrMsgNoSteps                 = "has no steps and is not marked unstartable"
	ErrMsgStepOrder               = "step %q has order %d, want %d"
	ErrMsgDuplicateStepID         = "has duplicate step id %q"
	ErrMsgDuplicateGroup          = "step %q has duplicate group %q"
	ErrMsgUnknownIngredient       = "step %q references unknown ingredient %q"
	ErrMsgMissingAmount           = "step %q ingredient %q has no amount"
	ErrMsgNegativeAmount          = "step %q ingredient %q has a negative amount"
	ErrMsgUnorderedRange          = "step %q ingredient %q needs min <= recommended <= max"
	ErrMsgInvalidParameter        = "step %q parameter %q: %w"
	ErrMsgDuplicateIngredientID   = "duplicate ingredient id %q"
	ErrMsgDuplicateTemplateKey    = "template %q collides with %q after key normalization"
	ErrMsgInvalidAmountNode       = "amount must be a number or a {min, max, recommended} mapping"
	ErrMsgTemplateValidateFailed  = "template %q %s"
	ErrMsgTemplateValidateWrapped = "template %q: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded          = "Bundled recipe catalog loaded"
	LogMsgUnresolvedPlaceholders = "Recipe step has unresolved placeholders"
)
