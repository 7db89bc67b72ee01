package postgres

// Amount types stored in recipe_step_ingredients.amount_type
const (
	AmountTypeFixed    = "fixed"
	AmountTypeFlexible = "flexible"
)

// Row defaults applied when nullable columns are empty
const (
	DefaultFixedAmount       = 1.0
	DefaultFlexibleMin       = 0.0
	DefaultFlexibleMax       = 1.0
	DefaultFlexibleRecommend = 0.5
	DefaultFlexibleStep      = 0.1
)

// Group descriptions used when a row has none
const (
	GroupDry    = "dry"
	GroupWet    = "wet"
	GroupFats   = "fats"
	GroupMixins = "mixins"

	GroupDescriptionDry     = "Dry base ingredients"
	GroupDescriptionWet     = "Liquid ingredients"
	GroupDescriptionFats    = "Fat ingredients for creaming"
	GroupDescriptionMixins  = "Mix-in ingredients"
	GroupDescriptionPattern = "%s ingredients"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Recipe Operations
const (
	ErrMsgFailedToQueryTemplates    = "failed to query recipe templates"
	ErrMsgFailedToQuerySteps        = "failed to query recipe steps"
	ErrMsgFailedToQueryStepItems    = "failed to query step ingredients"
	ErrMsgFailedToQueryIngredients  = "failed to query ingredients"
	ErrMsgFailedToDecodeStep        = "failed to decode step %q"
	ErrMsgFailedToUpsertIngredient  = "failed to upsert ingredient %q"
	ErrMsgFailedToUpsertTemplate    = "failed to upsert template %q"
	ErrMsgFailedToClearSteps        = "failed to clear steps of template %q"
	ErrMsgFailedToInsertStep        = "failed to insert step %q"
	ErrMsgFailedToInsertStepItem    = "failed to insert ingredient %q for step %q"
	ErrMsgFailedToEncodeStep        = "failed to encode step %q"
)
