package config

import "time"

// Recipe sources
const (
	RecipeSourceStatic   = "static"
	RecipeSourcePostgres = "postgres"
)

// Defaults applied when the environment leaves a value unset
const (
	DefaultPort              = 8080
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultCacheSize         = 128
	DefaultCacheTTL          = 10 * time.Minute
	DefaultSessionCapacity   = 1024
	DefaultSessionTTL        = 2 * time.Hour
)

// Error messages
const (
	ErrMsgInvalidPort         = "invalid PORT value"
	ErrMsgAPIKeyRequired      = "API_KEY environment variable must be set for security"
	ErrMsgInvalidRecipeSource = "RECIPE_SOURCE must be %q or %q, got %q"
)
