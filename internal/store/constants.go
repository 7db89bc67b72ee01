package store

import "time"

// CacheSchemaVersion is the current version of the template cache entries.
// Increment this when the cached data structure changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// Cache defaults
const (
	DefaultCacheSize = 128
	DefaultCacheTTL  = 10 * time.Minute
)

// Log messages
const (
	LogMsgPrimaryListFailed      = "Primary template provider failed, using bundled catalog"
	LogMsgPrimaryListEmpty       = "Primary template provider returned no templates, using bundled catalog"
	LogMsgPrimaryGetFailed       = "Primary template lookup failed"
	LogMsgFallbackGetFailed      = "Bundled template lookup failed"
	LogMsgPrimaryIngredientsFail = "Primary ingredient catalog failed, using bundled catalog"
	LogMsgCacheCleared           = "Template cache cleared"
)
