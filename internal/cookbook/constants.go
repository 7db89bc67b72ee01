package cookbook

// Scale defaults
const (
	// DefaultScaleFactor is used when a caller does not ask for a batch size
	DefaultScaleFactor = 1.0
)

// Log messages
const (
	LogMsgProcessRecipe    = "Processing recipe"
	LogMsgCacheWarmStarted = "Warming template cache"
	LogMsgCacheWarmFailed  = "Failed to warm template cache"
	LogMsgCacheWarmDone    = "Template cache warmed"
	LogMsgCacheWarmSkipped = "Service shutting down, skipping template cache warm-up"
	LogMsgShuttingDown     = "Cookbook service shutting down, waiting for background tasks..."
)
