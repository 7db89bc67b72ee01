package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingBakeWatt    = "Starting BakeWatt"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Provider Initialization
// =============================================================================

const (
	// SyncConcurrency bounds parallel upserts during a catalog sync
	SyncConcurrency = 4

	LogMsgCatalogLoaded       = "Bundled catalog loaded"
	LogMsgDatabaseConnected   = "Recipe store connected"
	LogMsgUsingStaticCatalog  = "No database configured, serving the bundled catalog"
	LogMsgDatabaseUnavailable = "Recipe database unavailable, serving the bundled catalog"
	LogMsgSyncSkipped         = "Catalog sync failed, continuing with the current database contents"

	ErrMsgFailedLoadCatalog    = "failed to load bundled catalog"
	ErrMsgFailedConnectDB      = "failed to connect to recipe database"
	ErrMsgFailedRunMigrations  = "failed to run database migrations"
	ErrMsgFailedSyncCatalog    = "failed to sync catalog to database"
	ErrMsgFailedListCatalog    = "failed to read bundled catalog"
	ErrMsgFailedSyncIngredient = "failed to sync ingredient %s"
	ErrMsgFailedSyncTemplate   = "failed to sync template %s"
)

// =============================================================================
// Config Sync Messages
// =============================================================================

const (
	LogMsgSyncingCatalog = "Syncing bundled catalog into the recipe store..."
	LogMsgCatalogSynced  = "Catalog synced successfully"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"

	// Service names for shutdown logging
	ServiceNameCookbook = "cookbook"
	ServiceNameGame     = "game"

	// LogMsgServiceShutdownFailed is appended to the service name
	LogMsgServiceShutdownFailed = " service shutdown failed"
)
