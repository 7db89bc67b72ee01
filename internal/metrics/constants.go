package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameRecipesProcessed     = "recipes_processed_total"
	MetricNameCostCalculations     = "recipe_cost_calculations_total"
	MetricNameTemplateSource       = "template_source_total"
	MetricNameTemplateCacheEvents  = "template_cache_events_total"
	MetricNameGameCommands         = "game_commands_total"
	MetricNameGameSessionsActive   = "game_sessions_active"
	MetricNameCatalogSyncedRecords = "catalog_synced_records_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextRecipesProcessed     = "Total number of recipe templates scaled and substituted"
	HelpTextCostCalculations     = "Total number of recipe cost breakdowns computed"
	HelpTextTemplateSource       = "Total number of templates served, by the provider that supplied them"
	HelpTextTemplateCacheEvents  = "Total number of template cache hits, misses and purges"
	HelpTextGameCommands         = "Total number of game commands dispatched, by command and result"
	HelpTextGameSessionsActive   = "Current number of cached game sessions"
	HelpTextCatalogSyncedRecords = "Total number of catalog records written to the database, by kind"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelRecipe  = "recipe"
	LabelSource  = "source"
	LabelEvent   = "event"
	LabelCommand = "command"
	LabelResult  = "result"
	LabelKind    = "kind"
)

// ============================================================================
// Label Values
// ============================================================================

// Template sources
const (
	SourcePrimary  = "primary"
	SourceFallback = "fallback"
	SourceCache    = "cache"
)

// Cache events
const (
	CacheEventHit   = "hit"
	CacheEventMiss  = "miss"
	CacheEventPurge = "purge"
)

// Command results
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
)

// Sync kinds
const (
	KindIngredient = "ingredient"
	KindTemplate   = "template"
)

// unmatchedRoute labels requests chi could not route, keeping path cardinality bounded
const unmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
