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

// Datastore metric names
const (
	MetricNameHealthChecksTotal = "health_checks_total"
	MetricNameProvisionRuns     = "provision_runs_total"
	MetricNameSeedRowsInserted  = "seed_rows_inserted_total"
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

// Datastore metric help text
const (
	HelpTextHealthChecksTotal = "Total number of database health checks by result"
	HelpTextProvisionRuns     = "Total number of provisioning runs by outcome"
	HelpTextSeedRowsInserted  = "Total number of seed rows inserted by table"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelResult  = "result"
	LabelOutcome = "outcome"
	LabelTable   = "table"
)

// ============================================================================
// Metric Label Values
// ============================================================================

// Provisioning outcomes
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Health check results
const (
	ResultHealthy   = "healthy"
	ResultUnhealthy = "unhealthy"
)

// Seeded table names
const (
	TableUsers           = "users"
	TableGames           = "games"
	TableGameScores      = "game_scores"
	TableAnalyticsEvents = "analytics_events"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
