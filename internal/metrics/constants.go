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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameCasesOpened    = "cases_opened_total"
	MetricNameItemsWon       = "items_won_total"
	MetricNameItemsSold      = "items_sold_total"
	MetricNameMoneySpent     = "money_spent_total"
	MetricNameMoneyEarned    = "money_earned_total"
	MetricNameFallbackDraws  = "fallback_draws_total"
	MetricNameActiveSessions = "active_sessions"
	MetricNamePendingSpins   = "pending_spins"
)

// ============================================================================
// Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextEventsPublished    = "Total number of events published by type"
	HelpTextEventHandlerErrors = "Total number of event handler errors by type"

	HelpTextCasesOpened    = "Total number of cases opened by case"
	HelpTextItemsWon       = "Total number of items revealed by rarity"
	HelpTextItemsSold      = "Total number of inventory items sold"
	HelpTextMoneySpent     = "Total currency spent on cases"
	HelpTextMoneyEarned    = "Total currency earned from selling items"
	HelpTextFallbackDraws  = "Total number of draws resolved by the fallback item"
	HelpTextActiveSessions = "Number of live sessions"
	HelpTextPendingSpins   = "Number of spins waiting for their reveal"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelCase   = "case"
	LabelRarity = "rarity"
)

// PathUnmatched labels requests that matched no route.
const PathUnmatched = "unmatched"

// HTTPLatencyBuckets are the histogram buckets for request duration
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// Log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
)
