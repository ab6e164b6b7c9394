package eventlog

// History limits
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200

	// DefaultPerSession caps the entries kept for one session; older entries fall off.
	DefaultPerSession = 100
)

// Log messages - service events
const (
	LogMsgEventWithoutSession = "Event has no owning session, skipping log"
	LogMsgFailedToLogEvent    = "Failed to record activity"
	LogMsgEventLogged         = "Activity recorded"
	LogMsgSessionForgotten    = "Activity dropped for session"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting activity cleanup job"
	LogMsgCleanupJobFailed    = "Activity cleanup failed"
	LogMsgCleanupJobCompleted = "Activity cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType         = "type"
	LogFieldSessionID    = "session_id"
	LogFieldError        = "error"
	LogFieldRetention    = "retention"
	LogFieldDuration     = "duration"
	LogFieldDeletedCount = "deletedCount"
)

// CleanupJobName identifies the cleanup job in worker logs
const CleanupJobName = "activity_cleanup"
