package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// LogMsgWorkerQueueFull is logged when a job is dropped because the queue is full
const LogMsgWorkerQueueFull = "Worker queue full, job dropped"

// ============================================================================
// Log Messages - Scheduler
// ============================================================================

const (
	LogMsgJobScheduled      = "Job scheduled"
	LogMsgSchedulerStopped  = "Scheduler stopped"
	LogMsgSchedulerTimeout  = "Scheduler stop timed out"
	LogMsgSessionGaugeFresh = "Session gauges refreshed"
)

// ============================================================================
// Defaults
// ============================================================================

const (
	DefaultWorkerCount = 2
	DefaultQueueSize   = 16

	// DefaultGaugeSchedule refreshes the session gauges every 30 seconds
	DefaultGaugeSchedule = "@every 30s"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
