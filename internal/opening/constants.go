package opening

import "time"

// Spin statuses
const (
	StatusSpinning = "spinning"
	StatusRevealed = "revealed"
)

// Spin history retention
const (
	DefaultSpinHistorySize = 10000
	DefaultSpinHistoryTTL  = time.Hour
)

const (
	LogMsgCaseOpened          = "Case opened"
	LogMsgCaseRevealed        = "Case revealed"
	LogMsgRevealSessionGone   = "Session gone before reveal, item discarded"
	LogMsgEventPublishFailed  = "Failed to publish event"
	LogMsgSpinStartRolledBack = "Spin could not start, charge rolled back"
)
