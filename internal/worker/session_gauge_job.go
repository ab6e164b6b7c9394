package worker

import (
	"context"

	"github.com/osse101/SkinTrade_Go/internal/logger"
	"github.com/osse101/SkinTrade_Go/internal/metrics"
)

// SessionSweeper drops stale session bookkeeping and reports live sessions
type SessionSweeper interface {
	Sweep(ctx context.Context) int
}

// SpinCounter reports spins waiting for their reveal
type SpinCounter interface {
	PendingCount() int
}

// SessionGaugeJob refreshes the active session and pending spin gauges
type SessionGaugeJob struct {
	sessions SessionSweeper
	spins    SpinCounter
}

// NewSessionGaugeJob creates the gauge refresh job
func NewSessionGaugeJob(sessions SessionSweeper, spins SpinCounter) *SessionGaugeJob {
	return &SessionGaugeJob{sessions: sessions, spins: spins}
}

// Name implements Job
func (j *SessionGaugeJob) Name() string {
	return "session_gauges"
}

// Process implements Job
func (j *SessionGaugeJob) Process(ctx context.Context) error {
	active := j.sessions.Sweep(ctx)
	pending := j.spins.PendingCount()

	metrics.ActiveSessions.Set(float64(active))
	metrics.PendingSpins.Set(float64(pending))

	logger.FromContext(ctx).Debug(LogMsgSessionGaugeFresh, "active_sessions", active, "pending_spins", pending)
	return nil
}
