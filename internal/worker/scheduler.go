package worker

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/osse101/SkinTrade_Go/internal/logger"
)

// Scheduler enqueues jobs into a pool on cron schedules
type Scheduler struct {
	cron *cron.Cron
	pool *Pool
}

// NewScheduler creates a scheduler feeding pool. Specs use the standard five-field
// cron syntax or descriptors such as "@every 30s".
func NewScheduler(pool *Pool) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		pool: pool,
	}
}

// Schedule registers job under spec.
func (s *Scheduler) Schedule(spec string, job Job) error {
	if _, err := s.cron.AddFunc(spec, func() { s.pool.Enqueue(job) }); err != nil {
		return fmt.Errorf("failed to schedule %s with %q: %w", job.Name(), spec, err)
	}
	logger.Info(LogMsgJobScheduled, "job", job.Name(), "spec", spec)
	return nil
}

// Start starts the cron loop
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduling and waits for running enqueue calls, bounded by ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		logger.Info(LogMsgSchedulerStopped)
		return nil
	case <-ctx.Done():
		logger.Warn(LogMsgSchedulerTimeout)
		return ctx.Err()
	}
}
