package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkinTrade_Go/internal/metrics"
)

func TestScheduler_RunsJobs(t *testing.T) {
	var executed int32
	pool := NewPool(1, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	s := NewScheduler(pool)
	require.NoError(t, s.Schedule("@every 1s", &testJob{executed: &executed}))
	s.Start()

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&executed) >= 1 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}

func TestScheduler_RejectsBadSpec(t *testing.T) {
	var executed int32
	s := NewScheduler(NewPool(1, 1))
	assert.Error(t, s.Schedule("not a spec", &testJob{executed: &executed}))
}

type fakeSweeper struct{ n int }

func (f fakeSweeper) Sweep(context.Context) int { return f.n }

type fakeSpins struct{ n int }

func (f fakeSpins) PendingCount() int { return f.n }

func TestSessionGaugeJob(t *testing.T) {
	job := NewSessionGaugeJob(fakeSweeper{n: 7}, fakeSpins{n: 3})
	require.NoError(t, job.Process(context.Background()))

	assert.Equal(t, 7.0, testutil.ToFloat64(metrics.ActiveSessions))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.PendingSpins))
	assert.Equal(t, "session_gauges", job.Name())
}
