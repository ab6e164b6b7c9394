package roulette

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkinTrade_Go/internal/domain"
)

func TestSpinner_RevealsOnceAfterDelay(t *testing.T) {
	s := NewSpinner(20 * time.Millisecond)

	var calls atomic.Int32
	revealed := make(chan *Spin, 1)
	spin := &Spin{ID: "spin-1", Key: "session-1", CaseID: "1"}

	require.NoError(t, s.Start(context.Background(), spin, func(sp *Spin) {
		calls.Add(1)
		revealed <- sp
	}))

	pending, ok := s.Pending("session-1")
	require.True(t, ok)
	assert.Same(t, spin, pending)
	assert.Equal(t, spin.StartedAt.Add(20*time.Millisecond), spin.RevealAt)

	select {
	case got := <-revealed:
		assert.Same(t, spin, got)
	case <-time.After(2 * time.Second):
		t.Fatal("reveal did not fire")
	}

	s.Wait()
	assert.Equal(t, int32(1), calls.Load())
	_, ok = s.Pending("session-1")
	assert.False(t, ok)
	assert.Equal(t, 0, s.PendingCount())
}

func TestSpinner_RejectsSecondSpinForSameKey(t *testing.T) {
	s := NewSpinner(50 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, s.Start(ctx, &Spin{ID: "a", Key: "k"}, nil))
	err := s.Start(ctx, &Spin{ID: "b", Key: "k"}, nil)
	assert.ErrorIs(t, err, domain.ErrSpinInProgress)

	require.NoError(t, s.Start(ctx, &Spin{ID: "c", Key: "other"}, nil))
	assert.Equal(t, 2, s.PendingCount())

	s.Wait()
	require.NoError(t, s.Start(ctx, &Spin{ID: "d", Key: "k"}, nil))
	s.Wait()
}

func TestSpinner_ConcurrentStartsAllowOnlyOne(t *testing.T) {
	s := NewSpinner(30 * time.Millisecond)

	var wg sync.WaitGroup
	var ok atomic.Int32
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Start(context.Background(), &Spin{Key: "same"}, nil); err == nil {
				ok.Add(1)
			}
		}()
	}
	wg.Wait()
	s.Wait()

	assert.Equal(t, int32(1), ok.Load())
}

func TestNewSpinner_NegativeDelayClamped(t *testing.T) {
	assert.Equal(t, time.Duration(0), NewSpinner(-time.Second).Delay())
}
