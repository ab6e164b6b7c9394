package roulette

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/SkinTrade_Go/internal/domain"
	"github.com/osse101/SkinTrade_Go/internal/logger"
)

// Spin is one case opening whose outcome is already decided but not yet shown.
type Spin struct {
	ID        string
	Key       string // owner; at most one pending spin per key
	CaseID    string
	Result    Result
	Strip     Strip
	StartedAt time.Time
	RevealAt  time.Time
}

// RevealFunc runs once when a spin's delay elapses.
type RevealFunc func(spin *Spin)

// Spinner withholds drawn results for a fixed delay and then fires a single callback.
// There is no cancellation: once started a spin always reveals.
type Spinner struct {
	mu      sync.Mutex
	delay   time.Duration
	pending map[string]*Spin
	wg      sync.WaitGroup
	now     func() time.Time
}

// NewSpinner creates a spinner with the given reveal delay.
func NewSpinner(delay time.Duration) *Spinner {
	if delay < 0 {
		delay = 0
	}
	return &Spinner{
		delay:   delay,
		pending: make(map[string]*Spin),
		now:     time.Now,
	}
}

// Delay returns the configured reveal delay.
func (s *Spinner) Delay() time.Duration {
	return s.delay
}

// Start schedules the reveal of spin. It fails with ErrSpinInProgress when the key
// already has a pending spin.
func (s *Spinner) Start(ctx context.Context, spin *Spin, onReveal RevealFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.pending[spin.Key]; busy {
		return domain.ErrSpinInProgress
	}

	spin.StartedAt = s.now()
	spin.RevealAt = spin.StartedAt.Add(s.delay)
	s.pending[spin.Key] = spin

	s.wg.Add(1)
	time.AfterFunc(s.delay, func() {
		defer s.wg.Done()
		s.reveal(spin, onReveal)
	})

	logger.FromContext(ctx).Debug(LogMsgSpinScheduled,
		LogFieldSpinID, spin.ID,
		LogFieldKey, spin.Key,
		LogFieldDelayMs, s.delay.Milliseconds())
	return nil
}

func (s *Spinner) reveal(spin *Spin, onReveal RevealFunc) {
	if onReveal != nil {
		onReveal(spin)
	}

	s.mu.Lock()
	if current, ok := s.pending[spin.Key]; ok && current == spin {
		delete(s.pending, spin.Key)
	}
	s.mu.Unlock()

	logger.Debug(LogMsgSpinRevealed, LogFieldSpinID, spin.ID, LogFieldKey, spin.Key)
}

// Pending returns the key's unrevealed spin, if any.
func (s *Spinner) Pending(key string) (*Spin, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	spin, ok := s.pending[key]
	return spin, ok
}

// PendingCount returns the number of spins waiting to reveal.
func (s *Spinner) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Wait blocks until every scheduled reveal has run.
func (s *Spinner) Wait() {
	s.wg.Wait()
}
