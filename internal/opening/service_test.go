package opening

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkinTrade_Go/internal/cases"
	"github.com/osse101/SkinTrade_Go/internal/domain"
	"github.com/osse101/SkinTrade_Go/internal/event"
	"github.com/osse101/SkinTrade_Go/internal/roulette"
	"github.com/osse101/SkinTrade_Go/internal/session"
	"github.com/osse101/SkinTrade_Go/internal/utils"
)

type recordingBus struct {
	mu     sync.Mutex
	events []event.Event
}

func (b *recordingBus) Publish(_ context.Context, evt event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
	return nil
}

func (b *recordingBus) Subscribe(event.Type, event.Handler) {}

func (b *recordingBus) types() []event.Type {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]event.Type, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.Type)
	}
	return out
}

var testCases = []domain.Case{
	{
		ID: "neon", Name: "Neon Case", Price: 250,
		Items: []domain.CaseItem{
			{ID: "1", Name: "Neon Glock", Rarity: domain.RarityCommon, Chance: 40},
			{ID: "2", Name: "Cyber AK-47", Rarity: domain.RarityRare, Chance: 30},
			{ID: "3", Name: "Plasma M4A4", Rarity: domain.RarityEpic, Chance: 20},
			{ID: "4", Name: "Dragon AWP", Rarity: domain.RarityLegendary, Chance: 10},
		},
	},
	{
		ID: "short", Name: "Short Case", Price: 100,
		Items: []domain.CaseItem{
			{ID: "a", Name: "First", Rarity: domain.RarityCommon, Chance: 30},
			{ID: "b", Name: "Second", Rarity: domain.RarityRare, Chance: 20},
		},
	},
	{ID: "empty", Name: "Empty Case", Price: 10},
}

type fixture struct {
	svc   *Service
	store *session.Store
	bus   *recordingBus
	sid   string
}

func newFixture(t *testing.T, balance int, delay time.Duration, rolls ...float64) fixture {
	t.Helper()
	reg, err := cases.NewRegistry(testCases)
	require.NoError(t, err)

	store := session.NewStore(session.Options{StartingBalance: balance})
	sess := store.Create(context.Background(), domain.User{Name: "t"})
	bus := &recordingBus{}

	var n atomic.Int64
	svc := NewService(reg, store, bus, Options{
		Spinner: roulette.NewSpinner(delay),
		Rand:    utils.FixedFloats(rolls...),
		NewID: func() string {
			return fmt.Sprintf("id-%d", n.Add(1))
		},
	})
	return fixture{svc: svc, store: store, bus: bus, sid: sess.ID}
}

func TestOpen_ChargesAndRevealsOnce(t *testing.T) {
	f := newFixture(t, 1000, 30*time.Millisecond, 0.5)
	ctx := context.Background()

	res, err := f.svc.Open(ctx, f.sid, "neon")
	require.NoError(t, err)
	assert.Equal(t, 250, res.Price)
	assert.Equal(t, 750, res.Balance)
	assert.Equal(t, int64(30), res.RevealAfterMs)
	assert.Equal(t, 4*roulette.StripRepeats, len(res.Strip.Tiles))
	assert.Equal(t, "2", res.Strip.Tiles[res.Strip.LandingIndex])

	view, err := f.svc.Spin(ctx, f.sid, res.SpinID)
	require.NoError(t, err)
	assert.Equal(t, StatusSpinning, view.Status)
	assert.Nil(t, view.Item, "item must stay hidden until reveal")

	sess, err := f.store.Get(ctx, f.sid)
	require.NoError(t, err)
	assert.Empty(t, sess.Inventory)
	assert.Equal(t, 1, sess.Stats.CasesOpened)

	f.svc.Spinner().Wait()

	view, err = f.svc.Spin(ctx, f.sid, res.SpinID)
	require.NoError(t, err)
	assert.Equal(t, StatusRevealed, view.Status)
	require.NotNil(t, view.Item)
	assert.Equal(t, "Cyber AK-47", view.Item.Name)
	assert.Equal(t, domain.SaleValueRare, view.Item.Value)
	assert.False(t, view.Fallback)

	sess, err = f.store.Get(ctx, f.sid)
	require.NoError(t, err)
	require.Len(t, sess.Inventory, 1)
	assert.Equal(t, view.Item.InstanceID, sess.Inventory[0].InstanceID)
	assert.Equal(t, 1, sess.Stats.ItemsWon)
	assert.Equal(t, 250, sess.Stats.TotalSpent)

	assert.Equal(t, []event.Type{event.CaseOpened, event.BalanceChanged, event.CaseRevealed}, f.bus.types())
}

func TestOpen_InsufficientFunds(t *testing.T) {
	f := newFixture(t, 249, 0, 0.1)
	ctx := context.Background()

	_, err := f.svc.Open(ctx, f.sid, "neon")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	sess, err := f.store.Get(ctx, f.sid)
	require.NoError(t, err)
	assert.Equal(t, 249, sess.Balance)
	assert.Zero(t, sess.Stats.CasesOpened)
	assert.Zero(t, f.svc.Spinner().PendingCount())
	assert.Empty(t, f.bus.types())
}

func TestOpen_OnePendingSpinPerSession(t *testing.T) {
	f := newFixture(t, 10000, 50*time.Millisecond, 0.1)
	ctx := context.Background()

	_, err := f.svc.Open(ctx, f.sid, "neon")
	require.NoError(t, err)

	_, err = f.svc.Open(ctx, f.sid, "neon")
	assert.ErrorIs(t, err, domain.ErrSpinInProgress)

	pending, ok := f.svc.PendingSpin(ctx, f.sid)
	require.True(t, ok)
	assert.Equal(t, StatusSpinning, pending.Status)

	sess, err := f.store.Get(ctx, f.sid)
	require.NoError(t, err)
	assert.Equal(t, 10000-250, sess.Balance, "rejected open must not charge")

	f.svc.Spinner().Wait()
	_, ok = f.svc.PendingSpin(ctx, f.sid)
	assert.False(t, ok)

	// opening again after the reveal charges again
	_, err = f.svc.Open(ctx, f.sid, "neon")
	require.NoError(t, err)
	f.svc.Spinner().Wait()

	sess, err = f.store.Get(ctx, f.sid)
	require.NoError(t, err)
	assert.Equal(t, 10000-500, sess.Balance)
	assert.Len(t, sess.Inventory, 2)
	assert.Equal(t, 2, sess.Stats.CasesOpened)
}

func TestOpen_ConcurrentOpensChargeOnce(t *testing.T) {
	f := newFixture(t, 10000, 50*time.Millisecond, 0.1)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	opened := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.svc.Open(ctx, f.sid, "neon"); err == nil {
				mu.Lock()
				opened++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	f.svc.Spinner().Wait()

	sess, err := f.store.Get(ctx, f.sid)
	require.NoError(t, err)
	assert.Equal(t, 1, opened)
	assert.Equal(t, 10000-250, sess.Balance)
	assert.Len(t, sess.Inventory, 1)
}

func TestOpen_FallbackIsFlagged(t *testing.T) {
	f := newFixture(t, 1000, 0, 0.9)
	ctx := context.Background()

	res, err := f.svc.Open(ctx, f.sid, "short")
	require.NoError(t, err)
	f.svc.Spinner().Wait()

	view, err := f.svc.Spin(ctx, f.sid, res.SpinID)
	require.NoError(t, err)
	require.NotNil(t, view.Item)
	assert.Equal(t, "First", view.Item.Name)
	assert.True(t, view.Fallback)
}

func TestOpen_Errors(t *testing.T) {
	f := newFixture(t, 1000, 0, 0.1)
	ctx := context.Background()

	_, err := f.svc.Open(ctx, f.sid, "missing")
	assert.ErrorIs(t, err, domain.ErrCaseNotFound)

	_, err = f.svc.Open(ctx, f.sid, "empty")
	assert.ErrorIs(t, err, domain.ErrEmptyCase)

	_, err = f.svc.Open(ctx, "no-such-session", "neon")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Zero(t, f.svc.Spinner().PendingCount())
}

func TestSpin_OwnedBySession(t *testing.T) {
	f := newFixture(t, 1000, 0, 0.1)
	ctx := context.Background()

	res, err := f.svc.Open(ctx, f.sid, "neon")
	require.NoError(t, err)
	f.svc.Spinner().Wait()

	_, err = f.svc.Spin(ctx, "someone-else", res.SpinID)
	assert.ErrorIs(t, err, domain.ErrSpinNotFound)

	_, err = f.svc.Spin(ctx, f.sid, "unknown")
	assert.ErrorIs(t, err, domain.ErrSpinNotFound)
}

func TestReveal_SessionGoneDiscardsItem(t *testing.T) {
	f := newFixture(t, 1000, 30*time.Millisecond, 0.1)
	ctx := context.Background()

	res, err := f.svc.Open(ctx, f.sid, "neon")
	require.NoError(t, err)
	require.True(t, f.store.Delete(ctx, f.sid))
	f.svc.Spinner().Wait()

	assert.NotContains(t, f.bus.types(), event.CaseRevealed)
	_, err = f.svc.Spin(ctx, f.sid, res.SpinID)
	require.NoError(t, err)
}
