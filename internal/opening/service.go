package opening

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SkinTrade_Go/internal/domain"
	"github.com/osse101/SkinTrade_Go/internal/economy"
	"github.com/osse101/SkinTrade_Go/internal/event"
	"github.com/osse101/SkinTrade_Go/internal/logger"
	"github.com/osse101/SkinTrade_Go/internal/roulette"
	"github.com/osse101/SkinTrade_Go/internal/session"
	"github.com/osse101/SkinTrade_Go/internal/utils"
)

// CaseSource looks cases up by ID
type CaseSource interface {
	Get(ctx context.Context, id string) (domain.Case, error)
}

// SessionStore is the part of the session store used by openings
type SessionStore interface {
	Update(ctx context.Context, id string, fn func(*session.Session) error) (session.Session, error)
}

// Options configures the opening service
type Options struct {
	Spinner *roulette.Spinner
	Layout  roulette.Layout
	// Rand is the draw and jitter source; nil uses utils.RandomFloat.
	Rand        func() float64
	HistorySize int
	HistoryTTL  time.Duration
	Now         func() time.Time
	NewID       func() string
}

// Service opens cases: it charges the session, draws the outcome, schedules the
// reveal and adds the item to the inventory when the reveal fires.
type Service struct {
	cases   CaseSource
	store   SessionStore
	bus     event.Bus
	spinner *roulette.Spinner
	layout  roulette.Layout
	rnd     func() float64
	now     func() time.Time
	newID   func() string
	spins   *expirable.LRU[string, spinRecord]
}

// NewService creates the opening service
func NewService(cases CaseSource, store SessionStore, bus event.Bus, opts Options) *Service {
	if opts.Spinner == nil {
		opts.Spinner = roulette.NewSpinner(domain.DefaultRevealDelay)
	}
	if opts.Layout.TileWidth == 0 {
		opts.Layout = roulette.DefaultLayout()
	}
	if opts.Rand == nil {
		opts.Rand = utils.RandomFloat
	}
	if opts.HistorySize <= 0 {
		opts.HistorySize = DefaultSpinHistorySize
	}
	if opts.HistoryTTL <= 0 {
		opts.HistoryTTL = DefaultSpinHistoryTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = func() string { return uuid.New().String() }
	}

	return &Service{
		cases:   cases,
		store:   store,
		bus:     bus,
		spinner: opts.Spinner,
		layout:  opts.Layout,
		rnd:     opts.Rand,
		now:     opts.Now,
		newID:   opts.NewID,
		spins:   expirable.NewLRU[string, spinRecord](opts.HistorySize, nil, opts.HistoryTTL),
	}
}

// Spinner exposes the reveal scheduler, mainly for Wait in tests and tools.
func (s *Service) Spinner() *roulette.Spinner {
	return s.spinner
}

// Open charges the case price and starts a spin for the session. The outcome is drawn
// now and stays hidden until the reveal delay elapses. Every open is charged.
func (s *Service) Open(ctx context.Context, sessionID, caseID string) (OpenResult, error) {
	log := logger.FromContext(ctx)

	c, err := s.cases.Get(ctx, caseID)
	if err != nil {
		return OpenResult{}, err
	}
	if len(c.Items) == 0 {
		return OpenResult{}, fmt.Errorf("%w: %s", domain.ErrEmptyCase, caseID)
	}
	if _, busy := s.spinner.Pending(sessionID); busy {
		return OpenResult{}, domain.ErrSpinInProgress
	}

	result, err := roulette.Draw(c.Items, s.rnd)
	if err != nil {
		return OpenResult{}, err
	}
	strip, err := roulette.BuildStrip(c.Items, result.Index, s.layout, s.rnd)
	if err != nil {
		return OpenResult{}, err
	}

	spin := &roulette.Spin{
		ID:     s.newID(),
		Key:    sessionID,
		CaseID: c.ID,
		Result: result,
		Strip:  strip,
	}

	// the reveal must not outlive request values such as the request ID, but must
	// survive the request being cancelled
	revealCtx := context.WithoutCancel(ctx)

	snap, err := s.store.Update(ctx, sessionID, func(sess *session.Session) error {
		if _, busy := s.spinner.Pending(sessionID); busy {
			return domain.ErrSpinInProgress
		}
		if err := economy.Charge(sess, c.Price); err != nil {
			return err
		}
		// the record must exist before the timer can fire
		s.spins.Add(spin.ID, spinRecord{id: spin.ID, sessionID: sessionID, caseID: c.ID})
		if err := s.spinner.Start(ctx, spin, func(sp *roulette.Spin) { s.reveal(revealCtx, sessionID, sp) }); err != nil {
			s.spins.Remove(spin.ID)
			sess.Balance += c.Price
			sess.Stats.TotalSpent -= c.Price
			log.Warn(LogMsgSpinStartRolledBack, "spin_id", spin.ID, "error", err)
			return err
		}
		sess.Stats.CasesOpened++
		s.spins.Add(spin.ID, spinRecord{id: spin.ID, sessionID: sessionID, caseID: c.ID, revealAt: spin.RevealAt})
		return nil
	})
	if err != nil {
		return OpenResult{}, err
	}

	log.Info(LogMsgCaseOpened,
		"case_id", c.ID,
		"spin_id", spin.ID,
		"price", c.Price,
		"balance", snap.Balance,
		"fallback", result.Fallback)

	s.publish(ctx, event.NewCaseOpenedEvent(sessionID, spin.ID, c.ID, c.Price, spin.RevealAt))
	s.publish(ctx, event.NewBalanceChangedEvent(sessionID, snap.Balance, -c.Price, domain.BalanceReasonCasePurchase))

	return OpenResult{
		SpinID:        spin.ID,
		CaseID:        c.ID,
		Price:         c.Price,
		Balance:       snap.Balance,
		RevealAt:      spin.RevealAt,
		RevealAfterMs: s.spinner.Delay().Milliseconds(),
		Strip:         newStripView(strip, s.layout),
	}, nil
}

// reveal runs on the timer goroutine, exactly once per spin.
func (s *Service) reveal(ctx context.Context, sessionID string, spin *roulette.Spin) {
	log := logger.FromContext(ctx)
	item := domain.NewInventoryItem(s.newID(), spin.CaseID, spin.Result.Item, s.now())

	_, err := s.store.Update(ctx, sessionID, func(sess *session.Session) error {
		sess.AddItem(item)
		return nil
	})
	if err != nil {
		log.Warn(LogMsgRevealSessionGone, "spin_id", spin.ID, "error", err)
	}

	s.spins.Add(spin.ID, spinRecord{
		id:        spin.ID,
		sessionID: sessionID,
		caseID:    spin.CaseID,
		revealAt:  spin.RevealAt,
		revealed:  true,
		item:      item,
		fallback:  spin.Result.Fallback,
	})

	log.Info(LogMsgCaseRevealed,
		"spin_id", spin.ID,
		"case_id", spin.CaseID,
		"item", item.Name,
		"rarity", item.Rarity,
		"value", item.Value)

	if err == nil {
		s.publish(ctx, event.NewCaseRevealedEvent(sessionID, spin.ID, spin.CaseID, item, spin.Result.Fallback))
	}
}

// Spin returns the status of a spin owned by sessionID.
func (s *Service) Spin(_ context.Context, sessionID, spinID string) (SpinView, error) {
	rec, ok := s.spins.Get(spinID)
	if !ok || rec.sessionID != sessionID {
		return SpinView{}, fmt.Errorf("%w: %s", domain.ErrSpinNotFound, spinID)
	}
	return rec.view(), nil
}

// PendingSpin returns the session's unrevealed spin, if any.
func (s *Service) PendingSpin(_ context.Context, sessionID string) (SpinView, bool) {
	spin, ok := s.spinner.Pending(sessionID)
	if !ok {
		return SpinView{}, false
	}
	rec, ok := s.spins.Get(spin.ID)
	if !ok {
		return SpinView{}, false
	}
	return rec.view(), true
}

func (s *Service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "type", evt.Type, "error", err)
	}
}
