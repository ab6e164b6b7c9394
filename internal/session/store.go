package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SkinTrade_Go/internal/concurrency"
	"github.com/osse101/SkinTrade_Go/internal/domain"
	"github.com/osse101/SkinTrade_Go/internal/logger"
)

// Options configures a Store
type Options struct {
	Capacity        int
	TTL             time.Duration
	StartingBalance int
	// OnEvict runs after a session leaves the store for any reason.
	OnEvict func(id string)
	Now     func() time.Time
}

// Store keeps sessions in an LRU with an idle TTL. Every access through Update or Get
// pushes the expiry forward. Access to one session is serialized by a per-session lock.
type Store struct {
	lru             *expirable.LRU[string, *Session]
	locks           *concurrency.LockManager
	startingBalance int
	now             func() time.Time
}

// NewStore creates a session store
func NewStore(opts Options) *Store {
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacity
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Store{
		locks:           concurrency.NewLockManager(),
		startingBalance: opts.StartingBalance,
		now:             opts.Now,
	}
	// Eviction keeps the session lock: an Update may still hold it. Sweep drops locks
	// of sessions that are gone.
	onEvict := func(id string, _ *Session) {
		logger.Debug(LogMsgSessionEvicted, "session_id", id)
		if opts.OnEvict != nil {
			opts.OnEvict(id)
		}
	}
	s.lru = expirable.NewLRU[string, *Session](opts.Capacity, onEvict, opts.TTL)
	return s
}

// Create starts a new session for user with the starting balance and an empty inventory.
func (s *Store) Create(ctx context.Context, user domain.User) Session {
	now := s.now()
	sess := &Session{
		ID:        uuid.New().String(),
		User:      user,
		Balance:   s.startingBalance,
		Inventory: []domain.InventoryItem{},
		CreatedAt: now,
		LastSeen:  now,
	}
	s.lru.Add(sess.ID, sess)

	logger.FromContext(ctx).Info(LogMsgSessionCreated, "session_id", sess.ID, "user", user.Name)
	return sess.Clone()
}

// Get returns a snapshot of the session.
func (s *Store) Get(ctx context.Context, id string) (Session, error) {
	return s.Update(ctx, id, func(*Session) error { return nil })
}

// Update runs fn with the session locked and returns a snapshot taken after fn. When fn
// fails its error is returned together with the snapshot; fn must leave the session
// unchanged in that case.
func (s *Store) Update(_ context.Context, id string, fn func(*Session) error) (Session, error) {
	mu := s.locks.GetLock(id)
	mu.Lock()
	defer mu.Unlock()

	sess, ok := s.lru.Get(id)
	if !ok {
		return Session{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}

	err := fn(sess)
	sess.LastSeen = s.now()
	// re-adding refreshes the TTL; a session evicted while fn ran stays gone
	if _, live := s.lru.Peek(id); live {
		s.lru.Add(id, sess)
	}
	return sess.Clone(), err
}

// Exists reports whether id is a live session without refreshing it.
func (s *Store) Exists(id string) bool {
	_, ok := s.lru.Peek(id)
	return ok
}

// Delete removes a session. It reports whether the session existed.
func (s *Store) Delete(ctx context.Context, id string) bool {
	mu := s.locks.GetLock(id)
	mu.Lock()
	defer mu.Unlock()

	removed := s.lru.Remove(id)
	if removed {
		logger.FromContext(ctx).Info(LogMsgSessionDeleted, "session_id", id)
	}
	s.locks.Release(id)
	return removed
}

// Len is the number of live sessions.
func (s *Store) Len() int {
	return s.lru.Len()
}

// Sweep drops locks whose session is gone and returns the live session count.
func (s *Store) Sweep(ctx context.Context) int {
	dropped := s.locks.Prune(s.Exists)
	if dropped > 0 {
		logger.FromContext(ctx).Debug(LogMsgLocksPruned, "count", dropped)
	}
	return s.lru.Len()
}
