package eventlog

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository keeps a bounded activity feed per session in process memory
type MemoryRepository struct {
	mu         sync.Mutex
	perSession int
	nextID     int64
	entries    map[string][]Entry
	now        func() time.Time
}

// NewMemoryRepository creates a repository keeping at most perSession entries per
// session. A nil now uses time.Now.
func NewMemoryRepository(perSession int, now func() time.Time) *MemoryRepository {
	if perSession <= 0 {
		perSession = DefaultPerSession
	}
	if now == nil {
		now = time.Now
	}
	return &MemoryRepository{
		perSession: perSession,
		entries:    make(map[string][]Entry),
		now:        now,
	}
}

// LogEvent implements Repository
func (r *MemoryRepository) LogEvent(_ context.Context, sessionID, eventType string, payload interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	list := append(r.entries[sessionID], Entry{
		ID:        r.nextID,
		EventType: eventType,
		SessionID: sessionID,
		Payload:   payload,
		CreatedAt: r.now(),
	})
	if over := len(list) - r.perSession; over > 0 {
		list = append([]Entry(nil), list[over:]...)
	}
	r.entries[sessionID] = list
	return nil
}

// GetEvents implements Repository
func (r *MemoryRepository) GetEvents(_ context.Context, filter Filter) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.entries[filter.SessionID]
	out := make([]Entry, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		e := list[i]
		if filter.EventType != "" && e.EventType != filter.EventType {
			continue
		}
		if !filter.Since.IsZero() && e.CreatedAt.Before(filter.Since) {
			continue
		}
		out = append(out, e)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

// DeleteSession implements Repository
func (r *MemoryRepository) DeleteSession(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sessionID)
	return nil
}

// CleanupOldEvents implements Repository
func (r *MemoryRepository) CleanupOldEvents(_ context.Context, retention time.Duration) (int64, error) {
	cutoff := r.now().Add(-retention)

	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for sid, list := range r.entries {
		// entries are appended in time order
		keep := 0
		for keep < len(list) && list[keep].CreatedAt.Before(cutoff) {
			keep++
		}
		if keep == 0 {
			continue
		}
		deleted += int64(keep)
		if keep == len(list) {
			delete(r.entries, sid)
			continue
		}
		r.entries[sid] = append([]Entry(nil), list[keep:]...)
	}
	return deleted, nil
}
