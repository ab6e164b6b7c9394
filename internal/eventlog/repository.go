package eventlog

import (
	"context"
	"time"
)

// Entry represents one logged event in a session's activity feed
type Entry struct {
	ID        int64       `json:"id"`
	EventType string      `json:"event_type"`
	SessionID string      `json:"-"`
	Payload   interface{} `json:"payload"`
	CreatedAt time.Time   `json:"created_at"`
}

// Filter filters entries for queries. SessionID is required.
type Filter struct {
	SessionID string
	EventType string
	Since     time.Time
	Limit     int
}

// Repository defines the interface for activity storage
type Repository interface {
	// LogEvent stores an event for the session
	LogEvent(ctx context.Context, sessionID, eventType string, payload interface{}) error

	// GetEvents returns matching entries, newest first
	GetEvents(ctx context.Context, filter Filter) ([]Entry, error)

	// DeleteSession drops every entry of the session
	DeleteSession(ctx context.Context, sessionID string) error

	// CleanupOldEvents removes entries older than the retention period
	CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error)
}
