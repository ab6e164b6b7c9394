package eventlog

import (
	"context"
	"time"

	"github.com/osse101/SkinTrade_Go/internal/event"
	"github.com/osse101/SkinTrade_Go/internal/logger"
)

// Service records session activity from the event bus
type Service interface {
	// Subscribe registers the event logger to listen to all events
	Subscribe(bus event.Bus) error

	// History returns the session's recent activity, newest first. An empty
	// eventType matches every type.
	History(ctx context.Context, sessionID, eventType string, limit int) ([]Entry, error)

	// Forget drops the activity of a session that no longer exists
	Forget(ctx context.Context, sessionID string)

	// CleanupOldEvents removes events older than retention
	CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all event types
func (s *service) Subscribe(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
	return nil
}

// handleEvent stores session-scoped events
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	sessionID := evt.SessionID()
	if sessionID == "" {
		log.Debug(LogMsgEventWithoutSession, LogFieldType, evt.Type)
		return nil
	}

	if err := s.repo.LogEvent(ctx, sessionID, string(evt.Type), evt.Payload); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldSessionID, sessionID)
	return nil
}

// History implements Service
func (s *service) History(ctx context.Context, sessionID, eventType string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.repo.GetEvents(ctx, Filter{SessionID: sessionID, EventType: eventType, Limit: limit})
}

// Forget implements Service
func (s *service) Forget(ctx context.Context, sessionID string) {
	if err := s.repo.DeleteSession(ctx, sessionID); err != nil {
		logger.FromContext(ctx).Warn(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldSessionID, sessionID)
		return
	}
	logger.FromContext(ctx).Debug(LogMsgSessionForgotten, LogFieldSessionID, sessionID)
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retention)
}
