package sse

import (
	"context"

	"github.com/osse101/SkinTrade_Go/internal/event"
	"github.com/osse101/SkinTrade_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers the forwarding handler for every published event type
func (s *Subscriber) Subscribe() {
	types := make([]string, 0, len(event.AllTypes))
	for _, t := range event.AllTypes {
		s.bus.Subscribe(t, s.forward)
		types = append(types, string(t))
	}
	logger.Info(LogMsgSubscribed, "types", types)
}

func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	sessionID := evt.SessionID()
	s.hub.Broadcast(sessionID, string(evt.Type), evt.Payload)

	logger.FromContext(ctx).Debug(LogMsgEventBroadcast,
		"event_type", evt.Type,
		"session_id", sessionID)
	return nil
}
