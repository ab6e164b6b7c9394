package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/SkinTrade_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// SessionID returns the owning session of the event, or "" for global events.
func (e Event) SessionID() string {
	if scoped, ok := e.Payload.(domain.SessionScoped); ok {
		return scoped.OwnerSession()
	}
	if sid, ok := e.GetMetadataValue(MetadataKeySessionID).(string); ok {
		return sid
	}
	return ""
}

// Event types
const (
	CaseOpened     Type = domain.EventTypeCaseOpened
	CaseRevealed   Type = domain.EventTypeCaseRevealed
	ItemSold       Type = domain.EventTypeItemSold
	BalanceChanged Type = domain.EventTypeBalanceChanged
)

// AllTypes lists every event type the service publishes.
var AllTypes = []Type{CaseOpened, CaseRevealed, ItemSold, BalanceChanged}

func sessionMetadata(sessionID string) Metadata {
	return Metadata{MetadataKeySessionID: sessionID}
}

// NewCaseOpenedEvent creates the event published when a spin starts
func NewCaseOpenedEvent(sessionID, spinID, caseID string, price int, revealAt time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CaseOpened,
		Payload: domain.CaseOpenedPayload{
			SessionID: sessionID,
			SpinID:    spinID,
			CaseID:    caseID,
			Price:     price,
			RevealAt:  revealAt.Unix(),
			Timestamp: time.Now().Unix(),
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// NewCaseRevealedEvent creates the event published when a spin's item is revealed
func NewCaseRevealedEvent(sessionID, spinID, caseID string, item domain.InventoryItem, fallback bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CaseRevealed,
		Payload: domain.CaseRevealedPayload{
			SessionID: sessionID,
			SpinID:    spinID,
			CaseID:    caseID,
			Item:      item,
			Fallback:  fallback,
			Timestamp: time.Now().Unix(),
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// NewItemSoldEvent creates the event published after a sale
func NewItemSoldEvent(sessionID string, instanceIDs []string, total int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemSold,
		Payload: domain.ItemSoldPayload{
			SessionID:   sessionID,
			InstanceIDs: instanceIDs,
			TotalValue:  total,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// NewBalanceChangedEvent creates the event published after any balance mutation
func NewBalanceChangedEvent(sessionID string, balance, delta int, reason string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BalanceChanged,
		Payload: domain.BalanceChangedPayload{
			SessionID: sessionID,
			Balance:   balance,
			Delta:     delta,
			Reason:    reason,
			Timestamp: time.Now().Unix(),
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event's type synchronously and joins their errors.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
