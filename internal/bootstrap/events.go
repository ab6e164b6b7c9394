package bootstrap

import (
	"log/slog"

	"github.com/osse101/SkinTrade_Go/internal/event"
	"github.com/osse101/SkinTrade_Go/internal/sse"
)

// InitializeEventSystem creates the event bus and starts the SSE hub that fans
// session events out to connected browsers. The caller stops the hub on shutdown.
func InitializeEventSystem() (*event.MemoryBus, *sse.Hub) {
	bus := event.NewMemoryBus()

	hub := sse.NewHub()
	hub.Start()

	slog.Info(LogMsgEventSystemInitialized, "event_types", len(event.AllTypes))
	return bus, hub
}
