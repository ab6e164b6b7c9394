package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/SkinTrade_Go/internal/event"
	"github.com/osse101/SkinTrade_Go/internal/eventlog"
	"github.com/osse101/SkinTrade_Go/internal/metrics"
	"github.com/osse101/SkinTrade_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	Hub             *sse.Hub
	EventLogService eventlog.Service
}

// RegisterEventHandlers sets up all event handlers and subscribers:
// the metrics collector, the SSE forwarder and the activity log.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	metricsCollector.Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
	slog.Info(LogMsgEventStreamSubscribed)

	if err := deps.EventLogService.Subscribe(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLogger, err)
	}
	slog.Info(LogMsgEventLoggerInitialized)

	return nil
}
