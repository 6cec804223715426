package bootstrap

import (
	"log/slog"

	"github.com/elizabethaxley/astrobotany/internal/event"
	"github.com/elizabethaxley/astrobotany/internal/metrics"
)

// InitializeEventSystem creates the in-process event bus and wires the
// standing subscribers. Today that is the metrics collector; services
// publish to the bus after their transactions commit.
func InitializeEventSystem() event.Bus {
	eventBus := event.NewMemoryBus()

	metricsCollector := metrics.NewEventMetricsCollector(slog.Default())
	metricsCollector.Register(eventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	slog.Info(LogMsgEventSystemInitialized)
	return eventBus
}
