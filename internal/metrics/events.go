package metrics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/elizabethaxley/astrobotany/internal/domain"
	"github.com/elizabethaxley/astrobotany/internal/event"
)

// EventMetricsCollector turns garden events into Prometheus counters.
type EventMetricsCollector struct {
	logger *slog.Logger
}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector(logger *slog.Logger) *EventMetricsCollector {
	return &EventMetricsCollector{logger: logger}
}

// Register subscribes the collector to every event type it counts.
func (c *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{
		domain.EventTypePlantWatered,
		domain.EventTypePlantFertilized,
		domain.EventTypePlantShaken,
		domain.EventTypePetalPicked,
		domain.EventTypePlantHarvested,
		domain.EventTypePostcardSent,
		domain.EventTypeItemBought,
	} {
		bus.Subscribe(eventType, c.HandleEvent)
	}
}

// HandleEvent increments the counters for a single published event.
func (c *EventMetricsCollector) HandleEvent(_ context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case domain.PlantWateredPayload:
		Waterings.WithLabelValues(fmt.Sprintf("%t", payload.Neighbor)).Inc()
	case domain.PlantFertilizedPayload:
		Fertilizings.Inc()
	case domain.PlantShakenPayload:
		Shakes.Inc()
	case domain.PetalPickedPayload:
		PetalsPicked.WithLabelValues(payload.Color).Inc()
	case domain.PlantHarvestedPayload:
		Harvests.Inc()
		HarvestScore.Add(float64(payload.ScoreBonus))
	case domain.PostcardSentPayload:
		PostcardsSent.Inc()
	case domain.ItemBoughtPayload:
		ItemsBought.WithLabelValues(payload.ItemName).Inc()
		CoinsSpent.Add(float64(payload.Cost))
	default:
		c.logger.Warn(LogMsgEventPayloadUnexpected, "type", evt.Type)
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
	}

	return nil
}
