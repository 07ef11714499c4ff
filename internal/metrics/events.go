package metrics

import (
	"context"

	"github.com/Maou3434/TOTS/internal/event"
	"github.com/Maou3434/TOTS/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.TeamRegistered,
		event.AttemptSubmitted,
		event.AttemptReviewed,
		event.LootDropped,
		event.MergeRequested,
		event.MergeReviewed,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics. Decode failures are
// logged, never surfaced: a malformed payload must not fail the publish.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.TeamRegistered:
		TeamsRegistered.Inc()

	case event.AttemptSubmitted:
		payload, err := event.DecodePayload[event.AttemptSubmittedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug("failed to decode attempt payload", "error", err)
			return nil
		}
		AttemptsSubmitted.WithLabelValues(string(payload.Rank)).Inc()

	case event.AttemptReviewed:
		payload, err := event.DecodePayload[event.AttemptReviewedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug("failed to decode review payload", "error", err)
			return nil
		}
		AttemptsReviewed.WithLabelValues(string(payload.Status)).Inc()

	case event.LootDropped:
		payload, err := event.DecodePayload[event.LootDroppedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug("failed to decode loot payload", "error", err)
			return nil
		}
		for _, drop := range payload.Drops {
			DropsGenerated.WithLabelValues(string(drop.Type), string(drop.Rarity)).Inc()
		}

	case event.MergeReviewed:
		payload, err := event.DecodePayload[event.MergeReviewedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug("failed to decode merge payload", "error", err)
			return nil
		}
		MergesReviewed.WithLabelValues(string(payload.Status)).Inc()
	}

	return nil
}
