package event

import (
	"context"

	"github.com/farmstead/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LoggingHandler is a wildcard handler that writes every domain event to the
// structured log. It gives operators an activity trail without a dedicated
// audit store.
type LoggingHandler struct {
	logger *zap.Logger
}

// NewLoggingHandler creates a logging event handler
func NewLoggingHandler(logger *zap.Logger) *LoggingHandler {
	return &LoggingHandler{logger: logger.Named("events")}
}

// Handle logs the event
func (h *LoggingHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	h.logger.Info("domain event",
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID().String()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.String("aggregate_id", event.AggregateID().String()),
		zap.String("farm_id", event.FarmID().String()),
		zap.Time("occurred_at", event.OccurredAt()),
	)
	return nil
}

// EventTypes returns an empty slice so the handler receives all events
func (h *LoggingHandler) EventTypes() []string {
	return nil
}

var _ shared.EventHandler = (*LoggingHandler)(nil)
