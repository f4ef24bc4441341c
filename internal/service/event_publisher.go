package service

import (
	"context"

	"roadmap-be/internal/pkg/logger"
	"roadmap-be/pkg/events"
)

// IEventPublisher ships domain events off-process. *nats.Publisher satisfies it.
type IEventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// publishEvent is best effort: the write has already committed.
func publishEvent(ctx context.Context, publisher IEventPublisher, log logger.ILogger, evt events.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, evt); err != nil {
		log.Warn("events", "failed to publish event", map[string]interface{}{
			"type":  evt.EventType(),
			"error": err.Error(),
		})
	}
}
