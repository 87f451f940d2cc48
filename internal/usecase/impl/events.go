package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/service"

	"github.com/google/uuid"
)

const publishTimeout = 3 * time.Second

// eventEmitter publishes domain events on a best-effort basis: failures are
// logged and never reach the caller.
type eventEmitter struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func (e eventEmitter) emit(ctx context.Context, eventType, subject string, data map[string]any) {
	if e.publisher == nil {
		return
	}

	event := &service.DomainEvent{
		ID:         uuid.NewString(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		Subject:    subject,
		Actor:      deliverycontext.GetActor(ctx),
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}

	// The request may finish before the broker answers.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := e.publisher.Publish(publishCtx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("Failed to publish domain event",
			slog.String("event_type", eventType),
			slog.String("subject", subject),
			slog.Any("error", err),
		)
	}
}
