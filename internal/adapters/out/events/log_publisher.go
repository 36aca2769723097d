package events

import (
	"context"
	"log/slog"

	"parceltrack/internal/core/domain/model/outbox"
)

// LogPublisher only logs events. It stands in for Kafka when no broker is
// configured, so the outbox still drains.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "log-publisher")}
}

func (p *LogPublisher) Publish(ctx context.Context, message *outbox.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	p.logger.InfoContext(ctx, "parcel event",
		"message_id", message.ID().String(),
		"event_type", message.EventType(),
		"parcel_id", message.AggregateID().String(),
		"payload", string(message.Payload()),
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
