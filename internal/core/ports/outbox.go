package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/outbox"
)

// OutboxRepository stores parcel events awaiting relay.
type OutboxRepository interface {
	Add(ctx context.Context, message *outbox.Message) error

	// ClaimPending locks up to limit pending messages, oldest first, skipping
	// rows already locked by another relay.
	ClaimPending(ctx context.Context, limit int) ([]*outbox.Message, error)

	Update(ctx context.Context, message *outbox.Message) error
}

// EventPublisher delivers outbox messages to the outside world.
type EventPublisher interface {
	Publish(ctx context.Context, message *outbox.Message) error
	Close() error
}
