package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/ports"
)

// RelayOutboxResult summarises one relay run.
type RelayOutboxResult struct {
	Published int
	Failed    int
}

// RelayOutboxCommandHandler claims a batch of pending messages, publishes
// them and records the outcome of each, all inside one transaction so the
// row locks are held until every outcome is stored. Delivery is
// at-least-once: a crash after publish but before commit resends the batch.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
}

func NewRelayOutboxCommandHandler(uowFactory OutboxUoWFactory, publisher ports.EventPublisher) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle returns the per-run counts. A publish failure is recorded on the
// message and does not fail the run; storage errors do.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (RelayOutboxResult, error) {
	var result RelayOutboxResult
	if err := cmd.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()

	messages, err := repo.ClaimPending(ctx, cmd.BatchSize())
	if err != nil {
		return result, err
	}
	if len(messages) == 0 {
		return result, nil
	}

	for _, m := range messages {
		if pubErr := h.publisher.Publish(ctx, m); pubErr != nil {
			m.RecordFailure(pubErr, cmd.MaxAttempts())
			result.Failed++
		} else {
			m.MarkProcessed(time.Now())
			result.Published++
		}

		if err = repo.Update(ctx, m); err != nil {
			return RelayOutboxResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return RelayOutboxResult{}, err
	}

	return result, nil
}
