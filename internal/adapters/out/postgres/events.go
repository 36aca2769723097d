package postgres

import (
	"context"
	"encoding/json"
	"time"

	"parceltrack/internal/adapters/out/postgres/outboxrepo"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/outbox"
	"parceltrack/internal/core/domain/model/parcel"
)

// ParcelEvent is the JSON payload of every parcel outbox message.
type ParcelEvent struct {
	ParcelID   string    `json:"parcelId"`
	Status     string    `json:"status"`
	Comment    string    `json:"comment,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func (uow *GormUnitOfWork) recordEvents(ctx context.Context) error {
	if len(uow.trackedAggregates) == 0 {
		return nil
	}

	repo := outboxrepo.NewGormOutboxRepository(uow.tx)
	for _, tracked := range uow.trackedAggregates {
		msg, err := uow.messageFor(tracked)
		if err != nil {
			return err
		}
		if msg == nil {
			continue
		}
		if err = repo.Add(ctx, msg); err != nil {
			return err
		}
	}

	return nil
}

func (uow *GormUnitOfWork) messageFor(tracked trackedAggregate) (*outbox.Message, error) {
	switch agg := tracked.Aggregate.(type) {
	case *parcel.HistoryEntry:
		return newEventMessage(outbox.EventParcelStatusChanged, tracked.ID, ParcelEvent{
			ParcelID:   agg.ParcelID().String(),
			Status:     agg.Status(),
			Comment:    agg.Comment(),
			OccurredAt: agg.ChangedAt(),
		}, uow.now())
	case parcel.Removal:
		return newEventMessage(outbox.EventParcelDeleted, tracked.ID, ParcelEvent{
			ParcelID:   agg.ParcelID.String(),
			Status:     agg.LastStatus.String(),
			OccurredAt: agg.RemovedAt,
		}, uow.now())
	default:
		return nil, nil
	}
}

func newEventMessage(eventType string, parcelID kernel.UUID, event ParcelEvent, now time.Time) (*outbox.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	return outbox.NewMessage(eventType, parcelID, payload, now)
}
