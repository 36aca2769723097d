package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler resolves sender, recipient and zone in that
// order, then stores the parcel with its CREATED history entry.
//
// Example:
//
//	handler := NewCreateParcelCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // one of the parents is missing; nothing was written
//	}
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with the first missing parent, before any write.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	senderID, err := cmd.SenderID()
	if err != nil {
		return err
	}
	sender, err := uow.SenderRepository().Get(ctx, senderID)
	if err != nil {
		return err
	}

	recipientID, err := cmd.RecipientID()
	if err != nil {
		return err
	}
	recipient, err := uow.RecipientRepository().Get(ctx, recipientID)
	if err != nil {
		return err
	}

	zoneID, err := cmd.ZoneID()
	if err != nil {
		return err
	}
	zone, err := uow.ZoneRepository().Get(ctx, zoneID)
	if err != nil {
		return err
	}

	p, entry, err := parcel.NewParcel(cmd.ParcelID(), cmd.Details(), parcel.References{
		SenderID:    sender.ID(),
		RecipientID: recipient.ID(),
		ZoneID:      zone.ID(),
	}, time.Now())
	if err != nil {
		return err
	}

	if err = uow.ParcelRepository().Add(ctx, p); err != nil {
		return err
	}

	if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
