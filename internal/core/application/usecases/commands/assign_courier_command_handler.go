package commands

import (
	"context"
	"time"
)

// AssignCourierCommandHandler attaches a courier to a parcel. The status is
// forced to IN_TRANSIT whatever it was, and a history entry naming the
// courier is appended. Repeating the call appends another entry.
type AssignCourierCommandHandler struct {
	uowFactory ParcelUoWFactory
	cache      ParcelCacheInvalidator
}

func NewAssignCourierCommandHandler(uowFactory ParcelUoWFactory, cache ParcelCacheInvalidator) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle resolves the parcel, then the courier; either missing aborts with NotFound.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
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

	parcelRepo := uow.ParcelRepository()

	p, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	c, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	entry, err := p.AssignCourier(c.ID(), c.FullName(), time.Now())
	if err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.cache.Invalidate(ctx, p.ID())
	return nil
}
