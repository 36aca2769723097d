package commands

import (
	"context"
	"time"
)

// DeleteParcelCommandHandler removes a parcel together with its history and
// product lines in one transaction.
type DeleteParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	cache      ParcelCacheInvalidator
}

func NewDeleteParcelCommandHandler(uowFactory ParcelUoWFactory, cache ParcelCacheInvalidator) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle fails with NotFound if the parcel does not exist.
func (h DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) error {
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

	removal, err := p.Remove(time.Now())
	if err != nil {
		return err
	}

	if err = uow.HistoryRepository().DeleteForParcel(ctx, removal.ParcelID); err != nil {
		return err
	}

	if err = uow.ParcelProductRepository().DeleteForParcel(ctx, removal.ParcelID); err != nil {
		return err
	}

	if err = parcelRepo.Delete(ctx, removal); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.cache.Invalidate(ctx, removal.ParcelID)
	return nil
}
