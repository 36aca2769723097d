package commands

import (
	"context"
	"time"
)

// UpdateParcelStatusCommandHandler applies a status change and appends the
// matching history entry. No transition graph is enforced.
type UpdateParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
	cache      ParcelCacheInvalidator
}

func NewUpdateParcelStatusCommandHandler(
	uowFactory ParcelUoWFactory,
	cache ParcelCacheInvalidator,
) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (h UpdateParcelStatusCommandHandler) Handle(ctx context.Context, cmd UpdateParcelStatusCommand) error {
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

	entry, err := p.ChangeStatus(cmd.Status(), cmd.Comment(), time.Now())
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
