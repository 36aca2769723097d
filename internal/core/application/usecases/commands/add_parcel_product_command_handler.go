package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/parcel"
)

// AddParcelProductCommandHandler snapshots the current product price on the
// line so later catalogue changes do not alter what was shipped.
// Product lines do not affect status and write no history.
type AddParcelProductCommandHandler struct {
	uowFactory ParcelUoWFactory
}

func NewAddParcelProductCommandHandler(uowFactory ParcelUoWFactory) AddParcelProductCommandHandler {
	return AddParcelProductCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AddParcelProductCommandHandler) Handle(ctx context.Context, cmd AddParcelProductCommand) error {
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

	p, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	prod, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	line, err := parcel.NewProductLine(p.ID(), prod.ID(), cmd.Quantity(), prod.Price(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.ParcelProductRepository().Save(ctx, line); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
