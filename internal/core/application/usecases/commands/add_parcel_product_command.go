package commands

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrAddParcelProductCommandIsNotConstructed = errors.New(
	"AddParcelProductCommand must be created via NewAddParcelProductCommand constructor",
)

// AddParcelProductCommand records a quantity of a catalogue product in a parcel.
type AddParcelProductCommand struct {
	parcelID  kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

func NewAddParcelProductCommand(parcelID, productID kernel.UUID, quantity int) (AddParcelProductCommand, error) {
	var parcelErr, productErr, quantityErr error
	if parcelID.Validate() != nil {
		parcelErr = errs.NewValueIsRequiredError("parcelId")
	}
	if productID.Validate() != nil {
		productErr = errs.NewValueIsRequiredError("productId")
	}
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := errors.Join(parcelErr, productErr, quantityErr); err != nil {
		return AddParcelProductCommand{}, err
	}

	return AddParcelProductCommand{
		parcelID:  parcelID,
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AddParcelProductCommand) Validate() error {
	return c.guard.Validate(ErrAddParcelProductCommandIsNotConstructed)
}

func (c AddParcelProductCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c AddParcelProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c AddParcelProductCommand) Quantity() int {
	return c.quantity
}
