package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrDeleteParcelCommandIsNotConstructed = errors.New(
	"DeleteParcelCommand must be created via NewDeleteParcelCommand constructor",
)

type DeleteParcelCommand struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteParcelCommand(parcelID kernel.UUID) (DeleteParcelCommand, error) {
	if parcelID.Validate() != nil {
		return DeleteParcelCommand{}, errs.NewValueIsRequiredError("parcelId")
	}

	return DeleteParcelCommand{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteParcelCommand) Validate() error {
	return c.guard.Validate(ErrDeleteParcelCommandIsNotConstructed)
}

func (c DeleteParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
