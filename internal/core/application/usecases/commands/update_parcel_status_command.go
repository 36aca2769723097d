package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand moves a parcel to any status other than CREATED.
// The comment may be empty.
type UpdateParcelStatusCommand struct {
	parcelID kernel.UUID
	status   parcel.Status
	comment  string

	guard guard.ConstructorGuard
}

func NewUpdateParcelStatusCommand(parcelID kernel.UUID, status parcel.Status, comment string) (UpdateParcelStatusCommand, error) {
	var parcelErr error
	if parcelID.Validate() != nil {
		parcelErr = errs.NewValueIsRequiredError("parcelId")
	}
	if err := errors.Join(parcelErr, status.ValidateUpdateTarget()); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	return UpdateParcelStatusCommand{
		parcelID: parcelID,
		status:   status,
		comment:  comment,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c UpdateParcelStatusCommand) Status() parcel.Status {
	return c.status
}

func (c UpdateParcelStatusCommand) Comment() string {
	return c.comment
}
