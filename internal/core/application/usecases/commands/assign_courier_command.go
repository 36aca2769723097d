package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand hands a parcel to a courier, which puts it IN_TRANSIT.
type AssignCourierCommand struct {
	parcelID  kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignCourierCommand(parcelID, courierID kernel.UUID) (AssignCourierCommand, error) {
	var parcelErr, courierErr error
	if parcelID.Validate() != nil {
		parcelErr = errs.NewValueIsRequiredError("parcelId")
	}
	if courierID.Validate() != nil {
		courierErr = errs.NewValueIsRequiredError("courierId")
	}
	if err := errors.Join(parcelErr, courierErr); err != nil {
		return AssignCourierCommand{}, err
	}

	return AssignCourierCommand{
		parcelID:  parcelID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

func (c AssignCourierCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c AssignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}
