// Package zone models the delivery areas parcels are routed to.
package zone

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

const (
	maxNameLength       = 100
	maxPostalCodeLength = 20
)

var ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")

type Zone struct {
	id         kernel.UUID
	name       string
	postalCode string

	guard guard.ConstructorGuard
}

func NewZone(id kernel.UUID, name, postalCode string) (*Zone, error) {
	z := &Zone{guard: guard.NewConstructorGuard()}

	if err := errors.Join(id.Validate(), z.Update(name, postalCode)); err != nil {
		return nil, err
	}

	z.id = id
	return z, nil
}

func (z *Zone) Validate() error {
	if z == nil {
		return ErrZoneIsNotConstructed
	}
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

func (z *Zone) ID() kernel.UUID {
	return z.id
}

func (z *Zone) Name() string {
	return z.name
}

func (z *Zone) PostalCode() string {
	return z.postalCode
}

func (z *Zone) Update(name, postalCode string) error {
	n, nameErr := kernel.RequiredText("name", name, maxNameLength)
	pc, postalCodeErr := kernel.OptionalText("postalCode", postalCode, maxPostalCodeLength)
	if err := errors.Join(nameErr, postalCodeErr); err != nil {
		return err
	}

	z.name = n
	z.postalCode = pc
	return nil
}
