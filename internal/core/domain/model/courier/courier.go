package courier

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

const (
	maxNameLength    = 100
	maxPhoneLength   = 20
	maxVehicleLength = 50
	maxZoneLength    = 100
)

var ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

// Profile is the editable data of a courier.
type Profile struct {
	LastName     string
	FirstName    string
	Phone        string
	Vehicle      string
	AssignedZone string
}

// Courier delivers parcels. A parcel references its courier by id only.
type Courier struct {
	id      kernel.UUID
	profile Profile

	guard guard.ConstructorGuard
}

// NewCourier validates the profile and returns a courier ready to be stored.
//
//	c, err := courier.NewCourier(kernel.NewUUID(), courier.Profile{
//	    LastName:  "Benali",
//	    FirstName: "Youssef",
//	    Phone:     "+212611111111",
//	    Vehicle:   "scooter",
//	})
func NewCourier(id kernel.UUID, profile Profile) (*Courier, error) {
	c := &Courier{guard: guard.NewConstructorGuard()}

	if err := errors.Join(id.Validate(), c.Update(profile)); err != nil {
		return nil, err
	}

	c.id = id
	return c, nil
}

func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Courier) ID() kernel.UUID {
	return c.id
}

func (c *Courier) Profile() Profile {
	return c.profile
}

// FullName returns "LastName FirstName", the form the history comment
// written on assignment names the courier with.
func (c *Courier) FullName() string {
	return kernel.JoinNames(c.profile.LastName, c.profile.FirstName)
}

// Update replaces the profile; on failure the courier is left unchanged.
func (c *Courier) Update(profile Profile) error {
	lastName, lastNameErr := kernel.RequiredText("lastName", profile.LastName, maxNameLength)
	firstName, firstNameErr := kernel.OptionalText("firstName", profile.FirstName, maxNameLength)
	phone, phoneErr := kernel.RequiredText("phone", profile.Phone, maxPhoneLength)
	vehicle, vehicleErr := kernel.RequiredText("vehicle", profile.Vehicle, maxVehicleLength)
	zone, zoneErr := kernel.OptionalText("assignedZone", profile.AssignedZone, maxZoneLength)

	if err := errors.Join(lastNameErr, firstNameErr, phoneErr, vehicleErr, zoneErr); err != nil {
		return err
	}

	c.profile = Profile{
		LastName:     lastName,
		FirstName:    firstName,
		Phone:        phone,
		Vehicle:      vehicle,
		AssignedZone: zone,
	}
	return nil
}
