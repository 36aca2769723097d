package parcel

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

const (
	maxDescriptionLength = 255
	maxCityLength        = 100
)

var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Details are the caller-supplied attributes of a new parcel.
type Details struct {
	Description     string
	Weight          float64
	DestinationCity string
	Priority        string
}

// References point at the parent entities a parcel is attached to. They are
// weak references: resolved once at creation, never revalidated afterwards.
type References struct {
	SenderID    kernel.UUID
	RecipientID kernel.UUID
	ZoneID      kernel.UUID
}

// Parcel is the aggregate root of the delivery workflow.
//
// Invariants:
//   - status is never Unknown once constructed
//   - createdAt is set once, at creation
//   - sender, recipient and zone never change after creation
//   - the courier is only set through AssignCourier
//   - every status-affecting mutation returns the HistoryEntry that records it
type Parcel struct {
	id              kernel.UUID
	description     string
	weight          float64
	destinationCity string
	priority        Priority
	status          Status
	createdAt       time.Time

	senderID    kernel.UUID
	recipientID kernel.UUID
	zoneID      kernel.UUID
	courierID   *kernel.UUID

	isConstructed bool
}

// NewParcel creates a parcel in Created status together with its first
// history entry. Any client-supplied status is irrelevant: creation always
// starts at Created.
//
//	p, entry, err := parcel.NewParcel(kernel.NewUUID(), parcel.Details{
//	    Description:     "Urgent docs",
//	    Weight:          1.5,
//	    DestinationCity: "Rabat",
//	    Priority:        "HIGH",
//	}, refs, time.Now())
func NewParcel(id kernel.UUID, details Details, refs References, now time.Time) (*Parcel, *HistoryEntry, error) {
	p := &Parcel{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setDetails(details),
		p.setReferences(refs),
		p.setCreatedAt(now),
	); err != nil {
		return nil, nil, err
	}

	return p, newHistoryEntry(p.id, Created, createdComment, p.createdAt), nil
}

// RestoreParcel rebuilds a parcel loaded from storage without emitting history.
func RestoreParcel(
	id kernel.UUID,
	details Details,
	refs References,
	status Status,
	createdAt time.Time,
	courierID *kernel.UUID,
) (*Parcel, error) {
	p := &Parcel{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setDetails(details),
		p.setReferences(refs),
		p.setCreatedAt(createdAt),
		p.setStatus(status),
		p.setCourier(courierID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Parcel) ID() kernel.UUID {
	return p.id
}

func (p *Parcel) Description() string {
	return p.description
}

// Weight is expressed in kilograms.
func (p *Parcel) Weight() float64 {
	return p.weight
}

func (p *Parcel) DestinationCity() string {
	return p.destinationCity
}

func (p *Parcel) Priority() Priority {
	return p.priority
}

func (p *Parcel) Status() Status {
	return p.status
}

func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Parcel) SenderID() kernel.UUID {
	return p.senderID
}

func (p *Parcel) RecipientID() kernel.UUID {
	return p.recipientID
}

func (p *Parcel) ZoneID() kernel.UUID {
	return p.zoneID
}

// CourierID returns nil while no courier has been assigned.
func (p *Parcel) CourierID() *kernel.UUID {
	if p.courierID == nil {
		return nil
	}
	id := *p.courierID
	return &id
}

// AssignCourier attaches the courier and forces status to InTransit whatever
// the current status is. Re-assigning the same courier is allowed and writes
// another history entry.
func (p *Parcel) AssignCourier(courierID kernel.UUID, courierName string, now time.Time) (*HistoryEntry, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := courierID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("courierId", err)
	}

	p.courierID = &courierID
	p.status = InTransit
	return newHistoryEntry(p.id, InTransit, assignedComment+courierName, now), nil
}

// ChangeStatus sets any status except the creation labels and records the
// supplied comment under the same label.
func (p *Parcel) ChangeStatus(status Status, comment string, now time.Time) (*HistoryEntry, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateUpdateTarget(); err != nil {
		return nil, err
	}
	if _, err := kernel.OptionalText("comment", comment, maxCommentLength); err != nil {
		return nil, err
	}

	p.status = status
	return newHistoryEntry(p.id, status, comment, now), nil
}

// Remove marks the parcel for deletion and describes the removal for
// downstream consumers. The parcel must not be used afterwards.
func (p *Parcel) Remove(now time.Time) (Removal, error) {
	if err := p.Validate(); err != nil {
		return Removal{}, err
	}

	removal := Removal{
		ParcelID:   p.id,
		LastStatus: p.status,
		RemovedAt:  now.UTC(),
	}
	p.isConstructed = false
	return removal, nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setDetails(details Details) error {
	description, descriptionErr := kernel.RequiredText("description", details.Description, maxDescriptionLength)
	weight, weightErr := kernel.PositiveAmount("weight", details.Weight)
	city, cityErr := kernel.RequiredText("destinationCity", details.DestinationCity, maxCityLength)
	priority, priorityErr := NewPriority(details.Priority)

	if err := errors.Join(descriptionErr, weightErr, cityErr, priorityErr); err != nil {
		return err
	}

	p.description = description
	p.weight = weight
	p.destinationCity = city
	p.priority = priority
	return nil
}

func (p *Parcel) setReferences(refs References) error {
	var senderErr, recipientErr, zoneErr error
	if refs.SenderID.Validate() != nil {
		senderErr = errs.NewValueIsRequiredError("senderId")
	}
	if refs.RecipientID.Validate() != nil {
		recipientErr = errs.NewValueIsRequiredError("recipientId")
	}
	if refs.ZoneID.Validate() != nil {
		zoneErr = errs.NewValueIsRequiredError("zoneId")
	}

	if err := errors.Join(senderErr, recipientErr, zoneErr); err != nil {
		return err
	}

	p.senderID = refs.SenderID
	p.recipientID = refs.RecipientID
	p.zoneID = refs.ZoneID
	return nil
}

func (p *Parcel) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	p.createdAt = createdAt.UTC()
	return nil
}

func (p *Parcel) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Parcel) setCourier(courierID *kernel.UUID) error {
	if courierID == nil {
		p.courierID = nil
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("courierId", err)
	}
	id := *courierID
	p.courierID = &id
	return nil
}
