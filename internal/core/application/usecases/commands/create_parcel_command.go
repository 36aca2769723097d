package commands

import (
	"errors"
	"fmt"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand registers a new parcel for an existing sender,
// recipient and zone.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//	cmd, err := NewCreateParcelCommand(parcelID, parcel.Details{
//	    Description:     "Urgent docs",
//	    Weight:          1.5,
//	    DestinationCity: "Rabat",
//	    Priority:        "HIGH",
//	}, senderID, recipientID, zoneID)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	details     parcel.Details
	sender      parentRef
	recipient   parentRef
	zone        parentRef

	guard guard.ConstructorGuard
}

// parentRef is a parent identifier as supplied by the caller. err holds the
// NotFound failure of an identifier that cannot name any stored entity; it
// is reported when the handler reaches that parent in resolution order.
type parentRef struct {
	id  kernel.UUID
	err error
}

func (r parentRef) resolve() (kernel.UUID, error) {
	return r.id, r.err
}

// NewCreateParcelCommand checks the preconditions that need no storage:
// description and city present, weight positive, identifiers set.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	details parcel.Details,
	senderID, recipientID, zoneID kernel.UUID,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setDetails(details),
		cmd.setReferences(senderID, recipientID, zoneID),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// NewCreateParcelCommandFromRefs builds the command from raw parent
// identifiers. Blank identifiers fail here with the other field errors. An
// identifier that does not parse is not rejected yet: the handler reports it
// as not found once the parents before it have been resolved, so the first
// missing parent in sender, recipient, zone order is the one named.
func NewCreateParcelCommandFromRefs(
	parcelID kernel.UUID,
	details parcel.Details,
	senderRef, recipientRef, zoneRef string,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	sender, senderErr := newParentRef("Sender", senderRef)
	recipient, recipientErr := newParentRef("Recipient", recipientRef)
	zone, zoneErr := newParentRef("Zone", zoneRef)

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setDetails(details),
		senderErr,
		recipientErr,
		zoneErr,
	); err != nil {
		return CreateParcelCommand{}, err
	}

	cmd.sender = sender
	cmd.recipient = recipient
	cmd.zone = zone
	return cmd, nil
}

func newParentRef(entityType, raw string) (parentRef, error) {
	id, err := kernel.ReferenceFromString(entityType, raw)
	if errors.Is(err, errs.ErrValueIsRequired) {
		return parentRef{}, err
	}
	return parentRef{id: id, err: err}, nil
}

func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c CreateParcelCommand) Details() parcel.Details {
	return c.details
}

// SenderID returns the sender reference, or the NotFound error of an
// identifier that could not be parsed.
func (c CreateParcelCommand) SenderID() (kernel.UUID, error) {
	return c.sender.resolve()
}

func (c CreateParcelCommand) RecipientID() (kernel.UUID, error) {
	return c.recipient.resolve()
}

func (c CreateParcelCommand) ZoneID() (kernel.UUID, error) {
	return c.zone.resolve()
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setDetails(details parcel.Details) error {
	var descriptionErr, weightErr, cityErr error
	if strings.TrimSpace(details.Description) == "" {
		descriptionErr = errs.NewValueIsRequiredError("description")
	}
	if !(details.Weight > 0) {
		weightErr = errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", details.Weight))
	}
	if strings.TrimSpace(details.DestinationCity) == "" {
		cityErr = errs.NewValueIsRequiredError("destinationCity")
	}
	if err := errors.Join(descriptionErr, weightErr, cityErr); err != nil {
		return err
	}

	c.details = details
	return nil
}

func (c *CreateParcelCommand) setReferences(senderID, recipientID, zoneID kernel.UUID) error {
	var senderErr, recipientErr, zoneErr error
	if senderID.Validate() != nil {
		senderErr = errs.NewValueIsRequiredError("senderId")
	}
	if recipientID.Validate() != nil {
		recipientErr = errs.NewValueIsRequiredError("recipientId")
	}
	if zoneID.Validate() != nil {
		zoneErr = errs.NewValueIsRequiredError("zoneId")
	}
	if err := errors.Join(senderErr, recipientErr, zoneErr); err != nil {
		return err
	}

	c.sender = parentRef{id: senderID}
	c.recipient = parentRef{id: recipientID}
	c.zone = parentRef{id: zoneID}
	return nil
}
