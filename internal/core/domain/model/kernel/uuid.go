package kernel

import (
	"fmt"
	"strings"

	"parceltrack/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the immutable identity value object of every entity: parcels,
// history entries, parties, couriers, zones and products.
//
// The zero value is invalid and must be built with NewUUID, UUIDFromString
// or UUIDFromBytes. Values are comparable with IsEqual and safe to share
// between goroutines.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//
//	zoneID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    return fmt.Errorf("invalid zone id: %w", err)
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) identifier. Handlers call it
// when they allocate the id of a new aggregate.
//
// Example:
//
//	p, entry, err := parcel.NewParcel(kernel.NewUUID(), details, refs, time.Now())
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the canonical, braced, urn or compact textual forms.
// The error wraps the parser's and reads "invalid UUID format". Caller input
// that names an entity should go through ReferenceFromString instead.
//
// Example:
//
//	id, err := kernel.UUIDFromString(row.ID)
//	if err != nil {
//	    return nil, fmt.Errorf("stored parcel id: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes builds a UUID from its 16-byte form as stored in the database.
// Unlike UUIDFromString it also rejects the nil UUID, since no stored row
// carries one.
//
// Example:
//
//	id, err := kernel.UUIDFromBytes(dto.ID[:])
//	if err != nil {
//	    return nil, err
//	}
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// ReferenceFromString resolves an identifier supplied by a caller for the
// given entity type. A blank value is a validation failure; a value that
// cannot be parsed can never match a stored entity and is reported as
// not found, the same way a well-formed but unknown id would be.
//
// Example:
//
//	courierID, err := kernel.ReferenceFromString("Courier", req.CourierID)
//	if err != nil {
//	    return err // 400 when blank, 404 when unparseable
//	}
func ReferenceFromString(entityType, s string) (UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return UUID{}, errs.NewValueIsRequiredError(strings.ToLower(entityType[:1]) + entityType[1:] + "Id")
	}

	id, err := UUIDFromString(s)
	if err != nil {
		return UUID{}, errs.NewObjectNotFoundErrorWithCause(entityType, s, err)
	}
	if err = id.Validate(); err != nil {
		return UUID{}, errs.NewObjectNotFoundErrorWithCause(entityType, s, err)
	}

	return id, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID (a [16]byte array copy).
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
