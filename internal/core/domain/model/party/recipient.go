package party

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient constructor")

// Recipient receives parcels. Unlike a sender it may have no email.
type Recipient struct {
	id      kernel.UUID
	contact Contact

	guard guard.ConstructorGuard
}

func NewRecipient(id kernel.UUID, contact Contact) (*Recipient, error) {
	r := &Recipient{guard: guard.NewConstructorGuard()}

	if err := errors.Join(id.Validate(), r.Update(contact)); err != nil {
		return nil, err
	}

	r.id = id
	return r, nil
}

func (r *Recipient) Validate() error {
	if r == nil {
		return ErrRecipientIsNotConstructed
	}
	return r.guard.Validate(ErrRecipientIsNotConstructed)
}

func (r *Recipient) ID() kernel.UUID {
	return r.id
}

func (r *Recipient) Contact() Contact {
	return r.contact
}

func (r *Recipient) Update(contact Contact) error {
	normalized, err := normalizeContact(contact, false)
	if err != nil {
		return err
	}
	r.contact = normalized
	return nil
}
