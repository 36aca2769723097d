package party

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrSenderIsNotConstructed = errors.New("Sender must be created via NewSender constructor")

// Sender is the client who ships parcels. Its email is mandatory and unique.
type Sender struct {
	id      kernel.UUID
	contact Contact

	guard guard.ConstructorGuard
}

func NewSender(id kernel.UUID, contact Contact) (*Sender, error) {
	s := &Sender{guard: guard.NewConstructorGuard()}

	if err := errors.Join(id.Validate(), s.Update(contact)); err != nil {
		return nil, err
	}

	s.id = id
	return s, nil
}

func (s *Sender) Validate() error {
	if s == nil {
		return ErrSenderIsNotConstructed
	}
	return s.guard.Validate(ErrSenderIsNotConstructed)
}

func (s *Sender) ID() kernel.UUID {
	return s.id
}

func (s *Sender) Contact() Contact {
	return s.contact
}

// Update replaces the contact data after validating it.
func (s *Sender) Update(contact Contact) error {
	normalized, err := normalizeContact(contact, true)
	if err != nil {
		return err
	}
	s.contact = normalized
	return nil
}
