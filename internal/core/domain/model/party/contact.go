package party

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

const (
	maxNameLength    = 100
	maxEmailLength   = 150
	maxPhoneLength   = 20
	maxAddressLength = 255
)

// Contact is the identity and postal data shared by senders and recipients.
type Contact struct {
	LastName  string
	FirstName string
	Email     string
	Phone     string
	Address   string
}

// FullName returns "FirstName LastName" without surrounding blanks.
func (c Contact) FullName() string {
	return kernel.FullName(c.FirstName, c.LastName)
}

func normalizeContact(c Contact, emailRequired bool) (Contact, error) {
	lastName, lastNameErr := kernel.RequiredText("lastName", c.LastName, maxNameLength)
	firstName, firstNameErr := kernel.OptionalText("firstName", c.FirstName, maxNameLength)
	email, emailErr := normalizeEmail(c.Email, emailRequired)
	phone, phoneErr := kernel.RequiredText("phone", c.Phone, maxPhoneLength)
	address, addressErr := kernel.RequiredText("address", c.Address, maxAddressLength)

	if err := errors.Join(lastNameErr, firstNameErr, emailErr, phoneErr, addressErr); err != nil {
		return Contact{}, err
	}

	return Contact{
		LastName:  lastName,
		FirstName: firstName,
		Email:     email,
		Phone:     phone,
		Address:   address,
	}, nil
}

func normalizeEmail(email string, required bool) (string, error) {
	var (
		v   string
		err error
	)
	if required {
		v, err = kernel.RequiredText("email", email, maxEmailLength)
	} else {
		v, err = kernel.OptionalText("email", email, maxEmailLength)
	}
	if err != nil || v == "" {
		return v, err
	}

	addr, parseErr := mail.ParseAddress(v)
	if parseErr != nil || addr.Address != v {
		return "", errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid address", v))
	}
	return strings.ToLower(v), nil
}
