package http

import (
	"parceltrack/internal/core/application/registries"
	"parceltrack/internal/core/domain/model/courier"
	"parceltrack/internal/core/domain/model/party"
	"parceltrack/internal/core/domain/model/product"
	"parceltrack/internal/core/domain/model/zone"
)

// CreateParcelRequest is the body of POST /parcels. A status sent by the
// client is ignored; new parcels always start as CREATED.
type CreateParcelRequest struct {
	Description     string  `json:"description"     validate:"required,max=255"`
	Weight          float64 `json:"weight"          validate:"gt=0"`
	DestinationCity string  `json:"destinationCity" validate:"required,max=100"`
	Priority        string  `json:"priority"        validate:"max=50"`
	SenderID        string  `json:"senderId"        validate:"required"`
	RecipientID     string  `json:"recipientId"     validate:"required"`
	ZoneID          string  `json:"zoneId"          validate:"required"`
}

type AddProductRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"gt=0"`
}

type SenderRequest struct {
	LastName  string `json:"lastName"  validate:"required,max=100"`
	FirstName string `json:"firstName" validate:"max=100"`
	Email     string `json:"email"     validate:"required,email,max=150"`
	Phone     string `json:"phone"     validate:"required,max=20"`
	Address   string `json:"address"   validate:"required,max=255"`
}

func (r SenderRequest) toContact() party.Contact {
	return party.Contact{
		LastName:  r.LastName,
		FirstName: r.FirstName,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
	}
}

type RecipientRequest struct {
	LastName  string `json:"lastName"  validate:"required,max=100"`
	FirstName string `json:"firstName" validate:"max=100"`
	Email     string `json:"email"     validate:"omitempty,email,max=150"`
	Phone     string `json:"phone"     validate:"required,max=20"`
	Address   string `json:"address"   validate:"required,max=255"`
}

func (r RecipientRequest) toContact() party.Contact {
	return party.Contact{
		LastName:  r.LastName,
		FirstName: r.FirstName,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
	}
}

type PartyResponse struct {
	ID        string `json:"id"`
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

func toSenderResponse(s *party.Sender) PartyResponse {
	return toPartyResponse(s.ID().String(), s.Contact())
}

func toRecipientResponse(r *party.Recipient) PartyResponse {
	return toPartyResponse(r.ID().String(), r.Contact())
}

func toPartyResponse(id string, c party.Contact) PartyResponse {
	return PartyResponse{
		ID:        id,
		LastName:  c.LastName,
		FirstName: c.FirstName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
	}
}

type CourierRequest struct {
	LastName     string `json:"lastName"     validate:"required,max=100"`
	FirstName    string `json:"firstName"    validate:"max=100"`
	Phone        string `json:"phone"        validate:"required,max=20"`
	Vehicle      string `json:"vehicle"      validate:"required,max=50"`
	AssignedZone string `json:"assignedZone" validate:"max=100"`
}

func (r CourierRequest) toProfile() courier.Profile {
	return courier.Profile{
		LastName:     r.LastName,
		FirstName:    r.FirstName,
		Phone:        r.Phone,
		Vehicle:      r.Vehicle,
		AssignedZone: r.AssignedZone,
	}
}

type CourierResponse struct {
	ID           string `json:"id"`
	LastName     string `json:"lastName"`
	FirstName    string `json:"firstName"`
	Phone        string `json:"phone"`
	Vehicle      string `json:"vehicle"`
	AssignedZone string `json:"assignedZone"`
}

func toCourierResponse(c *courier.Courier) CourierResponse {
	p := c.Profile()
	return CourierResponse{
		ID:           c.ID().String(),
		LastName:     p.LastName,
		FirstName:    p.FirstName,
		Phone:        p.Phone,
		Vehicle:      p.Vehicle,
		AssignedZone: p.AssignedZone,
	}
}

type ZoneRequest struct {
	Name       string `json:"name"       validate:"required,max=100"`
	PostalCode string `json:"postalCode" validate:"max=20"`
}

func (r ZoneRequest) toDetails() registries.ZoneDetails {
	return registries.ZoneDetails{Name: r.Name, PostalCode: r.PostalCode}
}

type ZoneResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PostalCode string `json:"postalCode"`
}

func toZoneResponse(z *zone.Zone) ZoneResponse {
	return ZoneResponse{
		ID:         z.ID().String(),
		Name:       z.Name(),
		PostalCode: z.PostalCode(),
	}
}

type ProductRequest struct {
	Name     string  `json:"name"     validate:"required,max=100"`
	Category string  `json:"category" validate:"max=50"`
	Weight   float64 `json:"weight"   validate:"gt=0"`
	Price    float64 `json:"price"    validate:"gt=0"`
}

func (r ProductRequest) toAttributes() product.Attributes {
	return product.Attributes{
		Name:     r.Name,
		Category: r.Category,
		Weight:   r.Weight,
		Price:    r.Price,
	}
}

type ProductResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Weight   float64 `json:"weight"`
	Price    float64 `json:"price"`
}

func toProductResponse(p *product.Product) ProductResponse {
	a := p.Attributes()
	return ProductResponse{
		ID:       p.ID().String(),
		Name:     a.Name,
		Category: a.Category,
		Weight:   a.Weight,
		Price:    a.Price,
	}
}
