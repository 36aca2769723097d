// Package product models the catalogue items that can be shipped in a parcel.
package product

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

const (
	maxNameLength     = 100
	maxCategoryLength = 50
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Attributes are the editable data of a product.
type Attributes struct {
	Name     string
	Category string
	Weight   float64
	Price    float64
}

type Product struct {
	id         kernel.UUID
	attributes Attributes

	guard guard.ConstructorGuard
}

func NewProduct(id kernel.UUID, attributes Attributes) (*Product, error) {
	p := &Product{guard: guard.NewConstructorGuard()}

	if err := errors.Join(id.Validate(), p.Update(attributes)); err != nil {
		return nil, err
	}

	p.id = id
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Attributes() Attributes {
	return p.attributes
}

// Price is the current unit price, captured on product lines when added to a parcel.
func (p *Product) Price() float64 {
	return p.attributes.Price
}

func (p *Product) Update(attributes Attributes) error {
	name, nameErr := kernel.RequiredText("name", attributes.Name, maxNameLength)
	category, categoryErr := kernel.OptionalText("category", attributes.Category, maxCategoryLength)
	weight, weightErr := kernel.PositiveAmount("weight", attributes.Weight)
	price, priceErr := kernel.PositiveAmount("price", attributes.Price)

	if err := errors.Join(nameErr, categoryErr, weightErr, priceErr); err != nil {
		return err
	}

	p.attributes = Attributes{
		Name:     name,
		Category: category,
		Weight:   weight,
		Price:    price,
	}
	return nil
}
