package parcel

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrProductLineIsNotConstructed = errors.New("ProductLine must be created via NewProductLine constructor")

// ProductLine records a quantity of a product shipped in a parcel, with the
// unit price captured when the line was added. A parcel holds at most one
// line per product.
type ProductLine struct {
	parcelID  kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice float64
	addedAt   time.Time

	guard guard.ConstructorGuard
}

func NewProductLine(
	parcelID, productID kernel.UUID,
	quantity int,
	unitPrice float64,
	addedAt time.Time,
) (*ProductLine, error) {
	line := &ProductLine{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		line.setParcelID(parcelID),
		line.setProductID(productID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
		line.setAddedAt(addedAt),
	); err != nil {
		return nil, err
	}

	return line, nil
}

func (l *ProductLine) Validate() error {
	if l == nil {
		return ErrProductLineIsNotConstructed
	}
	return l.guard.Validate(ErrProductLineIsNotConstructed)
}

func (l *ProductLine) ParcelID() kernel.UUID {
	return l.parcelID
}

func (l *ProductLine) ProductID() kernel.UUID {
	return l.productID
}

func (l *ProductLine) Quantity() int {
	return l.quantity
}

func (l *ProductLine) UnitPrice() float64 {
	return l.unitPrice
}

func (l *ProductLine) AddedAt() time.Time {
	return l.addedAt
}

// Total is quantity times the captured unit price.
func (l *ProductLine) Total() float64 {
	return float64(l.quantity) * l.unitPrice
}

func (l *ProductLine) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelId", err)
	}
	l.parcelID = id
	return nil
}

func (l *ProductLine) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	l.productID = id
	return nil
}

func (l *ProductLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *ProductLine) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%v is negative", unitPrice))
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *ProductLine) setAddedAt(addedAt time.Time) error {
	if addedAt.IsZero() {
		return errs.NewValueIsRequiredError("addedAt")
	}
	l.addedAt = addedAt.UTC()
	return nil
}
