package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrGetParcelProductsQueryIsNotConstructed = errors.New(
	"GetParcelProductsQuery must be created via NewGetParcelProductsQuery constructor",
)

type GetParcelProductsQuery struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetParcelProductsQuery(parcelID kernel.UUID) (GetParcelProductsQuery, error) {
	if parcelID.Validate() != nil {
		return GetParcelProductsQuery{}, errs.NewValueIsRequiredError("parcelId")
	}

	return GetParcelProductsQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetParcelProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelProductsQueryIsNotConstructed)
}

func (q GetParcelProductsQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// ProductLineView is one product line. ProductName is empty when the
// product was removed from the catalogue after being added.
type ProductLineView struct {
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	LineTotal   float64   `json:"lineTotal"`
	AddedAt     time.Time `json:"addedAt"`
}
