package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery fetches one parcel view by id.
//
// Example:
//
//	query, err := NewGetParcelQuery(parcelID)
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
type GetParcelQuery struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetParcelQuery(parcelID kernel.UUID) (GetParcelQuery, error) {
	if parcelID.Validate() != nil {
		return GetParcelQuery{}, errs.NewValueIsRequiredError("parcelId")
	}

	return GetParcelQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

func (q GetParcelQuery) ParcelID() kernel.UUID {
	return q.parcelID
}
