package queries

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var ErrGetAllParcelsQueryIsNotConstructed = errors.New(
	"GetAllParcelsQuery must be created via NewGetAllParcelsQuery constructor",
)

// GetAllParcelsQuery lists every parcel, oldest first. It takes no parameters.
type GetAllParcelsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllParcelsQuery() GetAllParcelsQuery {
	return GetAllParcelsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllParcelsQueryIsNotConstructed)
}
