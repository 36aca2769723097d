package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrGetParcelHistoryQueryIsNotConstructed = errors.New(
	"GetParcelHistoryQuery must be created via NewGetParcelHistoryQuery constructor",
)

// GetParcelHistoryQuery lists the history of one parcel, newest first.
// An unknown parcel has an empty history.
type GetParcelHistoryQuery struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetParcelHistoryQuery(parcelID kernel.UUID) (GetParcelHistoryQuery, error) {
	if parcelID.Validate() != nil {
		return GetParcelHistoryQuery{}, errs.NewValueIsRequiredError("parcelId")
	}

	return GetParcelHistoryQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetParcelHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelHistoryQueryIsNotConstructed)
}

func (q GetParcelHistoryQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

type HistoryEntryView struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
	Comment   string    `json:"comment"`
}
