package queries

import (
	"context"

	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetParcelQueryHandler reads through the view cache: a hit skips the
// database, a miss loads the view and stores it unless the parcel was
// invalidated while the row was being read.
type GetParcelQueryHandler struct {
	db    *gorm.DB
	cache ParcelViewCache
}

func NewGetParcelQueryHandler(db *gorm.DB, cache ParcelViewCache) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db, cache: cache}
}

// Handle fails with an ObjectNotFoundError naming "Parcel" when the id is unknown.
func (h GetParcelQueryHandler) Handle(ctx context.Context, query GetParcelQuery) (ParcelView, error) {
	if err := query.Validate(); err != nil {
		return ParcelView{}, err
	}

	view, stamp, ok := h.cache.Get(ctx, query.ParcelID())
	if ok {
		return view, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(parcelViewSelect+`WHERE p.id = ?`, query.ParcelID().Bytes()).Rows()
	if err != nil {
		return ParcelView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ParcelView{}, err
		}
		return ParcelView{}, errs.NewObjectNotFoundError("Parcel", query.ParcelID().String())
	}

	view, err = scanParcelView(rows)
	if err != nil {
		return ParcelView{}, err
	}

	h.cache.Set(ctx, view, stamp)
	return view, nil
}
