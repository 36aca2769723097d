package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetAllParcelsQueryHandler struct {
	db *gorm.DB
}

func NewGetAllParcelsQueryHandler(db *gorm.DB) GetAllParcelsQueryHandler {
	return GetAllParcelsQueryHandler{db: db}
}

// Handle never returns a nil slice on success.
func (h GetAllParcelsQueryHandler) Handle(ctx context.Context, query GetAllParcelsQuery) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(parcelViewSelect + `ORDER BY p.created_at, p.id`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]ParcelView, 0)
	for rows.Next() {
		view, scanErr := scanParcelView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
