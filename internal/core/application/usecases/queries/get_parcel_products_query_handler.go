package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetParcelProductsQueryHandler struct {
	db *gorm.DB
}

func NewGetParcelProductsQueryHandler(db *gorm.DB) GetParcelProductsQueryHandler {
	return GetParcelProductsQueryHandler{db: db}
}

func (h GetParcelProductsQueryHandler) Handle(
	ctx context.Context,
	query GetParcelProductsQuery,
) ([]ProductLineView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			pp.product_id,
			COALESCE(pr.name, ''),
			pp.quantity,
			pp.unit_price,
			pp.added_at
		FROM parcel_products pp
		LEFT JOIN products pr ON pr.id = pp.product_id
		WHERE pp.parcel_id = ?
		ORDER BY pp.added_at, pp.product_id
	`, query.ParcelID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]ProductLineView, 0)
	for rows.Next() {
		var line ProductLineView
		var productID uuid.UUID

		err = rows.Scan(&productID, &line.ProductName, &line.Quantity, &line.UnitPrice, &line.AddedAt)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		line.ProductID = id.String()
		line.LineTotal = float64(line.Quantity) * line.UnitPrice
		line.AddedAt = line.AddedAt.UTC()
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
