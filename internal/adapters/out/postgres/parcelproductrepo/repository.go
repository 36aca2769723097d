package parcelproductrepo

import (
	"context"

	"parceltrack/internal/adapters/out/postgres/pgerr"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormParcelProductRepository struct {
	db *gorm.DB
}

func NewGormParcelProductRepository(db *gorm.DB) *GormParcelProductRepository {
	return &GormParcelProductRepository{db: db}
}

// Save upserts on (parcel_id, product_id). An existing line keeps its
// addedAt and takes the new quantity and unit price.
func (r *GormParcelProductRepository) Save(ctx context.Context, line *parcel.ProductLine) error {
	if err := line.Validate(); err != nil {
		return err
	}

	dto := fromDomain(line)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "parcel_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "unit_price"}),
		}).
		Create(&dto).Error
	return pgerr.Translate(err)
}

// ListForParcel returns lines in the order they were first added.
func (r *GormParcelProductRepository) ListForParcel(ctx context.Context, parcelID kernel.UUID) ([]*parcel.ProductLine, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProductLineDTO
	if err := r.db.WithContext(ctx).Where("parcel_id = ?", parcelID.Bytes()).Order("added_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	lines := make([]*parcel.ProductLine, 0, len(dtos))
	for _, dto := range dtos {
		line, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func (r *GormParcelProductRepository) DeleteForParcel(ctx context.Context, parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&ProductLineDTO{}, "parcel_id = ?", parcelID.Bytes()).Error
}
