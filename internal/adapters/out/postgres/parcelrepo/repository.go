package parcelrepo

import (
	"context"

	"parceltrack/internal/adapters/out/postgres/pgerr"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

const entityType = "Parcel"

// GormParcelRepository implements ports.ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker receives every change the unit of work must turn into events.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes status and courier only; everything else is fixed at creation.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":     dto.Status,
			"courier_id": dto.CourierID,
		})
	if result.Error != nil {
		return pgerr.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entityType, aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerr.NotFound(err, entityType, id.String())
	}

	return toDomain(dto)
}

// Delete removes the parcel row and tracks the removal.
func (r *GormParcelRepository) Delete(ctx context.Context, removal parcel.Removal) error {
	if err := removal.ParcelID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ParcelDTO{}, "id = ?", removal.ParcelID.Bytes())
	if result.Error != nil {
		return pgerr.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entityType, removal.ParcelID.String())
	}

	r.tracker.TrackAggregate(removal.ParcelID, removal)
	return nil
}
