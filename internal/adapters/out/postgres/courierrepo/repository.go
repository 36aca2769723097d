package courierrepo

import (
	"context"

	"parceltrack/internal/adapters/out/postgres/pgerr"
	"parceltrack/internal/core/domain/model/courier"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

const entityType = "Courier"

// GormCourierRepository implements ports.CourierRepository using GORM.
type GormCourierRepository struct {
	db *gorm.DB
}

func NewGormCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{db: db}
}

// Add saves a new courier to the database.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error)
}

// Update replaces every column of an existing courier.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CourierDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entityType, aggregate.ID().String())
	}

	return nil
}

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerr.NotFound(err, entityType, id.String())
	}

	return toDomain(dto)
}

// List retrieves all couriers sorted by name.
func (r *GormCourierRepository) List(ctx context.Context) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).Order("last_name, first_name, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}

// Delete removes the courier. Parcels keep their courier id.
func (r *GormCourierRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CourierDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerr.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entityType, id.String())
	}

	return nil
}
