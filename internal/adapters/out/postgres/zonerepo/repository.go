// Package zonerepo persists delivery zones.
package zonerepo

import (
	"context"

	"parceltrack/internal/adapters/out/postgres/pgerr"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/zone"
	"parceltrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const entityType = "Zone"

type ZoneDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(100);not null;index"`
	PostalCode string    `gorm:"type:varchar(20)"`
}

func (ZoneDTO) TableName() string {
	return "zones"
}

type GormZoneRepository struct {
	db *gorm.DB
}

func NewGormZoneRepository(db *gorm.DB) *GormZoneRepository {
	return &GormZoneRepository{db: db}
}

func (r *GormZoneRepository) Add(ctx context.Context, z *zone.Zone) error {
	if err := z.Validate(); err != nil {
		return err
	}

	dto := ZoneDTO{ID: z.ID().Bytes(), Name: z.Name(), PostalCode: z.PostalCode()}
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormZoneRepository) Update(ctx context.Context, z *zone.Zone) error {
	if err := z.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ZoneDTO{}).
		Where("id = ?", z.ID().Bytes()).
		Updates(map[string]any{"name": z.Name(), "postal_code": z.PostalCode()})
	if result.Error != nil {
		return pgerr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entityType, z.ID().String())
	}
	return nil
}

func (r *GormZoneRepository) Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ZoneDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerr.NotFound(err, entityType, id.String())
	}

	return toDomain(dto)
}

func (r *GormZoneRepository) List(ctx context.Context) ([]*zone.Zone, error) {
	var dtos []ZoneDTO
	if err := r.db.WithContext(ctx).Order("name, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	zones := make([]*zone.Zone, 0, len(dtos))
	for _, dto := range dtos {
		z, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, nil
}

func (r *GormZoneRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ZoneDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entityType, id.String())
	}
	return nil
}

func toDomain(dto ZoneDTO) (*zone.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return zone.NewZone(id, dto.Name, dto.PostalCode)
}
