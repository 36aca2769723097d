package productrepo

import (
	"context"

	"parceltrack/internal/adapters/out/postgres/pgerr"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/product"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

const entityType = "Product"

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error)
}

// Update changes the catalogue entry only. Product lines already recorded
// keep the unit price they were added with.
func (r *GormProductRepository) Update(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entityType, p.ID().String())
	}
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerr.NotFound(err, entityType, id.String())
	}

	return toDomain(dto)
}

func (r *GormProductRepository) List(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("name, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *GormProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entityType, id.String())
	}
	return nil
}
