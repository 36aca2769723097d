// Package productrepo persists the product catalogue.
package productrepo

import (
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/product"

	"github.com/google/uuid"
)

type ProductDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(100);not null;index"`
	Category string    `gorm:"type:varchar(50)"`
	Weight   float64   `gorm:"not null"`
	Price    float64   `gorm:"not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	attrs := p.Attributes()
	return ProductDTO{
		ID:       p.ID().Bytes(),
		Name:     attrs.Name,
		Category: attrs.Category,
		Weight:   attrs.Weight,
		Price:    attrs.Price,
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.NewProduct(id, product.Attributes{
		Name:     dto.Name,
		Category: dto.Category,
		Weight:   dto.Weight,
		Price:    dto.Price,
	})
}
