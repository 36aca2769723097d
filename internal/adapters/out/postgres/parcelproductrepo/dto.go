// Package parcelproductrepo stores the product lines of parcels, one row per
// parcel and product.
package parcelproductrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

type ProductLineDTO struct {
	ParcelID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int       `gorm:"not null"`
	UnitPrice float64   `gorm:"not null"`
	AddedAt   time.Time `gorm:"not null"`
}

func (ProductLineDTO) TableName() string {
	return "parcel_products"
}

func fromDomain(line *parcel.ProductLine) ProductLineDTO {
	return ProductLineDTO{
		ParcelID:  line.ParcelID().Bytes(),
		ProductID: line.ProductID().Bytes(),
		Quantity:  line.Quantity(),
		UnitPrice: line.UnitPrice(),
		AddedAt:   line.AddedAt(),
	}
}

func toDomain(dto ProductLineDTO) (*parcel.ProductLine, error) {
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return parcel.NewProductLine(parcelID, productID, dto.Quantity, dto.UnitPrice, dto.AddedAt)
}
