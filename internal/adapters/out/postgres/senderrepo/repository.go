package senderrepo

import (
	"context"

	"parceltrack/internal/adapters/out/postgres/pgerr"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/party"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

const entityType = "Sender"

type GormSenderRepository struct {
	db *gorm.DB
}

func NewGormSenderRepository(db *gorm.DB) *GormSenderRepository {
	return &GormSenderRepository{db: db}
}

// Add fails with an IntegrityViolationError when the email is taken.
func (r *GormSenderRepository) Add(ctx context.Context, sender *party.Sender) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	dto := fromDomain(sender)
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormSenderRepository) Update(ctx context.Context, sender *party.Sender) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	dto := fromDomain(sender)
	result := r.db.WithContext(ctx).Model(&SenderDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entityType, sender.ID().String())
	}
	return nil
}

func (r *GormSenderRepository) Get(ctx context.Context, id kernel.UUID) (*party.Sender, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SenderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerr.NotFound(err, entityType, id.String())
	}

	return toDomain(dto)
}

// List returns senders sorted by last then first name.
func (r *GormSenderRepository) List(ctx context.Context) ([]*party.Sender, error) {
	var dtos []SenderDTO
	if err := r.db.WithContext(ctx).Order("last_name, first_name, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	senders := make([]*party.Sender, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		senders = append(senders, s)
	}
	return senders, nil
}

func (r *GormSenderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&SenderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entityType, id.String())
	}
	return nil
}
