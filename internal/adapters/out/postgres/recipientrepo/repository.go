package recipientrepo

import (
	"context"

	"parceltrack/internal/adapters/out/postgres/pgerr"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/party"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

const entityType = "Recipient"

type GormRecipientRepository struct {
	db *gorm.DB
}

func NewGormRecipientRepository(db *gorm.DB) *GormRecipientRepository {
	return &GormRecipientRepository{db: db}
}

func (r *GormRecipientRepository) Add(ctx context.Context, recipient *party.Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}

	dto := fromDomain(recipient)
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormRecipientRepository) Update(ctx context.Context, recipient *party.Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}

	dto := fromDomain(recipient)
	result := r.db.WithContext(ctx).Model(&RecipientDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entityType, recipient.ID().String())
	}
	return nil
}

func (r *GormRecipientRepository) Get(ctx context.Context, id kernel.UUID) (*party.Recipient, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecipientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerr.NotFound(err, entityType, id.String())
	}

	return toDomain(dto)
}

// List returns recipients sorted by last then first name.
func (r *GormRecipientRepository) List(ctx context.Context) ([]*party.Recipient, error) {
	var dtos []RecipientDTO
	if err := r.db.WithContext(ctx).Order("last_name, first_name, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	recipients := make([]*party.Recipient, 0, len(dtos))
	for _, dto := range dtos {
		rec, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		recipients = append(recipients, rec)
	}
	return recipients, nil
}

func (r *GormRecipientRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RecipientDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entityType, id.String())
	}
	return nil
}
