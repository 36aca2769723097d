package outboxrepo

import (
	"context"

	"parceltrack/internal/adapters/out/postgres/pgerr"
	"parceltrack/internal/core/domain/model/outbox"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Add(ctx context.Context, message *outbox.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	dto := fromDomain(message)
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error)
}

// ClaimPending must run inside a transaction for the row locks to hold
// until the outcomes are written back.
func (r *GormOutboxRepository) ClaimPending(ctx context.Context, limit int) ([]*outbox.Message, error) {
	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ?", string(outbox.StatusPending)).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*outbox.Message, 0, len(dtos))
	for _, dto := range dtos {
		m, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		messages = append(messages, m)
	}

	return messages, nil
}

// Update stores the delivery outcome of a message.
func (r *GormOutboxRepository) Update(ctx context.Context, message *outbox.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	dto := fromDomain(message)
	result := r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":       dto.Status,
			"attempts":     dto.Attempts,
			"last_error":   dto.LastError,
			"processed_at": dto.ProcessedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("OutboxMessage", message.ID().String())
	}

	return nil
}
