package historyrepo

import (
	"context"

	"parceltrack/internal/adapters/out/postgres/pgerr"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

type GormHistoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormHistoryRepository(db *gorm.DB, tracker aggregateTracker) *GormHistoryRepository {
	return &GormHistoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Append inserts the entry. Each appended entry becomes a status event.
func (r *GormHistoryRepository) Append(ctx context.Context, entry *parcel.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err)
	}

	r.tracker.TrackAggregate(entry.ParcelID(), entry)
	return nil
}

// ListForParcel returns entries newest first; insertion order decides ties.
func (r *GormHistoryRepository) ListForParcel(ctx context.Context, parcelID kernel.UUID) ([]*parcel.HistoryEntry, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryEntryDTO
	err := r.db.WithContext(ctx).
		Where("parcel_id = ?", parcelID.Bytes()).
		Order("changed_at DESC").
		Order("seq DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*parcel.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *GormHistoryRepository) DeleteForParcel(ctx context.Context, parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&HistoryEntryDTO{}, "parcel_id = ?", parcelID.Bytes()).Error
}
