package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetParcelHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetParcelHistoryQueryHandler(db *gorm.DB) GetParcelHistoryQueryHandler {
	return GetParcelHistoryQueryHandler{db: db}
}

// Handle orders by change time, then by insertion order for entries written
// within the same instant.
func (h GetParcelHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetParcelHistoryQuery,
) ([]HistoryEntryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, status, changed_at, COALESCE(comment, '')
		FROM parcel_history
		WHERE parcel_id = ?
		ORDER BY changed_at DESC, seq DESC
	`, query.ParcelID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]HistoryEntryView, 0)
	for rows.Next() {
		var entry HistoryEntryView
		var id uuid.UUID

		if err = rows.Scan(&id, &entry.Status, &entry.ChangedAt, &entry.Comment); err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID.String()
		entry.ChangedAt = entry.ChangedAt.UTC()
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
