package parcel

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

const (
	maxCommentLength     = 255
	maxStatusLabelLength = 50

	createdComment  = "parcel created by sender"
	assignedComment = "parcel assigned to courier: "
)

var ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via a parcel mutation or RestoreHistoryEntry")

// HistoryEntry is an immutable snapshot of a parcel status change.
// Entries are produced only by Parcel mutations, so every status-affecting
// change comes paired with exactly one entry.
type HistoryEntry struct {
	id        kernel.UUID
	parcelID  kernel.UUID
	status    string
	changedAt time.Time
	comment   string

	guard guard.ConstructorGuard
}

func newHistoryEntry(parcelID kernel.UUID, status Status, comment string, changedAt time.Time) *HistoryEntry {
	return &HistoryEntry{
		id:        kernel.NewUUID(),
		parcelID:  parcelID,
		status:    status.String(),
		changedAt: changedAt.UTC(),
		comment:   comment,
		guard:     guard.NewConstructorGuard(),
	}
}

// RestoreHistoryEntry rebuilds an entry loaded from storage.
func RestoreHistoryEntry(
	id, parcelID kernel.UUID,
	status string,
	changedAt time.Time,
	comment string,
) (*HistoryEntry, error) {
	entry := &HistoryEntry{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setParcelID(parcelID),
		entry.setStatus(status),
		entry.setChangedAt(changedAt),
	); err != nil {
		return nil, err
	}

	return entry, nil
}

func (h *HistoryEntry) Validate() error {
	if h == nil {
		return ErrHistoryEntryIsNotConstructed
	}
	return h.guard.Validate(ErrHistoryEntryIsNotConstructed)
}

func (h *HistoryEntry) ID() kernel.UUID {
	return h.id
}

func (h *HistoryEntry) ParcelID() kernel.UUID {
	return h.parcelID
}

// Status returns the label snapshot taken when the entry was written.
func (h *HistoryEntry) Status() string {
	return h.status
}

func (h *HistoryEntry) ChangedAt() time.Time {
	return h.changedAt
}

func (h *HistoryEntry) Comment() string {
	return h.comment
}

func (h *HistoryEntry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.id = id
	return nil
}

func (h *HistoryEntry) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelId", err)
	}
	h.parcelID = parcelID
	return nil
}

func (h *HistoryEntry) setStatus(status string) error {
	v, err := kernel.RequiredText("status", status, maxStatusLabelLength)
	if err != nil {
		return err
	}
	h.status = v
	return nil
}

func (h *HistoryEntry) setChangedAt(changedAt time.Time) error {
	if changedAt.IsZero() {
		return errs.NewValueIsRequiredError("changedAt")
	}
	h.changedAt = changedAt.UTC()
	return nil
}
