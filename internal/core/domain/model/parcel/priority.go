package parcel

import (
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
)

// DefaultPriority is applied when the caller leaves priority blank.
const DefaultPriority Priority = "NORMAL"

const maxPriorityLength = 50

// Priority is an open label (NORMAL, HIGH, URGENT, ...) stored as supplied.
type Priority string

// NewPriority trims the label and falls back to DefaultPriority when blank.
func NewPriority(label string) (Priority, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return DefaultPriority, nil
	}

	v, err := kernel.OptionalText("priority", label, maxPriorityLength)
	if err != nil {
		return "", err
	}
	return Priority(v), nil
}

func (p Priority) String() string {
	return string(p)
}
