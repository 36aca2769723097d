package parcel

import (
	"fmt"
	"strings"

	"parceltrack/internal/pkg/errs"
)

// Status is the current stage of a parcel's lifecycle.
//
// The vocabulary holds the English labels and the French labels of the
// legacy back office as distinct members: a status is stored and reported
// with the label it was set with, so LIVRE stays LIVRE.
//
// No transition table is enforced: any status may follow any other. The one
// structural rule is that the initial labels (Created, Cree) are only ever
// set by creation and cannot be re-entered through ChangeStatus.
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota
	Created
	Collected
	InStock
	InTransit
	Delivered
	Failed
	Returned
	Cree
	Collecte
	EnStock
	EnTransit
	Livre
	Echec
	Retourne
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Created:   "CREATED",
		Collected: "COLLECTED",
		InStock:   "IN_STOCK",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Failed:    "FAILED",
		Returned:  "RETURNED",
		Cree:      "CREE",
		Collecte:  "COLLECTE",
		EnStock:   "EN_STOCK",
		EnTransit: "EN_TRANSIT",
		Livre:     "LIVRE",
		Echec:     "ECHEC",
		Retourne:  "RETOURNE",
	}
}

func getStatusLabels() map[string]Status {
	labels := make(map[string]Status, len(getStatusStrings()))
	for _, s := range Statuses() {
		labels[s.String()] = s
	}
	return labels
}

// ParseStatus decodes a status label case-insensitively; dashes and blanks
// read as underscores. Each label, English or French, decodes to its own
// member.
func ParseStatus(label string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(label))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")

	if normalized == "" {
		return Unknown, errs.NewValueIsRequiredError("status")
	}

	s, ok := getStatusLabels()[normalized]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not a known parcel status", label),
		)
	}
	return s, nil
}

// Statuses lists every valid status, English labels first, each group in
// lifecycle order.
func Statuses() []Status {
	return []Status{
		Created, Collected, InStock, InTransit, Delivered, Failed, Returned,
		Cree, Collecte, EnStock, EnTransit, Livre, Echec, Retourne,
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Retourne {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ValidateUpdateTarget checks that s may be set through a status update.
func (s Status) ValidateUpdateTarget() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.IsInitial() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is only set when the parcel is created", s),
		)
	}
	return nil
}

// IsInitial reports whether s is a creation label.
func (s Status) IsInitial() bool {
	return s == Created || s == Cree
}

// String returns the label stored on the parcel and in history rows.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
