// Package outbox models parcel events recorded in the same transaction as
// the state change that produced them, for later relay to a message broker.
package outbox

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

const (
	EventParcelStatusChanged = "parcel.status_changed"
	EventParcelDeleted       = "parcel.deleted"

	maxErrorLength = 1000
)

var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage or RestoreMessage")

type Status string

const (
	StatusPending   Status = "pending"
	StatusProcessed Status = "processed"
	StatusFailed    Status = "failed"
)

// Message is a pending, processed or permanently failed outbox record.
type Message struct {
	id          kernel.UUID
	eventType   string
	aggregateID kernel.UUID
	payload     []byte
	status      Status
	attempts    int
	lastError   string
	createdAt   time.Time
	processedAt *time.Time

	guard guard.ConstructorGuard
}

func NewMessage(eventType string, aggregateID kernel.UUID, payload []byte, now time.Time) (*Message, error) {
	var typeErr, payloadErr error
	if eventType == "" {
		typeErr = errs.NewValueIsRequiredError("eventType")
	}
	if len(payload) == 0 {
		payloadErr = errs.NewValueIsRequiredError("payload")
	}
	if err := errors.Join(typeErr, aggregateID.Validate(), payloadErr); err != nil {
		return nil, err
	}

	return &Message{
		id:          kernel.NewUUID(),
		eventType:   eventType,
		aggregateID: aggregateID,
		payload:     payload,
		status:      StatusPending,
		createdAt:   now.UTC(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreMessage rebuilds a message loaded from storage.
func RestoreMessage(
	id kernel.UUID,
	eventType string,
	aggregateID kernel.UUID,
	payload []byte,
	status Status,
	attempts int,
	lastError string,
	createdAt time.Time,
	processedAt *time.Time,
) (*Message, error) {
	if err := errors.Join(id.Validate(), aggregateID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Message{
		id:          id,
		eventType:   eventType,
		aggregateID: aggregateID,
		payload:     payload,
		status:      status,
		attempts:    attempts,
		lastError:   lastError,
		createdAt:   createdAt,
		processedAt: processedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (m *Message) Validate() error {
	if m == nil {
		return ErrMessageIsNotConstructed
	}
	return m.guard.Validate(ErrMessageIsNotConstructed)
}

func (m *Message) ID() kernel.UUID { return m.id }
func (m *Message) EventType() string { return m.eventType }
func (m *Message) AggregateID() kernel.UUID { return m.aggregateID }
func (m *Message) Payload() []byte { return m.payload }
func (m *Message) Status() Status { return m.status }
func (m *Message) Attempts() int { return m.attempts }
func (m *Message) LastError() string { return m.lastError }
func (m *Message) CreatedAt() time.Time { return m.createdAt }
func (m *Message) ProcessedAt() *time.Time { return m.processedAt }

// MarkProcessed records a successful publish.
func (m *Message) MarkProcessed(now time.Time) {
	at := now.UTC()
	m.status = StatusProcessed
	m.processedAt = &at
	m.lastError = ""
}

// RecordFailure counts a failed publish. Once maxAttempts is reached the
// message is parked as failed and no longer picked up by the relay.
func (m *Message) RecordFailure(cause error, maxAttempts int) {
	m.attempts++
	if cause != nil {
		msg := cause.Error()
		if len(msg) > maxErrorLength {
			msg = msg[:maxErrorLength]
		}
		m.lastError = msg
	}
	if maxAttempts > 0 && m.attempts >= maxAttempts {
		m.status = StatusFailed
	}
}

func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusProcessed, StatusFailed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an outbox status", string(s)))
	}
}
