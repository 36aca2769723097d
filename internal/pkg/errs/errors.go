package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrIntegrityViolation = errors.New("data integrity violation")
)

// ObjectNotFoundError reports a lookup whose identifier did not resolve.
// ParamName carries the entity type, e.g. "Parcel" or "Zone".
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	msg := fmt.Sprintf("%s not found with id: %v", sanitize(e.ParamName), sanitize(fmt.Sprint(e.ID)))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause.Error()))
	}
	return msg
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a parameter that failed a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName)), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid,
		sanitize(fmt.Sprint(e.Value)),
		sanitize(e.ParamName),
		e.Min,
		e.Max,
	)
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory parameter.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName)), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// IntegrityViolationError reports a uniqueness or foreign-key constraint
// rejected by the storage layer.
type IntegrityViolationError struct {
	Constraint string
	Cause      error
}

func NewIntegrityViolationError(constraint string) *IntegrityViolationError {
	return &IntegrityViolationError{Constraint: constraint}
}

func NewIntegrityViolationErrorWithCause(constraint string, cause error) *IntegrityViolationError {
	return &IntegrityViolationError{
		Constraint: constraint,
		Cause:      cause,
	}
}

func (e *IntegrityViolationError) Error() string {
	msg := ErrIntegrityViolation.Error()
	if e.Constraint != "" {
		msg = fmt.Sprintf("%s: %s", msg, sanitize(e.Constraint))
	}
	return withCause(msg, e.Cause)
}

func (e *IntegrityViolationError) Unwrap() error {
	return ErrIntegrityViolation
}

// IsValidation reports whether err belongs to the malformed-input family.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange)
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}

func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
