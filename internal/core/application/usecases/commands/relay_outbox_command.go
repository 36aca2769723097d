package commands

import (
	"errors"
	"fmt"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrRelayOutboxCommandIsNotConstructed = errors.New(
	"RelayOutboxCommand must be created via NewRelayOutboxCommand constructor",
)

// RelayOutboxCommand publishes one batch of pending parcel events.
type RelayOutboxCommand struct {
	batchSize   int
	maxAttempts int

	guard guard.ConstructorGuard
}

func NewRelayOutboxCommand(batchSize, maxAttempts int) (RelayOutboxCommand, error) {
	var batchErr, attemptsErr error
	if batchSize <= 0 {
		batchErr = errs.NewValueIsInvalidErrorWithCause("batchSize", fmt.Errorf("%d is not greater than 0", batchSize))
	}
	if maxAttempts <= 0 {
		attemptsErr = errs.NewValueIsInvalidErrorWithCause("maxAttempts", fmt.Errorf("%d is not greater than 0", maxAttempts))
	}
	if err := errors.Join(batchErr, attemptsErr); err != nil {
		return RelayOutboxCommand{}, err
	}

	return RelayOutboxCommand{
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RelayOutboxCommand) Validate() error {
	return c.guard.Validate(ErrRelayOutboxCommandIsNotConstructed)
}

func (c RelayOutboxCommand) BatchSize() int {
	return c.batchSize
}

func (c RelayOutboxCommand) MaxAttempts() int {
	return c.maxAttempts
}
