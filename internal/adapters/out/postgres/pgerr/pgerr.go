// Package pgerr maps storage failures onto the errs taxonomy so callers never
// need to know which SQL driver is in use.
package pgerr

import (
	"errors"

	"parceltrack/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// integrityClass is the SQLSTATE class for integrity constraint violations.
const integrityClass = "23"

// Translate returns an IntegrityViolationError for constraint failures
// reported by gorm, pgx or lib/pq, and err unchanged otherwise.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == integrityClass {
		return errs.NewIntegrityViolationErrorWithCause(pgErr.ConstraintName, errors.New(pgErr.Message))
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code.Class()) == integrityClass {
		return errs.NewIntegrityViolationErrorWithCause(pqErr.Constraint, errors.New(pqErr.Message))
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewIntegrityViolationErrorWithCause("", err)
	}

	return err
}

// NotFound converts gorm.ErrRecordNotFound into an ObjectNotFoundError for
// the given entity type and passes every other error through Translate.
func NotFound(err error, entityType string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(entityType, id)
	}
	return Translate(err)
}
