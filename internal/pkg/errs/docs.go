// Package errs provides the typed error vocabulary shared by the domain,
// application and adapter layers.
//
// Failures fall into four families that the HTTP boundary maps onto
// response codes:
//   - ObjectNotFoundError: a requested or referenced entity does not exist
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError:
//     malformed input rejected before persistence
//   - IntegrityViolationError: a storage constraint (unique, foreign key) refused the write
//   - anything else is treated as unexpected
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct carrying the error details
//   - constructors with and without a cause
//   - Error() for the message and Unwrap() returning the sentinel,
//     so callers classify with errors.Is
package errs
