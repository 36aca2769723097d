// Package guard detects zero-value structs that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and entities. Only
// NewConstructorGuard sets the flag, so a struct literal fails Validate.
//
//	type AssignCourierCommand struct {
//	    parcelID  kernel.UUID
//	    courierID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c AssignCourierCommand) Validate() error {
//	    return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
