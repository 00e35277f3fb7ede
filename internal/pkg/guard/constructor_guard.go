// Package guard provides a defensive programming pattern that ensures value
// objects and entities are only created through their designated constructor
// functions. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable, so domain objects are always in a valid state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// of the guard fails validation, which means any struct embedding it cannot
// be used without going through its constructor.
//
// Example usage:
//
//	type Capacity struct {
//	    tons  float64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCapacity(tons float64) (Capacity, error) {
//	    if tons <= 0 {
//	        return Capacity{}, errors.New("capacity must be positive")
//	    }
//	    return Capacity{tons: tons, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Capacity) Validate() error {
//	    return c.guard.Validate(ErrCapacityNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of every guarded domain object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns validationError for zero-value instances, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
