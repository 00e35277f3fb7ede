// Package errs provides standardized error types for the fleet trip application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - ResourceConflictError: For when a driver or vehicle is unavailable
//   - CapacityExceededError: For when planned collections exceed vehicle capacity
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrResourceConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels, which lets
// the HTTP layer branch on NotFound, Conflict, and CapacityExceeded outcomes
// without inspecting message strings.
package errs
