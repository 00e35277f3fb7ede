package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used with errors.Is to classify failures.
var (
	// ErrObjectNotFound indicates that a referenced object does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsInvalid indicates that a supplied value is malformed or out of its domain.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsRequired indicates that a required value is missing.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsOutOfRange indicates that a value lies outside its allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrResourceConflict indicates that a resource is unavailable for the
	// requested operation, typically because an active trip holds it.
	ErrResourceConflict = errors.New("resource conflict")

	// ErrCapacityExceeded indicates that planned collections exceed the
	// bound vehicle's capacity.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// sanitize flattens multi-line values so error messages stay single-line in logs.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError is returned when an object cannot be found by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a value fails domain validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError is returned when a required value is absent.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsOutOfRangeError is returned when a value lies outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the given parameter and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max, e.Cause)
	}
	return fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ResourceConflictError is returned when a driver or vehicle cannot take part
// in the requested operation because it is held by an active trip or is not
// in the required status. The Message is the caller-facing explanation,
// e.g. "Driver is not available".
type ResourceConflictError struct {
	Message string
	Cause   error
}

// NewResourceConflictError creates a ResourceConflictError with a caller-facing message.
func NewResourceConflictError(message string) *ResourceConflictError {
	return &ResourceConflictError{Message: message}
}

// NewResourceConflictErrorWithCause creates a ResourceConflictError wrapping an underlying cause.
func NewResourceConflictErrorWithCause(message string, cause error) *ResourceConflictError {
	return &ResourceConflictError{Message: message, Cause: cause}
}

func (e *ResourceConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrResourceConflict, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrResourceConflict, e.Message)
}

func (e *ResourceConflictError) Unwrap() error {
	return ErrResourceConflict
}

// CapacityExceededError is returned when the sum of planned collections for a
// trip is greater than the bound vehicle's capacity.
type CapacityExceededError struct {
	Planned  float64
	Capacity float64
	Cause    error
}

// NewCapacityExceededError creates a CapacityExceededError with the offending totals.
func NewCapacityExceededError(planned, capacity float64) *CapacityExceededError {
	return &CapacityExceededError{Planned: planned, Capacity: capacity}
}

func (e *CapacityExceededError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: planned %v exceeds vehicle capacity %v (cause: %s)",
			ErrCapacityExceeded, e.Planned, e.Capacity, e.Cause)
	}
	return fmt.Sprintf("%s: planned %v exceeds vehicle capacity %v", ErrCapacityExceeded, e.Planned, e.Capacity)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}
