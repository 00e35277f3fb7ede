package driver

import (
	"fmt"

	"fleettrip/internal/pkg/errs"
)

// Status represents the availability state of a driver.
//
// The status field is a cached signal kept consistent with the trips that
// reference the driver: the allocation engine sets it to OnTrip when a trip
// binds the driver and back to Available when the holding trip reaches a
// terminal state. The source of truth for "is this driver busy" is the
// existence of an active trip, not this field.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available means the driver can be bound to a new trip.
	Available

	// OnTrip means an active trip currently holds the driver.
	OnTrip

	// Inactive means the driver is out of rotation (sick leave, suspended).
	// Inactive drivers cannot be bound to new trips.
	Inactive
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Available: "available",
		OnTrip:    "on_trip",
		Inactive:  "inactive",
	}
}

// getValidStatusStrings returns only valid Status values, used for validation
// and for parsing statuses arriving from persistence or external callers.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "available",
		OnTrip:    "on_trip",
		Inactive:  "inactive",
	}
}

// StatusFromString parses a driver status from its wire representation.
// Returns an error for anything other than "available", "on_trip", "inactive".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid driver status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid driver status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer; safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
