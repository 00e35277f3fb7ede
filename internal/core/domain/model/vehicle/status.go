package vehicle

import (
	"fmt"

	"fleettrip/internal/pkg/errs"
)

// Status represents the operational state of a vehicle.
//
// Like the driver status, this is a cached signal: the allocation engine
// sets it to OnTrip when a trip binds the vehicle and back to Idle when the
// holding trip reaches a terminal state. Maintenance is set by direct status
// patches, which the engine gates with the active-trip check.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Idle means the vehicle can be bound to a new trip.
	Idle

	// OnTrip means an active trip currently holds the vehicle.
	OnTrip

	// Maintenance means the vehicle is out of rotation for servicing.
	Maintenance
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "unknown",
		Idle:        "idle",
		OnTrip:      "on_trip",
		Maintenance: "maintenance",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Idle:        "idle",
		OnTrip:      "on_trip",
		Maintenance: "maintenance",
	}
}

// StatusFromString parses a vehicle status from its wire representation.
// Returns an error for anything other than "idle", "on_trip", "maintenance".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid vehicle status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid vehicle status", s))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
