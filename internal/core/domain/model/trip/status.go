package trip

import (
	"fmt"

	"fleettrip/internal/pkg/errs"
)

// Status represents the lifecycle state of a trip.
//
// State transitions:
//
//	scheduled ──┬──> in_progress ──> completed
//	            │         │
//	            ├─────────┴──────> cancelled
//	            │
//	            └──────> completed (direct jump allowed)
//
// Completed and cancelled are terminal. The direct scheduled -> completed
// jump is deliberate business policy: dispatchers close out short trips
// without marking them in progress first.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Scheduled is the initial status of every trip. A scheduled trip
	// already holds its driver and vehicle.
	Scheduled

	// InProgress means the trip is underway.
	InProgress

	// Completed means the trip finished its collections. Terminal.
	Completed

	// Cancelled means the trip was called off. Terminal.
	Cancelled
)

// allowedTransitions is the trip lifecycle graph. A missing entry or an
// empty list means no outgoing transitions (terminal state).
var allowedTransitions = map[Status][]Status{
	Scheduled:  {InProgress, Completed, Cancelled},
	InProgress: {Completed, Cancelled},
	Completed:  {},
	Cancelled:  {},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Scheduled:  "scheduled",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Scheduled:  "scheduled",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses a trip status from its wire representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid trip status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid trip status", s))
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

// IsActive reports whether a trip in this status holds its driver and
// vehicle. Scheduled and in_progress trips are active.
func (s Status) IsActive() bool {
	return s == Scheduled || s == InProgress
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether s -> to is an allowed lifecycle transition.
func (s Status) CanTransitionTo(to Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// TransitionTo returns the new status after an s -> to transition, or an
// error when the lifecycle graph does not permit it.
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(to) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("transition %s -> %s is not allowed", s, to))
	}
	return to, nil
}
