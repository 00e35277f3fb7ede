// Package trip provides domain entities and business logic for collection-trip
// management in the fleet system. It implements the Trip aggregate root with
// lifecycle management, state transitions, and planned-load accounting.
//
// The package includes:
//   - Trip: The aggregate root binding one vehicle and one driver to a set of mill pickups
//   - Collection: A line item recording the planned quantity for one mill stop
//   - Status: A state machine that enforces valid trip status transitions
//
// Key business rules:
//   - Trips must reference a valid vehicle, driver, and at least one collection
//   - Trip status follows a defined workflow: Scheduled -> InProgress -> Completed/Cancelled
//   - Terminal trips (Completed, Cancelled) accept no further transitions
//   - The vehicle and driver bindings are immutable after creation
//   - The planned total across collections is surfaced for capacity checks
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package trip
