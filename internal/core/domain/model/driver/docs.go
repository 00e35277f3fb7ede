// Package driver provides the Driver aggregate for fleet management.
//
// The package includes:
//   - Driver: The aggregate root holding driver identity and availability
//   - Status: The driver availability enum (available, on_trip, inactive)
//
// Key business rules:
//   - Drivers must have a name, license number, and phone number
//   - New drivers start in the available status
//   - The status field is a cached signal; the allocation engine keeps it
//     consistent with the set of active trips referencing the driver
package driver
