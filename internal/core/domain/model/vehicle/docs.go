// Package vehicle provides the Vehicle aggregate for fleet management.
//
// The package includes:
//   - Vehicle: The aggregate root holding vehicle identity, capacity, and state
//   - Status: The vehicle state enum (idle, on_trip, maintenance)
//
// Key business rules:
//   - Vehicles must have a unique plate number, a type, and a positive capacity
//   - New vehicles start in the idle status
//   - Capacity bounds the total planned collection of any trip the vehicle serves
//   - The optional driver relation is a weak reference, not ownership
package vehicle
