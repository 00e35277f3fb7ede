// Package kernel provides core domain primitives for the fleet trip system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Quantity: A value object for non-negative amounts measured in tons
//   - GeoPoint: A value object for geographic coordinates of a mill
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
