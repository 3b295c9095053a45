// Package kernel provides core domain primitives shared across the vendor
// order-management model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Phone: a validated mobile-number value object used for customers and couriers
//
// These primitives enforce domain invariants at construction time. They are
// immutable and thread-safe, making them suitable for concurrent use.
package kernel
