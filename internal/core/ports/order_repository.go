// Package ports defines repository and gateway interfaces for the vendor
// order-management core. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders enter the store through the pushed-order feed and are mutated only
// by status transitions.
type OrderRepository interface {
	// Add persists a new order aggregate accepted from the upstream feed.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status transition on an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Exists reports whether an order with the given identifier is already
	// stored. Used by feed synchronisation to skip known orders.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// GetAllActiveByOutlet retrieves the outlet's orders that are not yet in
	// a terminal status, i.e. the vendor's working queue.
	GetAllActiveByOutlet(ctx context.Context, outletID kernel.UUID) ([]*order.Order, error)
}
