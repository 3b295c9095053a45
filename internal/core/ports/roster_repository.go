package ports

import (
	"context"
	"time"

	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/core/domain/model/roster"
)

// DeliveryPersonRepository defines the persistence contract for the outlet's
// delivery-staff roster. Entries are reference data: the order workflow reads
// them for courier attribution and only touches the delivery counter.
type DeliveryPersonRepository interface {
	// Add registers a new delivery person on the roster.
	Add(ctx context.Context, aggregate *roster.DeliveryPerson) error

	// Update persists changes to an existing roster entry.
	Update(ctx context.Context, aggregate *roster.DeliveryPerson) error

	// Get retrieves a roster entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*roster.DeliveryPerson, error)

	// GetAllByOutlet retrieves the complete roster for an outlet.
	GetAllByOutlet(ctx context.Context, outletID kernel.UUID) ([]*roster.DeliveryPerson, error)

	// GetAllWithDocumentsExpiringBefore retrieves roster entries whose
	// identity documents expire before the given instant. Used by the daily
	// compliance sweep.
	GetAllWithDocumentsExpiringBefore(ctx context.Context, deadline time.Time) ([]*roster.DeliveryPerson, error)
}
