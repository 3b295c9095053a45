package order

import (
	"errors"

	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/pkg/guard"
)

var (
	// ErrPendingTransitionIsNotConstructed is returned when a PendingTransition
	// was not created via NewPendingTransition.
	ErrPendingTransitionIsNotConstructed = errors.New(
		"PendingTransition must be created via NewPendingTransition constructor")

	// ErrTargetDoesNotRequireCourier is returned when a pending transition is
	// requested for a target that commits immediately.
	ErrTargetDoesNotRequireCourier = errors.New(
		"pending transitions exist only for courier-attributed target statuses")
)

// PendingTransition is a deferred status change awaiting courier selection.
// When the operator requests a courier-attributed target (OutForDelivery,
// Delivered, PartiallyDelivered) the transition does not commit immediately:
// the upstream push needs the delivery person's contact details, so the change
// is held as an explicit value until a courier is chosen.
//
// Discarding a PendingTransition is a no-op; no partial state exists until
// the assignment command completes the push and persists the result.
type PendingTransition struct {
	orderID kernel.UUID
	target  Status

	guard guard.ConstructorGuard
}

// NewPendingTransition captures a deferred transition for the given order.
// The target must be courier-attributed and legal from the order's current
// status; illegal requests fail here, before any courier is selected or any
// push is attempted.
func NewPendingTransition(o *Order, target Status) (PendingTransition, error) {
	if err := o.Validate(); err != nil {
		return PendingTransition{}, err
	}
	if !target.RequiresCourier() {
		return PendingTransition{}, ErrTargetDoesNotRequireCourier
	}
	if err := o.Status().ValidateTransition(target); err != nil {
		return PendingTransition{}, err
	}

	return PendingTransition{
		orderID: o.ID(),
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order the transition belongs to.
func (p PendingTransition) OrderID() kernel.UUID {
	return p.orderID
}

// Target returns the deferred target status.
func (p PendingTransition) Target() Status {
	return p.target
}

// Validate ensures the value was created through the constructor.
func (p PendingTransition) Validate() error {
	return p.guard.Validate(ErrPendingTransitionIsNotConstructed)
}
