package commands

import (
	"errors"

	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/core/domain/model/order"
	"railmeals/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)

	// ErrCourierSelectionRequired is returned when the requested target status
	// carries courier attribution. The transition does not commit here: the
	// operator must pick a delivery person and submit an assignment instead,
	// because the upstream push needs the courier's contact details.
	ErrCourierSelectionRequired = errors.New(
		"target status requires selecting a delivery person; submit an assignment instead",
	)
)

// ChangeOrderStatusCommand requests the immediate status-change path for an
// order: targets that carry no courier attribution (Prepared, Undelivered,
// Cancelled). The handler pushes the change upstream first and persists
// locally only after upstream acknowledges.
//
// Courier-attributed targets (OutForDelivery, Delivered, PartiallyDelivered)
// are rejected at construction with ErrCourierSelectionRequired; they follow
// the deferred path through AssignDeliveryCommand.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(orderID, order.Cancelled)
//	if errors.Is(err, ErrCourierSelectionRequired) {
//	    // open the delivery-person selection step instead
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command for the immediate transition
// path. Validates the order ID, the target status, and that the target does
// not require courier selection.
func NewChangeOrderStatusCommand(orderID kernel.UUID, target order.Status) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order whose status should change.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested target status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target.RequiresCourier() {
		return ErrCourierSelectionRequired
	}
	c.target = target
	return nil
}
