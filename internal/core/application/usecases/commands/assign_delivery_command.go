package commands

import (
	"errors"

	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/core/domain/model/order"
	"railmeals/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand completes a deferred status transition by binding a
// delivery person to it. This is the second half of the two-step flow for
// courier-attributed targets: the operator requested the transition, the
// selection step collected a courier, and this command pushes and persists
// both together.
//
// Example:
//
//	cmd, err := NewAssignDeliveryCommand(orderID, deliveryPersonID, order.OutForDelivery)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	deliveryPersonID kernel.UUID
	target           order.Status

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a command binding a delivery person to a
// deferred transition. The target must be courier-attributed; other targets
// belong to the immediate path.
func NewAssignDeliveryCommand(
	orderID kernel.UUID,
	deliveryPersonID kernel.UUID,
	target order.Status,
) (AssignDeliveryCommand, error) {
	cmd := AssignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDeliveryPersonID(deliveryPersonID),
		cmd.setTarget(target),
	); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// OrderID returns the order being dispatched.
func (c AssignDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryPersonID returns the selected courier.
func (c AssignDeliveryCommand) DeliveryPersonID() kernel.UUID {
	return c.deliveryPersonID
}

// Target returns the courier-attributed target status.
func (c AssignDeliveryCommand) Target() order.Status {
	return c.target
}

func (c *AssignDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignDeliveryCommand) setDeliveryPersonID(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}
	c.deliveryPersonID = deliveryPersonID
	return nil
}

func (c *AssignDeliveryCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if !target.RequiresCourier() {
		return order.ErrTargetDoesNotRequireCourier
	}
	c.target = target
	return nil
}
