package commands

import (
	"context"

	"railmeals/internal/core/domain/model/order"
	"railmeals/internal/core/ports"
)

// AssignDeliveryCommandHandler executes the deferred transition path for
// courier-attributed targets. The push carries the courier's name and phone
// as the attributed delivery person; on success the status change and the
// assignment persist in one transaction, so from the operator's perspective
// both happen or neither does.
//
// Delivered outcomes also bump the courier's delivery counter inside the same
// transaction.
type AssignDeliveryCommandHandler struct {
	uowFactory UoWFactory
	pusher     ports.StatusPusher
	gate       *TransitionGate
}

// NewAssignDeliveryCommandHandler creates a handler for delivery assignments.
func NewAssignDeliveryCommandHandler(
	uowFactory UoWFactory,
	pusher ports.StatusPusher,
	gate *TransitionGate,
) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		pusher:     pusher,
		gate:       gate,
	}
}

// Handle processes the assignment: load the order and the selected courier,
// re-validate the deferred transition, push upstream with the courier's
// contact details, then dispatch and persist. Any failure before commit
// leaves the order and its assignment untouched.
func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, command AssignDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := h.gate.Enter(command.OrderID()); err != nil {
		return err
	}
	defer h.gate.Leave(command.OrderID())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()
	rosterRepo := uow.DeliveryPersonRepository()

	o, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	// The pending transition re-validates what the operator requested before
	// the selection step; the order may have moved meanwhile.
	pending, err := order.NewPendingTransition(o, command.Target())
	if err != nil {
		return err
	}

	courier, err := rosterRepo.Get(ctx, command.DeliveryPersonID())
	if err != nil {
		return err
	}

	if err = h.pusher.Push(ctx, ports.NewPushRequest(o, pending.Target(), courier)); err != nil {
		return err
	}

	if err = o.Dispatch(courier.ID(), pending.Target()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, o); err != nil {
		return err
	}

	if pending.Target() == order.Delivered || pending.Target() == order.PartiallyDelivered {
		courier.RecordDelivery()
		if err = rosterRepo.Update(ctx, courier); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
