package commands

import (
	"context"

	"railmeals/internal/core/ports"
)

// ChangeOrderStatusCommandHandler executes the immediate status-change path.
// The upstream push is the authoritative gate: it must succeed before the
// local record is touched. A failed push leaves the order in its prior status
// with nothing to roll back; the operator retries manually.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, pusher, gate)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Cancelled)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ports.ErrPushRejected):
//	    // upstream refused; order unchanged
//	case errors.Is(err, ErrTransitionInFlight):
//	    // a previous request for this order has not settled yet
//	case err != nil:
//	    // transport or persistence failure
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	pusher     ports.StatusPusher
	gate       *TransitionGate
}

// NewChangeOrderStatusCommandHandler creates a handler for immediate status changes.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	pusher ports.StatusPusher,
	gate *TransitionGate,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		pusher:     pusher,
		gate:       gate,
	}
}

// Handle processes the status change: load the order, verify the transition
// is legal, push upstream, and only then persist the new status. The
// per-order gate rejects a second request while one is unresolved.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, command ChangeOrderStatusCommand) error {
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

	o, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	// Reject illegal transitions before bothering the upstream system.
	if err = o.Status().ValidateTransition(command.Target()); err != nil {
		return err
	}

	if err = h.pusher.Push(ctx, ports.NewPushRequest(o, command.Target(), nil)); err != nil {
		return err
	}

	if err = o.MarkStatus(command.Target()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
