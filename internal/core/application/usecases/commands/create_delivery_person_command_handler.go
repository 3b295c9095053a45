package commands

import (
	"context"

	"railmeals/internal/core/domain/model/roster"
)

// CreateDeliveryPersonCommandHandler registers couriers on the roster.
type CreateDeliveryPersonCommandHandler struct {
	uowFactory RosterUoWFactory
}

// NewCreateDeliveryPersonCommandHandler creates a handler for roster registration.
func NewCreateDeliveryPersonCommandHandler(uowFactory RosterUoWFactory) CreateDeliveryPersonCommandHandler {
	return CreateDeliveryPersonCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the command, builds the roster aggregate, and persists it.
func (h CreateDeliveryPersonCommandHandler) Handle(ctx context.Context, command CreateDeliveryPersonCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	dp, err := roster.NewDeliveryPerson(
		command.DeliveryPersonID(),
		command.OutletID(),
		command.Name(),
		command.Phone(),
		command.DocumentExpiry(),
		command.ProfileImageURL(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryPersonRepository().Add(ctx, dp); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
