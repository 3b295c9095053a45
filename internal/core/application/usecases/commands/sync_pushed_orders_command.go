package commands

import (
	"errors"

	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/pkg/guard"
)

var ErrSyncPushedOrdersCommandIsNotConstructed = errors.New(
	"SyncPushedOrdersCommand must be created via NewSyncPushedOrdersCommand constructor",
)

// SyncPushedOrdersCommand pulls the upstream feed of pushed orders for an
// outlet and stores the ones not seen before. This is the polling substitute
// for a real-time channel: the working queue is only as fresh as the last
// sync run.
type SyncPushedOrdersCommand struct { //nolint:recvcheck //using for validation
	outletID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSyncPushedOrdersCommand creates a sync command for one outlet.
func NewSyncPushedOrdersCommand(outletID kernel.UUID) (SyncPushedOrdersCommand, error) {
	cmd := SyncPushedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOutletID(outletID); err != nil {
		return SyncPushedOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SyncPushedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSyncPushedOrdersCommandIsNotConstructed)
}

// OutletID returns the outlet whose queue should be synchronised.
func (c SyncPushedOrdersCommand) OutletID() kernel.UUID {
	return c.outletID
}

func (c *SyncPushedOrdersCommand) setOutletID(outletID kernel.UUID) error {
	if err := outletID.Validate(); err != nil {
		return err
	}
	c.outletID = outletID
	return nil
}
