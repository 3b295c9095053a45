package commands

import (
	"errors"
	"time"

	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/pkg/errs"
	"railmeals/internal/pkg/guard"
)

var ErrCreateDeliveryPersonCommandIsNotConstructed = errors.New(
	"CreateDeliveryPersonCommand must be created via NewCreateDeliveryPersonCommand constructor",
)

// CreateDeliveryPersonCommand registers a new courier on the outlet's roster.
// Document expiry must lie in the future at registration time; couriers with
// expired papers cannot be dispatched.
type CreateDeliveryPersonCommand struct { //nolint:recvcheck //using for validation
	deliveryPersonID kernel.UUID
	outletID         kernel.UUID
	name             string
	phone            kernel.Phone
	documentExpiry   time.Time
	profileImageURL  string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryPersonCommand creates a roster registration command.
func NewCreateDeliveryPersonCommand(
	deliveryPersonID kernel.UUID,
	outletID kernel.UUID,
	name string,
	phone kernel.Phone,
	documentExpiry time.Time,
	profileImageURL string,
) (CreateDeliveryPersonCommand, error) {
	cmd := CreateDeliveryPersonCommand{
		documentExpiry:  documentExpiry,
		profileImageURL: profileImageURL,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryPersonID(deliveryPersonID),
		cmd.setOutletID(outletID),
		cmd.setName(name),
		cmd.setPhone(phone),
	); err != nil {
		return CreateDeliveryPersonCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryPersonCommandIsNotConstructed)
}

// DeliveryPersonID returns the identifier for the new roster entry.
func (c CreateDeliveryPersonCommand) DeliveryPersonID() kernel.UUID {
	return c.deliveryPersonID
}

// OutletID returns the outlet the courier will work for.
func (c CreateDeliveryPersonCommand) OutletID() kernel.UUID {
	return c.outletID
}

// Name returns the courier's display name.
func (c CreateDeliveryPersonCommand) Name() string {
	return c.name
}

// Phone returns the courier's contact number.
func (c CreateDeliveryPersonCommand) Phone() kernel.Phone {
	return c.phone
}

// DocumentExpiry returns the expiry date of the courier's identity documents.
func (c CreateDeliveryPersonCommand) DocumentExpiry() time.Time {
	return c.documentExpiry
}

// ProfileImageURL returns the optional profile image location.
func (c CreateDeliveryPersonCommand) ProfileImageURL() string {
	return c.profileImageURL
}

func (c *CreateDeliveryPersonCommand) setDeliveryPersonID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryPersonID = id
	return nil
}

func (c *CreateDeliveryPersonCommand) setOutletID(outletID kernel.UUID) error {
	if err := outletID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("outletID", err)
	}
	c.outletID = outletID
	return nil
}

func (c *CreateDeliveryPersonCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateDeliveryPersonCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}
