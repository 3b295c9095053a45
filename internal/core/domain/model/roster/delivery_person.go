// Package roster provides the delivery-staff reference model for an outlet.
// Roster entries are read-mostly: they are registered once, kept current by
// the vendor, and consumed by the order workflow when attributing dispatches.
package roster

import (
	"errors"
	"time"

	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/pkg/errs"
	"railmeals/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when creating a delivery person without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDeliveryPersonIsNotConstructed is returned when using an improperly
	// initialized DeliveryPerson.
	ErrDeliveryPersonIsNotConstructed = errors.New(
		"DeliveryPerson must be created via NewDeliveryPerson or RestoreDeliveryPerson")
)

// DeliveryPerson represents a courier on an outlet's roster who is eligible
// for assignment to orders. The order workflow reads roster entries for their
// contact details, forwarded upstream as the attributed courier, and never
// mutates them beyond the delivery counter.
//
// Business rules:
//   - must have a valid ID, outlet, non-empty name, and valid phone
//   - identity documents carry an expiry date; couriers with expired documents
//     must not be suggested for new dispatches
type DeliveryPerson struct {
	id       kernel.UUID
	outletID kernel.UUID
	name     string
	phone    kernel.Phone

	documentExpiry  time.Time
	totalDeliveries int
	profileImageURL string

	guard guard.ConstructorGuard
}

// NewDeliveryPerson registers a new courier on the outlet's roster.
// The delivery counter starts at zero.
func NewDeliveryPerson(
	id kernel.UUID,
	outletID kernel.UUID,
	name string,
	phone kernel.Phone,
	documentExpiry time.Time,
	profileImageURL string,
) (*DeliveryPerson, error) {
	return RestoreDeliveryPerson(id, outletID, name, phone, documentExpiry, 0, profileImageURL)
}

// RestoreDeliveryPerson reconstructs a roster entry from persistence.
func RestoreDeliveryPerson(
	id kernel.UUID,
	outletID kernel.UUID,
	name string,
	phone kernel.Phone,
	documentExpiry time.Time,
	totalDeliveries int,
	profileImageURL string,
) (*DeliveryPerson, error) {
	dp := &DeliveryPerson{
		documentExpiry:  documentExpiry,
		profileImageURL: profileImageURL,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dp.setID(id),
		dp.setOutletID(outletID),
		dp.setName(name),
		dp.setPhone(phone),
		dp.setTotalDeliveries(totalDeliveries),
	); err != nil {
		return nil, err
	}

	return dp, nil
}

// Validate ensures the entry was created through a constructor.
func (d *DeliveryPerson) Validate() error {
	if d == nil {
		return ErrDeliveryPersonIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryPersonIsNotConstructed)
}

// ID returns the courier's unique identifier.
func (d *DeliveryPerson) ID() kernel.UUID {
	return d.id
}

// OutletID returns the outlet the courier works for.
func (d *DeliveryPerson) OutletID() kernel.UUID {
	return d.outletID
}

// Name returns the courier's display name.
func (d *DeliveryPerson) Name() string {
	return d.name
}

// Phone returns the courier's contact number.
func (d *DeliveryPerson) Phone() kernel.Phone {
	return d.phone
}

// DocumentExpiry returns the expiry date of the courier's identity documents.
func (d *DeliveryPerson) DocumentExpiry() time.Time {
	return d.documentExpiry
}

// TotalDeliveries returns the number of deliveries completed by the courier.
func (d *DeliveryPerson) TotalDeliveries() int {
	return d.totalDeliveries
}

// ProfileImageURL returns the stored profile image location, if any.
func (d *DeliveryPerson) ProfileImageURL() string {
	return d.profileImageURL
}

// HasValidDocuments reports whether the courier's identity documents are
// valid at the given instant.
func (d *DeliveryPerson) HasValidDocuments(at time.Time) bool {
	return d.documentExpiry.After(at)
}

// RecordDelivery increments the courier's delivery counter. Called when an
// order dispatched to this courier reaches a delivered outcome.
func (d *DeliveryPerson) RecordDelivery() {
	d.totalDeliveries++
}

func (d *DeliveryPerson) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *DeliveryPerson) setOutletID(outletID kernel.UUID) error {
	if err := outletID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("outletID", err)
	}
	d.outletID = outletID
	return nil
}

func (d *DeliveryPerson) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *DeliveryPerson) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	d.phone = phone
	return nil
}

func (d *DeliveryPerson) setTotalDeliveries(total int) error {
	if total < 0 {
		return errs.NewValueIsInvalidError("totalDeliveries")
	}
	d.totalDeliveries = total
	return nil
}
