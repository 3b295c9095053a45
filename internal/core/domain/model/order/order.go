package order

import (
	"errors"
	"fmt"
	"time"

	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrCourierRequiredForStatus is returned when a courier-attributed target
	// status is requested without going through Dispatch.
	ErrCourierRequiredForStatus = errors.New("target status requires a delivery person; use Dispatch")

	// ErrCourierNotAllowedForStatus is returned when Dispatch is called with a
	// target that does not carry courier attribution.
	ErrCourierNotAllowedForStatus = errors.New("target status does not take a delivery person; use MarkStatus")
)

// Order is the aggregate root for a customer order in the vendor's queue.
// Orders are created by the upstream ordering system and enter this service
// through the pushed-order feed; the workflow mutates them only through status
// transitions.
//
// Order maintains these invariants:
//   - identifiers, train details, customer, and at least one line item are valid
//   - status transitions follow the workflow defined on Status
//   - a delivery person is attached exactly when the current status was
//     reached through Dispatch
//   - terminal statuses permit no further mutation
type Order struct {
	id       kernel.UUID
	outletID kernel.UUID

	// trainNumber and stationCode locate the delivery: the train the customer
	// is on and the station where the outlet hands the order over.
	trainNumber string
	stationCode string

	status           Status
	deliveryPersonID *kernel.UUID

	items    []Item
	customer Customer

	createdAt           time.Time
	scheduledDeliveryAt time.Time

	isConstructed bool
}

// NewOrder creates an Order freshly accepted from the upstream feed.
// The initial status is always Preparing; the upstream system sets it at order
// creation and this service never creates orders in any other state.
//
// Returns a validation error if any identifier, the train details, the item
// list, or the customer is invalid.
func NewOrder(
	id kernel.UUID,
	outletID kernel.UUID,
	trainNumber string,
	stationCode string,
	items []Item,
	customer Customer,
	createdAt time.Time,
	scheduledDeliveryAt time.Time,
) (*Order, error) {
	o := &Order{
		status:              Preparing,
		createdAt:           createdAt,
		scheduledDeliveryAt: scheduledDeliveryAt,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOutletID(outletID),
		o.setTrainDetails(trainNumber, stationCode),
		o.setItems(items),
		o.setCustomer(customer),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running the
// creation workflow. The status/courier pairing is still validated so corrupt
// rows cannot produce an aggregate that violates the dispatch invariant.
func RestoreOrder(
	id kernel.UUID,
	outletID kernel.UUID,
	trainNumber string,
	stationCode string,
	status Status,
	deliveryPersonID *kernel.UUID,
	items []Item,
	customer Customer,
	createdAt time.Time,
	scheduledDeliveryAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:           createdAt,
		scheduledDeliveryAt: scheduledDeliveryAt,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOutletID(outletID),
		o.setTrainDetails(trainNumber, stationCode),
		o.setItems(items),
		o.setCustomer(customer),
	); err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCourierAttachment(deliveryPersonID != nil); err != nil {
		return nil, err
	}
	if deliveryPersonID != nil {
		if err := deliveryPersonID.Validate(); err != nil {
			return nil, err
		}
		id := *deliveryPersonID
		o.deliveryPersonID = &id
	}
	o.status = status

	return o, nil
}

// Validate ensures the Order was constructed through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OutletID returns the outlet the order belongs to.
func (o *Order) OutletID() kernel.UUID {
	return o.outletID
}

// TrainNumber returns the number of the train the customer travels on.
func (o *Order) TrainNumber() string {
	return o.trainNumber
}

// StationCode returns the code of the station where delivery happens.
func (o *Order) StationCode() string {
	return o.stationCode
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryPerson returns the assigned delivery person's ID, or nil when the
// order has not been dispatched.
func (o *Order) DeliveryPerson() *kernel.UUID {
	return o.deliveryPersonID
}

// Items returns the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Customer returns the customer contact for display.
func (o *Order) Customer() Customer {
	return o.customer
}

// CreatedAt returns the upstream order creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ScheduledDeliveryAt returns the planned hand-over time at the station.
func (o *Order) ScheduledDeliveryAt() time.Time {
	return o.scheduledDeliveryAt
}

// Total returns the sum of all line totals.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// MarkStatus transitions the order to a target that carries no courier
// attribution: Prepared, Undelivered, or Cancelled.
//
// The caller must have completed the upstream push before invoking this
// method; the aggregate only enforces that the transition itself is legal.
// An Undelivered order keeps the delivery person attached during dispatch.
//
// Returns ErrCourierRequiredForStatus when the target needs a courier.
func (o *Order) MarkStatus(target Status) error {
	if target.RequiresCourier() {
		return ErrCourierRequiredForStatus
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Dispatch transitions the order to a courier-attributed target
// (OutForDelivery, Delivered, or PartiallyDelivered), attaching the delivery
// person in the same operation. Assignment and status change are atomic from
// the caller's perspective: both happen, or neither does.
//
// Returns ErrCourierNotAllowedForStatus when the target does not carry
// courier attribution, or a transition error when the move is illegal.
func (o *Order) Dispatch(deliveryPersonID kernel.UUID, target Status) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}
	if !target.RequiresCourier() {
		return ErrCourierNotAllowedForStatus
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryPersonID = &deliveryPersonID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOutletID(outletID kernel.UUID) error {
	if err := outletID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("outletID", err)
	}
	o.outletID = outletID
	return nil
}

func (o *Order) setTrainDetails(trainNumber, stationCode string) error {
	if trainNumber == "" {
		return errs.NewValueIsRequiredError("trainNumber")
	}
	if stationCode == "" {
		return errs.NewValueIsRequiredError("stationCode")
	}
	o.trainNumber = trainNumber
	o.stationCode = stationCode
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("item %d: %w", i, err))
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}
