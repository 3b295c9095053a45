package order

import (
	"fmt"

	"railmeals/internal/pkg/errs"
)

// RemarkLawAndOrder is the audit annotation the upstream system requires on
// pushes for non-delivery outcomes (undelivered and cancelled orders).
const RemarkLawAndOrder = "LAW_N_ORDER"

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders follow the vendor workflow.
//
// State transitions:
//
//	Preparing ──> Prepared ──> OutForDelivery ──┬──> Delivered
//	    │             │                         ├──> PartiallyDelivered
//	    │             │                         └──> Undelivered
//	    └─────────────┴──> Cancelled
//
// Preparing may also move straight to OutForDelivery when the operator
// dispatches without marking the order prepared first. Delivered,
// PartiallyDelivered, Undelivered and Cancelled are terminal.
//
// Status is a value object that validates transitions and provides both the
// raw upstream wire codes and human-readable labels.
type Status int

const (
	// Unknown represents an unrecognized or undefined status. The upstream
	// system owns the enumeration and may introduce codes we do not know;
	// those classify as Unknown instead of failing.
	Unknown Status = iota

	// Preparing is the initial status set by the upstream system when the
	// order is pushed into the vendor's queue.
	Preparing

	// Prepared indicates the kitchen has finished the order and it is
	// awaiting dispatch.
	Prepared

	// OutForDelivery indicates a delivery person has been assigned and is
	// carrying the order to the customer.
	OutForDelivery

	// Delivered indicates the full order reached the customer. Terminal.
	Delivered

	// PartiallyDelivered indicates only part of the order reached the
	// customer. Terminal.
	PartiallyDelivered

	// Undelivered indicates dispatch happened but the order could not be
	// handed over. Terminal.
	Undelivered

	// Cancelled indicates the order was withdrawn before dispatch. Terminal.
	Cancelled
)

// getStatusCodes maps each status to its raw upstream wire code.
func getStatusCodes() map[Status]string {
	return map[Status]string{
		Preparing:          "ORDER_PREPARING",
		Prepared:           "ORDER_PREPARED",
		OutForDelivery:     "ORDER_OUT_FOR_DELIVERY",
		Delivered:          "ORDER_DELIVERED",
		PartiallyDelivered: "ORDER_PARTIALLY_DELIVERED",
		Undelivered:        "ORDER_UNDELIVERED",
		Cancelled:          "ORDER_CANCELLED",
	}
}

// getStatusLabels maps each status to its human-readable display label.
func getStatusLabels() map[Status]string {
	return map[Status]string{
		Preparing:          "Preparing",
		Prepared:           "Prepared",
		OutForDelivery:     "Out for delivery",
		Delivered:          "Delivered",
		PartiallyDelivered: "Partially delivered",
		Undelivered:        "Undelivered",
		Cancelled:          "Cancelled",
	}
}

// getTransitions maps each status to the set of statuses it may move to.
// Statuses absent from the map are terminal.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Preparing:      {Prepared, OutForDelivery, Cancelled},
		Prepared:       {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered, PartiallyDelivered, Undelivered},
	}
}

// StatusFromCode maps a raw upstream status code to a Status.
// The function is total: unrecognized codes map to Unknown rather than error,
// because the upstream system is the source of truth for the enumeration and
// may introduce new codes at any time.
func StatusFromCode(code string) Status {
	for status, c := range getStatusCodes() {
		if c == code {
			return status
		}
	}
	return Unknown
}

// Code returns the raw wire code used in upstream push payloads.
// Returns an empty string for Unknown.
func (s Status) Code() string {
	return getStatusCodes()[s]
}

// String returns the human-readable label for the status.
// Safe to call on any value; unrecognized values render as "Unknown".
func (s Status) String() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}

// Validate checks that the Status is one of the known enumeration values.
// Unknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	if s.Validate() != nil {
		return false
	}
	_, ok := getTransitions()[s]
	return !ok
}

// RequiresCourier reports whether an upstream push to this status must carry
// delivery-person contact details. These are the targets whose transition is
// deferred until the operator selects a courier.
func (s Status) RequiresCourier() bool {
	return s == OutForDelivery || s == Delivered || s == PartiallyDelivered
}

// RemarkCode returns the audit remark the upstream push must carry for this
// target status, or an empty string when no remark is required.
func (s Status) RemarkCode() string {
	if s == Undelivered || s == Cancelled {
		return RemarkLawAndOrder
	}
	return ""
}

// ValidateTransition checks whether the status may move to target without
// performing the transition. Useful for pre-validating an operator request
// before the upstream push is attempted.
func (s Status) ValidateTransition(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("cannot move from %s to %s", s, target))
}

// TransitionTo transitions the status to target.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, error) when the move is not allowed from the current status
//
// This method is used by Order.MarkStatus and Order.Dispatch to enforce the
// workflow. Terminal statuses reject every target.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.ValidateTransition(target); err != nil {
		return 0, err
	}
	return target, nil
}

// ValidateCourierAttachment validates the consistency between a status and
// courier assignment. A courier is attached exactly when the order reached its
// status through dispatch.
//
// Business rules:
//   - Preparing, Prepared and Cancelled orders must not have a courier
//   - OutForDelivery, Delivered, PartiallyDelivered and Undelivered orders
//     must have one, since each is only reachable through dispatch
func (s Status) ValidateCourierAttachment(hasCourier bool) error {
	needsCourier := s == OutForDelivery || s == Delivered || s == PartiallyDelivered || s == Undelivered

	if hasCourier && !needsCourier {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a delivery person", s))
	}
	if !hasCourier && needsCourier {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no delivery person", s))
	}
	return nil
}
