// Package order provides domain entities and business logic for the vendor
// order-status workflow. It implements the Order aggregate root with lifecycle
// management, courier attribution, and display classification.
//
// The package includes:
//   - Order: the aggregate root managing identity, line items, and lifecycle
//   - Status: a state machine enforcing valid status transitions
//   - Group: the display classifier mapping statuses onto dashboard tabs
//   - Item: a line-item value object with money-safe price arithmetic
//   - PendingTransition: a deferred transition awaiting courier selection
//
// Key business rules:
//   - Status follows the workflow Preparing -> Prepared -> OutForDelivery and
//     then one of Delivered, PartiallyDelivered, or Undelivered; Cancelled is
//     reachable from Preparing and Prepared only
//   - Delivered, PartiallyDelivered, Undelivered, and Cancelled are terminal
//   - A delivery person is attached exactly when the order passed through
//     dispatch; courier-attributed transitions set status and assignment together
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
