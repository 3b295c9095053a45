// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, the upstream push gate
// where one applies, transaction management, and persistence.
package commands

import (
	"context"

	"railmeals/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RosterRepoFactory provides access to the roster repository within a transaction.
	RosterRepoFactory interface {
		DeliveryPersonRepository() ports.DeliveryPersonRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RosterUoW manages transactions for roster-only operations.
	RosterUoW interface {
		TxManager
		RosterRepoFactory
	}

	// RosterUoWFactory creates new roster unit of work instances.
	RosterUoWFactory interface {
		Create() RosterUoW
	}

	// UoW manages transactions across both order and roster aggregates.
	// Used by the assignment command, which updates an order and its
	// attributed courier together.
	UoW interface {
		TxManager
		OrderRepoFactory
		RosterRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
