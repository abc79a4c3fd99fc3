// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"orders/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler declares only the repositories it touches.
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

	// DeliveryTermRepoFactory provides access to the delivery term repository within a transaction.
	DeliveryTermRepoFactory interface {
		DeliveryTermRepository() ports.DeliveryTermRepository
	}

	// CatalogRepoFactory provides access to the customer and payment condition
	// repositories within a transaction.
	CatalogRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
		PaymentConditionRepository() ports.PaymentConditionRepository
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

	// CatalogUoW manages transactions for catalog lookups.
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// RegistrationUoW manages transactions for order registration, which
	// persists the aggregate and checks its catalog references.
	RegistrationUoW interface {
		TxManager
		OrderRepoFactory
		CatalogRepoFactory
	}

	// RegistrationUoWFactory creates new registration unit of work instances.
	RegistrationUoWFactory interface {
		Create() RegistrationUoW
	}

	// SchedulingUoW manages transactions for delivery scheduling, which reads
	// the order and writes its delivery term.
	SchedulingUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryTermRepoFactory
	}

	// SchedulingUoWFactory creates new scheduling unit of work instances.
	SchedulingUoWFactory interface {
		Create() SchedulingUoW
	}
)
