// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"grouporders/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories its operation touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// CatalogRepoFactory provides access to the catalog repository within a transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// GroupOrderRepoFactory provides access to the group order repository within a transaction.
	GroupOrderRepoFactory interface {
		GroupOrderRepository() ports.GroupOrderRepository
	}

	// IntakeUoW manages transactions for order intake.
	// Intake resolves users and catalog entries and creates one order per record.
	IntakeUoW interface {
		TxManager
		UserRepoFactory
		CatalogRepoFactory
		OrderRepoFactory
	}

	// IntakeUoWFactory creates new intake unit of work instances.
	IntakeUoWFactory interface {
		Create() IntakeUoW
	}

	// GroupingUoW manages transactions spanning order and group order aggregates.
	// Used by the grouping run and by status propagation.
	GroupingUoW interface {
		TxManager
		OrderRepoFactory
		GroupOrderRepoFactory
	}

	// GroupingUoWFactory creates new grouping unit of work instances.
	GroupingUoWFactory interface {
		Create() GroupingUoW
	}

	// CatalogUoW manages transactions for catalog-only operations (seeding).
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}
)
