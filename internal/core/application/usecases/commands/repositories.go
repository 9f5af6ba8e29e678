// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WarehouseRepoFactory provides access to the warehouse repository
	// within a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PlacementRepoFactory provides access to the placement repository
	// within a transaction.
	PlacementRepoFactory interface {
		PlacementRepository() ports.PlacementRepository
	}

	// ManagerRepoFactory provides access to the manager repository within
	// a transaction.
	ManagerRepoFactory interface {
		ManagerRepository() ports.ManagerRepository
	}

	// AuditRepoFactory provides access to the audit repository within a
	// transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// WarehouseUoW manages transactions for warehouse-only operations:
	// creating warehouses, sections and piles.
	WarehouseUoW interface {
		TxManager
		WarehouseRepoFactory
	}

	// WarehouseUoWFactory creates new warehouse unit of work instances.
	WarehouseUoWFactory interface {
		Create() WarehouseUoW
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

	// FulfillmentUoW manages transactions that span orders, warehouses,
	// placements and the audit trail. Used by placement and status-change
	// commands, which must mutate all of them atomically.
	FulfillmentUoW interface {
		TxManager
		WarehouseRepoFactory
		OrderRepoFactory
		PlacementRepoFactory
		ManagerRepoFactory
		AuditRepoFactory
	}

	// FulfillmentUoWFactory creates new cross-aggregate unit of work
	// instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}
)
