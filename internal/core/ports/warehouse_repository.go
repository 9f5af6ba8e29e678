package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouse
// aggregates, including their full section and pile trees.
type WarehouseRepository interface {
	// Add persists a new warehouse aggregate with its sections and piles.
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Update persists changes to an existing warehouse aggregate, including
	// load counters at every level.
	Update(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Get retrieves a warehouse aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)

	// GetForUpdate retrieves a warehouse with its row locked for the
	// duration of the surrounding transaction. Placement and release must
	// use this to serialize concurrent load changes on the same warehouse.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)

	// GetBySectionID resolves the warehouse that owns the given section.
	GetBySectionID(ctx context.Context, sectionID kernel.UUID) (*warehouse.Warehouse, error)

	// GetAll retrieves every warehouse without row locks.
	GetAll(ctx context.Context) ([]*warehouse.Warehouse, error)
}
