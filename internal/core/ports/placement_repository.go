package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"
)

// PlacementRepository defines the persistence contract for placement
// records, the join entities tying an order's weight to a specific pile.
type PlacementRepository interface {
	// Add persists a new placement record.
	Add(ctx context.Context, placement *warehouse.Placement) error

	// GetByOrderID retrieves all outstanding placements for an order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) ([]*warehouse.Placement, error)

	// Delete removes a released placement record.
	Delete(ctx context.Context, id kernel.UUID) error
}
