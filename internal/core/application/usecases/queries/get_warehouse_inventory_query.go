// Package queries contains read-only operations over the persistence
// layer. Query handlers bypass the aggregates and read with raw SQL, the
// read side of the CQRS split.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetWarehouseInventoryQueryIsNotConstructed = errors.New(
	"GetWarehouseInventoryQuery must be created via NewGetWarehouseInventoryQuery constructor",
)

// GetWarehouseInventoryQuery retrieves the full containment tree of one
// warehouse with per-level capacity usage.
type GetWarehouseInventoryQuery struct {
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWarehouseInventoryQuery creates a query for a warehouse's inventory.
func NewGetWarehouseInventoryQuery(warehouseID kernel.UUID) (GetWarehouseInventoryQuery, error) {
	if err := warehouseID.Validate(); err != nil {
		return GetWarehouseInventoryQuery{}, err
	}

	return GetWarehouseInventoryQuery{
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWarehouseInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetWarehouseInventoryQueryIsNotConstructed)
}

// WarehouseID returns the warehouse being inspected.
func (q GetWarehouseInventoryQuery) WarehouseID() kernel.UUID {
	return q.warehouseID
}

// PileInventory is the capacity usage of a single pile.
type PileInventory struct {
	ID            kernel.UUID
	Name          string
	PileType      string
	TotalCapacity int
	CurrentLoad   int
}

// SectionInventory is the capacity usage of a section and its piles.
type SectionInventory struct {
	ID            kernel.UUID
	Name          string
	SectionType   string
	TotalCapacity int
	CurrentLoad   int
	Piles         []PileInventory
}

// GetWarehouseInventoryQueryResponse is the full inventory snapshot of a
// warehouse.
type GetWarehouseInventoryQueryResponse struct {
	ID            kernel.UUID
	Name          string
	City          string
	Address       string
	TotalCapacity int
	CurrentLoad   int
	Sections      []SectionInventory
}
