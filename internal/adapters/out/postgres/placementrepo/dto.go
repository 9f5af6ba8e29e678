// Package placementrepo provides data transfer objects and mapping
// functions for placement persistence. A placement row ties an order's
// weight to the exact pile holding it; rows are inserted on placement and
// deleted on release, always inside the same transaction as the load
// change.
package placementrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// PlacementDTO represents the database structure for persisting placements.
type PlacementDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	WarehouseID uuid.UUID `gorm:"type:uuid;not null;index"`
	SectionID   uuid.UUID `gorm:"type:uuid;not null"`
	PileID      uuid.UUID `gorm:"type:uuid;not null"`
	Weight      int       `gorm:"type:int;not null"`
	PlacedAt    time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "placements".
func (PlacementDTO) TableName() string {
	return "placements"
}

// fromDomain converts a placement to its database representation.
func fromDomain(placement *warehouse.Placement) PlacementDTO {
	return PlacementDTO{
		ID:          placement.ID().Bytes(),
		OrderID:     placement.OrderID().Bytes(),
		WarehouseID: placement.WarehouseID().Bytes(),
		SectionID:   placement.SectionID().Bytes(),
		PileID:      placement.PileID().Bytes(),
		Weight:      placement.Weight(),
		PlacedAt:    placement.PlacedAt(),
	}
}

// toDomain converts a database DTO to a placement.
func toDomain(dto PlacementDTO) (*warehouse.Placement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}
	sectionID, err := kernel.UUIDFromBytes(dto.SectionID[:])
	if err != nil {
		return nil, err
	}
	pileID, err := kernel.UUIDFromBytes(dto.PileID[:])
	if err != nil {
		return nil, err
	}

	return warehouse.RestorePlacement(
		id, orderID, warehouseID, sectionID, pileID, dto.Weight, dto.PlacedAt)
}
