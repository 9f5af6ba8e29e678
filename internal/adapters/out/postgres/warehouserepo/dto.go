// Package warehouserepo provides data transfer objects and mapping
// functions for warehouse persistence. The warehouse aggregate spans three
// tables (warehouses, sections, piles) that are always loaded and saved
// together.
package warehouserepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// WarehouseDTO represents the database structure for persisting warehouse
// aggregates.
type WarehouseDTO struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Name          string       `gorm:"type:varchar(255);not null"`
	City          string       `gorm:"type:varchar(255);not null"`
	Address       string       `gorm:"type:varchar(255);not null"`
	TotalCapacity int          `gorm:"type:int;not null"`
	CurrentLoad   int          `gorm:"type:int;not null"`
	Sections      []SectionDTO `gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "warehouses".
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// SectionDTO represents the database structure for persisting sections.
type SectionDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	WarehouseID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
	SectionType   string    `gorm:"type:varchar(32);not null"`
	TotalCapacity int       `gorm:"type:int;not null"`
	CurrentLoad   int       `gorm:"type:int;not null"`
	Piles         []PileDTO `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "sections".
func (SectionDTO) TableName() string {
	return "sections"
}

// PileDTO represents the database structure for persisting piles.
type PileDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	SectionID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
	PileType      string    `gorm:"type:varchar(32);not null"`
	TotalCapacity int       `gorm:"type:int;not null"`
	CurrentLoad   int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming to use "piles".
func (PileDTO) TableName() string {
	return "piles"
}

// fromDomain converts a warehouse aggregate to its database representation,
// including the full section and pile tree.
func fromDomain(aggregate *warehouse.Warehouse) WarehouseDTO {
	warehouseID := aggregate.ID().Bytes()
	sections := make([]SectionDTO, 0, len(aggregate.Sections()))

	for _, section := range aggregate.Sections() {
		sectionID := section.ID().Bytes()
		piles := make([]PileDTO, 0, len(section.Piles()))

		for _, pile := range section.Piles() {
			piles = append(piles, PileDTO{
				ID:            pile.ID().Bytes(),
				SectionID:     sectionID,
				Name:          pile.Name(),
				PileType:      pile.Type().String(),
				TotalCapacity: pile.Capacity().Total(),
				CurrentLoad:   pile.Capacity().Current(),
			})
		}

		sections = append(sections, SectionDTO{
			ID:            sectionID,
			WarehouseID:   warehouseID,
			Name:          section.Name(),
			SectionType:   section.Type().String(),
			TotalCapacity: section.Capacity().Total(),
			CurrentLoad:   section.Capacity().Current(),
			Piles:         piles,
		})
	}

	return WarehouseDTO{
		ID:            warehouseID,
		Name:          aggregate.Name(),
		City:          aggregate.City(),
		Address:       aggregate.Address(),
		TotalCapacity: aggregate.Capacity().Total(),
		CurrentLoad:   aggregate.Capacity().Current(),
		Sections:      sections,
	}
}

// toDomain converts a database DTO to a warehouse aggregate. Capacity
// invariants are re-validated at every level, so corrupted rows fail here.
func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	sections := make([]*warehouse.Section, 0, len(dto.Sections))
	for _, sectionDTO := range dto.Sections {
		section, err := sectionToDomain(sectionDTO)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreWarehouse(
		id, dto.Name, dto.City, dto.Address,
		dto.TotalCapacity, dto.CurrentLoad, sections)
}

func sectionToDomain(dto SectionDTO) (*warehouse.Section, error) {
	piles := make([]*warehouse.Pile, 0, len(dto.Piles))
	for _, pileDTO := range dto.Piles {
		pile, err := pileToDomain(pileDTO)
		if err != nil {
			return nil, err
		}
		piles = append(piles, pile)
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sectionType, err := warehouse.SectionTypeFromString(dto.SectionType)
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreSection(
		id, dto.Name, sectionType, dto.TotalCapacity, dto.CurrentLoad, piles)
}

func pileToDomain(dto PileDTO) (*warehouse.Pile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	pileType, err := warehouse.PileTypeFromString(dto.PileType)
	if err != nil {
		return nil, err
	}

	return warehouse.RestorePile(id, dto.Name, pileType, dto.TotalCapacity, dto.CurrentLoad)
}
