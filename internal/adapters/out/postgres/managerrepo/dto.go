// Package managerrepo provides data transfer objects and mapping functions
// for manager persistence.
package managerrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/manager"

	"github.com/google/uuid"
)

// ManagerDTO represents the database structure for persisting managers.
type ManagerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	WarehouseID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName overrides GORM's default naming to use "managers".
func (ManagerDTO) TableName() string {
	return "managers"
}

// fromDomain converts a manager to its database representation.
func fromDomain(aggregate *manager.Manager) ManagerDTO {
	return ManagerDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		WarehouseID: aggregate.WarehouseID().Bytes(),
	}
}

// toDomain converts a database DTO to a manager.
func toDomain(dto ManagerDTO) (*manager.Manager, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	return manager.RestoreManager(id, dto.Name, warehouseID)
}
