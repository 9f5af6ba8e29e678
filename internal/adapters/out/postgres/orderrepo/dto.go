// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. Orders and their line items live in two tables
// saved together; the status is stored under its wire name so the rows
// stay readable.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates.
type OrderDTO struct {
	ID                     uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Status                 string         `gorm:"type:varchar(64);not null;index"`
	SourceWarehouseID      *uuid.UUID     `gorm:"type:uuid;index"`
	DestinationWarehouseID *uuid.UUID     `gorm:"type:uuid;index"`
	Items                  []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt              time.Time      `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for persisting order line
// items.
type OrderItemDTO struct {
	OrderID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity   int             `gorm:"type:int;not null"`
	UnitWeight int             `gorm:"type:int;not null"`
	Dimensions string          `gorm:"type:varchar(64);not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))

	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    orderID,
			ProductID:  item.ProductID().Bytes(),
			Quantity:   item.Quantity(),
			UnitWeight: item.UnitWeight(),
			Dimensions: item.Dimensions(),
			UnitPrice:  item.UnitPrice(),
		})
	}

	var sourceID, destinationID *uuid.UUID
	if aggregate.SourceWarehouseID() != nil {
		raw := aggregate.SourceWarehouseID().Bytes()
		sourceID = &raw
	}
	if aggregate.DestinationWarehouseID() != nil {
		raw := aggregate.DestinationWarehouseID().Bytes()
		destinationID = &raw
	}

	return OrderDTO{
		ID:                     orderID,
		Status:                 aggregate.Status().String(),
		SourceWarehouseID:      sourceID,
		DestinationWarehouseID: destinationID,
		Items:                  items,
	}
}

// toDomain converts a database DTO to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	sourceID, err := optionalUUID(dto.SourceWarehouseID)
	if err != nil {
		return nil, err
	}
	destinationID, err := optionalUUID(dto.DestinationWarehouseID)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, status, sourceID, destinationID, items)
}

func itemToDomain(dto OrderItemDTO) (*order.OrderItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return order.NewOrderItem(productID, dto.Quantity, dto.UnitWeight, dto.Dimensions, dto.UnitPrice)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
