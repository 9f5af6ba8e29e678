package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
)

// WarehouseInventory is the wire format of a warehouse inventory snapshot.
type WarehouseInventory struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	City          string             `json:"city"`
	Address       string             `json:"address"`
	TotalCapacity int                `json:"totalCapacity"`
	CurrentLoad   int                `json:"currentLoad"`
	Sections      []SectionInventory `json:"sections"`
}

// SectionInventory is the wire format of one section and its piles.
type SectionInventory struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	TotalCapacity int             `json:"totalCapacity"`
	CurrentLoad   int             `json:"currentLoad"`
	Piles         []PileInventory `json:"piles"`
}

// PileInventory is the wire format of one pile.
type PileInventory struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	TotalCapacity int    `json:"totalCapacity"`
	CurrentLoad   int    `json:"currentLoad"`
}

// ActiveOrder is the wire format of one order still in flight.
type ActiveOrder struct {
	ID                     string `json:"id"`
	Status                 string `json:"status"`
	SourceWarehouseID      string `json:"sourceWarehouseId,omitempty"`
	DestinationWarehouseID string `json:"destinationWarehouseId,omitempty"`
	TotalWeight            int    `json:"totalWeight"`
}

// OrderResponse is the wire format of an order after a mutating call.
type OrderResponse struct {
	ID                     string `json:"id"`
	Status                 string `json:"status"`
	SourceWarehouseID      string `json:"sourceWarehouseId,omitempty"`
	DestinationWarehouseID string `json:"destinationWarehouseId,omitempty"`
	TotalWeight            int    `json:"totalWeight"`
}

func toOrderResponse(ord *order.Order) OrderResponse {
	response := OrderResponse{
		ID:          ord.ID().String(),
		Status:      ord.Status().String(),
		TotalWeight: ord.Weight(),
	}
	if id := ord.SourceWarehouseID(); id != nil {
		response.SourceWarehouseID = id.String()
	}
	if id := ord.DestinationWarehouseID(); id != nil {
		response.DestinationWarehouseID = id.String()
	}
	return response
}

// AuditEvent is the wire format of one audit trail entry.
type AuditEvent struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"orderId"`
	ManagerID  string    `json:"managerId"`
	Action     string    `json:"action"`
	Details    string    `json:"details"`
	OccurredAt time.Time `json:"occurredAt"`
}

func toInventoryResponse(inventory queries.GetWarehouseInventoryQueryResponse) WarehouseInventory {
	sections := make([]SectionInventory, len(inventory.Sections))
	for i, section := range inventory.Sections {
		piles := make([]PileInventory, len(section.Piles))
		for j, pile := range section.Piles {
			piles[j] = PileInventory{
				ID:            pile.ID.String(),
				Name:          pile.Name,
				Type:          pile.PileType,
				TotalCapacity: pile.TotalCapacity,
				CurrentLoad:   pile.CurrentLoad,
			}
		}
		sections[i] = SectionInventory{
			ID:            section.ID.String(),
			Name:          section.Name,
			Type:          section.SectionType,
			TotalCapacity: section.TotalCapacity,
			CurrentLoad:   section.CurrentLoad,
			Piles:         piles,
		}
	}

	return WarehouseInventory{
		ID:            inventory.ID.String(),
		Name:          inventory.Name,
		City:          inventory.City,
		Address:       inventory.Address,
		TotalCapacity: inventory.TotalCapacity,
		CurrentLoad:   inventory.CurrentLoad,
		Sections:      sections,
	}
}
