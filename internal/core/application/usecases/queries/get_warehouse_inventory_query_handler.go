package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWarehouseInventoryQueryHandler reads a warehouse's containment tree
// straight from the database, including current loads at every level.
type GetWarehouseInventoryQueryHandler struct {
	db *gorm.DB
}

// NewGetWarehouseInventoryQueryHandler creates a handler for inventory
// queries. Requires a GORM database connection for query execution.
func NewGetWarehouseInventoryQueryHandler(db *gorm.DB) GetWarehouseInventoryQueryHandler {
	return GetWarehouseInventoryQueryHandler{db: db}
}

// Handle executes the inventory query. Returns an ObjectNotFoundError when
// the warehouse does not exist.
func (h GetWarehouseInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetWarehouseInventoryQuery,
) (GetWarehouseInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWarehouseInventoryQueryResponse{}, err
	}

	response, err := h.readWarehouse(ctx, query.WarehouseID())
	if err != nil {
		return GetWarehouseInventoryQueryResponse{}, err
	}

	sections, err := h.readSections(ctx, query.WarehouseID())
	if err != nil {
		return GetWarehouseInventoryQueryResponse{}, err
	}
	response.Sections = sections

	return response, nil
}

func (h GetWarehouseInventoryQueryHandler) readWarehouse(
	ctx context.Context,
	warehouseID kernel.UUID,
) (GetWarehouseInventoryQueryResponse, error) {
	var response GetWarehouseInventoryQueryResponse

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			city,
			address,
			total_capacity,
			current_load
		FROM warehouses
		WHERE id = ?
	`, warehouseID.String()).Rows()
	if err != nil {
		return response, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return response, err
		}
		return response, errs.NewObjectNotFoundError("warehouseID", warehouseID.String())
	}

	var id uuid.UUID
	if err = rows.Scan(
		&id,
		&response.Name,
		&response.City,
		&response.Address,
		&response.TotalCapacity,
		&response.CurrentLoad,
	); err != nil {
		return response, err
	}

	response.ID, err = kernel.UUIDFromBytes(id[:])
	return response, err
}

func (h GetWarehouseInventoryQueryHandler) readSections(
	ctx context.Context,
	warehouseID kernel.UUID,
) ([]SectionInventory, error) {
	sections := make([]SectionInventory, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			section_type,
			total_capacity,
			current_load
		FROM sections
		WHERE warehouse_id = ?
		ORDER BY name
	`, warehouseID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var section SectionInventory
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&section.Name,
			&section.SectionType,
			&section.TotalCapacity,
			&section.CurrentLoad,
		); err != nil {
			return nil, err
		}

		section.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		sections = append(sections, section)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range sections {
		piles, pileErr := h.readPiles(ctx, sections[i].ID)
		if pileErr != nil {
			return nil, pileErr
		}
		sections[i].Piles = piles
	}

	return sections, nil
}

func (h GetWarehouseInventoryQueryHandler) readPiles(
	ctx context.Context,
	sectionID kernel.UUID,
) ([]PileInventory, error) {
	piles := make([]PileInventory, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			pile_type,
			total_capacity,
			current_load
		FROM piles
		WHERE section_id = ?
		ORDER BY name
	`, sectionID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var pile PileInventory
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&pile.Name,
			&pile.PileType,
			&pile.TotalCapacity,
			&pile.CurrentLoad,
		); err != nil {
			return nil, err
		}

		pile.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		piles = append(piles, pile)
	}

	return piles, rows.Err()
}
