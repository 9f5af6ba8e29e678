package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves non-terminal orders from the
// database together with their total weight.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order
// queries. Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Delivered and cancelled orders are excluded;
// results are sorted by creation time so the oldest work surfaces first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.source_warehouse_id,
			o.destination_warehouse_id,
			COALESCE(SUM(i.quantity * i.unit_weight), 0) AS total_weight
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status NOT IN (?, ?, ?)
		GROUP BY o.id, o.status, o.source_warehouse_id, o.destination_warehouse_id, o.created_at
		ORDER BY o.created_at
	`, order.LocalDelivered.String(), order.CityDelivered.String(), order.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetActiveOrdersQueryResponse
		var id uuid.UUID
		var sourceID, destinationID sql.Null[uuid.UUID]

		if err = rows.Scan(
			&id,
			&response.Status,
			&sourceID,
			&destinationID,
			&response.TotalWeight,
		); err != nil {
			return nil, err
		}

		response.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		response.SourceWarehouseID, err = optionalUUID(sourceID)
		if err != nil {
			return nil, err
		}
		response.DestinationWarehouseID, err = optionalUUID(destinationID)
		if err != nil {
			return nil, err
		}

		orders = append(orders, response)
	}

	return orders, rows.Err()
}

func optionalUUID(value sql.Null[uuid.UUID]) (*kernel.UUID, error) {
	if !value.Valid {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes(value.V[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
