package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAuditTrailQueryHandler reads a warehouse's audit events from the
// database, newest first.
type GetAuditTrailQueryHandler struct {
	db *gorm.DB
}

// NewGetAuditTrailQueryHandler creates a handler for audit trail queries.
// Requires a GORM database connection for query execution.
func NewGetAuditTrailQueryHandler(db *gorm.DB) GetAuditTrailQueryHandler {
	return GetAuditTrailQueryHandler{db: db}
}

// Handle executes the audit trail query.
func (h GetAuditTrailQueryHandler) Handle(
	ctx context.Context,
	query GetAuditTrailQuery,
) ([]GetAuditTrailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := make([]GetAuditTrailQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			manager_id,
			action,
			details,
			occurred_at
		FROM audit_records
		WHERE warehouse_id = ?
		ORDER BY occurred_at DESC
	`, query.WarehouseID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAuditTrailQueryResponse
		var id, orderID, managerID uuid.UUID

		if err = rows.Scan(
			&id,
			&orderID,
			&managerID,
			&response.Action,
			&response.Details,
			&response.OccurredAt,
		); err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if response.ManagerID, err = kernel.UUIDFromBytes(managerID[:]); err != nil {
			return nil, err
		}

		records = append(records, response)
	}

	return records, rows.Err()
}
