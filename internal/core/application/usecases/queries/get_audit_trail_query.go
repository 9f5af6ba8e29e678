package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetAuditTrailQueryIsNotConstructed = errors.New(
	"GetAuditTrailQuery must be created via NewGetAuditTrailQuery constructor",
)

// GetAuditTrailQuery retrieves the audit trail of a warehouse: every
// placement, delivery and cancellation event recorded there.
type GetAuditTrailQuery struct {
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAuditTrailQuery creates a query for a warehouse's audit trail.
func NewGetAuditTrailQuery(warehouseID kernel.UUID) (GetAuditTrailQuery, error) {
	if err := warehouseID.Validate(); err != nil {
		return GetAuditTrailQuery{}, err
	}

	return GetAuditTrailQuery{
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAuditTrailQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditTrailQueryIsNotConstructed)
}

// WarehouseID returns the warehouse whose trail is requested.
func (q GetAuditTrailQuery) WarehouseID() kernel.UUID {
	return q.warehouseID
}

// GetAuditTrailQueryResponse represents one audit event.
type GetAuditTrailQueryResponse struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	ManagerID  kernel.UUID
	Action     string
	Details    string
	OccurredAt time.Time
}
