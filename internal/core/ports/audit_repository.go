package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
)

// AuditRepository defines the persistence contract for the audit trail.
// Records are append-only; there is no update or delete.
type AuditRepository interface {
	// Add persists a new audit record.
	Add(ctx context.Context, record *audit.Record) error
}
