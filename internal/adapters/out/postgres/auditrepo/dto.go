// Package auditrepo provides data transfer objects and mapping functions
// for audit trail persistence. The table is append-only.
package auditrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/audit"

	"github.com/google/uuid"
)

// AuditRecordDTO represents the database structure for persisting audit
// records.
type AuditRecordDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	WarehouseID uuid.UUID `gorm:"type:uuid;not null;index"`
	ManagerID   uuid.UUID `gorm:"type:uuid;not null"`
	Action      string    `gorm:"type:varchar(32);not null"`
	Details     string    `gorm:"type:text;not null"`
	OccurredAt  time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default naming to use "audit_records".
func (AuditRecordDTO) TableName() string {
	return "audit_records"
}

// fromDomain converts an audit record to its database representation.
func fromDomain(record *audit.Record) AuditRecordDTO {
	return AuditRecordDTO{
		ID:          record.ID().Bytes(),
		OrderID:     record.OrderID().Bytes(),
		WarehouseID: record.WarehouseID().Bytes(),
		ManagerID:   record.ManagerID().Bytes(),
		Action:      record.Action().String(),
		Details:     record.Details(),
		OccurredAt:  record.OccurredAt(),
	}
}
