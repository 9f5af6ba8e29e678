package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/manager"
)

// ManagerRepository defines the persistence contract for managers.
type ManagerRepository interface {
	// Add persists a new manager.
	Add(ctx context.Context, aggregate *manager.Manager) error

	// Get retrieves a manager by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*manager.Manager, error)
}
