package managerrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/manager"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormManagerRepository implements ManagerRepository using GORM.
type GormManagerRepository struct {
	db *gorm.DB
}

// NewGormManagerRepository creates a new GORM manager repository.
func NewGormManagerRepository(db *gorm.DB) *GormManagerRepository {
	return &GormManagerRepository{db: db}
}

// Add saves a new manager to the database.
func (r *GormManagerRepository) Add(ctx context.Context, aggregate *manager.Manager) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a manager by ID.
func (r *GormManagerRepository) Get(ctx context.Context, id kernel.UUID) (*manager.Manager, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ManagerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("manager", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
