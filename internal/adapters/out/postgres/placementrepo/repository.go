package placementrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPlacementRepository implements PlacementRepository using GORM.
type GormPlacementRepository struct {
	db *gorm.DB
}

// NewGormPlacementRepository creates a new GORM placement repository.
func NewGormPlacementRepository(db *gorm.DB) *GormPlacementRepository {
	return &GormPlacementRepository{db: db}
}

// Add saves a new placement record.
func (r *GormPlacementRepository) Add(ctx context.Context, placement *warehouse.Placement) error {
	if err := placement.Validate(); err != nil {
		return err
	}

	dto := fromDomain(placement)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByOrderID retrieves all outstanding placements for an order, oldest
// first.
func (r *GormPlacementRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) ([]*warehouse.Placement, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PlacementDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("placed_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	placements := make([]*warehouse.Placement, 0, len(dtos))
	for _, dto := range dtos {
		placement, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		placements = append(placements, placement)
	}

	return placements, nil
}

// Delete removes a released placement record.
func (r *GormPlacementRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&PlacementDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("placement", id.String())
	}

	return nil
}
