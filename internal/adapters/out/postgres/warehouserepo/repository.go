package warehouserepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWarehouseRepository implements WarehouseRepository using GORM.
type GormWarehouseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWarehouseRepository creates a new GORM warehouse repository.
func NewGormWarehouseRepository(db *gorm.DB, tracker aggregateTracker) *GormWarehouseRepository {
	return &GormWarehouseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new warehouse aggregate to the database.
func (r *GormWarehouseRepository) Add(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing warehouse aggregate, including the load
// counters of every section and pile.
func (r *GormWarehouseRepository) Update(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// FullSaveAssociations pushes nested section and pile rows too.
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a warehouse aggregate by ID with its full tree.
func (r *GormWarehouseRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a warehouse with its row locked until the
// surrounding transaction ends. Sections and piles are covered by the
// warehouse-level lock because all load changes go through the aggregate.
func (r *GormWarehouseRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	return r.get(ctx, id, true)
}

func (r *GormWarehouseRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*warehouse.Warehouse, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Preload("Sections.Piles").Preload("Sections")
	if lock {
		query = query.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "warehouses"}})
	}

	var dto WarehouseDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("warehouse", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySectionID resolves the warehouse that owns the given section.
func (r *GormWarehouseRepository) GetBySectionID(ctx context.Context, sectionID kernel.UUID) (*warehouse.Warehouse, error) {
	if err := sectionID.Validate(); err != nil {
		return nil, err
	}

	var section SectionDTO
	if err := r.db.WithContext(ctx).
		Select("warehouse_id").
		First(&section, "id = ?", sectionID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("section", sectionID.String())
		}
		return nil, err
	}

	warehouseID, err := kernel.UUIDFromBytes(section.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, warehouseID)
}

// GetAll retrieves every warehouse with its full tree, without row locks.
func (r *GormWarehouseRepository) GetAll(ctx context.Context) ([]*warehouse.Warehouse, error) {
	var dtos []WarehouseDTO
	if err := r.db.WithContext(ctx).
		Preload("Sections.Piles").
		Preload("Sections").
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	warehouses := make([]*warehouse.Warehouse, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		warehouses = append(warehouses, aggregate)
	}

	return warehouses, nil
}
