package services

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/manager"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/warehouse"
)

// ErrOrderNotPlaceable is returned when the warehouse the placement targets
// is not the order's relevant warehouse.
var ErrOrderNotPlaceable = errors.New("order is not placeable in this warehouse")

// PlacementResult is everything a successful placement produces. The caller
// persists all of it in one transaction: the mutated warehouse and order,
// the placement record and the audit entry.
type PlacementResult struct {
	Placement *warehouse.Placement
	Audit     *audit.Record
}

// PlacementService reserves an order's total weight inside a warehouse.
//
// Business rules:
//   - the acting manager must be scoped to the order's relevant warehouse
//   - weight is checked against the pile first, then the section; the
//     warehouse level is covered by the sibling-sum rule
//   - placement succeeds in any status; only the two arrived-at-warehouse
//     hand-offs advance the order to the matching READY_FOR_* status, every
//     other status is left unchanged
//   - a placement record plus an audit entry are produced either way
type PlacementService struct{}

// NewPlacementService creates a new PlacementService instance.
func NewPlacementService() PlacementService {
	return PlacementService{}
}

// Place reserves ord's weight in the given pile of w and advances ord's
// status where the hand-off mapping says so. It mutates ord and w in memory
// only; persisting both together is the caller's job.
func (s PlacementService) Place(
	mgr *manager.Manager,
	ord *order.Order,
	w *warehouse.Warehouse,
	sectionID, pileID kernel.UUID,
) (*PlacementResult, error) {
	if err := errors.Join(mgr.Validate(), ord.Validate(), w.Validate()); err != nil {
		return nil, err
	}

	relevantID, err := ord.RelevantWarehouseID()
	if err != nil {
		return nil, err
	}
	if !w.ID().IsEqual(relevantID) {
		return nil, fmt.Errorf("%w: order %s belongs to warehouse %s, not %s",
			ErrOrderNotPlaceable, ord.ID(), relevantID, w.ID())
	}

	if err := mgr.Authorize(relevantID); err != nil {
		return nil, err
	}

	weight := ord.Weight()
	if err := w.PlaceLoad(sectionID, pileID, weight); err != nil {
		return nil, err
	}

	ord.AdvanceAfterPlacement()

	placement, err := warehouse.NewPlacement(
		kernel.NewUUID(), ord.ID(), w.ID(), sectionID, pileID, weight)
	if err != nil {
		return nil, err
	}

	record, err := audit.NewRecord(
		kernel.NewUUID(), ord.ID(), w.ID(), mgr.ID(),
		audit.ActionOrderPlacement,
		fmt.Sprintf("placed %d weight units in pile %s", weight, pileID))
	if err != nil {
		return nil, err
	}

	return &PlacementResult{Placement: placement, Audit: record}, nil
}
