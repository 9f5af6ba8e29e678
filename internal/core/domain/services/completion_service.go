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

// CompletionResult is what a status transition produces. ReleasedWarehouses
// holds every warehouse whose loads changed; Audit is nil for transitions
// that leave no trail (anything that is not a delivery or a cancellation).
type CompletionResult struct {
	ReleasedWarehouses []*warehouse.Warehouse
	Audit              *audit.Record
}

// CompletionService applies status transitions to an order. When the
// transition is terminal (delivered or cancelled) it also gives back every
// outstanding placement the order holds: the weight is released from pile,
// section and warehouse in one step per placement.
//
// Releases fail closed. If a placement cannot be released exactly (its
// warehouse is missing, or any level's load would go negative) the whole
// transition is rejected and nothing is mutated durably; the caller's
// transaction must roll back.
type CompletionService struct{}

// NewCompletionService creates a new CompletionService instance.
func NewCompletionService() CompletionService {
	return CompletionService{}
}

// Complete transitions ord to the requested status. placements are the
// order's outstanding placement records and warehouses must contain every
// warehouse those placements reference, loaded for update.
func (s CompletionService) Complete(
	mgr *manager.Manager,
	ord *order.Order,
	requested order.Status,
	placements []*warehouse.Placement,
	warehouses []*warehouse.Warehouse,
) (*CompletionResult, error) {
	if err := errors.Join(mgr.Validate(), ord.Validate()); err != nil {
		return nil, err
	}

	relevantID, err := ord.RelevantWarehouseID()
	if err != nil {
		return nil, err
	}
	if err := mgr.Authorize(relevantID); err != nil {
		return nil, err
	}

	// Requesting the current status is a legal no-op. It neither touches
	// loads nor leaves an audit row, so repeated requests are idempotent.
	if requested == ord.Status() {
		return &CompletionResult{}, nil
	}

	if err := ord.ChangeStatus(requested); err != nil {
		return nil, err
	}

	if !ord.IsTerminal() {
		return &CompletionResult{}, nil
	}

	released, err := s.releaseAll(placements, warehouses)
	if err != nil {
		return nil, err
	}

	action := audit.ActionOrderCancellation
	if ord.Status().IsDelivered() {
		action = audit.ActionOrderDelivery
	}

	record, err := audit.NewRecord(
		kernel.NewUUID(), ord.ID(), relevantID, mgr.ID(), action,
		fmt.Sprintf("order reached %s, released %d placement(s)", ord.Status(), len(placements)))
	if err != nil {
		return nil, err
	}

	return &CompletionResult{ReleasedWarehouses: released, Audit: record}, nil
}

// releaseAll releases every placement against its warehouse. All placements
// must release cleanly or the whole batch fails.
func (s CompletionService) releaseAll(
	placements []*warehouse.Placement,
	warehouses []*warehouse.Warehouse,
) ([]*warehouse.Warehouse, error) {
	byID := make(map[string]*warehouse.Warehouse, len(warehouses))
	for _, w := range warehouses {
		if err := w.Validate(); err != nil {
			return nil, err
		}
		byID[w.ID().String()] = w
	}

	released := make([]*warehouse.Warehouse, 0, len(placements))
	seen := make(map[string]bool, len(placements))

	for _, placement := range placements {
		if err := placement.Validate(); err != nil {
			return nil, err
		}

		w, ok := byID[placement.WarehouseID().String()]
		if !ok {
			return nil, &warehouse.InconsistentLoadError{
				Level: "warehouse",
				ID:    placement.WarehouseID(),
				Cause: fmt.Errorf("warehouse for placement %s was not loaded", placement.ID()),
			}
		}

		if err := w.ReleaseLoad(placement.SectionID(), placement.PileID(), placement.Weight()); err != nil {
			return nil, err
		}

		if !seen[w.ID().String()] {
			seen[w.ID().String()] = true
			released = append(released, w)
		}
	}

	return released, nil
}
