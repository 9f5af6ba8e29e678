package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/domain/services"
)

// ChangeStatusCommandHandler handles the business logic for order status
// transitions. Non-terminal transitions only touch the order row; terminal
// transitions additionally lock every warehouse the order's placements
// reference, release the weight and delete the placement records, all in
// one transaction.
type ChangeStatusCommandHandler struct {
	uowFactory        FulfillmentUoWFactory
	completionService services.CompletionService
}

// NewChangeStatusCommandHandler creates a handler for status transitions.
func NewChangeStatusCommandHandler(
	uowFactory FulfillmentUoWFactory,
	completionService services.CompletionService,
) ChangeStatusCommandHandler {
	return ChangeStatusCommandHandler{
		uowFactory:        uowFactory,
		completionService: completionService,
	}
}

// Handle processes the status change command and returns the order as it
// stands after the transaction.
func (h *ChangeStatusCommandHandler) Handle(ctx context.Context, cmd ChangeStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	mgr, err := uow.ManagerRepository().Get(ctx, cmd.ManagerID())
	if err != nil {
		return nil, err
	}

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	placements, err := uow.PlacementRepository().GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	warehouses, err := h.lockPlacementWarehouses(ctx, uow, placements)
	if err != nil {
		return nil, err
	}

	previousStatus := ord.Status()

	result, err := h.completionService.Complete(mgr, ord, cmd.Status(), placements, warehouses)
	if err != nil {
		return nil, err
	}

	for _, aggregate := range result.ReleasedWarehouses {
		if err := uow.WarehouseRepository().Update(ctx, aggregate); err != nil {
			return nil, err
		}
	}

	// Placement records are removed only when this transition actually
	// released them. A repeated terminal request is a no-op and must not
	// drop rows whose weight was never given back.
	if result.Audit != nil {
		for _, placement := range placements {
			if err := uow.PlacementRepository().Delete(ctx, placement.ID()); err != nil {
				return nil, err
			}
		}
	}

	if err := uow.OrderRepository().UpdateStatus(ctx, ord, previousStatus); err != nil {
		return nil, err
	}

	if result.Audit != nil {
		if err := uow.AuditRepository().Add(ctx, result.Audit); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return ord, nil
}

// lockPlacementWarehouses loads every distinct warehouse referenced by the
// placements with their rows locked, so releases serialize against
// concurrent placements.
func (h *ChangeStatusCommandHandler) lockPlacementWarehouses(
	ctx context.Context,
	uow FulfillmentUoW,
	placements []*warehouse.Placement,
) ([]*warehouse.Warehouse, error) {
	seen := make(map[string]bool, len(placements))
	warehouses := make([]*warehouse.Warehouse, 0, len(placements))

	for _, placement := range placements {
		key := placement.WarehouseID().String()
		if seen[key] {
			continue
		}
		seen[key] = true

		aggregate, err := uow.WarehouseRepository().GetForUpdate(ctx, placement.WarehouseID())
		if err != nil {
			return nil, err
		}
		warehouses = append(warehouses, aggregate)
	}

	return warehouses, nil
}
