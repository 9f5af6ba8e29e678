package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// AssignLocationCommandHandler handles the business logic for placing an
// order into a pile. The relevant warehouse row is locked for the duration
// of the transaction so two orders cannot be placed into the same remaining
// capacity at once.
type AssignLocationCommandHandler struct {
	uowFactory       FulfillmentUoWFactory
	placementService services.PlacementService
}

// NewAssignLocationCommandHandler creates a handler for order placement.
func NewAssignLocationCommandHandler(
	uowFactory FulfillmentUoWFactory,
	placementService services.PlacementService,
) AssignLocationCommandHandler {
	return AssignLocationCommandHandler{
		uowFactory:       uowFactory,
		placementService: placementService,
	}
}

// Handle processes the placement command and returns the order as it stands
// after the transaction. Warehouse loads, the order's status, the placement
// record and the audit entry are committed together or not at all.
func (h *AssignLocationCommandHandler) Handle(ctx context.Context, cmd AssignLocationCommand) (*order.Order, error) {
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

	relevantID, err := ord.RelevantWarehouseID()
	if err != nil {
		return nil, err
	}

	aggregate, err := uow.WarehouseRepository().GetForUpdate(ctx, relevantID)
	if err != nil {
		return nil, err
	}

	previousStatus := ord.Status()

	result, err := h.placementService.Place(mgr, ord, aggregate, cmd.SectionID(), cmd.PileID())
	if err != nil {
		return nil, err
	}

	if err := uow.WarehouseRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}
	if err := uow.OrderRepository().UpdateStatus(ctx, ord, previousStatus); err != nil {
		return nil, err
	}
	if err := uow.PlacementRepository().Add(ctx, result.Placement); err != nil {
		return nil, err
	}
	if err := uow.AuditRepository().Add(ctx, result.Audit); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return ord, nil
}
