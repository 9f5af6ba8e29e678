package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/warehouse"
)

// CreateWarehouseCommandHandler handles the business logic for warehouse
// registration.
type CreateWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewCreateWarehouseCommandHandler creates a handler for warehouse
// registration. Requires a WarehouseUoWFactory for transactional
// persistence.
func NewCreateWarehouseCommandHandler(uowFactory WarehouseUoWFactory) CreateWarehouseCommandHandler {
	return CreateWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the warehouse creation command. The new warehouse starts
// empty and sections are added through separate commands.
func (h *CreateWarehouseCommandHandler) Handle(ctx context.Context, cmd CreateWarehouseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := warehouse.NewWarehouse(
		cmd.WarehouseID(), cmd.Name(), cmd.City(), cmd.Address(), cmd.Capacity())
	if err != nil {
		return err
	}

	if err := uow.WarehouseRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
