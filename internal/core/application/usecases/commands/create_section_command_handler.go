package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/warehouse"
)

// CreateSectionCommandHandler handles the business logic for adding a
// section to a warehouse. The warehouse row is locked so concurrent section
// additions cannot jointly exceed the warehouse's capacity.
type CreateSectionCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewCreateSectionCommandHandler creates a handler for section creation.
func NewCreateSectionCommandHandler(uowFactory WarehouseUoWFactory) CreateSectionCommandHandler {
	return CreateSectionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the section creation command. The sibling-sum rule is
// enforced by the warehouse aggregate while its row is locked.
func (h *CreateSectionCommandHandler) Handle(ctx context.Context, cmd CreateSectionCommand) error {
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

	repo := uow.WarehouseRepository()
	aggregate, err := repo.GetForUpdate(ctx, cmd.WarehouseID())
	if err != nil {
		return err
	}

	section, err := warehouse.NewSection(cmd.SectionID(), cmd.Name(), cmd.SectionType(), cmd.Capacity())
	if err != nil {
		return err
	}

	if err := aggregate.AddSection(section); err != nil {
		return err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
