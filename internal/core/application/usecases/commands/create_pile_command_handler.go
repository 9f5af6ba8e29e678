package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/warehouse"
)

// CreatePileCommandHandler handles the business logic for adding a pile to
// a section.
type CreatePileCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewCreatePileCommandHandler creates a handler for pile creation.
func NewCreatePileCommandHandler(uowFactory WarehouseUoWFactory) CreatePileCommandHandler {
	return CreatePileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pile creation command. The owning warehouse is
// resolved from the section, then re-read with its row locked so
// concurrent pile additions cannot jointly exceed the section's capacity.
func (h *CreatePileCommandHandler) Handle(ctx context.Context, cmd CreatePileCommand) error {
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
	owner, err := repo.GetBySectionID(ctx, cmd.SectionID())
	if err != nil {
		return err
	}

	aggregate, err := repo.GetForUpdate(ctx, owner.ID())
	if err != nil {
		return err
	}

	section, err := aggregate.FindSection(cmd.SectionID())
	if err != nil {
		return err
	}

	pile, err := warehouse.NewPile(cmd.PileID(), cmd.Name(), cmd.PileType(), cmd.Capacity())
	if err != nil {
		return err
	}

	if err := section.AddPile(pile); err != nil {
		return err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
