package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateSectionCommandIsNotConstructed = errors.New(
	"CreateSectionCommand must be created via NewCreateSectionCommand constructor",
)

// CreateSectionCommand represents a request to add a section to an existing
// warehouse. The section's capacity counts against the warehouse's
// remaining child capacity.
type CreateSectionCommand struct { //nolint:recvcheck //using for validation
	sectionID   kernel.UUID
	warehouseID kernel.UUID
	name        string
	sectionType warehouse.SectionType
	capacity    int

	guard guard.ConstructorGuard
}

// NewCreateSectionCommand creates a command to add a section to a warehouse.
func NewCreateSectionCommand(
	sectionID, warehouseID kernel.UUID,
	name string,
	sectionType warehouse.SectionType,
	capacity int,
) (CreateSectionCommand, error) {
	cmd := CreateSectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSectionID(sectionID),
		cmd.setWarehouseID(warehouseID),
		cmd.setName(name),
		cmd.setSectionType(sectionType),
		cmd.setCapacity(capacity),
	); err != nil {
		return CreateSectionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSectionCommand) Validate() error {
	return c.guard.Validate(ErrCreateSectionCommandIsNotConstructed)
}

// SectionID returns the unique identifier for the new section.
func (c CreateSectionCommand) SectionID() kernel.UUID {
	return c.sectionID
}

// WarehouseID returns the warehouse the section is added to.
func (c CreateSectionCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// Name returns the section's human-readable name.
func (c CreateSectionCommand) Name() string {
	return c.name
}

// SectionType returns the section's storage category.
func (c CreateSectionCommand) SectionType() warehouse.SectionType {
	return c.sectionType
}

// Capacity returns the section's total weight capacity.
func (c CreateSectionCommand) Capacity() int {
	return c.capacity
}

func (c *CreateSectionCommand) setSectionID(sectionID kernel.UUID) error {
	if err := sectionID.Validate(); err != nil {
		return err
	}

	c.sectionID = sectionID
	return nil
}

func (c *CreateSectionCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *CreateSectionCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateSectionCommand) setSectionType(sectionType warehouse.SectionType) error {
	if err := sectionType.Validate(); err != nil {
		return err
	}

	c.sectionType = sectionType
	return nil
}

func (c *CreateSectionCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}
