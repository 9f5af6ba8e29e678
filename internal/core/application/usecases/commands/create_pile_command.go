package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/pkg/guard"
)

var ErrCreatePileCommandIsNotConstructed = errors.New(
	"CreatePileCommand must be created via NewCreatePileCommand constructor",
)

// CreatePileCommand represents a request to add a pile to an existing
// section. The pile's capacity counts against the section's remaining
// child capacity.
type CreatePileCommand struct { //nolint:recvcheck //using for validation
	pileID    kernel.UUID
	sectionID kernel.UUID
	name      string
	pileType  warehouse.PileType
	capacity  int

	guard guard.ConstructorGuard
}

// NewCreatePileCommand creates a command to add a pile to a section.
func NewCreatePileCommand(
	pileID, sectionID kernel.UUID,
	name string,
	pileType warehouse.PileType,
	capacity int,
) (CreatePileCommand, error) {
	cmd := CreatePileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPileID(pileID),
		cmd.setSectionID(sectionID),
		cmd.setName(name),
		cmd.setPileType(pileType),
		cmd.setCapacity(capacity),
	); err != nil {
		return CreatePileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePileCommand) Validate() error {
	return c.guard.Validate(ErrCreatePileCommandIsNotConstructed)
}

// PileID returns the unique identifier for the new pile.
func (c CreatePileCommand) PileID() kernel.UUID {
	return c.pileID
}

// SectionID returns the section the pile is added to.
func (c CreatePileCommand) SectionID() kernel.UUID {
	return c.sectionID
}

// Name returns the pile's human-readable name.
func (c CreatePileCommand) Name() string {
	return c.name
}

// PileType returns the pile's storage category.
func (c CreatePileCommand) PileType() warehouse.PileType {
	return c.pileType
}

// Capacity returns the pile's total weight capacity.
func (c CreatePileCommand) Capacity() int {
	return c.capacity
}

func (c *CreatePileCommand) setPileID(pileID kernel.UUID) error {
	if err := pileID.Validate(); err != nil {
		return err
	}

	c.pileID = pileID
	return nil
}

func (c *CreatePileCommand) setSectionID(sectionID kernel.UUID) error {
	if err := sectionID.Validate(); err != nil {
		return err
	}

	c.sectionID = sectionID
	return nil
}

func (c *CreatePileCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreatePileCommand) setPileType(pileType warehouse.PileType) error {
	if err := pileType.Validate(); err != nil {
		return err
	}

	c.pileType = pileType
	return nil
}

func (c *CreatePileCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}
