package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignLocationCommandIsNotConstructed = errors.New(
	"AssignLocationCommand must be created via NewAssignLocationCommand constructor",
)

// AssignLocationCommand represents a request to physically place an order
// into a pile of its relevant warehouse. Placement reserves the order's
// total weight at pile, section and warehouse level and advances the order
// to the matching ready status.
type AssignLocationCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	managerID kernel.UUID
	sectionID kernel.UUID
	pileID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignLocationCommand creates a command to place an order into a pile.
func NewAssignLocationCommand(orderID, managerID, sectionID, pileID kernel.UUID) (AssignLocationCommand, error) {
	cmd := AssignLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setManagerID(managerID),
		cmd.setSectionID(sectionID),
		cmd.setPileID(pileID),
	); err != nil {
		return AssignLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignLocationCommand) Validate() error {
	return c.guard.Validate(ErrAssignLocationCommandIsNotConstructed)
}

// OrderID returns the order being placed.
func (c AssignLocationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ManagerID returns the manager performing the placement.
func (c AssignLocationCommand) ManagerID() kernel.UUID {
	return c.managerID
}

// SectionID returns the target section.
func (c AssignLocationCommand) SectionID() kernel.UUID {
	return c.sectionID
}

// PileID returns the target pile.
func (c AssignLocationCommand) PileID() kernel.UUID {
	return c.pileID
}

func (c *AssignLocationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignLocationCommand) setManagerID(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return err
	}

	c.managerID = managerID
	return nil
}

func (c *AssignLocationCommand) setSectionID(sectionID kernel.UUID) error {
	if err := sectionID.Validate(); err != nil {
		return err
	}

	c.sectionID = sectionID
	return nil
}

func (c *AssignLocationCommand) setPileID(pileID kernel.UUID) error {
	if err := pileID.Validate(); err != nil {
		return err
	}

	c.pileID = pileID
	return nil
}
