package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrChangeStatusCommandIsNotConstructed = errors.New(
	"ChangeStatusCommand must be created via NewChangeStatusCommand constructor",
)

// ChangeStatusCommand represents a request to move an order to a new
// lifecycle status. Terminal transitions (delivered, cancelled) release
// every outstanding placement the order holds.
type ChangeStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	managerID kernel.UUID
	status    order.Status

	guard guard.ConstructorGuard
}

// NewChangeStatusCommand creates a command to transition an order's status.
func NewChangeStatusCommand(orderID, managerID kernel.UUID, status order.Status) (ChangeStatusCommand, error) {
	cmd := ChangeStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setManagerID(managerID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeStatusCommandIsNotConstructed)
}

// OrderID returns the order being transitioned.
func (c ChangeStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ManagerID returns the manager requesting the transition.
func (c ChangeStatusCommand) ManagerID() kernel.UUID {
	return c.managerID
}

// Status returns the requested target status.
func (c ChangeStatusCommand) Status() order.Status {
	return c.status
}

func (c *ChangeStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeStatusCommand) setManagerID(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return err
	}

	c.managerID = managerID
	return nil
}

func (c *ChangeStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
