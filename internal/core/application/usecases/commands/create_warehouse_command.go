package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateWarehouseCommandIsNotConstructed = errors.New(
		"CreateWarehouseCommand must be created via NewCreateWarehouseCommand constructor",
	)
	ErrNameIsRequired    = errors.New("name is required")
	ErrCityIsRequired    = errors.New("city is required")
	ErrAddressIsRequired = errors.New("address is required")
	ErrCapacityIsInvalid = errors.New("capacity must be greater than 0")
)

// CreateWarehouseCommand represents a request to register a new warehouse
// with an empty section tree and the given total weight capacity.
type CreateWarehouseCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.UUID
	name        string
	city        string
	address     string
	capacity    int

	guard guard.ConstructorGuard
}

// NewCreateWarehouseCommand creates a command to register a new warehouse.
// Validates that the id is valid, the name, city and address are not empty
// and the capacity is positive.
func NewCreateWarehouseCommand(
	warehouseID kernel.UUID,
	name, city, address string,
	capacity int,
) (CreateWarehouseCommand, error) {
	cmd := CreateWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWarehouseID(warehouseID),
		cmd.setName(name),
		cmd.setCity(city),
		cmd.setAddress(address),
		cmd.setCapacity(capacity),
	); err != nil {
		return CreateWarehouseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrCreateWarehouseCommandIsNotConstructed)
}

// WarehouseID returns the unique identifier for the warehouse.
func (c CreateWarehouseCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// Name returns the warehouse's human-readable name.
func (c CreateWarehouseCommand) Name() string {
	return c.name
}

// City returns the city the warehouse operates in.
func (c CreateWarehouseCommand) City() string {
	return c.city
}

// Address returns the warehouse's street address.
func (c CreateWarehouseCommand) Address() string {
	return c.address
}

// Capacity returns the warehouse's total weight capacity.
func (c CreateWarehouseCommand) Capacity() int {
	return c.capacity
}

func (c *CreateWarehouseCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *CreateWarehouseCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateWarehouseCommand) setCity(city string) error {
	if city == "" {
		return ErrCityIsRequired
	}

	c.city = city
	return nil
}

func (c *CreateWarehouseCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateWarehouseCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}
