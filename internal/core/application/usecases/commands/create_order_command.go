package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("order must contain at least one item")
	ErrWarehouseIsRequired   = errors.New("order must reference a source or destination warehouse")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
	ErrUnitWeightIsInvalid   = errors.New("unit weight must be greater than 0")
)

// OrderItemInput carries the raw line item values of an order creation
// request. Dimension parsing and price validation happen in the domain
// constructor; the command only checks for obviously broken input.
type OrderItemInput struct {
	ProductID  kernel.UUID
	Quantity   int
	UnitWeight int
	Dimensions string
	UnitPrice  decimal.Decimal
}

// CreateOrderCommand represents a request to create a new fulfillment
// order. Orders start in pending status; at least one warehouse reference
// is required so placement and authorization always have a relevant
// warehouse to resolve.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID                kernel.UUID
	sourceWarehouseID      *kernel.UUID
	destinationWarehouseID *kernel.UUID
	items                  []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	sourceWarehouseID, destinationWarehouseID *kernel.UUID,
	items []OrderItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setWarehouses(sourceWarehouseID, destinationWarehouseID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SourceWarehouseID returns the source warehouse reference, nil when the
// order was created at the destination side only.
func (c CreateOrderCommand) SourceWarehouseID() *kernel.UUID {
	return c.sourceWarehouseID
}

// DestinationWarehouseID returns the destination warehouse reference, nil
// for pure local deliveries.
func (c CreateOrderCommand) DestinationWarehouseID() *kernel.UUID {
	return c.destinationWarehouseID
}

// Items returns the raw line item inputs.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setWarehouses(source, destination *kernel.UUID) error {
	if source == nil && destination == nil {
		return ErrWarehouseIsRequired
	}
	if source != nil {
		if err := source.Validate(); err != nil {
			return err
		}
	}
	if destination != nil {
		if err := destination.Validate(); err != nil {
			return err
		}
	}

	c.sourceWarehouseID = source
	c.destinationWarehouseID = destination
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
		if item.UnitWeight <= 0 {
			return ErrUnitWeightIsInvalid
		}
	}

	c.items = items
	return nil
}
