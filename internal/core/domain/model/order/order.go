package order

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order is created without line items.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")

	// ErrOrderHasNoWarehouse is returned when neither a source nor a
	// destination warehouse is associated with the order.
	ErrOrderHasNoWarehouse = errors.New("order must reference a source or destination warehouse")
)

// Order is the aggregate root for a fulfillment order. It owns the line
// items and the lifecycle status, and it knows which warehouse is relevant
// for placement and authorization decisions.
//
// Invariants:
//   - Must have a valid unique identifier and at least one line item
//   - Must reference at least one warehouse (source, destination, or both);
//     pure local deliveries have only a source warehouse
//   - Status transitions follow the rules in Status.CanTransitionTo
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// sourceWarehouseID is the warehouse the order is picked up into (nil
	// for orders created at the destination side only)
	sourceWarehouseID *kernel.UUID

	// destinationWarehouseID is the warehouse the order is transferred to
	// (nil for pure local deliveries)
	destinationWarehouseID *kernel.UUID

	// items are the order's line items
	items []*OrderItem

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status. At least one item and at
// least one warehouse reference are required.
func NewOrder(
	id kernel.UUID,
	sourceWarehouseID *kernel.UUID,
	destinationWarehouseID *kernel.UUID,
	items []*OrderItem,
) (*Order, error) {
	return RestoreOrder(id, Pending, sourceWarehouseID, destinationWarehouseID, items)
}

// RestoreOrder reconstructs an Order from persistence with an explicit
// status. All construction invariants are re-validated so corrupted rows
// fail at load time.
func RestoreOrder(
	id kernel.UUID,
	status Status,
	sourceWarehouseID *kernel.UUID,
	destinationWarehouseID *kernel.UUID,
	items []*OrderItem,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStatus(status),
		o.setWarehouses(sourceWarehouseID, destinationWarehouseID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was properly constructed. Call it when
// reconstructing orders from persistence or before persisting changes.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// SourceWarehouseID returns the source warehouse reference, nil if absent.
func (o *Order) SourceWarehouseID() *kernel.UUID {
	return o.sourceWarehouseID
}

// DestinationWarehouseID returns the destination warehouse reference,
// nil if absent.
func (o *Order) DestinationWarehouseID() *kernel.UUID {
	return o.destinationWarehouseID
}

// Items returns the order's line items.
func (o *Order) Items() []*OrderItem {
	return o.items
}

// RelevantWarehouseID resolves the warehouse that placement and
// authorization decisions apply to: the source warehouse when set,
// otherwise the destination warehouse.
func (o *Order) RelevantWarehouseID() (kernel.UUID, error) {
	if o.sourceWarehouseID != nil {
		return *o.sourceWarehouseID, nil
	}
	if o.destinationWarehouseID != nil {
		return *o.destinationWarehouseID, nil
	}
	return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause("warehouseId", ErrOrderHasNoWarehouse)
}

// Weight returns the total order weight in mass units, the sum of every
// item's unit weight times quantity. This is the quantity all capacity
// checks and load deltas operate on.
func (o *Order) Weight() int {
	total := 0
	for _, item := range o.items {
		total += item.Weight()
	}
	return total
}

// Volume returns the total order volume, summed over all items. Volume is
// informational only and never checked against capacity.
func (o *Order) Volume() int {
	total := 0
	for _, item := range o.items {
		total += item.Volume()
	}
	return total
}

// IsTerminal reports whether the order reached a terminal status.
func (o *Order) IsTerminal() bool {
	return o.status.IsTerminal()
}

// ChangeStatus validates the requested transition against the state machine
// and applies it. Requesting the current status is a legal no-op.
func (o *Order) ChangeStatus(requested Status) error {
	newStatus, err := o.status.TransitionTo(requested)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AdvanceAfterPlacement applies the narrow placement hand-off mapping and
// reports whether the status actually changed. Orders outside the two
// arrived-at-warehouse states keep their status.
func (o *Order) AdvanceAfterPlacement() bool {
	next, changed := o.status.NextAfterPlacement()
	if changed {
		o.status = next
	}
	return changed
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setWarehouses(source, destination *kernel.UUID) error {
	if source == nil && destination == nil {
		return ErrOrderHasNoWarehouse
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
	o.sourceWarehouseID = source
	o.destinationWarehouseID = destination
	return nil
}

func (o *Order) setItems(items []*OrderItem) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
