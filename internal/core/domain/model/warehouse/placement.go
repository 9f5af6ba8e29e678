package warehouse

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrPlacementIsNotConstructed indicates that a Placement was not created
// through NewPlacement or RestorePlacement.
var ErrPlacementIsNotConstructed = errors.New("Placement must be created via NewPlacement constructor")

// Placement records that an order's weight occupies a specific pile. It is
// written in the same transaction as the load increments and deleted in the
// same transaction as the release, which is what makes a symmetric
// three-level release possible: without it the system would not know which
// pile to give the weight back to.
//
// A multi-leg order accumulates one placement per warehouse it passes
// through; completion releases all of its outstanding placements.
type Placement struct {
	id          kernel.UUID
	orderID     kernel.UUID
	warehouseID kernel.UUID
	sectionID   kernel.UUID
	pileID      kernel.UUID
	weight      int
	placedAt    time.Time

	guard kernel.ConstructorGuard
}

// NewPlacement creates a placement record stamped with the current time.
func NewPlacement(id, orderID, warehouseID, sectionID, pileID kernel.UUID, weight int) (*Placement, error) {
	return RestorePlacement(id, orderID, warehouseID, sectionID, pileID, weight, time.Now().UTC())
}

// RestorePlacement reconstructs a placement from persisted state.
func RestorePlacement(
	id, orderID, warehouseID, sectionID, pileID kernel.UUID,
	weight int,
	placedAt time.Time,
) (*Placement, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		warehouseID.Validate(),
		sectionID.Validate(),
		pileID.Validate(),
	); err != nil {
		return nil, err
	}

	if weight <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%d is not greater than 0", weight))
	}

	return &Placement{
		id:          id,
		orderID:     orderID,
		warehouseID: warehouseID,
		sectionID:   sectionID,
		pileID:      pileID,
		weight:      weight,
		placedAt:    placedAt,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the placement was created via a constructor.
func (p *Placement) Validate() error {
	if p == nil {
		return ErrPlacementIsNotConstructed
	}
	return p.guard.Validate(ErrPlacementIsNotConstructed)
}

// ID returns the placement's unique identifier.
func (p *Placement) ID() kernel.UUID {
	return p.id
}

// OrderID returns the order whose weight this placement reserves.
func (p *Placement) OrderID() kernel.UUID {
	return p.orderID
}

// WarehouseID returns the warehouse the weight occupies.
func (p *Placement) WarehouseID() kernel.UUID {
	return p.warehouseID
}

// SectionID returns the section the weight occupies.
func (p *Placement) SectionID() kernel.UUID {
	return p.sectionID
}

// PileID returns the pile the weight occupies.
func (p *Placement) PileID() kernel.UUID {
	return p.pileID
}

// Weight returns the reserved weight in mass units.
func (p *Placement) Weight() int {
	return p.weight
}

// PlacedAt returns when the placement was recorded.
func (p *Placement) PlacedAt() time.Time {
	return p.placedAt
}
