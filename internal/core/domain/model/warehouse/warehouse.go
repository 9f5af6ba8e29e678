package warehouse

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrWarehouseIsNotConstructed is returned when a Warehouse instance was not
// created through NewWarehouse or RestoreWarehouse.
var ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")

// Warehouse is the aggregate root of the containment hierarchy. It owns its
// sections (which own their piles) and is the only mutator of load state at
// any level.
//
// Invariants held by this aggregate:
//   - 0 <= currentLoad <= capacity at every level, at all times
//   - the sum of section capacities never exceeds the warehouse capacity,
//     and the sum of pile capacities never exceeds their section's capacity
//     (both enforced when children are added, not continuously)
//   - a weight delta is applied to pile, section and warehouse together or
//     not at all
type Warehouse struct {
	// id is the unique identifier for the warehouse
	id kernel.UUID

	// name is the warehouse's human-readable name
	name string

	// city and address locate the warehouse geographically
	city    string
	address string

	// capacity is the warehouse-level capacity ledger
	capacity kernel.Capacity

	// sections are the warehouse's sections, owned exclusively
	sections []*Section

	// isConstructed ensures the warehouse was created via a constructor
	isConstructed bool
}

// NewWarehouse creates an empty warehouse with the given total capacity.
func NewWarehouse(id kernel.UUID, name, city, address string, totalCapacity int) (*Warehouse, error) {
	capacity, err := kernel.NewCapacity(totalCapacity)
	if err != nil {
		return nil, err
	}
	return restoreWarehouse(id, name, city, address, capacity, nil)
}

// RestoreWarehouse reconstructs a warehouse and its section tree from
// persisted state. Capacity invariants are re-validated at every level.
func RestoreWarehouse(
	id kernel.UUID,
	name, city, address string,
	totalCapacity, currentLoad int,
	sections []*Section,
) (*Warehouse, error) {
	capacity, err := kernel.RestoreCapacity(totalCapacity, currentLoad)
	if err != nil {
		return nil, err
	}
	return restoreWarehouse(id, name, city, address, capacity, sections)
}

func restoreWarehouse(
	id kernel.UUID,
	name, city, address string,
	capacity kernel.Capacity,
	sections []*Section,
) (*Warehouse, error) {
	w := &Warehouse{
		isConstructed: true,
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
	); err != nil {
		return nil, err
	}

	w.city = city
	w.address = address
	w.capacity = capacity

	for _, section := range sections {
		if err := section.Validate(); err != nil {
			return nil, err
		}
		w.sections = append(w.sections, section)
	}

	return w, nil
}

// Validate ensures the Warehouse was properly constructed.
func (w *Warehouse) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWarehouseIsNotConstructed
	}
	return nil
}

// IsEqual compares two warehouses by their unique identifiers.
func (w *Warehouse) IsEqual(other *Warehouse) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the warehouse's unique identifier.
func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

// Name returns the warehouse's human-readable name.
func (w *Warehouse) Name() string {
	return w.name
}

// City returns the city the warehouse operates in.
func (w *Warehouse) City() string {
	return w.city
}

// Address returns the warehouse's street address.
func (w *Warehouse) Address() string {
	return w.address
}

// Capacity returns the warehouse-level capacity ledger.
func (w *Warehouse) Capacity() kernel.Capacity {
	return w.capacity
}

// Sections returns the warehouse's sections.
func (w *Warehouse) Sections() []*Section {
	return w.sections
}

// RemainingChildCapacity returns how much capacity is still available for
// new sections: the warehouse total minus the sum of all section totals.
func (w *Warehouse) RemainingChildCapacity() int {
	sum := 0
	for _, section := range w.sections {
		sum += section.Capacity().Total()
	}
	return w.capacity.Total() - sum
}

// AddSection attaches a new section to the warehouse. The section's total
// capacity must not exceed the remaining child capacity (sibling-sum rule).
func (w *Warehouse) AddSection(section *Section) error {
	if err := section.Validate(); err != nil {
		return err
	}

	remaining := w.RemainingChildCapacity()
	if section.Capacity().Total() > remaining {
		return &CapacityExceededError{
			Level:       "warehouse",
			ID:          w.id,
			CurrentLoad: w.capacity.Total() - remaining,
			Requested:   section.Capacity().Total(),
			Capacity:    w.capacity.Total(),
		}
	}

	w.sections = append(w.sections, section)
	return nil
}

// FindSection returns the section with the given id or an ObjectNotFoundError.
func (w *Warehouse) FindSection(sectionID kernel.UUID) (*Section, error) {
	for _, section := range w.sections {
		if section.ID().IsEqual(sectionID) {
			return section, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("section", sectionID.String())
}

// FindPile resolves a (section, pile) pair inside the warehouse.
func (w *Warehouse) FindPile(sectionID, pileID kernel.UUID) (*Section, *Pile, error) {
	section, err := w.FindSection(sectionID)
	if err != nil {
		return nil, nil, err
	}

	pile, err := section.FindPile(pileID)
	if err != nil {
		return nil, nil, err
	}

	return section, pile, nil
}

// PlaceLoad reserves weight in the given pile, its section and the
// warehouse itself. The pile is checked first, then the section; either
// rejection carries the current load, the requested weight and the
// capacity of the level that refused.
//
// A warehouse-level overflow cannot happen while loads are consistent
// (section capacities are bounded by the warehouse capacity), so one is
// reported as an InconsistentLoadError rather than a capacity rejection.
// Either all three levels absorb the weight or none does.
func (w *Warehouse) PlaceLoad(sectionID, pileID kernel.UUID, weight int) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidError("weight must be greater than 0")
	}

	section, pile, err := w.FindPile(sectionID, pileID)
	if err != nil {
		return err
	}

	if !pile.Capacity().Fits(weight) {
		return newCapacityExceededError("pile", pile.ID(), pile.Capacity(), weight)
	}
	if !section.Capacity().Fits(weight) {
		return newCapacityExceededError("section", section.ID(), section.Capacity(), weight)
	}

	newWarehouseCapacity, err := w.capacity.Load(weight)
	if err != nil {
		return &InconsistentLoadError{Level: "warehouse", ID: w.id, Cause: err}
	}

	// Fit checks above guarantee these cannot fail.
	if err := pile.load(weight); err != nil {
		return &InconsistentLoadError{Level: "pile", ID: pile.ID(), Cause: err}
	}
	if err := section.load(weight); err != nil {
		return &InconsistentLoadError{Level: "section", ID: section.ID(), Cause: err}
	}
	w.capacity = newWarehouseCapacity

	return nil
}

// ReleaseLoad removes previously reserved weight from the given pile, its
// section and the warehouse. A release that would drive any level's load
// negative fails closed with an InconsistentLoadError and leaves every
// level untouched.
func (w *Warehouse) ReleaseLoad(sectionID, pileID kernel.UUID, weight int) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidError("weight must be greater than 0")
	}

	section, pile, err := w.FindPile(sectionID, pileID)
	if err != nil {
		return err
	}

	newPileCapacity, err := pile.capacity.Load(-weight)
	if err != nil {
		return &InconsistentLoadError{Level: "pile", ID: pile.ID(), Cause: err}
	}
	newSectionCapacity, err := section.capacity.Load(-weight)
	if err != nil {
		return &InconsistentLoadError{Level: "section", ID: section.ID(), Cause: err}
	}
	newWarehouseCapacity, err := w.capacity.Load(-weight)
	if err != nil {
		return &InconsistentLoadError{Level: "warehouse", ID: w.id, Cause: err}
	}

	pile.capacity = newPileCapacity
	section.capacity = newSectionCapacity
	w.capacity = newWarehouseCapacity

	return nil
}

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("warehouse name")
	}
	w.name = name
	return nil
}
