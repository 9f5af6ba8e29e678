package warehouse

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrPileIsNotConstructed indicates that a Pile was not created through
// NewPile or RestorePile.
var ErrPileIsNotConstructed = errors.New("Pile must be created via NewPile constructor")

// PileType categorizes the physical storage form of a pile.
type PileType int

const (
	PileTypeUnknown PileType = iota
	PileTypeRack
	PileTypeFloor
	PileTypeBin
	PileTypeBulk
)

func getPileTypeStrings() map[PileType]string {
	return map[PileType]string{
		PileTypeUnknown: "UNKNOWN",
		PileTypeRack:    "RACK",
		PileTypeFloor:   "FLOOR",
		PileTypeBin:     "BIN",
		PileTypeBulk:    "BULK",
	}
}

// PileTypeFromString parses the wire name of a pile type.
func PileTypeFromString(s string) (PileType, error) {
	for pt, name := range getPileTypeStrings() {
		if name == s && pt != PileTypeUnknown {
			return pt, nil
		}
	}
	return PileTypeUnknown, errs.NewValueIsInvalidErrorWithCause("pileType",
		fmt.Errorf("%q is not a known pile type", s))
}

// Validate checks that the pile type is one of the defined categories.
func (pt PileType) Validate() error {
	if pt == PileTypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("pileType",
			fmt.Errorf("%d is not a valid pile type", pt))
	}
	if _, ok := getPileTypeStrings()[pt]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("pileType",
			fmt.Errorf("%d is not a valid pile type", pt))
	}
	return nil
}

func (pt PileType) String() string {
	if s, ok := getPileTypeStrings()[pt]; ok {
		return s
	}
	return "UNKNOWN"
}

// Pile is the leaf storage unit of the containment hierarchy. All physical
// placement resolves to a (section, pile) pair, and the pile's capacity
// ledger is the first level checked.
type Pile struct {
	id       kernel.UUID
	name     string
	pileType PileType
	capacity kernel.Capacity

	guard kernel.ConstructorGuard
}

// NewPile creates an empty pile with the given total capacity.
func NewPile(id kernel.UUID, name string, pileType PileType, totalCapacity int) (*Pile, error) {
	capacity, err := kernel.NewCapacity(totalCapacity)
	if err != nil {
		return nil, err
	}
	return restorePile(id, name, pileType, capacity)
}

// RestorePile reconstructs a pile from persisted capacity state.
func RestorePile(id kernel.UUID, name string, pileType PileType, totalCapacity, currentLoad int) (*Pile, error) {
	capacity, err := kernel.RestoreCapacity(totalCapacity, currentLoad)
	if err != nil {
		return nil, err
	}
	return restorePile(id, name, pileType, capacity)
}

func restorePile(id kernel.UUID, name string, pileType PileType, capacity kernel.Capacity) (*Pile, error) {
	pile := &Pile{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		pile.setID(id),
		pile.setName(name),
		pile.setType(pileType),
	); err != nil {
		return nil, err
	}

	pile.capacity = capacity
	return pile, nil
}

// Validate ensures the pile was created via a constructor.
func (p *Pile) Validate() error {
	if p == nil {
		return ErrPileIsNotConstructed
	}
	return p.guard.Validate(ErrPileIsNotConstructed)
}

// ID returns the pile's unique identifier.
func (p *Pile) ID() kernel.UUID {
	return p.id
}

// Name returns the pile's human-readable name.
func (p *Pile) Name() string {
	return p.name
}

// Type returns the pile's storage category.
func (p *Pile) Type() PileType {
	return p.pileType
}

// Capacity returns the pile's capacity ledger.
func (p *Pile) Capacity() kernel.Capacity {
	return p.capacity
}

// load applies a weight delta to the pile's ledger. Only the warehouse root
// calls this, after its own fit checks.
func (p *Pile) load(delta int) error {
	next, err := p.capacity.Load(delta)
	if err != nil {
		return err
	}
	p.capacity = next
	return nil
}

func (p *Pile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pile) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("pile name")
	}
	p.name = name
	return nil
}

func (p *Pile) setType(pileType PileType) error {
	if err := pileType.Validate(); err != nil {
		return err
	}
	p.pileType = pileType
	return nil
}
