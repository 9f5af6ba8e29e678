package warehouse

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrSectionIsNotConstructed indicates that a Section was not created
// through NewSection or RestoreSection.
var ErrSectionIsNotConstructed = errors.New("Section must be created via NewSection constructor")

// SectionType categorizes the storage conditions of a section.
type SectionType int

const (
	SectionTypeUnknown SectionType = iota
	SectionTypeStandard
	SectionTypeRefrigerated
	SectionTypeHazardous
	SectionTypeBulk
)

func getSectionTypeStrings() map[SectionType]string {
	return map[SectionType]string{
		SectionTypeUnknown:      "UNKNOWN",
		SectionTypeStandard:     "STANDARD",
		SectionTypeRefrigerated: "REFRIGERATED",
		SectionTypeHazardous:    "HAZARDOUS",
		SectionTypeBulk:         "BULK",
	}
}

// SectionTypeFromString parses the wire name of a section type.
func SectionTypeFromString(s string) (SectionType, error) {
	for st, name := range getSectionTypeStrings() {
		if name == s && st != SectionTypeUnknown {
			return st, nil
		}
	}
	return SectionTypeUnknown, errs.NewValueIsInvalidErrorWithCause("sectionType",
		fmt.Errorf("%q is not a known section type", s))
}

// Validate checks that the section type is one of the defined categories.
func (st SectionType) Validate() error {
	if st == SectionTypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("sectionType",
			fmt.Errorf("%d is not a valid section type", st))
	}
	if _, ok := getSectionTypeStrings()[st]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("sectionType",
			fmt.Errorf("%d is not a valid section type", st))
	}
	return nil
}

func (st SectionType) String() string {
	if s, ok := getSectionTypeStrings()[st]; ok {
		return s
	}
	return "UNKNOWN"
}

// Section is the middle level of the containment hierarchy. It owns its
// piles exclusively and enforces the sibling-sum rule when piles are added:
// the total capacity of all piles never exceeds the section's own capacity.
type Section struct {
	id          kernel.UUID
	name        string
	sectionType SectionType
	capacity    kernel.Capacity
	piles       []*Pile

	guard kernel.ConstructorGuard
}

// NewSection creates an empty section with the given total capacity.
func NewSection(id kernel.UUID, name string, sectionType SectionType, totalCapacity int) (*Section, error) {
	capacity, err := kernel.NewCapacity(totalCapacity)
	if err != nil {
		return nil, err
	}
	return restoreSection(id, name, sectionType, capacity, nil)
}

// RestoreSection reconstructs a section and its piles from persisted state.
func RestoreSection(
	id kernel.UUID,
	name string,
	sectionType SectionType,
	totalCapacity, currentLoad int,
	piles []*Pile,
) (*Section, error) {
	capacity, err := kernel.RestoreCapacity(totalCapacity, currentLoad)
	if err != nil {
		return nil, err
	}
	return restoreSection(id, name, sectionType, capacity, piles)
}

func restoreSection(
	id kernel.UUID,
	name string,
	sectionType SectionType,
	capacity kernel.Capacity,
	piles []*Pile,
) (*Section, error) {
	section := &Section{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		section.setID(id),
		section.setName(name),
		section.setType(sectionType),
	); err != nil {
		return nil, err
	}

	section.capacity = capacity

	for _, pile := range piles {
		if err := pile.Validate(); err != nil {
			return nil, err
		}
		section.piles = append(section.piles, pile)
	}

	return section, nil
}

// Validate ensures the section was created via a constructor.
func (s *Section) Validate() error {
	if s == nil {
		return ErrSectionIsNotConstructed
	}
	return s.guard.Validate(ErrSectionIsNotConstructed)
}

// ID returns the section's unique identifier.
func (s *Section) ID() kernel.UUID {
	return s.id
}

// Name returns the section's human-readable name.
func (s *Section) Name() string {
	return s.name
}

// Type returns the section's storage category.
func (s *Section) Type() SectionType {
	return s.sectionType
}

// Capacity returns the section's capacity ledger.
func (s *Section) Capacity() kernel.Capacity {
	return s.capacity
}

// Piles returns the section's piles.
func (s *Section) Piles() []*Pile {
	return s.piles
}

// RemainingChildCapacity returns how much capacity is still available for
// new piles: the section's total minus the sum of all existing pile totals.
func (s *Section) RemainingChildCapacity() int {
	sum := 0
	for _, pile := range s.piles {
		sum += pile.Capacity().Total()
	}
	return s.capacity.Total() - sum
}

// AddPile attaches a new pile to the section. The pile's total capacity
// must not exceed the remaining child capacity (sibling-sum rule, enforced
// at creation time only).
func (s *Section) AddPile(pile *Pile) error {
	if err := pile.Validate(); err != nil {
		return err
	}

	remaining := s.RemainingChildCapacity()
	if pile.Capacity().Total() > remaining {
		return &CapacityExceededError{
			Level:       "section",
			ID:          s.id,
			CurrentLoad: s.capacity.Total() - remaining,
			Requested:   pile.Capacity().Total(),
			Capacity:    s.capacity.Total(),
		}
	}

	s.piles = append(s.piles, pile)
	return nil
}

// FindPile returns the pile with the given id or an ObjectNotFoundError.
func (s *Section) FindPile(pileID kernel.UUID) (*Pile, error) {
	for _, pile := range s.piles {
		if pile.ID().IsEqual(pileID) {
			return pile, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("pile", pileID.String())
}

// load applies a weight delta to the section's own ledger.
func (s *Section) load(delta int) error {
	next, err := s.capacity.Load(delta)
	if err != nil {
		return err
	}
	s.capacity = next
	return nil
}

func (s *Section) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Section) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("section name")
	}
	s.name = name
	return nil
}

func (s *Section) setType(sectionType SectionType) error {
	if err := sectionType.Validate(); err != nil {
		return err
	}
	s.sectionType = sectionType
	return nil
}
