package warehouse

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
)

var (
	// ErrCapacityExceeded is the sentinel for placements that do not fit
	// into the target pile or section.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrInconsistentLoad signals load state that violates the capacity
	// invariants, e.g. a release that would drive a load negative. It
	// indicates a bug or external tampering; operations fail closed
	// instead of clamping.
	ErrInconsistentLoad = errors.New("inconsistent load state")
)

// CapacityExceededError reports which containment level rejected a
// placement, with enough numbers for an operator to pick a different target.
type CapacityExceededError struct {
	Level       string
	ID          kernel.UUID
	CurrentLoad int
	Requested   int
	Capacity    int
}

func newCapacityExceededError(level string, id kernel.UUID, capacity kernel.Capacity, requested int) *CapacityExceededError {
	return &CapacityExceededError{
		Level:       level,
		ID:          id,
		CurrentLoad: capacity.Current(),
		Requested:   requested,
		Capacity:    capacity.Total(),
	}
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: %s %s: current load %d + requested %d exceeds capacity %d",
		ErrCapacityExceeded, e.Level, e.ID, e.CurrentLoad, e.Requested, e.Capacity)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// InconsistentLoadError wraps the arithmetic failure that exposed the
// inconsistency, naming the level it was detected at.
type InconsistentLoadError struct {
	Level string
	ID    kernel.UUID
	Cause error
}

func (e *InconsistentLoadError) Error() string {
	return fmt.Sprintf("%s: %s %s: %s", ErrInconsistentLoad, e.Level, e.ID, e.Cause)
}

func (e *InconsistentLoadError) Unwrap() error {
	return ErrInconsistentLoad
}
