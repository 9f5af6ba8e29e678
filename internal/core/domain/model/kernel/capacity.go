package kernel

import (
	"fulfillment/internal/pkg/errs"
)

// Capacity is the capacity ledger value object shared by warehouses,
// sections and piles. It tracks a fixed total capacity and the load
// currently occupying it, both in whole mass units.
//
// Capacity is immutable: Load returns a new value instead of mutating the
// receiver, so a failed fit check can never leave a half-applied delta
// behind. The invariant 0 <= current <= total holds for every value this
// package hands out.
type Capacity struct {
	total   int
	current int
}

// NewCapacity creates an empty capacity ledger with the given total.
// Total must be greater than zero.
func NewCapacity(total int) (Capacity, error) {
	if total <= 0 {
		return Capacity{}, errs.NewValueIsInvalidError("capacity must be greater than 0")
	}
	return Capacity{total: total}, nil
}

// RestoreCapacity reconstructs a capacity ledger from persisted state.
// Rejects any pair that violates 0 <= current <= total, so corrupted rows
// surface at load time instead of during arithmetic.
func RestoreCapacity(total, current int) (Capacity, error) {
	if total <= 0 {
		return Capacity{}, errs.NewValueIsInvalidError("capacity must be greater than 0")
	}
	if current < 0 || current > total {
		return Capacity{}, errs.NewValueIsOutOfRangeError("currentLoad", current, 0, total)
	}
	return Capacity{total: total, current: current}, nil
}

// Total returns the fixed total capacity.
func (c Capacity) Total() int {
	return c.total
}

// Current returns the load currently occupying the capacity.
func (c Capacity) Current() int {
	return c.current
}

// Remaining returns total minus current load. Used for error messages and
// for validating child capacities at section/pile creation time.
func (c Capacity) Remaining() int {
	return c.total - c.current
}

// Fits reports whether applying delta keeps the load within total.
// A release (negative delta) is always assumed to fit.
func (c Capacity) Fits(delta int) bool {
	if delta <= 0 {
		return true
	}
	return c.current+delta <= c.total
}

// Load applies delta and returns the resulting ledger. A positive delta
// exceeding the total, or a negative delta driving the load below zero,
// returns a ValueIsOutOfRangeError and leaves the receiver untouched.
func (c Capacity) Load(delta int) (Capacity, error) {
	next := c.current + delta
	if next < 0 || next > c.total {
		return Capacity{}, errs.NewValueIsOutOfRangeError("currentLoad", next, 0, c.total)
	}
	return Capacity{total: c.total, current: next}, nil
}
