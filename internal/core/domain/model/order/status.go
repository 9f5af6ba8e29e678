package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for status transitions outside the
// defined successor sets.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a (current, requested) status pair that is
// not covered by the transition graph.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of an order. It implements a state
// machine with two parallel tracks that both start in Pending:
//
// Local track:
//
//	Pending -> LocalAssignedToPickup -> LocalPickedUp -> LocalDelivered
//
// Inter-city track:
//
//	Pending -> CityAssignedToPickup -> CityPickedUp
//	        -> CityArrivedAtSourceWarehouse -> CityReadyForIntercityTransfer
//	        -> CityReadyForIntercityTransferBatched
//	        -> CityInTransitToDestinationWarehouse
//	        -> CityArrivedAtDestinationWarehouse -> CityReadyForLocalDelivery
//	        -> CityReadyForLocalDeliveryBatched -> CityDelivered
//
// Cancelled is reachable from every state, including the delivered states;
// the source system allows cancelling a delivered order and that behavior is
// preserved deliberately. Requesting the current status again is a legal
// no-op so idempotent retries never fail.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every freshly created order.
	Pending

	// LocalAssignedToPickup through LocalDelivered form the local delivery
	// track for orders that never cross city boundaries.
	LocalAssignedToPickup
	LocalPickedUp
	LocalDelivered

	// CityAssignedToPickup through CityDelivered form the inter-city track:
	// pickup, arrival at the source warehouse, batching for transfer,
	// transit, arrival at the destination warehouse, batching for local
	// delivery, and final delivery.
	CityAssignedToPickup
	CityPickedUp
	CityArrivedAtSourceWarehouse
	CityReadyForIntercityTransfer
	CityReadyForIntercityTransferBatched
	CityInTransitToDestinationWarehouse
	CityArrivedAtDestinationWarehouse
	CityReadyForLocalDelivery
	CityReadyForLocalDeliveryBatched
	CityDelivered

	// Cancelled pre-empts any in-flight state and is terminal.
	Cancelled
)

// getStatusStrings returns the wire names of all statuses, including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                              "UNKNOWN",
		Pending:                              "PENDING",
		LocalAssignedToPickup:                "LOCAL_ASSIGNED_TO_PICKUP",
		LocalPickedUp:                        "LOCAL_PICKED_UP",
		LocalDelivered:                       "LOCAL_DELIVERED",
		CityAssignedToPickup:                 "CITY_ASSIGNED_TO_PICKUP",
		CityPickedUp:                         "CITY_PICKED_UP",
		CityArrivedAtSourceWarehouse:         "CITY_ARRIVED_AT_SOURCE_WAREHOUSE",
		CityReadyForIntercityTransfer:        "CITY_READY_FOR_INTERCITY_TRANSFER",
		CityReadyForIntercityTransferBatched: "CITY_READY_FOR_INTERCITY_TRANSFER_BATCHED",
		CityInTransitToDestinationWarehouse:  "CITY_IN_TRANSIT_TO_DESTINATION_WAREHOUSE",
		CityArrivedAtDestinationWarehouse:    "CITY_ARRIVED_AT_DESTINATION_WAREHOUSE",
		CityReadyForLocalDelivery:            "CITY_READY_FOR_LOCAL_DELIVERY",
		CityReadyForLocalDeliveryBatched:     "CITY_READY_FOR_LOCAL_DELIVERY_BATCHED",
		CityDelivered:                        "CITY_DELIVERED",
		Cancelled:                            "CANCELLED",
	}
}

// successors returns the fixed successor set of each status. Cancelled and
// the no-op case are handled separately in CanTransitionTo, so neither
// appears here.
func successors() map[Status][]Status {
	return map[Status][]Status{
		Pending:                              {LocalAssignedToPickup, CityAssignedToPickup},
		LocalAssignedToPickup:                {LocalPickedUp},
		LocalPickedUp:                        {LocalDelivered},
		LocalDelivered:                       {},
		CityAssignedToPickup:                 {CityPickedUp},
		CityPickedUp:                         {CityArrivedAtSourceWarehouse},
		CityArrivedAtSourceWarehouse:         {CityReadyForIntercityTransfer},
		CityReadyForIntercityTransfer:        {CityReadyForIntercityTransferBatched},
		CityReadyForIntercityTransferBatched: {CityInTransitToDestinationWarehouse},
		CityInTransitToDestinationWarehouse:  {CityArrivedAtDestinationWarehouse},
		CityArrivedAtDestinationWarehouse:    {CityReadyForLocalDelivery},
		CityReadyForLocalDelivery:            {CityReadyForLocalDeliveryBatched},
		CityReadyForLocalDeliveryBatched:     {CityDelivered},
		CityDelivered:                        {},
		Cancelled:                            {},
	}
}

// StatusFromString parses the wire name of a status ("PENDING",
// "CITY_PICKED_UP", ...). Unknown names fail with a ValueIsInvalidError.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer and is
// safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no successors except Cancelled.
func (s Status) IsTerminal() bool {
	return s == LocalDelivered || s == CityDelivered || s == Cancelled
}

// IsDelivered reports whether the status is one of the two delivered
// terminal states.
func (s Status) IsDelivered() bool {
	return s == LocalDelivered || s == CityDelivered
}

// CanTransitionTo validates the (current, requested) pair without performing
// the transition. The rules, in order:
//
//  1. Cancelled is always reachable, even from the delivered states. That
//     last part mirrors the source system literally; see the design notes
//     before tightening it.
//  2. Requesting the current status is a legal no-op.
//  3. Anything else must appear in the fixed successor set of the current
//     status, otherwise the pair fails with an InvalidTransitionError.
func (s Status) CanTransitionTo(requested Status) error {
	if err := requested.Validate(); err != nil {
		return err
	}

	if requested == Cancelled || requested == s {
		return nil
	}

	for _, next := range successors()[s] {
		if next == requested {
			return nil
		}
	}

	return &InvalidTransitionError{From: s, To: requested}
}

// TransitionTo validates the transition and returns the resulting status.
// The receiver is never mutated.
func (s Status) TransitionTo(requested Status) (Status, error) {
	if err := s.CanTransitionTo(requested); err != nil {
		return Unknown, err
	}
	return requested, nil
}

// NextAfterPlacement returns the status an order advances to when it is
// physically placed into a pile, and whether placement advances it at all.
//
// The mapping is intentionally narrow: only the two arrived-at-warehouse
// hand-offs advance on placement, every other status is left unchanged.
func (s Status) NextAfterPlacement() (Status, bool) {
	switch s {
	case CityArrivedAtSourceWarehouse:
		return CityReadyForIntercityTransfer, true
	case CityArrivedAtDestinationWarehouse:
		return CityReadyForLocalDelivery, true
	default:
		return s, false
	}
}
