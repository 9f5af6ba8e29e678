package audit

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrRecordIsNotConstructed indicates that a Record was not created through
// NewRecord or RestoreRecord.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Action enumerates the order lifecycle events that leave an audit trail.
type Action int

const (
	ActionUnknown Action = iota
	ActionOrderPlacement
	ActionOrderDelivery
	ActionOrderCancellation
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		ActionUnknown:           "UNKNOWN",
		ActionOrderPlacement:    "ORDER_PLACEMENT",
		ActionOrderDelivery:     "ORDER_DELIVERY",
		ActionOrderCancellation: "ORDER_CANCELLATION",
	}
}

// ActionFromString parses the wire name of an audit action.
func ActionFromString(s string) (Action, error) {
	for a, name := range getActionStrings() {
		if name == s && a != ActionUnknown {
			return a, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidErrorWithCause("action",
		fmt.Errorf("%q is not a known audit action", s))
}

// Validate checks that the action is one of the defined events.
func (a Action) Validate() error {
	if a == ActionUnknown {
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%d is not a valid audit action", a))
	}
	if _, ok := getActionStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%d is not a valid audit action", a))
	}
	return nil
}

func (a Action) String() string {
	if s, ok := getActionStrings()[a]; ok {
		return s
	}
	return "UNKNOWN"
}

// Record is a write-once entry of who did what to which order at which
// warehouse. Records are only ever inserted, never updated or deleted.
type Record struct {
	id          kernel.UUID
	orderID     kernel.UUID
	warehouseID kernel.UUID
	managerID   kernel.UUID
	action      Action
	details     string
	occurredAt  time.Time

	guard kernel.ConstructorGuard
}

// NewRecord creates an audit record stamped with the current time.
func NewRecord(id, orderID, warehouseID, managerID kernel.UUID, action Action, details string) (*Record, error) {
	return RestoreRecord(id, orderID, warehouseID, managerID, action, details, time.Now().UTC())
}

// RestoreRecord reconstructs an audit record from persisted state.
func RestoreRecord(
	id, orderID, warehouseID, managerID kernel.UUID,
	action Action,
	details string,
	occurredAt time.Time,
) (*Record, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		warehouseID.Validate(),
		managerID.Validate(),
		action.Validate(),
	); err != nil {
		return nil, err
	}

	return &Record{
		id:          id,
		orderID:     orderID,
		warehouseID: warehouseID,
		managerID:   managerID,
		action:      action,
		details:     details,
		occurredAt:  occurredAt,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the record was created via a constructor.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// OrderID returns the order the event concerns.
func (r *Record) OrderID() kernel.UUID {
	return r.orderID
}

// WarehouseID returns the warehouse where the event happened.
func (r *Record) WarehouseID() kernel.UUID {
	return r.warehouseID
}

// ManagerID returns the manager who triggered the event.
func (r *Record) ManagerID() kernel.UUID {
	return r.managerID
}

// Action returns the recorded lifecycle event.
func (r *Record) Action() Action {
	return r.action
}

// Details returns the free-form context attached to the event.
func (r *Record) Details() string {
	return r.details
}

// OccurredAt returns when the event happened.
func (r *Record) OccurredAt() time.Time {
	return r.occurredAt
}
