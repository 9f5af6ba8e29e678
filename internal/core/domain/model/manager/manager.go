package manager

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrManagerIsNotConstructed indicates that a Manager was not created
// through NewManager or RestoreManager.
var ErrManagerIsNotConstructed = errors.New("Manager must be created via NewManager constructor")

// Manager is an operator scoped to exactly one warehouse. Placement and
// completion both run on behalf of a manager, and fail with a forbidden
// error when the manager's warehouse does not match the order's.
type Manager struct {
	id          kernel.UUID
	name        string
	warehouseID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewManager creates a manager attached to the given warehouse.
func NewManager(id kernel.UUID, name string, warehouseID kernel.UUID) (*Manager, error) {
	return RestoreManager(id, name, warehouseID)
}

// RestoreManager reconstructs a manager from persisted state.
func RestoreManager(id kernel.UUID, name string, warehouseID kernel.UUID) (*Manager, error) {
	m := &Manager{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setWarehouseID(warehouseID),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the manager was created via a constructor.
func (m *Manager) Validate() error {
	if m == nil {
		return ErrManagerIsNotConstructed
	}
	return m.guard.Validate(ErrManagerIsNotConstructed)
}

// ID returns the manager's unique identifier.
func (m *Manager) ID() kernel.UUID {
	return m.id
}

// Name returns the manager's display name.
func (m *Manager) Name() string {
	return m.name
}

// WarehouseID returns the warehouse the manager operates.
func (m *Manager) WarehouseID() kernel.UUID {
	return m.warehouseID
}

// CanActOn reports whether the manager is allowed to operate on the given
// warehouse.
func (m *Manager) CanActOn(warehouseID kernel.UUID) bool {
	return m.warehouseID.IsEqual(warehouseID)
}

// Authorize returns a ForbiddenError when the manager is not scoped to the
// given warehouse.
func (m *Manager) Authorize(warehouseID kernel.UUID) error {
	if !m.CanActOn(warehouseID) {
		return errs.NewForbiddenError(m.id.String(), warehouseID.String())
	}
	return nil
}

func (m *Manager) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Manager) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("manager name")
	}
	m.name = name
	return nil
}

func (m *Manager) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}
	m.warehouseID = warehouseID
	return nil
}
