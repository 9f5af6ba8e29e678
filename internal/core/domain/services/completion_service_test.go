package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/manager"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placementFor(t *testing.T, ord *order.Order, w *warehouse.Warehouse, sectionID, pileID kernel.UUID, weight int) *warehouse.Placement {
	t.Helper()

	p, err := warehouse.NewPlacement(kernel.NewUUID(), ord.ID(), w.ID(), sectionID, pileID, weight)
	require.NoError(t, err)
	return p
}

func TestCompletionService_Complete(t *testing.T) {
	svc := services.NewCompletionService()

	t.Run("non_terminal_transition_has_no_capacity_effects", func(t *testing.T) {
		w, sectionID, pileID := buildHierarchy(t, 1000, 200, 100)
		require.NoError(t, w.PlaceLoad(sectionID, pileID, 40))

		ord := orderWithWeight(t, w.ID(), order.CityReadyForIntercityTransfer, 40)
		mgr, err := manager.NewManager(kernel.NewUUID(), "Amira", w.ID())
		require.NoError(t, err)

		result, err := svc.Complete(mgr, ord, order.CityReadyForIntercityTransferBatched, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, order.CityReadyForIntercityTransferBatched, ord.Status())
		assert.Empty(t, result.ReleasedWarehouses)
		assert.Nil(t, result.Audit)
		assert.Equal(t, 40, w.Capacity().Current())
	})

	t.Run("delivery_releases_outstanding_placement", func(t *testing.T) {
		w, sectionID, pileID := buildHierarchy(t, 1000, 200, 100)
		require.NoError(t, w.PlaceLoad(sectionID, pileID, 40))

		ord := orderWithWeight(t, w.ID(), order.CityReadyForLocalDeliveryBatched, 40)
		mgr, err := manager.NewManager(kernel.NewUUID(), "Amira", w.ID())
		require.NoError(t, err)

		placement := placementFor(t, ord, w, sectionID, pileID, 40)

		result, err := svc.Complete(mgr, ord, order.CityDelivered,
			[]*warehouse.Placement{placement}, []*warehouse.Warehouse{w})

		require.NoError(t, err)
		assert.Equal(t, 0, w.Capacity().Current())
		assert.Equal(t, []*warehouse.Warehouse{w}, result.ReleasedWarehouses)
		require.NotNil(t, result.Audit)
		assert.Equal(t, audit.ActionOrderDelivery, result.Audit.Action())
	})

	t.Run("cancellation_releases_placements_across_warehouses", func(t *testing.T) {
		source, sourceSection, sourcePile := buildHierarchy(t, 1000, 200, 100)
		destination, destSection, destPile := buildHierarchy(t, 1000, 200, 100)
		require.NoError(t, source.PlaceLoad(sourceSection, sourcePile, 30))
		require.NoError(t, destination.PlaceLoad(destSection, destPile, 30))

		sourceID := source.ID()
		ord := orderWithWeight(t, sourceID, order.CityInTransitToDestinationWarehouse, 30)
		mgr, err := manager.NewManager(kernel.NewUUID(), "Amira", sourceID)
		require.NoError(t, err)

		placements := []*warehouse.Placement{
			placementFor(t, ord, source, sourceSection, sourcePile, 30),
			placementFor(t, ord, destination, destSection, destPile, 30),
		}

		result, err := svc.Complete(mgr, ord, order.Cancelled,
			placements, []*warehouse.Warehouse{source, destination})

		require.NoError(t, err)
		assert.Equal(t, 0, source.Capacity().Current())
		assert.Equal(t, 0, destination.Capacity().Current())
		assert.Len(t, result.ReleasedWarehouses, 2)
		require.NotNil(t, result.Audit)
		assert.Equal(t, audit.ActionOrderCancellation, result.Audit.Action())
	})

	t.Run("same_status_request_is_an_idempotent_noop", func(t *testing.T) {
		w, sectionID, pileID := buildHierarchy(t, 1000, 200, 100)
		require.NoError(t, w.PlaceLoad(sectionID, pileID, 40))

		ord := orderWithWeight(t, w.ID(), order.Cancelled, 40)
		mgr, err := manager.NewManager(kernel.NewUUID(), "Amira", w.ID())
		require.NoError(t, err)

		placement := placementFor(t, ord, w, sectionID, pileID, 40)

		result, err := svc.Complete(mgr, ord, order.Cancelled,
			[]*warehouse.Placement{placement}, []*warehouse.Warehouse{w})

		require.NoError(t, err)
		assert.Empty(t, result.ReleasedWarehouses)
		assert.Nil(t, result.Audit)
		assert.Equal(t, 40, w.Capacity().Current())
	})

	t.Run("invalid_transition_is_rejected", func(t *testing.T) {
		w, _, _ := buildHierarchy(t, 1000, 200, 100)
		ord := orderWithWeight(t, w.ID(), order.Pending, 40)
		mgr, err := manager.NewManager(kernel.NewUUID(), "Amira", w.ID())
		require.NoError(t, err)

		_, err = svc.Complete(mgr, ord, order.CityDelivered, nil, nil)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Pending, ord.Status())
	})

	t.Run("forbids_manager_from_other_warehouse", func(t *testing.T) {
		w, _, _ := buildHierarchy(t, 1000, 200, 100)
		ord := orderWithWeight(t, w.ID(), order.Pending, 40)
		mgr, err := manager.NewManager(kernel.NewUUID(), "Karim", kernel.NewUUID())
		require.NoError(t, err)

		_, err = svc.Complete(mgr, ord, order.LocalAssignedToPickup, nil, nil)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.Pending, ord.Status())
	})

	t.Run("release_with_missing_warehouse_fails_closed", func(t *testing.T) {
		w, sectionID, pileID := buildHierarchy(t, 1000, 200, 100)
		require.NoError(t, w.PlaceLoad(sectionID, pileID, 40))

		ord := orderWithWeight(t, w.ID(), order.CityReadyForLocalDeliveryBatched, 40)
		mgr, err := manager.NewManager(kernel.NewUUID(), "Amira", w.ID())
		require.NoError(t, err)

		placement := placementFor(t, ord, w, sectionID, pileID, 40)

		// Warehouse list is empty, so the placement cannot be released.
		_, err = svc.Complete(mgr, ord, order.CityDelivered,
			[]*warehouse.Placement{placement}, nil)

		require.ErrorIs(t, err, warehouse.ErrInconsistentLoad)
		assert.Equal(t, 40, w.Capacity().Current())
	})

	t.Run("release_exceeding_recorded_load_fails_closed", func(t *testing.T) {
		w, sectionID, pileID := buildHierarchy(t, 1000, 200, 100)
		require.NoError(t, w.PlaceLoad(sectionID, pileID, 20))

		ord := orderWithWeight(t, w.ID(), order.CityReadyForLocalDeliveryBatched, 40)
		mgr, err := manager.NewManager(kernel.NewUUID(), "Amira", w.ID())
		require.NoError(t, err)

		// Placement claims more weight than the pile currently holds.
		placement := placementFor(t, ord, w, sectionID, pileID, 40)

		_, err = svc.Complete(mgr, ord, order.CityDelivered,
			[]*warehouse.Placement{placement}, []*warehouse.Warehouse{w})

		require.ErrorIs(t, err, warehouse.ErrInconsistentLoad)
		assert.Equal(t, 20, w.Capacity().Current())
	})

	t.Run("cancel_after_delivery_with_no_placements", func(t *testing.T) {
		w, _, _ := buildHierarchy(t, 1000, 200, 100)
		ord := orderWithWeight(t, w.ID(), order.CityDelivered, 40)
		mgr, err := manager.NewManager(kernel.NewUUID(), "Amira", w.ID())
		require.NoError(t, err)

		result, err := svc.Complete(mgr, ord, order.Cancelled, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, ord.Status())
		require.NotNil(t, result.Audit)
		assert.Equal(t, audit.ActionOrderCancellation, result.Audit.Action())
	})
}
