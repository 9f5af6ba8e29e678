package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeStatusCommandHandler_Handle_NonTerminal(t *testing.T) {
	ctx := t.Context()
	w, _, _ := warehouseFixture(t, 100)
	ord := orderFixture(t, w.ID(), order.Pending, 40)
	mgr := managerFixture(t, w.ID())

	cmd, err := commands.NewChangeStatusCommand(ord.ID(), mgr.ID(), order.LocalAssignedToPickup)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	placementRepo := new(MockPlacementRepository)
	managerRepo := new(MockManagerRepository)

	uow := new(MockFulfillmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("ManagerRepository").Return(managerRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PlacementRepository").Return(placementRepo)

	managerRepo.On("Get", mock.Anything, mgr.ID()).Return(mgr, nil).Once()
	orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once()
	placementRepo.On("GetByOrderID", mock.Anything, ord.ID()).Return([]*warehouse.Placement{}, nil).Once()
	orderRepo.On("UpdateStatus", mock.Anything, ord, order.Pending).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeStatusCommandHandler(factory, services.NewCompletionService())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.Equal(t, order.LocalAssignedToPickup, updated.Status())
	uow.AssertExpectations(t)
	placementRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestChangeStatusCommandHandler_Handle_DeliveryReleasesPlacement(t *testing.T) {
	ctx := t.Context()
	w, sectionID, pileID := warehouseFixture(t, 100)
	require.NoError(t, w.PlaceLoad(sectionID, pileID, 40))

	ord := orderFixture(t, w.ID(), order.CityReadyForLocalDeliveryBatched, 40)
	mgr := managerFixture(t, w.ID())

	placement, err := warehouse.NewPlacement(
		kernel.NewUUID(), ord.ID(), w.ID(), sectionID, pileID, 40)
	require.NoError(t, err)

	cmd, err := commands.NewChangeStatusCommand(ord.ID(), mgr.ID(), order.CityDelivered)
	require.NoError(t, err)

	warehouseRepo := new(MockWarehouseRepository)
	orderRepo := new(MockOrderRepository)
	placementRepo := new(MockPlacementRepository)
	managerRepo := new(MockManagerRepository)
	auditRepo := new(MockAuditRepository)

	uow := new(MockFulfillmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("ManagerRepository").Return(managerRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PlacementRepository").Return(placementRepo)
	uow.On("WarehouseRepository").Return(warehouseRepo)
	uow.On("AuditRepository").Return(auditRepo)

	managerRepo.On("Get", mock.Anything, mgr.ID()).Return(mgr, nil).Once()
	orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once()
	placementRepo.On("GetByOrderID", mock.Anything, ord.ID()).
		Return([]*warehouse.Placement{placement}, nil).Once()
	warehouseRepo.On("GetForUpdate", mock.Anything, w.ID()).Return(w, nil).Once()
	warehouseRepo.On("Update", mock.Anything, w).Return(nil).Once()
	placementRepo.On("Delete", mock.Anything, placement.ID()).Return(nil).Once()
	orderRepo.On("UpdateStatus", mock.Anything, ord, order.CityReadyForLocalDeliveryBatched).Return(nil).Once()
	auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Record")).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeStatusCommandHandler(factory, services.NewCompletionService())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.Equal(t, order.CityDelivered, updated.Status())
	assert.Equal(t, 0, w.Capacity().Current())
	uow.AssertExpectations(t)
	warehouseRepo.AssertExpectations(t)
	placementRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
}

func TestChangeStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	w, _, _ := warehouseFixture(t, 100)
	ord := orderFixture(t, w.ID(), order.Pending, 40)
	mgr := managerFixture(t, w.ID())

	cmd, err := commands.NewChangeStatusCommand(ord.ID(), mgr.ID(), order.CityDelivered)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	placementRepo := new(MockPlacementRepository)
	managerRepo := new(MockManagerRepository)

	uow := new(MockFulfillmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("ManagerRepository").Return(managerRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PlacementRepository").Return(placementRepo)

	managerRepo.On("Get", mock.Anything, mgr.ID()).Return(mgr, nil).Once()
	orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once()
	placementRepo.On("GetByOrderID", mock.Anything, ord.ID()).Return([]*warehouse.Placement{}, nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeStatusCommandHandler(factory, services.NewCompletionService())
	updated, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Nil(t, updated)
	assert.Equal(t, order.Pending, ord.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
