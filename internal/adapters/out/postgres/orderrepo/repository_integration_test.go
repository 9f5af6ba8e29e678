package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker
// interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL instance, including the compare-and-swap status update.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(status order.Status) *order.Order {
	item, err := order.NewOrderItem(kernel.NewUUID(), 2, 15, "20x30x40", decimal.NewFromFloat(49.90))
	suite.Require().NoError(err)

	source := kernel.NewUUID()
	destination := kernel.NewUUID()
	ord, err := order.RestoreOrder(kernel.NewUUID(), status, &source, &destination, []*order.OrderItem{item})
	suite.Require().NoError(err)
	return ord
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	ord := suite.createTestOrder(order.Pending)

	suite.tracker.On("TrackAggregate", ord.ID(), ord).Once()
	suite.Require().NoError(suite.repository.Add(ctx, ord))

	loaded, err := suite.repository.Get(ctx, ord.ID())
	suite.Require().NoError(err)

	suite.Equal(order.Pending, loaded.Status())
	suite.Require().Len(loaded.Items(), 1)
	suite.Equal(30, loaded.Weight())
	suite.True(loaded.Items()[0].UnitPrice().Equal(decimal.NewFromFloat(49.90)))
	suite.Require().NotNil(loaded.SourceWarehouseID())
	suite.True(loaded.SourceWarehouseID().IsEqual(*ord.SourceWarehouseID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_CompareAndSwap() {
	ctx := context.Background()
	ord := suite.createTestOrder(order.Pending)

	suite.tracker.On("TrackAggregate", ord.ID(), ord)
	suite.Require().NoError(suite.repository.Add(ctx, ord))

	previous := ord.Status()
	suite.Require().NoError(ord.ChangeStatus(order.LocalAssignedToPickup))
	suite.Require().NoError(suite.repository.UpdateStatus(ctx, ord, previous))

	loaded, err := suite.repository.Get(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.Equal(order.LocalAssignedToPickup, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_ConflictOnStaleStatus() {
	ctx := context.Background()
	ord := suite.createTestOrder(order.Pending)

	suite.tracker.On("TrackAggregate", ord.ID(), ord)
	suite.Require().NoError(suite.repository.Add(ctx, ord))

	// Another transition already moved the row past Pending.
	suite.Require().NoError(ord.ChangeStatus(order.LocalAssignedToPickup))
	suite.Require().NoError(suite.repository.UpdateStatus(ctx, ord, order.Pending))

	stale := suite.createTestOrder(order.Pending)
	restored, err := order.RestoreOrder(
		ord.ID(), order.Pending, stale.SourceWarehouseID(), stale.DestinationWarehouseID(), stale.Items())
	suite.Require().NoError(err)
	suite.Require().NoError(restored.ChangeStatus(order.Cancelled))

	err = suite.repository.UpdateStatus(ctx, restored, order.Pending)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllActive_ExcludesTerminalOrders() {
	ctx := context.Background()
	active := suite.createTestOrder(order.CityPickedUp)
	delivered := suite.createTestOrder(order.CityDelivered)
	cancelled := suite.createTestOrder(order.Cancelled)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, active))
	suite.Require().NoError(suite.repository.Add(ctx, delivered))
	suite.Require().NoError(suite.repository.Add(ctx, cancelled))

	orders, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(orders, 1)
	suite.True(orders[0].ID().IsEqual(active.ID()))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
