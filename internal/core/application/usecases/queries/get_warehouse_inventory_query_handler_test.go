package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/warehouserepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker
// interface, used when seeding data through the repositories.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

type GetWarehouseInventoryQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetWarehouseInventoryQueryHandler
}

func (suite *GetWarehouseInventoryQueryHandlerTestSuite) SetupSuite() {
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
		&warehouserepo.WarehouseDTO{},
		&warehouserepo.SectionDTO{},
		&warehouserepo.PileDTO{},
	))

	suite.handler = queries.NewGetWarehouseInventoryQueryHandler(db)
}

func (suite *GetWarehouseInventoryQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE piles, sections, warehouses").Error)
}

func (suite *GetWarehouseInventoryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetWarehouseInventoryQueryHandlerTestSuite) seedWarehouse() (*warehouse.Warehouse, kernel.UUID, kernel.UUID) {
	w, err := warehouse.NewWarehouse(kernel.NewUUID(), "Central Hub", "Tunis", "12 Rue de la Gare", 1000)
	suite.Require().NoError(err)

	section, err := warehouse.NewSection(kernel.NewUUID(), "Section A", warehouse.SectionTypeRefrigerated, 200)
	suite.Require().NoError(err)
	suite.Require().NoError(w.AddSection(section))

	pile, err := warehouse.NewPile(kernel.NewUUID(), "Pile A-1", warehouse.PileTypeRack, 100)
	suite.Require().NoError(err)
	suite.Require().NoError(section.AddPile(pile))

	suite.Require().NoError(w.PlaceLoad(section.ID(), pile.ID(), 60))

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	repository := warehouserepo.NewGormWarehouseRepository(suite.db, tracker)
	suite.Require().NoError(repository.Add(context.Background(), w))

	return w, section.ID(), pile.ID()
}

func (suite *GetWarehouseInventoryQueryHandlerTestSuite) TestHandle_ReturnsFullHierarchyWithLoads() {
	w, sectionID, pileID := suite.seedWarehouse()

	query, err := queries.NewGetWarehouseInventoryQuery(w.ID())
	suite.Require().NoError(err)

	inventory, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal("Central Hub", inventory.Name)
	suite.Equal("Tunis", inventory.City)
	suite.Equal(1000, inventory.TotalCapacity)
	suite.Equal(60, inventory.CurrentLoad)

	suite.Require().Len(inventory.Sections, 1)
	section := inventory.Sections[0]
	suite.True(section.ID.IsEqual(sectionID))
	suite.Equal("REFRIGERATED", section.SectionType)
	suite.Equal(60, section.CurrentLoad)

	suite.Require().Len(section.Piles, 1)
	pile := section.Piles[0]
	suite.True(pile.ID.IsEqual(pileID))
	suite.Equal("RACK", pile.PileType)
	suite.Equal(100, pile.TotalCapacity)
	suite.Equal(60, pile.CurrentLoad)
}

func (suite *GetWarehouseInventoryQueryHandlerTestSuite) TestHandle_UnknownWarehouse_ReturnsNotFound() {
	query, err := queries.NewGetWarehouseInventoryQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetWarehouseInventoryQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	var invalidQuery queries.GetWarehouseInventoryQuery

	_, err := suite.handler.Handle(context.Background(), invalidQuery)
	suite.Require().ErrorIs(err, queries.ErrGetWarehouseInventoryQueryIsNotConstructed)
}

func TestGetWarehouseInventoryQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(GetWarehouseInventoryQueryHandlerTestSuite))
}
