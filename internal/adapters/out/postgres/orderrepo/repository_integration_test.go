package orderrepo_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"carcheck/internal/adapters/out/postgres/orderrepo"
	"carcheck/internal/core/domain/model/checklist"
	"carcheck/internal/core/domain/model/kernel"
	"carcheck/internal/core/domain/model/order"
	"carcheck/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL instance, including the jsonb columns and the
// legacy vehicle row shape.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// numberSequence distinguishes orders created within the same millisecond.
var numberSequence atomic.Int64

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(email string) *order.Order {
	raw := fmt.Sprintf("CC-%d%03d", time.Now().UnixMilli(), numberSequence.Add(1))
	number, err := kernel.OrderNumberFromString(raw)
	suite.Require().NoError(err)
	o, err := order.NewOrder(number,
		order.PersonalInfo{FullName: "Jane Roe", Email: email, Phone: "+1 555 0101"},
		order.VehicleInfo{
			Make: "Toyota", Model: "Corolla", Year: "2018", VIN: "JT1234567890",
			AppointmentDate: "2026-09-15", AppointmentTime: "10:00",
		},
		order.SellerInfo{Name: "Sam Seller", Phone: "+1 555 0202"},
		order.SelectedPackage{ID: "full", Name: "Full Inspection", Price: 149.99},
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("jane@example.com")

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.Number())
	suite.Require().NoError(err)

	suite.True(restored.Number().IsEqual(testOrder.Number()))
	suite.Equal(order.Pending, restored.Status())
	suite.Equal(testOrder.PersonalInfo(), restored.PersonalInfo())
	suite.Equal(testOrder.VehicleInfo(), restored.VehicleInfo())
	suite.Equal(testOrder.SellerInfo(), restored.SellerInfo())
	suite.Equal(testOrder.SelectedPackage(), restored.SelectedPackage())
	suite.Empty(restored.Report())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()
	number, err := kernel.OrderNumberFromString("CC-0000000000000")
	suite.Require().NoError(err)

	_, err = suite.repository.Get(ctx, number)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsProgressAndCompletion() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("jane@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	partial := order.Results{"Engine start and idle": order.PointOK}
	suite.Require().NoError(testOrder.SaveProgress(partial, nil))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.Number())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, restored.Status())
	suite.Equal(partial, restored.InspectionResults())

	catalog := checklist.DefaultCatalog()
	full := order.Results{}
	for _, point := range catalog.PointNames() {
		full[point] = order.PointOK
	}
	observations := order.Observations{"engine": "Runs clean."}
	suite.Require().NoError(testOrder.Complete(full, observations, "# Report\n\nAll good."))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err = suite.repository.Get(ctx, testOrder.Number())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, restored.Status())
	suite.Equal(full, restored.InspectionResults())
	suite.Equal(observations, restored.CategoryObservations())
	suite.Equal("# Report\n\nAll good.", restored.Report())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnknownOrder() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("jane@example.com")

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus_OldestFirst() {
	ctx := context.Background()

	first := suite.createTestOrder("first@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestOrder("second@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, second))

	completed := suite.createTestOrder("done@example.com")
	catalog := checklist.DefaultCatalog()
	full := order.Results{}
	for _, point := range catalog.PointNames() {
		full[point] = order.PointNA
	}
	suite.Require().NoError(completed.Complete(full, nil, "report"))
	suite.Require().NoError(suite.repository.Add(ctx, completed))

	pending, err := suite.repository.GetAllInStatus(ctx, order.Pending)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.True(pending[0].Number().IsEqual(first.Number()))
	suite.True(pending[1].Number().IsEqual(second.Number()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindByClientEmail_MostRecent() {
	ctx := context.Background()

	older := suite.createTestOrder("repeat@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, older))

	// Separate creation instants so the recency ordering is deterministic.
	time.Sleep(10 * time.Millisecond)

	newer := suite.createTestOrder("repeat@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, newer))

	found, err := suite.repository.FindByClientEmail(ctx, "repeat@example.com")
	suite.Require().NoError(err)
	suite.True(found.Number().IsEqual(newer.Number()))

	_, err = suite.repository.FindByClientEmail(ctx, "nobody@example.com")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NormalizesLegacyVehicleShape() {
	ctx := context.Background()

	err := suite.db.Exec(`
		INSERT INTO orders (
			order_number, status, personal_info, vehicle_info, seller_info,
			selected_package, inspection_results, category_observations,
			report, created_at, updated_at
		) VALUES (
			'CC-1600000000000', 'pending',
			'{"fullName":"Old Client","email":"old@example.com","phone":""}',
			'"Honda Civic Type R 2009"',
			'{"sellerName":"","sellerPhone":""}',
			'{"id":"basic","name":"Basic Inspection","price":79.99}',
			'{}', '{}', '', NOW(), NOW()
		)`).Error
	suite.Require().NoError(err)

	number, err := kernel.OrderNumberFromString("CC-1600000000000")
	suite.Require().NoError(err)

	restored, err := suite.repository.Get(ctx, number)
	suite.Require().NoError(err)

	vehicle := restored.VehicleInfo()
	suite.Equal("Honda", vehicle.Make)
	suite.Equal("Civic Type R", vehicle.Model)
	suite.Equal("2009", vehicle.Year)
	suite.Equal("Honda Civic Type R (2009)", vehicle.Description())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
