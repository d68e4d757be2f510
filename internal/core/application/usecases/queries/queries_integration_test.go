package queries_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"carcheck/internal/adapters/out/postgres/orderrepo"
	"carcheck/internal/core/application/usecases/queries"
	"carcheck/internal/core/domain/model/checklist"
	"carcheck/internal/core/domain/model/kernel"
	"carcheck/internal/core/domain/model/order"
	"carcheck/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
	suite.repo = orderrepo.NewGormOrderRepository(db)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

var querySequence atomic.Int64

func (suite *QueriesIntegrationTestSuite) seedOrder(name string) *order.Order {
	raw := fmt.Sprintf("CC-%d%03d", time.Now().UnixMilli(), querySequence.Add(1))
	number, err := kernel.OrderNumberFromString(raw)
	suite.Require().NoError(err)

	o, err := order.NewOrder(number,
		order.PersonalInfo{FullName: name, Email: "client@example.com", Phone: "+1 555 0101"},
		order.VehicleInfo{
			Make: "Toyota", Model: "Corolla", Year: "2018", VIN: "JT1234567890",
			AppointmentDate: "2026-09-15", AppointmentTime: "10:00",
		},
		order.SellerInfo{Name: "Sam Seller"},
		order.SelectedPackage{ID: "full", Name: "Full Inspection", Price: 149.99},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), o))
	return o
}

func (suite *QueriesIntegrationTestSuite) completeOrder(o *order.Order) {
	catalog := checklist.DefaultCatalog()
	results := order.Results{}
	for _, point := range catalog.PointNames() {
		results[point] = order.PointOK
	}
	suite.Require().NoError(o.Complete(results, order.Observations{"engine": "Clean."}, "# Report\n\nAll fine."))
	suite.Require().NoError(suite.repo.Update(context.Background(), o))
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_ReturnsReadModel() {
	ctx := context.Background()
	seeded := suite.seedOrder("Jane Roe")

	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(seeded.Number())
	suite.Require().NoError(err)

	response, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(seeded.Number().String(), response.Number)
	suite.Equal("pending", response.Status)
	suite.Equal("Jane Roe", response.Client.FullName)
	suite.Equal("Toyota Corolla (2018)", response.Vehicle.Description)
	suite.Equal("2026-09-15", response.Vehicle.AppointmentDate)
	suite.Equal("Full Inspection", response.Package.Name)
	suite.False(response.ReportReady)
	suite.Empty(response.Report)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_ReportReadyAfterCompletion() {
	ctx := context.Background()
	seeded := suite.seedOrder("Jane Roe")
	suite.completeOrder(seeded)

	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(seeded.Number())
	suite.Require().NoError(err)

	response, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("completed", response.Status)
	suite.True(response.ReportReady)
	suite.Equal("# Report\n\nAll fine.", response.Report)
	suite.Equal("Clean.", response.Observations["engine"])
	suite.Len(response.Results, checklist.DefaultCatalog().TotalPoints())
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_NotFound() {
	ctx := context.Background()
	number, err := kernel.OrderNumberFromString("CC-0000000000000")
	suite.Require().NoError(err)

	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(number)
	suite.Require().NoError(err)

	_, err = handler.Handle(ctx, query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_CacheInvalidation() {
	ctx := context.Background()
	seeded := suite.seedOrder("Jane Roe")

	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(seeded.Number())
	suite.Require().NoError(err)

	first, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("pending", first.Status)

	suite.completeOrder(seeded)

	// Cached entry still serves the stale status until invalidated.
	stale, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("pending", stale.Status)

	handler.Invalidate(seeded.Number().String())

	fresh, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("completed", fresh.Status)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrderByEmail_MostRecent() {
	ctx := context.Background()

	older := suite.seedOrder("Jane Roe")
	time.Sleep(10 * time.Millisecond)
	newer := suite.seedOrder("Jane Roe")
	suite.NotEqual(older.Number().String(), newer.Number().String())

	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderByEmailQuery("client@example.com")
	suite.Require().NoError(err)

	response, err := handler.HandleByEmail(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(newer.Number().String(), response.Number)

	missing, err := queries.NewGetOrderByEmailQuery("nobody@example.com")
	suite.Require().NoError(err)
	_, err = handler.HandleByEmail(ctx, missing)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetPendingOrders_ExcludesCompleted() {
	ctx := context.Background()

	first := suite.seedOrder("First Client")
	second := suite.seedOrder("Second Client")
	done := suite.seedOrder("Done Client")
	suite.completeOrder(done)

	handler := queries.NewGetPendingOrdersQueryHandler(suite.db)
	responses, err := handler.Handle(ctx, queries.NewGetPendingOrdersQuery())
	suite.Require().NoError(err)

	suite.Require().Len(responses, 2)
	suite.Equal(first.Number().String(), responses[0].Number)
	suite.Equal(second.Number().String(), responses[1].Number)
	suite.Equal("Toyota Corolla (2018)", responses[0].Vehicle)
	suite.Equal("Full Inspection", responses[0].PackageName)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
