package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"railmeals/internal/adapters/out/postgres/orderrepo"
	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/core/domain/model/order"
	"railmeals/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GormOrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
	outletID  kernel.UUID
}

func (suite *GormOrderRepositoryTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.outletID = kernel.NewUUID()
}

func (suite *GormOrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormOrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GormOrderRepositoryTestSuite) newOrder() *order.Order {
	thali, err := order.NewItem(101, "Veg Thali", 2, decimal.NewFromInt(150), true)
	suite.Require().NoError(err)
	biryani, err := order.NewItem(102, "Chicken Biryani", 1, decimal.NewFromInt(220), false)
	suite.Require().NoError(err)

	phone, err := kernel.NewPhone("9876543210")
	suite.Require().NoError(err)
	customer, err := order.NewCustomer("Ramesh Kumar", phone)
	suite.Require().NoError(err)

	created := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)
	o, err := order.NewOrder(
		kernel.NewUUID(), suite.outletID, "12951", "RTM",
		[]order.Item{thali, biryani}, customer,
		created, created.Add(3*time.Hour),
	)
	suite.Require().NoError(err)
	return o
}

func (suite *GormOrderRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	o := suite.newOrder()

	err := suite.repo.Add(ctx, o)
	suite.Require().NoError(err)

	restored, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.True(restored.IsEqual(o))
	suite.Equal(order.Preparing, restored.Status())
	suite.Nil(restored.DeliveryPerson())
	suite.Equal("12951", restored.TrainNumber())
	suite.Equal("RTM", restored.StationCode())
	suite.Equal("Ramesh Kumar", restored.Customer().Name())
	suite.Len(restored.Items(), 2)
	suite.True(restored.Total().Equal(decimal.NewFromInt(520)),
		"expected total 520, got %s", restored.Total())

	vegByItem := make(map[int64]bool, len(restored.Items()))
	for _, item := range restored.Items() {
		vegByItem[item.MenuItemID()] = item.IsVegetarian()
	}
	suite.True(vegByItem[101])
	suite.False(vegByItem[102])
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_PersistsStatusTransition() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.repo.Add(ctx, o))

	suite.Require().NoError(o.MarkStatus(order.Prepared))
	suite.Require().NoError(suite.repo.Update(ctx, o))

	restored, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Prepared, restored.Status())
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_PersistsDispatch() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.repo.Add(ctx, o))

	courierID := kernel.NewUUID()
	suite.Require().NoError(o.Dispatch(courierID, order.OutForDelivery))
	suite.Require().NoError(suite.repo.Update(ctx, o))

	restored, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OutForDelivery, restored.Status())
	suite.Require().NotNil(restored.DeliveryPerson())
	suite.True(restored.DeliveryPerson().IsEqual(courierID))
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_UnknownOrder() {
	ctx := context.Background()
	o := suite.newOrder()

	err := suite.repo.Update(ctx, o)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *GormOrderRepositoryTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repo.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormOrderRepositoryTestSuite) TestExists() {
	ctx := context.Background()
	o := suite.newOrder()

	known, err := suite.repo.Exists(ctx, o.ID())
	suite.Require().NoError(err)
	suite.False(known)

	suite.Require().NoError(suite.repo.Add(ctx, o))

	known, err = suite.repo.Exists(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(known)
}

func (suite *GormOrderRepositoryTestSuite) TestGetAllActiveByOutlet_ExcludesTerminalStatuses() {
	ctx := context.Background()

	preparing := suite.newOrder()
	suite.Require().NoError(suite.repo.Add(ctx, preparing))

	outForDelivery := suite.newOrder()
	suite.Require().NoError(outForDelivery.Dispatch(kernel.NewUUID(), order.OutForDelivery))
	suite.Require().NoError(suite.repo.Add(ctx, outForDelivery))

	cancelled := suite.newOrder()
	suite.Require().NoError(cancelled.MarkStatus(order.Cancelled))
	suite.Require().NoError(suite.repo.Add(ctx, cancelled))

	delivered := suite.newOrder()
	suite.Require().NoError(delivered.Dispatch(kernel.NewUUID(), order.OutForDelivery))
	suite.Require().NoError(delivered.Dispatch(kernel.NewUUID(), order.Delivered))
	suite.Require().NoError(suite.repo.Add(ctx, delivered))

	active, err := suite.repo.GetAllActiveByOutlet(ctx, suite.outletID)
	suite.Require().NoError(err)
	suite.Len(active, 2)

	activeIDs := make(map[string]bool)
	for _, o := range active {
		activeIDs[o.ID().String()] = true
	}
	suite.True(activeIDs[preparing.ID().String()])
	suite.True(activeIDs[outForDelivery.ID().String()])
}

func (suite *GormOrderRepositoryTestSuite) TestGetAllActiveByOutlet_IgnoresOtherOutlets() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.repo.Add(ctx, o))

	active, err := suite.repo.GetAllActiveByOutlet(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(active)
}

func TestGormOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormOrderRepositoryTestSuite))
}
