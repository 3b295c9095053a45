package commands_test

import (
	"context"
	"testing"
	"time"

	"railmeals/internal/core/application/usecases/commands"
	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/core/domain/model/order"
	"railmeals/internal/core/domain/model/roster"
	"railmeals/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) GetAllActiveByOutlet(ctx context.Context, outletID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, outletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDeliveryPersonRepository struct{ mock.Mock }

func (m *MockDeliveryPersonRepository) Add(ctx context.Context, dp *roster.DeliveryPerson) error {
	args := m.Called(ctx, dp)
	return args.Error(0)
}

func (m *MockDeliveryPersonRepository) Update(ctx context.Context, dp *roster.DeliveryPerson) error {
	args := m.Called(ctx, dp)
	return args.Error(0)
}

func (m *MockDeliveryPersonRepository) Get(ctx context.Context, id kernel.UUID) (*roster.DeliveryPerson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roster.DeliveryPerson), args.Error(1)
}

func (m *MockDeliveryPersonRepository) GetAllByOutlet(
	ctx context.Context, outletID kernel.UUID,
) ([]*roster.DeliveryPerson, error) {
	args := m.Called(ctx, outletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roster.DeliveryPerson), args.Error(1)
}

func (m *MockDeliveryPersonRepository) GetAllWithDocumentsExpiringBefore(
	ctx context.Context, deadline time.Time,
) ([]*roster.DeliveryPerson, error) {
	args := m.Called(ctx, deadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roster.DeliveryPerson), args.Error(1)
}

type MockStatusPusher struct{ mock.Mock }

func (m *MockStatusPusher) Push(ctx context.Context, request ports.PushRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

type MockOrderFeed struct{ mock.Mock }

func (m *MockOrderFeed) FetchPushed(ctx context.Context, outletID kernel.UUID) ([]ports.FeedOrder, error) {
	args := m.Called(ctx, outletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.FeedOrder), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockRosterUoW struct{ mock.Mock }

func (m *MockRosterUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRosterUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRosterUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRosterUoW) DeliveryPersonRepository() ports.DeliveryPersonRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryPersonRepository)
}

type MockRosterUoWFactory struct{ mock.Mock }

func (m *MockRosterUoWFactory) Create() commands.RosterUoW {
	args := m.Called()
	return args.Get(0).(commands.RosterUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DeliveryPersonRepository() ports.DeliveryPersonRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryPersonRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	thali, err := order.NewItem(101, "Veg Thali", 2, decimal.NewFromInt(150), true)
	require.NoError(t, err)
	biryani, err := order.NewItem(102, "Chicken Biryani", 1, decimal.NewFromInt(220), false)
	require.NoError(t, err)
	return []order.Item{thali, biryani}
}

func testCustomer(t *testing.T) order.Customer {
	t.Helper()
	phone, err := kernel.NewPhone("9876543210")
	require.NoError(t, err)
	customer, err := order.NewCustomer("Ramesh Kumar", phone)
	require.NoError(t, err)
	return customer
}

// testOrder builds an order in the given status, with the courier attached
// when the status demands one.
func testOrder(t *testing.T, id kernel.UUID, status order.Status, courierID *kernel.UUID) *order.Order {
	t.Helper()
	now := time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC)
	o, err := order.RestoreOrder(
		id, kernel.NewUUID(), "12951", "RTM",
		status, courierID,
		testItems(t), testCustomer(t),
		now, now.Add(2*time.Hour),
	)
	require.NoError(t, err)
	return o
}

func testDeliveryPerson(t *testing.T, id kernel.UUID) *roster.DeliveryPerson {
	t.Helper()
	phone, err := kernel.NewPhone("9123456780")
	require.NoError(t, err)
	dp, err := roster.RestoreDeliveryPerson(
		id, kernel.NewUUID(), "Suresh Yadav", phone,
		time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), 12, "",
	)
	require.NoError(t, err)
	return dp
}
