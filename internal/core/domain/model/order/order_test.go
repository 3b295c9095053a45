package order_test

import (
	"testing"
	"time"

	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureItems(t *testing.T) []order.Item {
	t.Helper()
	thali, err := order.NewItem(101, "Veg Thali", 2, decimal.NewFromInt(150), true)
	require.NoError(t, err)
	biryani, err := order.NewItem(102, "Chicken Biryani", 1, decimal.NewFromInt(220), false)
	require.NoError(t, err)
	return []order.Item{thali, biryani}
}

func fixtureCustomer(t *testing.T) order.Customer {
	t.Helper()
	phone, err := kernel.NewPhone("9876543210")
	require.NoError(t, err)
	customer, err := order.NewCustomer("Anjali Sharma", phone)
	require.NoError(t, err)
	return customer
}

func fixtureOrder(t *testing.T) *order.Order {
	t.Helper()
	created := time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC)
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"12951",
		"RTM",
		fixtureItems(t),
		fixtureCustomer(t),
		created,
		created.Add(4*time.Hour),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("starts_preparing_without_delivery_person", func(t *testing.T) {
		o := fixtureOrder(t)

		assert.Equal(t, order.Preparing, o.Status())
		assert.Nil(t, o.DeliveryPerson())
		require.NoError(t, o.Validate())
	})

	t.Run("rejects_missing_items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "12951", "RTM",
			nil, fixtureCustomer(t), time.Now(), time.Now(),
		)
		require.Error(t, err)
	})

	t.Run("rejects_missing_train_details", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "", "RTM",
			fixtureItems(t), fixtureCustomer(t), time.Now(), time.Now(),
		)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_MarkStatus(t *testing.T) {
	t.Run("prepares_the_order", func(t *testing.T) {
		o := fixtureOrder(t)

		require.NoError(t, o.MarkStatus(order.Prepared))

		assert.Equal(t, order.Prepared, o.Status())
		assert.Nil(t, o.DeliveryPerson())
	})

	t.Run("cancels_before_dispatch", func(t *testing.T) {
		o := fixtureOrder(t)
		require.NoError(t, o.MarkStatus(order.Prepared))

		require.NoError(t, o.MarkStatus(order.Cancelled))

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Nil(t, o.DeliveryPerson())
	})

	t.Run("rejects_courier_attributed_targets", func(t *testing.T) {
		o := fixtureOrder(t)

		err := o.MarkStatus(order.OutForDelivery)

		require.ErrorIs(t, err, order.ErrCourierRequiredForStatus)
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("keeps_delivery_person_on_undelivered", func(t *testing.T) {
		o := fixtureOrder(t)
		courierID := kernel.NewUUID()
		require.NoError(t, o.Dispatch(courierID, order.OutForDelivery))

		require.NoError(t, o.MarkStatus(order.Undelivered))

		assert.Equal(t, order.Undelivered, o.Status())
		require.NotNil(t, o.DeliveryPerson())
		assert.True(t, courierID.IsEqual(*o.DeliveryPerson()))
	})

	t.Run("terminal_status_rejects_further_transitions", func(t *testing.T) {
		o := fixtureOrder(t)
		require.NoError(t, o.MarkStatus(order.Cancelled))

		require.Error(t, o.MarkStatus(order.Prepared))
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_Dispatch(t *testing.T) {
	t.Run("attaches_delivery_person_with_status", func(t *testing.T) {
		o := fixtureOrder(t)
		courierID := kernel.NewUUID()

		require.NoError(t, o.Dispatch(courierID, order.OutForDelivery))

		assert.Equal(t, order.OutForDelivery, o.Status())
		require.NotNil(t, o.DeliveryPerson())
		assert.True(t, courierID.IsEqual(*o.DeliveryPerson()))
	})

	t.Run("completes_delivery_from_out_for_delivery", func(t *testing.T) {
		o := fixtureOrder(t)
		courierID := kernel.NewUUID()
		require.NoError(t, o.Dispatch(courierID, order.OutForDelivery))

		require.NoError(t, o.Dispatch(courierID, order.Delivered))

		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("rejects_courier_free_targets", func(t *testing.T) {
		o := fixtureOrder(t)

		err := o.Dispatch(kernel.NewUUID(), order.Cancelled)

		require.ErrorIs(t, err, order.ErrCourierNotAllowedForStatus)
		assert.Equal(t, order.Preparing, o.Status())
		assert.Nil(t, o.DeliveryPerson())
	})

	t.Run("rejects_invalid_delivery_person_id", func(t *testing.T) {
		o := fixtureOrder(t)

		err := o.Dispatch(kernel.UUID{}, order.OutForDelivery)

		require.Error(t, err)
		assert.Equal(t, order.Preparing, o.Status())
		assert.Nil(t, o.DeliveryPerson())
	})

	t.Run("failed_transition_leaves_assignment_untouched", func(t *testing.T) {
		o := fixtureOrder(t)
		require.NoError(t, o.Dispatch(kernel.NewUUID(), order.OutForDelivery))
		require.NoError(t, o.MarkStatus(order.Undelivered))
		before := *o.DeliveryPerson()

		err := o.Dispatch(kernel.NewUUID(), order.Delivered)

		require.Error(t, err)
		assert.Equal(t, order.Undelivered, o.Status())
		assert.True(t, before.IsEqual(*o.DeliveryPerson()))
	})
}

func TestRestoreOrder(t *testing.T) {
	created := time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("restores_dispatched_order", func(t *testing.T) {
		courierID := kernel.NewUUID()

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "12951", "RTM",
			order.OutForDelivery, &courierID,
			fixtureItems(t), fixtureCustomer(t), created, created.Add(4*time.Hour),
		)

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, o.Status())
		require.NotNil(t, o.DeliveryPerson())
		assert.True(t, courierID.IsEqual(*o.DeliveryPerson()))
	})

	t.Run("rejects_dispatched_status_without_delivery_person", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "12951", "RTM",
			order.OutForDelivery, nil,
			fixtureItems(t), fixtureCustomer(t), created, created,
		)
		require.Error(t, err)
	})

	t.Run("rejects_delivery_person_on_undispatched_status", func(t *testing.T) {
		courierID := kernel.NewUUID()
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "12951", "RTM",
			order.Preparing, &courierID,
			fixtureItems(t), fixtureCustomer(t), created, created,
		)
		require.Error(t, err)
	})
}

func TestOrder_Total(t *testing.T) {
	o := fixtureOrder(t)

	// 2 x 150 + 1 x 220
	assert.True(t, decimal.NewFromInt(520).Equal(o.Total()))
}
