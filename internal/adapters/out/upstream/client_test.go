package upstream_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"railmeals/internal/adapters/out/upstream"
	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/core/domain/model/order"
	"railmeals/internal/core/domain/model/roster"
	"railmeals/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	thali, err := order.NewItem(101, "Veg Thali", 2, decimal.NewFromInt(150), true)
	require.NoError(t, err)

	phone, err := kernel.NewPhone("9876543210")
	require.NoError(t, err)
	customer, err := order.NewCustomer("Ramesh Kumar", phone)
	require.NoError(t, err)

	created := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "12951", "RTM",
		[]order.Item{thali}, customer,
		created, created.Add(3*time.Hour),
	)
	require.NoError(t, err)
	return o
}

func testCourier(t *testing.T) *roster.DeliveryPerson {
	t.Helper()
	phone, err := kernel.NewPhone("9123456780")
	require.NoError(t, err)
	dp, err := roster.NewDeliveryPerson(
		kernel.NewUUID(), kernel.NewUUID(), "Suresh Yadav", phone,
		time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), "",
	)
	require.NoError(t, err)
	return dp
}

func TestClient_Push_Success(t *testing.T) {
	o := testOrder(t)

	var gotPath, gotAuth string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{"status": true})
	}))
	defer server.Close()

	client, err := upstream.NewClient(server.URL, "secret-key")
	require.NoError(t, err)

	err = client.Push(t.Context(), ports.NewPushRequest(o, order.Prepared, nil))
	require.NoError(t, err)

	assert.Equal(t, "/push-status/"+o.ID().String(), gotPath)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "ORDER_PREPARED", gotBody["status"])
	assert.NotContains(t, gotBody, "deliveryPersonName")
	assert.NotContains(t, gotBody, "remarks")

	items := gotBody["orderItems"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, float64(101), item["itemId"])
	assert.Equal(t, float64(2), item["quantity"])
}

func TestClient_Push_CourierAttributionAndRemark(t *testing.T) {
	o := testOrder(t)
	courier := testCourier(t)

	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A fresh map per request: decoding into the previous one would
		// merge keys across pushes.
		body := map[string]any{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotBody = body
		_ = json.NewEncoder(w).Encode(map[string]any{"status": true})
	}))
	defer server.Close()

	client, err := upstream.NewClient(server.URL, "")
	require.NoError(t, err)

	t.Run("out_for_delivery_carries_courier", func(t *testing.T) {
		err = client.Push(t.Context(), ports.NewPushRequest(o, order.OutForDelivery, courier))
		require.NoError(t, err)
		assert.Equal(t, "Suresh Yadav", gotBody["deliveryPersonName"])
		assert.Equal(t, "9123456780", gotBody["deliveryPersonContactNo"])
		assert.NotContains(t, gotBody, "remarks")
	})

	t.Run("undelivered_carries_remark", func(t *testing.T) {
		err = client.Push(t.Context(), ports.NewPushRequest(o, order.Undelivered, courier))
		require.NoError(t, err)
		assert.Equal(t, "LAW_N_ORDER", gotBody["remarks"])
	})

	t.Run("cancelled_carries_remark_without_courier", func(t *testing.T) {
		err = client.Push(t.Context(), ports.NewPushRequest(o, order.Cancelled, nil))
		require.NoError(t, err)
		assert.Equal(t, "LAW_N_ORDER", gotBody["remarks"])
		assert.NotContains(t, gotBody, "deliveryPersonName")
	})
}

func TestClient_Push_Rejected(t *testing.T) {
	o := testOrder(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"status": false, "message": "already moved"})
	}))
	defer server.Close()

	client, err := upstream.NewClient(server.URL, "")
	require.NoError(t, err)

	err = client.Push(t.Context(), ports.NewPushRequest(o, order.Prepared, nil))
	require.ErrorIs(t, err, ports.ErrPushRejected)
}

func TestClient_Push_ServerError(t *testing.T) {
	o := testOrder(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := upstream.NewClient(server.URL, "")
	require.NoError(t, err)

	err = client.Push(t.Context(), ports.NewPushRequest(o, order.Prepared, nil))
	require.Error(t, err)
	require.NotErrorIs(t, err, ports.ErrPushRejected)
}

func TestClient_FetchPushed_Success(t *testing.T) {
	orderID := kernel.NewUUID()
	outletID := kernel.NewUUID()

	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]map[string]any{{
			"id":                orderID.String(),
			"trainNo":           "12951",
			"stationCode":       "RTM",
			"status":            "ORDER_PREPARING",
			"customerName":      "Ramesh Kumar",
			"customerContactNo": "9876543210",
			"orderItems": []map[string]any{{
				"itemId":     101,
				"name":       "Veg Thali",
				"quantity":   2,
				"unitPrice":  "150.00",
				"vegetarian": true,
			}},
			"createdAt":        "2025-06-10T09:30:00Z",
			"deliveryDateTime": "2025-06-10T12:30:00Z",
		}})
	}))
	defer server.Close()

	client, err := upstream.NewClient(server.URL, "")
	require.NoError(t, err)

	orders, err := client.FetchPushed(t.Context(), outletID)
	require.NoError(t, err)

	assert.Equal(t, "outlet_id="+outletID.String(), gotQuery)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].ID.IsEqual(orderID))
	assert.Equal(t, "12951", orders[0].TrainNumber)
	assert.Equal(t, "ORDER_PREPARING", orders[0].StatusCode)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "150.00", orders[0].Items[0].UnitPrice)
}

func TestClient_FetchPushed_EmptyFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{})
	}))
	defer server.Close()

	client, err := upstream.NewClient(server.URL, "")
	require.NoError(t, err)

	orders, err := client.FetchPushed(t.Context(), kernel.NewUUID())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestClient_FetchPushed_MalformedOrderID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": "not-a-uuid"}})
	}))
	defer server.Close()

	client, err := upstream.NewClient(server.URL, "")
	require.NoError(t, err)

	_, err = client.FetchPushed(t.Context(), kernel.NewUUID())
	require.Error(t, err)
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := upstream.NewClient("", "key")
	require.Error(t, err)
}
