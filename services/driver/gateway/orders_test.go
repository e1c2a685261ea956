package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loggedInClient spins up a backend stub and a client already past the
// login handshake, so each test only describes its endpoint handler.
func loggedInClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/driver2/status/check", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "data": {"driver_id": 42}}`))
	})
	mux.HandleFunc("/", handler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, _ := testClient(server.URL)
	require.True(t, client.Login(context.Background(), "500123456", "secret", server.URL).Success)
	return client, server
}

func TestCheckOrderPoolShapes(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantIDs []int64
	}{
		{
			name:    "data list",
			body:    `{"success": true, "data": [{"id": 1, "status": "new"}, {"id": 2}]}`,
			wantIDs: []int64{1, 2},
		},
		{
			name:    "orders list with status flag",
			body:    `{"status": "success", "orders": [{"id": 7}]}`,
			wantIDs: []int64{7},
		},
		{
			name:    "empty pool",
			body:    `{"success": true, "data": []}`,
			wantIDs: []int64{},
		},
		{
			name:    "missing payload",
			body:    `{"success": true}`,
			wantIDs: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requestedPath string
			client, _ := loggedInClient(t, func(w http.ResponseWriter, r *http.Request) {
				requestedPath = r.URL.Path
				w.Write([]byte(tt.body))
			})

			result := client.CheckOrderPool(context.Background())
			require.True(t, result.Success)
			assert.Equal(t, "/api/driver2/42/pool", requestedPath)

			ids := make([]int64, 0, len(result.Orders))
			for _, o := range result.Orders {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCheckOrderPoolBackendError(t *testing.T) {
	client, _ := loggedInClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success": false, "message": "pool unavailable"}`))
	})

	result := client.CheckOrderPool(context.Background())
	require.False(t, result.Success)
	assert.Equal(t, "pool unavailable", result.Message)
	assert.NotNil(t, result.Orders)
	assert.Empty(t, result.Orders)
}

func TestAcceptOrder(t *testing.T) {
	var method, path string
	client, _ := loggedInClient(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.Write([]byte(`{"success": true}`))
	})

	result := client.AcceptOrder(context.Background(), 123)
	require.True(t, result.Success)
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/api/driver2/orders/123/accept", path)
}

func TestAcceptOrderRejected(t *testing.T) {
	client, _ := loggedInClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "order already taken"}`))
	})

	result := client.AcceptOrder(context.Background(), 123)
	require.False(t, result.Success)
	assert.Equal(t, "order already taken", result.Message)
}

func TestAcceptOrderRejectedWithoutMessage(t *testing.T) {
	client, _ := loggedInClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false}`))
	})

	result := client.AcceptOrder(context.Background(), 123)
	require.False(t, result.Success)
	assert.Equal(t, "order accept rejected", result.Message)
}

func TestCancelOrderSendsReason(t *testing.T) {
	var body map[string]string
	client, _ := loggedInClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"success": true}`))
	})

	result := client.CancelOrder(context.Background(), 123, "customer no-show")
	require.True(t, result.Success)
	assert.Equal(t, map[string]string{"reason": "customer no-show"}, body)
}

func TestGetOrderDetails(t *testing.T) {
	client, _ := loggedInClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/driver2/orders/55", r.URL.Path)
		w.Write([]byte(`{"success": true, "data": {"id": 55, "pickup_address": "ul. Lipowa 3", "price": "25.50"}}`))
	})

	result := client.GetOrderDetails(context.Background(), 55)
	require.True(t, result.Success)
	require.NotNil(t, result.Order)
	assert.Equal(t, int64(55), result.Order.ID)
	assert.Equal(t, "ul. Lipowa 3", result.Order.PickupAddress)
}

func TestGetOrderDetailsNotFound(t *testing.T) {
	client, _ := loggedInClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true}`))
	})

	result := client.GetOrderDetails(context.Background(), 55)
	require.False(t, result.Success)
	assert.Equal(t, "order not found", result.Message)
}

func TestGetOrderStorageDetailsFallback(t *testing.T) {
	client, _ := loggedInClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success": false}`))
	})

	result := client.GetOrderStorageDetails(context.Background(), 99)
	require.True(t, result.Success)
	require.NotNil(t, result.Order)
	assert.Equal(t, int64(99), result.Order.ID)
	assert.Equal(t, "ul. Magazynowa 1", result.Order.PickupAddress)
	assert.Equal(t, "ul. Docelowa 2", result.Order.DestinationAddress)
	assert.Equal(t, "30.00", result.Order.Price)
	assert.Equal(t, "VIP", result.Order.OrderType)
}

func TestGetOrderStorageDetailsLive(t *testing.T) {
	client, _ := loggedInClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success": true, "data": {"id": 99, "pickup_address": "ul. Prawdziwa 5"}}`)
	})

	result := client.GetOrderStorageDetails(context.Background(), 99)
	require.True(t, result.Success)
	assert.Equal(t, "ul. Prawdziwa 5", result.Order.PickupAddress)
}

func TestGetDriverProfileSynthesizedFallback(t *testing.T) {
	client, _ := loggedInClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true}`))
	})

	result := client.GetDriverProfile(context.Background())
	require.True(t, result.Success)
	require.NotNil(t, result.Profile)
	assert.Equal(t, int64(42), result.Profile.ID)
	assert.Equal(t, "500123456", result.Profile.Phone)
	assert.Equal(t, "Driver 500123456", result.Profile.Name)
}

func TestGetDriverProfileFromBackend(t *testing.T) {
	client, _ := loggedInClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "driver": {"id": 42, "name": "Jan Kowalski", "vehicle_model": "Toyota Prius"}}`))
	})

	result := client.GetDriverProfile(context.Background())
	require.True(t, result.Success)
	assert.Equal(t, "Jan Kowalski", result.Profile.Name)
}
