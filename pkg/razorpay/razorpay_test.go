package razorpay_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vastra/pkg/razorpay"
)

func TestCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key_id", user)
		assert.Equal(t, "key_secret", pass)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(124900), body["amount"])
		assert.Equal(t, "INR", body["currency"])
		assert.Equal(t, "rcpt_1", body["receipt"])

		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"id":       "order_N1h3",
			"entity":   "order",
			"amount":   124900,
			"currency": "INR",
			"receipt":  "rcpt_1",
			"status":   "created",
		})
	}))
	defer srv.Close()

	client := razorpay.New("key_id", "key_secret", srv.URL)
	order, err := client.CreateOrder(context.Background(), 124900, "rcpt_1")
	require.NoError(t, err)

	assert.Equal(t, "order_N1h3", order.ID)
	assert.Equal(t, int64(124900), order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "created", order.Status)
}

func TestCreateOrder_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"description":"Authentication failed"}}`)) //nolint:errcheck
	}))
	defer srv.Close()

	client := razorpay.New("bad", "creds", srv.URL)
	_, err := client.CreateOrder(context.Background(), 100, "rcpt_2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestCreateOrder_Unreachable(t *testing.T) {
	client := razorpay.New("k", "s", "http://127.0.0.1:1")
	_, err := client.CreateOrder(context.Background(), 100, "rcpt_3")
	require.Error(t, err)
}
