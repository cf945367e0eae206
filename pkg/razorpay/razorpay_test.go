package razorpay_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dukaan/pkg/razorpay"

	"github.com/stretchr/testify/assert"
)

func TestClient_CreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "key_id", user)
		assert.Equal(t, "key_secret", pass)

		var req razorpay.OrderRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(9900), req.Amount)
		assert.Equal(t, 1, req.PaymentCapture)

		json.NewEncoder(w).Encode(razorpay.OrderResponse{
			ID:       "order_abc",
			Amount:   req.Amount,
			Currency: req.Currency,
			Receipt:  req.Receipt,
			Status:   "created",
		})
	}))
	defer server.Close()

	client := razorpay.NewClient(razorpay.Config{
		KeyID:     "key_id",
		KeySecret: "key_secret",
		BaseURL:   server.URL,
	})

	order, err := client.CreateOrder(context.Background(), razorpay.OrderRequest{
		Amount:         9900,
		Currency:       "INR",
		Receipt:        "rcpt_1",
		PaymentCapture: 1,
	})
	assert.NoError(t, err)
	assert.Equal(t, "order_abc", order.ID)
	assert.Equal(t, int64(9900), order.Amount)
	assert.Equal(t, "INR", order.Currency)
}

func TestClient_CreateOrderErrorOmitsGatewayBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"description":"Authentication failed: key_id mismatch"}}`))
	}))
	defer server.Close()

	client := razorpay.NewClient(razorpay.Config{
		KeyID:     "key_id",
		KeySecret: "wrong_secret",
		BaseURL:   server.URL,
	})

	_, err := client.CreateOrder(context.Background(), razorpay.OrderRequest{Amount: 9900, Currency: "INR"})
	assert.Error(t, err)
	// The error reaching callers carries the status only, never the
	// gateway's own error text.
	assert.NotContains(t, err.Error(), "Authentication failed")
	assert.Contains(t, err.Error(), "401")
}
