//go:build unit

package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weatherstay/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentsTestConfig(baseURL string) config.PaymentsConfig {
	return config.PaymentsConfig{
		BaseURL:    baseURL,
		APIKey:     "sk_test_dummy",
		Timeout:    2 * time.Second,
		SuccessURL: "http://localhost:3000/ok",
		CancelURL:  "http://localhost:3000/no",
	}
}

func TestCreateCheckoutSession(t *testing.T) {
	var got createSessionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_dummy", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"sess_1","url":"https://pay.example.com/sess_1"}`))
	}))
	defer srv.Close()

	client := NewClient(paymentsTestConfig(srv.URL))
	session, err := client.CreateCheckoutSession(context.Background(), CheckoutParams{
		Amount:      130.0,
		Currency:    "usd",
		Description: "Sea View on 2026-07-14",
		Reference:   "room-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "sess_1", session.ID)
	assert.Equal(t, "https://pay.example.com/sess_1", session.URL)

	// rounding to minor units happens exactly here
	assert.Equal(t, int64(13000), got.UnitAmount)
	assert.Equal(t, "usd", got.Currency)
	assert.Equal(t, "room-1", got.ClientReference)
	assert.Equal(t, "http://localhost:3000/ok", got.SuccessURL)
	assert.Equal(t, "http://localhost:3000/no", got.CancelURL)
}

func TestCreateCheckoutSessionProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(paymentsTestConfig(srv.URL))
	_, err := client.CreateCheckoutSession(context.Background(), CheckoutParams{Amount: 1, Currency: "usd"})
	assert.ErrorIs(t, err, ErrGateway)
}

func TestCreateCheckoutSessionIncompleteResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"sess_1"}`))
	}))
	defer srv.Close()

	client := NewClient(paymentsTestConfig(srv.URL))
	_, err := client.CreateCheckoutSession(context.Background(), CheckoutParams{Amount: 1, Currency: "usd"})
	assert.ErrorIs(t, err, ErrGateway)
}

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{0, 0},
		{100, 10000},
		{130, 13000},
		{19.99, 1999},
		{0.105, 11},  // rounds half away from zero
		{33.333, 3333},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MinorUnits(tt.amount), "amount %v", tt.amount)
	}
}
