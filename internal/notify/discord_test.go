package notify_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilegt6969/sainto-api/internal/notify"
	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

func sampleOrder() *domain.Order {
	return &domain.Order{
		OrderID:          "ord-123",
		OrderNumber:      "SNT-AB12CD34",
		PaymentReference: "TXN-9988",
		TotalAmount:      638250,
		Currency:         "MNT",
		DiscountCode:     "LAUNCH10",
		Items: []domain.OrderItem{
			{ProductID: "aj4", Name: "Air Jordan 4 Bred", Size: "10", Quantity: 1, Price: 638250},
		},
		Customer: domain.OrderCustomer{Name: "Bilegt", Phone: "99112233"},
		Address:  domain.OrderAddress{City: "Ulaanbaatar", District: "Khan-Uul", Street: "Chinggis Ave 15"},
	}
}

func TestDiscordNotifier_SendOrder(t *testing.T) {
	t.Parallel()

	var payload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &payload))

		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	n := notify.NewDiscordNotifier(srv.URL)
	require.NoError(t, n.SendOrder(context.Background(), sampleOrder()))

	embeds, ok := payload["embeds"].([]any)
	require.True(t, ok)
	require.Len(t, embeds, 1)

	embed := embeds[0].(map[string]any)
	assert.Equal(t, "New Order: SNT-AB12CD34", embed["title"])
	assert.Contains(t, embed["description"], "1x Air Jordan 4 Bred (size 10)")

	fields := embed["fields"].([]any)
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.(map[string]any)["name"].(string))
	}
	assert.Contains(t, names, "Order ID")
	assert.Contains(t, names, "Payment Ref")
	assert.Contains(t, names, "Total")
	assert.Contains(t, names, "Customer")
	assert.Contains(t, names, "Address")
	assert.Contains(t, names, "Discount")
}

func TestDiscordNotifier_RateLimited(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	n := notify.NewDiscordNotifier(srv.URL)
	err := n.SendOrder(context.Background(), sampleOrder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestDiscordNotifier_ErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"invalid embed"}`))
	}))
	t.Cleanup(srv.Close)

	n := notify.NewDiscordNotifier(srv.URL)
	err := n.SendOrder(context.Background(), sampleOrder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid embed")
}

func TestDiscordNotifier_ItemListCapped(t *testing.T) {
	t.Parallel()

	var payload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &payload)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	order := sampleOrder()
	order.Items = nil
	for i := 0; i < 25; i++ {
		order.Items = append(order.Items, domain.OrderItem{Name: "Filler", Quantity: 1})
	}

	n := notify.NewDiscordNotifier(srv.URL)
	require.NoError(t, n.SendOrder(context.Background(), order))

	embed := payload["embeds"].([]any)[0].(map[string]any)
	assert.Contains(t, embed["description"], "and 5 more items")
}
