package currency_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilegt6969/sainto-api/internal/currency"
)

const rateFixture = `{
	"result": "success",
	"rates": {"USD": 1, "MNT": 3450.5, "EUR": 0.92}
}`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newConverter(t *testing.T, ttl time.Duration) (*currency.Converter, *httpmock.MockTransport) {
	t.Helper()

	transport := httpmock.NewMockTransport()
	hc := &http.Client{Transport: transport}

	conv := currency.NewConverter(
		"https://open.er-api.com/v6/latest",
		"USD",
		"MNT",
		3450,
		ttl,
		discardLogger(),
		currency.WithHTTPClient(hc),
	)
	return conv, transport
}

func TestConverter_Rate(t *testing.T) {
	t.Parallel()

	conv, transport := newConverter(t, time.Hour)

	var calls atomic.Int32
	transport.RegisterResponder(
		http.MethodGet,
		"https://open.er-api.com/v6/latest/USD",
		func(*http.Request) (*http.Response, error) {
			calls.Add(1)
			return httpmock.NewStringResponse(http.StatusOK, rateFixture), nil
		},
	)

	rate := conv.Rate(context.Background())
	assert.InDelta(t, 3450.5, rate, 0.001)

	// Second lookup is served from the cache.
	conv.Rate(context.Background())
	assert.Equal(t, int32(1), calls.Load())
}

func TestConverter_RateFallsBackOnFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		responder httpmock.Responder
	}{
		{
			name:      "http error",
			responder: httpmock.NewStringResponder(http.StatusBadGateway, "bad gateway"),
		},
		{
			name:      "malformed body",
			responder: httpmock.NewStringResponder(http.StatusOK, "<html></html>"),
		},
		{
			name:      "display currency missing",
			responder: httpmock.NewStringResponder(http.StatusOK, `{"result":"success","rates":{"EUR":0.9}}`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, transport := newConverter(t, time.Hour)
			transport.RegisterResponder(
				http.MethodGet,
				"https://open.er-api.com/v6/latest/USD",
				tt.responder,
			)

			rate := conv.Rate(context.Background())
			assert.InDelta(t, 3450.0, rate, 0.001, "failures must degrade to the fallback rate")
		})
	}
}

func TestConverter_FailureBacksOff(t *testing.T) {
	t.Parallel()

	conv, transport := newConverter(t, time.Hour)

	var calls atomic.Int32
	transport.RegisterResponder(
		http.MethodGet,
		"https://open.er-api.com/v6/latest/USD",
		func(*http.Request) (*http.Response, error) {
			calls.Add(1)
			return httpmock.NewStringResponse(http.StatusBadGateway, "bad gateway"), nil
		},
	)

	assert.InDelta(t, 3450.0, conv.Rate(context.Background()), 0.001)
	require.Equal(t, int32(1), calls.Load())

	// While the failure is fresh the fallback is served without another
	// round trip to the rate service.
	assert.InDelta(t, 3450.0, conv.Rate(context.Background()), 0.001)
	assert.Equal(t, int32(1), calls.Load())
}

func TestConverter_RefreshClearsBackoff(t *testing.T) {
	t.Parallel()

	conv, transport := newConverter(t, time.Hour)

	transport.RegisterResponder(
		http.MethodGet,
		"https://open.er-api.com/v6/latest/USD",
		httpmock.NewStringResponder(http.StatusBadGateway, "bad gateway"),
	)
	require.InDelta(t, 3450.0, conv.Rate(context.Background()), 0.001)

	transport.RegisterResponder(
		http.MethodGet,
		"https://open.er-api.com/v6/latest/USD",
		httpmock.NewStringResponder(http.StatusOK, `{"result":"success","rates":{"MNT":3000}}`),
	)
	conv.Refresh(context.Background())

	assert.InDelta(t, 3000.0, conv.Rate(context.Background()), 0.001)
}

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	conv, transport := newConverter(t, time.Hour)
	transport.RegisterResponder(
		http.MethodGet,
		"https://open.er-api.com/v6/latest/USD",
		httpmock.NewStringResponder(http.StatusOK, `{"result":"success","rates":{"MNT":3000}}`),
	)

	// 18500 cents = $185 -> 555000 MNT at a rate of 3000.
	got := conv.Convert(context.Background(), 18500)
	assert.InDelta(t, 555000.0, got, 0.001)
}

func TestConverter_Refresh(t *testing.T) {
	t.Parallel()

	conv, transport := newConverter(t, time.Hour)

	rate := 3000.0
	transport.RegisterResponder(
		http.MethodGet,
		"https://open.er-api.com/v6/latest/USD",
		func(*http.Request) (*http.Response, error) {
			resp, err := httpmock.NewJsonResponse(http.StatusOK, map[string]any{
				"result": "success",
				"rates":  map[string]float64{"MNT": rate},
			})
			return resp, err
		},
	)

	require.InDelta(t, 3000.0, conv.Rate(context.Background()), 0.001)

	rate = 3100.0
	conv.Refresh(context.Background())

	assert.InDelta(t, 3100.0, conv.Rate(context.Background()), 0.001)
}

func TestConverter_Display(t *testing.T) {
	t.Parallel()

	conv, _ := newConverter(t, time.Hour)
	assert.Equal(t, "MNT", conv.Display())
}
