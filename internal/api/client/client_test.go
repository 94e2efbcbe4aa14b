package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilegt6969/sainto-api/pkg/session"
	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.Trending(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"success":false,"error":"upstream request failed"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Search(context.Background(), &SearchParams{Query: "jordan"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 502)")
}

func TestClient_SearchRouting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   SearchParams
		wantPath string
	}{
		{
			name:     "new products hit the marketplace endpoint",
			params:   SearchParams{Query: "dunk low", Source: domain.SourceNew},
			wantPath: "/api/search",
		},
		{
			name:     "pre-owned products hit the ebay endpoint",
			params:   SearchParams{Query: "dunk low", Source: domain.SourcePreOwned},
			wantPath: "/api/search/ebay",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"success":true,"data":{"products":[],"hasMore":false,"totalCount":0}}`))
			}))
			defer srv.Close()

			c := New(srv.URL)
			resp, err := c.Search(context.Background(), &tt.params)
			require.NoError(t, err)
			assert.True(t, resp.Success)
			assert.Equal(t, tt.wantPath, gotPath)
		})
	}
}

func TestClient_SearchQueryEncoding(t *testing.T) {
	t.Parallel()

	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"products":[],"hasMore":false,"totalCount":0}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Search(context.Background(), &SearchParams{
		Query: "air jordan 4",
		Page:  3,
		Filters: map[string][]string{
			"brand": {"Nike", "Jordan"},
			"size":  {"10"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"air jordan 4"}, gotQuery["query"])
	assert.Equal(t, []string{"3"}, gotQuery["page"])
	assert.Equal(t, []string{"Nike", "Jordan"}, gotQuery["brand"])
	assert.Equal(t, []string{"10"}, gotQuery["size"])
}

func TestClient_SearchFirstPageOmitsPageParam(t *testing.T) {
	t.Parallel()

	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"products":[],"hasMore":false,"totalCount":0}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Search(context.Background(), &SearchParams{Query: "yeezy", Page: 1})
	require.NoError(t, err)
	assert.NotContains(t, gotQuery, "page")
}

func TestClient_BrowseCategory(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/category/air-jordan", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products":[{"id":"aj1","name":"Air Jordan 1"}],"hasMore":true,"total":60}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.BrowseCategory(context.Background(), "air-jordan", 2)
	require.NoError(t, err)
	assert.Len(t, resp.Products, 1)
	assert.Equal(t, "aj1", resp.Products[0].ID)
	assert.True(t, resp.HasMore)
	assert.Equal(t, 60, resp.Total)
}

func TestClient_CreateOrder(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/createOrder", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req CreateOrderRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ord-1", req.OrderID)
		assert.Equal(t, "Bat-Erdene", req.Customer.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"orderId":"ord-1","orderNumber":"SNT-AB12CD34"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.CreateOrder(context.Background(), &CreateOrderRequest{
		OrderID:          "ord-1",
		PaymentReference: "pay-1",
		TotalAmount:      550000,
		Items:            []OrderItem{{ProductID: "aj4", Name: "Air Jordan 4", Quantity: 1, Price: 550000}},
		Customer:         OrderCustomer{Name: "Bat-Erdene", Phone: "99112233"},
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "SNT-AB12CD34", resp.OrderNumber)
}

func TestClient_Trending(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/trending", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"sections":[{"title":"Hot Right Now","keyword":"jordan 4","products":[]}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Trending(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Sections, 1)
	assert.Equal(t, "Hot Right Now", resp.Sections[0].Title)
}

func TestSessionFetcher_MapsEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"products": [{"id":"p1","name":"Dunk Low"}],
				"hasMore": true,
				"totalCount": 42,
				"filters": {"aspects":[{"id":"brand","name":"Brand","values":[{"value":"Nike","count":10}]}],"dominant_category":"15709"}
			}
		}`))
	}))
	defer srv.Close()

	f := NewSessionFetcher(New(srv.URL))
	result, err := f.Search(context.Background(), session.SearchParams{Query: "dunk", Page: 1})
	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "p1", result.Products[0].ID)
	assert.True(t, result.HasMore)
	assert.Equal(t, 42, result.TotalCount)
	require.NotNil(t, result.Facets)
}

func TestSessionFetcher_NilDataYieldsEmptyResult(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	f := NewSessionFetcher(New(srv.URL))
	result, err := f.Search(context.Background(), session.SearchParams{Query: "dunk", Page: 1})
	require.NoError(t, err)
	assert.Empty(t, result.Products)
	assert.False(t, result.HasMore)
	assert.Zero(t, result.TotalCount)
	assert.Nil(t, result.Facets)
}
