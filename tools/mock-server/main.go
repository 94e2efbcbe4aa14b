// Package main implements a mock upstream server for local development.
// It simulates the four backends the storefront talks to: the eBay OAuth
// token endpoint and Browse API, the marketplace search/browse API, the
// currency rate service, and the CMS sections endpoint. Point the relevant
// config URLs at this server to run the API without real credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type browseAPIResponse struct {
	ItemSummaries []json.RawMessage `json:"itemSummaries"`
	Total         int               `json:"total"`
	Offset        int               `json:"offset"`
	Limit         int               `json:"limit"`
	Next          string            `json:"next,omitempty"`
}

type itemSummary struct {
	Title string `json:"title"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "", "optional path to an eBay browse fixture (defaults to built-in items)")
	rate := flag.Float64("rate", 3450, "USD to MNT rate served by the mock rate endpoint")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "items", len(fixture.ItemSummaries))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /identity/v1/oauth2/token", tokenHandler(logger))
	mux.HandleFunc("GET /buy/browse/v1/item_summary/search", ebaySearchHandler(logger, fixture))
	mux.HandleFunc("GET /search/{query}", marketplaceSearchHandler(logger))
	mux.HandleFunc("GET /browse/group_id/{slug}", marketplaceBrowseHandler(logger))
	mux.HandleFunc("GET /v6/latest/{base}", rateHandler(logger, *rate))
	mux.HandleFunc("GET /cms/sections", sectionsHandler(logger))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock upstream server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// defaultBrowseFixture is the built-in eBay browse payload used when no
// fixture file is supplied.
const defaultBrowseFixture = `{
  "itemSummaries": [
    {"itemId": "v1|1001|0", "title": "Nike Air Jordan 4 Retro Bred", "price": {"value": "210.50", "currency": "USD"}, "condition": "Pre-owned", "image": {"imageUrl": "https://example.test/aj4.jpg"}, "itemWebUrl": "https://ebay.test/itm/1001"},
    {"itemId": "v1|1002|0", "title": "Nike Dunk Low Panda", "price": {"value": "95.00", "currency": "USD"}, "condition": "Pre-owned", "image": {"imageUrl": "https://example.test/dunk.jpg"}, "itemWebUrl": "https://ebay.test/itm/1002"},
    {"itemId": "v1|1003|0", "title": "Adidas Yeezy Boost 350 V2", "price": {"value": "180.00", "currency": "USD"}, "condition": "Pre-owned", "image": {"imageUrl": "https://example.test/yeezy.jpg"}, "itemWebUrl": "https://ebay.test/itm/1003"},
    {"itemId": "v1|1004|0", "title": "Nike Air Jordan 1 Chicago", "price": {"value": "320.00", "currency": "USD"}, "condition": "Pre-owned", "image": {"imageUrl": "https://example.test/aj1.jpg"}, "itemWebUrl": "https://ebay.test/itm/1004"}
  ],
  "total": 4,
  "offset": 0,
  "limit": 50
}`

func loadFixture(path string) (*browseAPIResponse, error) {
	data := []byte(defaultBrowseFixture)
	if path != "" {
		var err error
		data, err = os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
		if err != nil {
			return nil, fmt.Errorf("reading fixture: %w", err)
		}
	}
	var resp browseAPIResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &resp, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func tokenHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Validate Basic Auth header is present (don't verify creds).
		if _, _, ok := r.BasicAuth(); !ok {
			logger.Warn("token request missing Basic Auth header")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{
				"error":             "invalid_client",
				"error_description": "client authentication failed",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "mock-token-v1-" + strconv.FormatInt(int64(os.Getpid()), 16),
			"expires_in":   7200,
			"token_type":   "Application Access Token",
		})
		logger.Info("issued mock token")
	}
}

func ebaySearchHandler(logger *slog.Logger, fixture *browseAPIResponse) http.HandlerFunc {
	// Pre-parse titles for filtering.
	type indexedItem struct {
		raw   json.RawMessage
		title string
	}
	items := make([]indexedItem, 0, len(fixture.ItemSummaries))
	for _, raw := range fixture.ItemSummaries {
		var s itemSummary
		//nolint:errcheck,gosec // fixture data is trusted; title extraction is best-effort
		json.Unmarshal(raw, &s)
		items = append(items, indexedItem{raw: raw, title: strings.ToLower(s.Title)})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		q := strings.ToLower(r.URL.Query().Get("q"))
		limitStr := r.URL.Query().Get("limit")
		offsetStr := r.URL.Query().Get("offset")

		limit := 50
		if limitStr != "" {
			if v, err := strconv.Atoi(limitStr); err == nil && v > 0 {
				limit = v
			}
		}
		offset := 0
		if offsetStr != "" {
			if v, err := strconv.Atoi(offsetStr); err == nil && v >= 0 {
				offset = v
			}
		}

		// Filter items by query substring match on title.
		var matched []json.RawMessage
		for _, item := range items {
			if q == "" || strings.Contains(item.title, q) {
				matched = append(matched, item.raw)
			}
		}

		total := len(matched)

		// Apply pagination.
		if offset >= len(matched) {
			matched = nil
		} else {
			end := min(offset+limit, len(matched))
			matched = matched[offset:end]
		}

		next := ""
		if offset+limit < total {
			next = fmt.Sprintf("/buy/browse/v1/item_summary/search?q=%s&offset=%d&limit=%d",
				r.URL.Query().Get("q"), offset+limit, limit)
		}

		resp := browseAPIResponse{
			ItemSummaries: matched,
			Total:         total,
			Offset:        offset,
			Limit:         limit,
			Next:          next,
		}

		// Return empty array instead of null when no results.
		if resp.ItemSummaries == nil {
			resp.ItemSummaries = []json.RawMessage{}
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(resp)
		logger.Info("ebay search", "query", q, "matched", total, "returned", len(matched), "offset", offset, "limit", limit)
	}
}

// marketplaceProducts is the built-in marketplace catalogue, served for both
// keyword search and category browse.
var marketplaceProducts = []map[string]any{
	{"value": "Air Jordan 4 Retro Bred Reimagined", "data": map[string]any{
		"id": "aj4-bred", "image_url": "https://example.test/aj4.jpg", "slug": "air-jordan-4-retro-bred",
		"lowest_price_cents": 21050, "brand": "Jordan", "category": "air-jordan", "in_stock": true,
	}},
	{"value": "Nike Dunk Low Retro White Black", "data": map[string]any{
		"id": "dunk-panda", "image_url": "https://example.test/dunk.jpg", "slug": "nike-dunk-low-panda",
		"lowest_price_cents": 9500, "brand": "Nike", "category": "dunk", "in_stock": true,
	}},
	{"value": "adidas Yeezy Boost 350 V2 Onyx", "data": map[string]any{
		"id": "yeezy-350", "image_url": "https://example.test/yeezy.jpg", "slug": "yeezy-boost-350-v2-onyx",
		"lowest_price_cents": 18000, "brand": "adidas", "category": "yeezy", "in_stock": false,
	}},
}

func writeMarketplaceResponse(w http.ResponseWriter, results []map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(map[string]any{
		"response": map[string]any{
			"results":           results,
			"total_num_results": len(results),
		},
	})
}

func marketplaceSearchHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.ToLower(r.PathValue("query"))

		var matched []map[string]any
		for _, p := range marketplaceProducts {
			name, _ := p["value"].(string)
			if query == "" || strings.Contains(strings.ToLower(name), query) {
				matched = append(matched, p)
			}
		}
		if matched == nil {
			matched = []map[string]any{}
		}

		writeMarketplaceResponse(w, matched)
		logger.Info("marketplace search", "query", query, "matched", len(matched))
	}
}

func marketplaceBrowseHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := r.PathValue("slug")

		var matched []map[string]any
		for _, p := range marketplaceProducts {
			data, _ := p["data"].(map[string]any)
			if data["category"] == slug {
				matched = append(matched, p)
			}
		}
		if matched == nil {
			matched = []map[string]any{}
		}

		writeMarketplaceResponse(w, matched)
		logger.Info("marketplace browse", "slug", slug, "matched", len(matched))
	}
}

func rateHandler(logger *slog.Logger, mntRate float64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base := r.PathValue("base")
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{
			"result": "success",
			"rates": map[string]float64{
				base:  1,
				"MNT": mntRate,
			},
		})
		logger.Info("served rate", "base", base, "mnt", mntRate)
	}
}

func sectionsHandler(logger *slog.Logger) http.HandlerFunc {
	sections := []map[string]string{
		{"title": "Hot Right Now", "keyword": "jordan 4"},
		{"title": "Dunk Season", "keyword": "dunk low"},
		{"title": "Yeezy Archive", "keyword": "yeezy 350"},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		limit := len(sections)
		if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v < limit {
			limit = v
		}
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{"result": sections[:limit]})
		logger.Info("served sections", "count", limit)
	}
}
