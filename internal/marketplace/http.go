package marketplace

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bilegt6969/sainto-api/internal/metrics"
	"github.com/bilegt6969/sainto-api/internal/upstream"
)

const backendName = "marketplace"

// HTTPClient implements Client against the marketplace's HTTP search API.
type HTTPClient struct {
	searchURL string
	browseURL string
	apiKey    string
	pageSize  int
	client    *http.Client
}

// Option configures the HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.client = hc
	}
}

// WithPageSize overrides the default page size.
func WithPageSize(n int) Option {
	return func(c *HTTPClient) {
		c.pageSize = n
	}
}

// NewHTTPClient creates a marketplace client. searchURL and browseURL are the
// endpoint bases; the query or category slug is appended as a path segment.
func NewHTTPClient(searchURL, browseURL, apiKey string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		searchURL: searchURL,
		browseURL: browseURL,
		apiKey:    apiKey,
		pageSize:  24,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// searchAPIResponse mirrors the subset of the marketplace payload this
// service consumes. Anything outside this shape is ignored.
type searchAPIResponse struct {
	Response *searchAPIBody `json:"response"`
}

type searchAPIBody struct {
	Results         []searchAPIResult `json:"results"`
	TotalNumResults int               `json:"total_num_results"`
}

type searchAPIResult struct {
	Value string              `json:"value"`
	Data  searchAPIResultData `json:"data"`
}

type searchAPIResultData struct {
	ID               string `json:"id"`
	ImageURL         string `json:"image_url"`
	Slug             string `json:"slug"`
	LowestPriceCents int    `json:"lowest_price_cents"`
	Brand            string `json:"brand"`
	Category         string `json:"category"`
	InStock          bool   `json:"in_stock"`
}

// Search implements Client.Search.
func (c *HTTPClient) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	if c.apiKey == "" {
		return nil, upstream.ErrMissingCredentials
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = c.pageSize
	}

	u := c.buildSearchURL(req)
	return c.fetch(ctx, u, normalizePage(req.Page), pageSize)
}

// Browse implements Client.Browse.
func (c *HTTPClient) Browse(ctx context.Context, slug string, page int) (*SearchResponse, error) {
	if c.apiKey == "" {
		return nil, upstream.ErrMissingCredentials
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("page", strconv.Itoa(normalizePage(page)))
	params.Set("num_results_per_page", strconv.Itoa(c.pageSize))

	u := c.browseURL + "/" + url.PathEscape(slug) + "?" + params.Encode()
	return c.fetch(ctx, u, normalizePage(page), c.pageSize)
}

func (c *HTTPClient) fetch(ctx context.Context, u string, page, pageSize int) (*SearchResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	metrics.UpstreamRequestsTotal.WithLabelValues(backendName).Inc()

	resp, err := c.client.Do(httpReq)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues(backendName).Inc()
		return nil, fmt.Errorf("executing search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.UpstreamErrorsTotal.WithLabelValues(backendName).Inc()
		return nil, upstream.NewStatusError(backendName, resp.StatusCode, body)
	}

	var apiResp searchAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("%w: %v", upstream.ErrMalformedPayload, err)
	}

	if apiResp.Response == nil || apiResp.Response.Results == nil {
		return nil, fmt.Errorf("%w: missing results array", upstream.ErrMalformedPayload)
	}

	total := apiResp.Response.TotalNumResults
	products := toProducts(apiResp.Response.Results)

	return &SearchResponse{
		Products: products,
		Total:    total,
		HasMore:  len(products) > 0 && page*pageSize < total,
	}, nil
}

func (c *HTTPClient) buildSearchURL(req SearchRequest) string {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("page", strconv.Itoa(normalizePage(req.Page)))

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = c.pageSize
	}
	params.Set("num_results_per_page", strconv.Itoa(pageSize))

	for key, values := range req.Filters {
		for _, v := range values {
			params.Add("filters["+key+"]", v)
		}
	}

	// Direct parameters override defaults set above.
	for key, v := range req.Direct {
		params.Set(key, v)
	}

	return c.searchURL + "/" + url.PathEscape(req.Query) + "?" + params.Encode()
}

// normalizePage coerces malformed page numbers to 1 rather than rejecting
// them.
func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
