package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/bilegt6969/sainto-api/pkg/session"
	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

// SearchData is the payload of a successful search response.
type SearchData struct {
	Products []domain.Product `json:"products"`
	HasMore  bool             `json:"hasMore"`
	Total    int              `json:"totalCount"`
	Filters  *domain.FacetSet `json:"filters"`
}

// SearchResponse wraps a search response envelope.
type SearchResponse struct {
	Success bool        `json:"success"`
	Data    *SearchData `json:"data"`
	Error   string      `json:"error"`
}

// SearchParams defines query parameters for a product search.
type SearchParams struct {
	Query   string
	Page    int
	Source  domain.Source
	Filters map[string][]string
}

// Search runs a product search against the configured source. The pre-owned
// source routes to the eBay-backed endpoint; everything else hits the
// marketplace endpoint.
func (c *Client) Search(ctx context.Context, params *SearchParams) (*SearchResponse, error) {
	q := url.Values{}
	q.Set("query", params.Query)
	if params.Page > 1 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	for key, values := range params.Filters {
		for _, v := range values {
			q.Add(key, v)
		}
	}

	path := "/api/search"
	if params.Source == domain.SourcePreOwned {
		path = "/api/search/ebay"
	}
	path += "?" + q.Encode()

	var resp SearchResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// CategoryResponse wraps a category browse response.
type CategoryResponse struct {
	Products []domain.Product `json:"products"`
	HasMore  bool             `json:"hasMore"`
	Total    int              `json:"total"`
}

// BrowseCategory returns a page of products for a category slug.
func (c *Client) BrowseCategory(ctx context.Context, slug string, page int) (*CategoryResponse, error) {
	path := "/api/category/" + url.PathEscape(slug)
	if page > 1 {
		path += "?page=" + strconv.Itoa(page)
	}

	var resp CategoryResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// SessionFetcher adapts the Client to the session.Fetcher interface so the
// aggregation state machine can page through API results.
type SessionFetcher struct {
	client *Client
}

// NewSessionFetcher creates a SessionFetcher backed by the given client.
func NewSessionFetcher(c *Client) *SessionFetcher {
	return &SessionFetcher{client: c}
}

// Search fetches one result page for the session state machine.
func (f *SessionFetcher) Search(ctx context.Context, params session.SearchParams) (*session.SearchResult, error) {
	resp, err := f.client.Search(ctx, &SearchParams{
		Query:   params.Query,
		Page:    params.Page,
		Source:  params.Source,
		Filters: params.Filters,
	})
	if err != nil {
		return nil, err
	}

	result := &session.SearchResult{}
	if resp.Data != nil {
		result.Products = resp.Data.Products
		result.HasMore = resp.Data.HasMore
		result.TotalCount = resp.Data.Total
		result.Facets = resp.Data.Filters
	}

	return result, nil
}
