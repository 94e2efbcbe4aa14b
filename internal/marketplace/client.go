// Package marketplace provides a client for the primary sneaker marketplace
// search backend, abstracted behind interfaces for testability.
package marketplace

import (
	"context"

	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

// SearchRequest defines the parameters for a marketplace search.
type SearchRequest struct {
	Query    string
	Page     int
	PageSize int

	// Filters are forwarded as bracketed filters[key]=value parameters.
	// Keys must come from the filter allow-list; PartitionParams builds
	// this map from raw query parameters.
	Filters map[string][]string

	// Direct parameters override the default query-string values and are
	// forwarded as-is. Keys must come from the direct allow-list.
	Direct map[string]string
}

// SearchResponse holds the normalized results of a marketplace search.
type SearchResponse struct {
	Products []domain.Product
	Total    int
	HasMore  bool
}

// Client defines the interface for the marketplace search backend.
type Client interface {
	// Search runs a free-text search with optional facet filters.
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)

	// Browse returns a page of products for a category slug.
	Browse(ctx context.Context, slug string, page int) (*SearchResponse, error)
}
