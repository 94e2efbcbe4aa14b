// Package ebay provides an eBay Browse API client for the pre-owned search
// source, abstracted behind interfaces for testability.
package ebay

import (
	"context"
)

// SearchRequest defines the parameters for an eBay search.
type SearchRequest struct {
	Query      string
	CategoryID string
	Limit      int
	Offset     int
	Sort       string

	// Aspects maps aspect names to selected values, forwarded as an
	// aspect_filter parameter. Requires CategoryID to be set.
	Aspects map[string][]string

	// PreOwnedOnly restricts results to used items.
	PreOwnedOnly bool

	// IncludeRefinements asks the Browse API for category and aspect
	// distributions alongside the result page.
	IncludeRefinements bool
}

// SearchResponse holds the results of an eBay search.
type SearchResponse struct {
	Items      []ItemSummary
	Total      int
	Offset     int
	Limit      int
	HasMore    bool
	Refinement *Refinement
}

// Client defines the interface for interacting with the eBay API.
type Client interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
}

// TokenProvider defines the interface for obtaining OAuth2 tokens.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}
