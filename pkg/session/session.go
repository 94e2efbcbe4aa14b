// Package session implements the search aggregation state machine: it holds
// the current query, source, filter selection, and the accumulated result
// pages, and drives paginated fetches through a Fetcher.
//
// The machine's states are idle -> loading -> loaded -> loadingMore ->
// loaded, with error reachable from both loading states. Incremental pages
// append in request order: a new load-more is never issued while one is
// outstanding, and responses from a superseded query/source/filter
// combination are discarded instead of overwriting newer state.
package session

import (
	"context"
	"slices"
	"sync"

	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

// State is a named state of the search machine.
type State int

// Machine states.
const (
	// StateIdle means no query has been submitted yet.
	StateIdle State = iota
	// StateLoading means the first page for the current parameters is
	// being fetched.
	StateLoading
	// StateLoaded means at least one page is rendered.
	StateLoaded
	// StateLoadingMore means an incremental page fetch is outstanding.
	StateLoadingMore
	// StateError means the initial load failed; further loading is halted
	// until the parameters change.
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateLoadingMore:
		return "loadingMore"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// SearchParams identifies one fetch: the query/source/filter combination and
// the page requested.
type SearchParams struct {
	Query    string
	Source   domain.Source
	Page     int
	PageSize int
	Filters  Filters
}

// SearchResult is one page of results from the backend.
type SearchResult struct {
	Products   []domain.Product
	HasMore    bool
	TotalCount int
	Facets     *domain.FacetSet
}

// Fetcher retrieves one result page for the given parameters.
type Fetcher interface {
	Search(ctx context.Context, params SearchParams) (*SearchResult, error)
}

const defaultPageSize = 24

// Session is the search aggregation state machine. Safe for concurrent use;
// fetches run outside the lock and commit their results only if the
// originating parameters are still current.
type Session struct {
	fetcher  Fetcher
	pageSize int

	mu         sync.Mutex
	epoch      uint64
	state      State
	query      string
	source     domain.Source
	page       int
	products   []domain.Product
	hasMore    bool
	totalCount int
	filters    Filters
	facets     *domain.FacetSet
	inFlight   bool
	lastErr    error
}

// Option configures a Session.
type Option func(*Session)

// WithPageSize overrides the default page size.
func WithPageSize(n int) Option {
	return func(s *Session) {
		s.pageSize = n
	}
}

// New creates a Session in the idle state with the primary source selected.
func New(fetcher Fetcher, opts ...Option) *Session {
	s := &Session{
		fetcher:  fetcher,
		pageSize: defaultPageSize,
		state:    StateIdle,
		source:   domain.SourceNew,
		filters:  make(Filters),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetQuery changes the query string. A changed query fully resets the
// accumulated results, page counter, filter selection, and facets. Setting
// the same query is a no-op.
func (s *Session) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if query == s.query {
		return
	}

	s.query = query
	s.filters = make(Filters)
	s.resetResultsLocked()
}

// SetSource switches between the primary and pre-owned backends. A source
// change always fully resets results, page counter, and filter selection,
// even when the query string is unchanged: the two backends expose
// unrelated facet vocabularies.
func (s *Session) SetSource(source domain.Source) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if source == s.source {
		return
	}

	s.source = source
	s.filters = make(Filters)
	s.resetResultsLocked()
}

// ToggleFilter flips a facet value and fully resets the accumulated results
// so the next Load fetches page one of the new combination.
func (s *Session) ToggleFilter(facetID, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters.Toggle(facetID, value)
	s.resetResultsLocked()
}

// resetResultsLocked clears everything derived from fetches and invalidates
// outstanding responses.
func (s *Session) resetResultsLocked() {
	s.epoch++
	s.page = 0
	s.products = nil
	s.hasMore = false
	s.totalCount = 0
	s.facets = nil
	s.lastErr = nil
	if s.query == "" {
		s.state = StateIdle
	} else {
		s.state = StateLoading
	}
}

// Load fetches page one for the current parameters. With an empty query the
// session stays idle and no fetch is issued. A response that arrives after
// the parameters changed again is discarded.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.query == "" {
		s.state = StateIdle
		s.mu.Unlock()
		return nil
	}

	s.epoch++
	epoch := s.epoch
	s.state = StateLoading
	s.page = 0
	s.products = nil
	s.facets = nil
	s.lastErr = nil
	params := s.paramsLocked(1)
	s.mu.Unlock()

	result, err := s.fetcher.Search(ctx, params)

	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch {
		// Superseded by a newer query/source/filter combination.
		return nil
	}

	if err != nil {
		s.state = StateError
		s.lastErr = err
		return err
	}

	s.products = slices.Clone(result.Products)
	s.page = 1
	s.totalCount = result.TotalCount
	s.hasMore = result.HasMore && len(result.Products) > 0
	s.facets = result.Facets
	s.state = StateLoaded
	return nil
}

// LoadMore fetches the next page when the machine is loaded, more results
// are available, and no incremental fetch is outstanding. It reports whether
// a fetch was issued. A failed load-more preserves the accumulated pages and
// the prior hasMore value; the error is surfaced via Err until dismissed.
func (s *Session) LoadMore(ctx context.Context) (bool, error) {
	s.mu.Lock()
	if s.state != StateLoaded || !s.hasMore || s.inFlight {
		s.mu.Unlock()
		return false, nil
	}

	s.inFlight = true
	s.state = StateLoadingMore
	epoch := s.epoch
	nextPage := s.page + 1
	params := s.paramsLocked(nextPage)
	s.mu.Unlock()

	result, err := s.fetcher.Search(ctx, params)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false

	if epoch != s.epoch {
		return true, nil
	}

	if err != nil {
		// Transient failure: keep pages 1..N and allow retrying.
		s.state = StateLoaded
		s.lastErr = err
		return true, err
	}

	s.products = append(s.products, result.Products...)
	s.page = nextPage
	s.totalCount = result.TotalCount
	s.hasMore = result.HasMore && len(result.Products) > 0
	s.state = StateLoaded
	s.lastErr = nil
	return true, nil
}

func (s *Session) paramsLocked(page int) SearchParams {
	return SearchParams{
		Query:    s.query,
		Source:   s.source,
		Page:     page,
		PageSize: s.pageSize,
		Filters:  s.filters.Clone(),
	}
}

// ShouldLoadMore reports whether a sentinel trigger should issue a fetch.
func (s *Session) ShouldLoadMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateLoaded && s.hasMore && !s.inFlight
}

// ClearError dismisses a load-more error message.
func (s *Session) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateError {
		s.lastErr = nil
	}
}

// State returns the current machine state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Products returns a copy of the accumulated result list.
func (s *Session) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.products)
}

// HasMore reports whether further pages are available.
func (s *Session) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasMore
}

// TotalCount returns the backend's total-result estimate.
func (s *Session) TotalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalCount
}

// Page returns the last successfully loaded page number.
func (s *Session) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Source returns the selected search source.
func (s *Session) Source() domain.Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// Facets returns the server-discovered facets for the current results, or
// nil when the source does not expose any.
func (s *Session) Facets() *domain.FacetSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.facets
}

// AppliedFilters returns a copy of the current filter selection.
func (s *Session) AppliedFilters() Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters.Clone()
}

// Err returns the most recent load error, if any.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
