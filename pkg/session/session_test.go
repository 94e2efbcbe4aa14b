package session_test

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilegt6969/sainto-api/pkg/session"
	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

// fakeFetcher returns scripted pages and records every request it sees.
type fakeFetcher struct {
	mu      sync.Mutex
	calls   []session.SearchParams
	respond func(params session.SearchParams) (*session.SearchResult, error)
}

func (f *fakeFetcher) Search(_ context.Context, params session.SearchParams) (*session.SearchResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, params)
	respond := f.respond
	f.mu.Unlock()
	return respond(params)
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeFetcher) lastCall() session.SearchParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func pageOf(ids ...string) []domain.Product {
	products := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		products = append(products, domain.Product{ID: id, Name: id})
	}
	return products
}

func successFetcher(hasMore bool, ids ...string) *fakeFetcher {
	return &fakeFetcher{
		respond: func(session.SearchParams) (*session.SearchResult, error) {
			return &session.SearchResult{
				Products:   pageOf(ids...),
				HasMore:    hasMore,
				TotalCount: 100,
			}, nil
		},
	}
}

func TestSession_InitialState(t *testing.T) {
	t.Parallel()

	sess := session.New(successFetcher(false))

	assert.Equal(t, session.StateIdle, sess.State())
	assert.Equal(t, domain.SourceNew, sess.Source())
	assert.Empty(t, sess.Products())
	assert.False(t, sess.HasMore())
}

func TestSession_LoadEmptyQueryStaysIdle(t *testing.T) {
	t.Parallel()

	fetcher := successFetcher(true, "p1")
	sess := session.New(fetcher)

	require.NoError(t, sess.Load(context.Background()))

	assert.Equal(t, session.StateIdle, sess.State())
	assert.Zero(t, fetcher.callCount())
}

func TestSession_LoadFirstPage(t *testing.T) {
	t.Parallel()

	fetcher := successFetcher(true, "p1", "p2")
	sess := session.New(fetcher, session.WithPageSize(2))

	sess.SetQuery("jordan 1")
	require.NoError(t, sess.Load(context.Background()))

	assert.Equal(t, session.StateLoaded, sess.State())
	assert.Len(t, sess.Products(), 2)
	assert.Equal(t, 1, sess.Page())
	assert.Equal(t, 100, sess.TotalCount())
	assert.True(t, sess.HasMore())

	call := fetcher.lastCall()
	assert.Equal(t, "jordan 1", call.Query)
	assert.Equal(t, 1, call.Page)
	assert.Equal(t, 2, call.PageSize)
}

func TestSession_LoadErrorEntersErrorState(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{
		respond: func(session.SearchParams) (*session.SearchResult, error) {
			return nil, errors.New("backend down")
		},
	}
	sess := session.New(fetcher)

	sess.SetQuery("dunk low")
	err := sess.Load(context.Background())

	require.Error(t, err)
	assert.Equal(t, session.StateError, sess.State())
	assert.Error(t, sess.Err())
	assert.Empty(t, sess.Products())
	assert.False(t, sess.ShouldLoadMore())
}

func TestSession_HasMoreRequiresNonEmptyPage(t *testing.T) {
	t.Parallel()

	// Backend claims more results but returns an empty page; treating that
	// as loadable would loop forever.
	fetcher := successFetcher(true)
	sess := session.New(fetcher)

	sess.SetQuery("yeezy")
	require.NoError(t, sess.Load(context.Background()))

	assert.Equal(t, session.StateLoaded, sess.State())
	assert.False(t, sess.HasMore())
	assert.False(t, sess.ShouldLoadMore())
}

func TestSession_LoadMoreAppendsInOrder(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{}
	fetcher.respond = func(params session.SearchParams) (*session.SearchResult, error) {
		switch params.Page {
		case 1:
			return &session.SearchResult{Products: pageOf("a", "b"), HasMore: true, TotalCount: 4}, nil
		default:
			return &session.SearchResult{Products: pageOf("c", "d"), HasMore: false, TotalCount: 4}, nil
		}
	}
	sess := session.New(fetcher)

	sess.SetQuery("air max")
	require.NoError(t, sess.Load(context.Background()))

	issued, err := sess.LoadMore(context.Background())
	require.NoError(t, err)
	assert.True(t, issued)

	products := sess.Products()
	require.Len(t, products, 4)
	assert.Equal(t, []string{"a", "b", "c", "d"}, []string{
		products[0].ID, products[1].ID, products[2].ID, products[3].ID,
	})
	assert.Equal(t, 2, sess.Page())
	assert.False(t, sess.HasMore())
}

func TestSession_LoadMoreGuards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(*session.Session)
	}{
		{
			name:  "idle session",
			setup: func(_ *session.Session) {},
		},
		{
			name: "no more results",
			setup: func(s *session.Session) {
				s.SetQuery("q")
				_ = s.Load(context.Background())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fetcher := successFetcher(false, "p1")
			sess := session.New(fetcher)
			tt.setup(sess)

			before := fetcher.callCount()
			issued, err := sess.LoadMore(context.Background())
			require.NoError(t, err)
			assert.False(t, issued)
			assert.Equal(t, before, fetcher.callCount())
		})
	}
}

func TestSession_LoadMoreSingleFlight(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	var pageTwos atomic.Int32

	fetcher := &fakeFetcher{}
	fetcher.respond = func(params session.SearchParams) (*session.SearchResult, error) {
		if params.Page > 1 {
			pageTwos.Add(1)
			<-block
		}
		return &session.SearchResult{Products: pageOf("x"), HasMore: true, TotalCount: 10}, nil
	}
	sess := session.New(fetcher)

	sess.SetQuery("slides")
	require.NoError(t, sess.Load(context.Background()))

	var wg sync.WaitGroup
	done := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = sess.LoadMore(context.Background())
	}()

	// Wait for the first load-more to be in flight, then attempt a second.
	for pageTwos.Load() == 0 {
		runtime.Gosched()
	}
	issued, err := sess.LoadMore(context.Background())
	require.NoError(t, err)
	assert.False(t, issued, "second load-more must be rejected while one is outstanding")

	close(block)
	go func() { wg.Wait(); close(done) }()
	<-done

	assert.Equal(t, int32(1), pageTwos.Load())
}

func TestSession_LoadMoreFailurePreservesPages(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{}
	fetcher.respond = func(params session.SearchParams) (*session.SearchResult, error) {
		if params.Page > 1 {
			return nil, errors.New("timeout")
		}
		return &session.SearchResult{Products: pageOf("a", "b"), HasMore: true, TotalCount: 10}, nil
	}
	sess := session.New(fetcher)

	sess.SetQuery("samba")
	require.NoError(t, sess.Load(context.Background()))

	issued, err := sess.LoadMore(context.Background())
	assert.True(t, issued)
	require.Error(t, err)

	// Pages and position survive; the machine stays loaded and retryable.
	assert.Equal(t, session.StateLoaded, sess.State())
	assert.Len(t, sess.Products(), 2)
	assert.Equal(t, 1, sess.Page())
	assert.True(t, sess.HasMore())
	assert.Error(t, sess.Err())

	sess.ClearError()
	assert.NoError(t, sess.Err())
	assert.True(t, sess.ShouldLoadMore())
}

func TestSession_QueryChangeResetsEverything(t *testing.T) {
	t.Parallel()

	fetcher := successFetcher(true, "p1")
	sess := session.New(fetcher)

	sess.SetQuery("jordan")
	sess.ToggleFilter("brand", "Nike")
	require.NoError(t, sess.Load(context.Background()))
	require.NotEmpty(t, sess.Products())

	sess.SetQuery("new balance")

	assert.Equal(t, session.StateLoading, sess.State())
	assert.Empty(t, sess.Products())
	assert.Zero(t, sess.Page())
	assert.Empty(t, sess.AppliedFilters())
	assert.False(t, sess.HasMore())
}

func TestSession_SetQuerySameValueIsNoOp(t *testing.T) {
	t.Parallel()

	fetcher := successFetcher(false, "p1")
	sess := session.New(fetcher)

	sess.SetQuery("gazelle")
	require.NoError(t, sess.Load(context.Background()))

	sess.SetQuery("gazelle")

	assert.Equal(t, session.StateLoaded, sess.State())
	assert.NotEmpty(t, sess.Products())
}

func TestSession_SourceToggleResetsFilters(t *testing.T) {
	t.Parallel()

	fetcher := successFetcher(true, "p1")
	sess := session.New(fetcher)

	sess.SetQuery("jordan")
	sess.ToggleFilter("brand", "Nike")
	require.NoError(t, sess.Load(context.Background()))

	sess.SetSource(domain.SourcePreOwned)

	assert.Equal(t, domain.SourcePreOwned, sess.Source())
	assert.Empty(t, sess.AppliedFilters(), "source change must clear filter selection")
	assert.Empty(t, sess.Products())
	assert.Equal(t, session.StateLoading, sess.State())

	// Switching to the already-selected source changes nothing.
	require.NoError(t, sess.Load(context.Background()))
	sess.SetSource(domain.SourcePreOwned)
	assert.Equal(t, session.StateLoaded, sess.State())
}

func TestSession_StaleLoadDiscarded(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	fetcher := &fakeFetcher{}
	fetcher.respond = func(params session.SearchParams) (*session.SearchResult, error) {
		if params.Query == "old" {
			<-release
			return &session.SearchResult{Products: pageOf("stale"), HasMore: true, TotalCount: 1}, nil
		}
		return &session.SearchResult{Products: pageOf("fresh"), HasMore: false, TotalCount: 1}, nil
	}
	sess := session.New(fetcher)

	sess.SetQuery("old")
	done := make(chan error, 1)
	go func() { done <- sess.Load(context.Background()) }()

	for fetcher.callCount() == 0 {
		runtime.Gosched()
	}

	// Supersede the in-flight load, complete the new one, then let the
	// stale response land.
	sess.SetQuery("new")
	require.NoError(t, sess.Load(context.Background()))
	close(release)
	require.NoError(t, <-done)

	products := sess.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "fresh", products[0].ID, "stale response must not overwrite newer results")
}

func TestSession_FacetsFromResult(t *testing.T) {
	t.Parallel()

	facets := &domain.FacetSet{
		DominantCategory: "15709",
		Categories:       []domain.FacetValue{{Value: "15709", Count: 12}},
	}
	fetcher := &fakeFetcher{
		respond: func(session.SearchParams) (*session.SearchResult, error) {
			return &session.SearchResult{
				Products: pageOf("p1"),
				Facets:   facets,
			}, nil
		},
	}
	sess := session.New(fetcher)

	sess.SetQuery("jordan")
	require.NoError(t, sess.Load(context.Background()))

	require.NotNil(t, sess.Facets())
	assert.Equal(t, "15709", sess.Facets().DominantCategory)
}

func TestSession_ToggleFilterForwardsSelection(t *testing.T) {
	t.Parallel()

	fetcher := successFetcher(false, "p1")
	sess := session.New(fetcher)

	sess.SetQuery("jordan")
	sess.ToggleFilter("brand", "Nike")
	sess.ToggleFilter("brand", "Adidas")
	require.NoError(t, sess.Load(context.Background()))

	call := fetcher.lastCall()
	assert.ElementsMatch(t, []string{"Nike", "Adidas"}, call.Filters["brand"])
}
