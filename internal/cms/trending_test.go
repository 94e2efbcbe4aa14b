package cms_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bilegt6969/sainto-api/internal/cms"
	cmsMocks "github.com/bilegt6969/sainto-api/internal/cms/mocks"
	"github.com/bilegt6969/sainto-api/internal/marketplace"
	searchMocks "github.com/bilegt6969/sainto-api/internal/marketplace/mocks"
	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

func silentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTrendingResolver_Resolve(t *testing.T) {
	t.Parallel()

	sections := cmsMocks.NewMockSectionFetcher(t)
	sections.EXPECT().
		Sections(mock.Anything, 2).
		Return([]cms.Section{
			{Title: "Hot Right Now", Keyword: "jordan 4"},
			{Title: "Summer Slides", Keyword: "slides"},
		}, nil).
		Once()

	search := searchMocks.NewMockClient(t)
	search.EXPECT().
		Search(mock.Anything, mock.MatchedBy(func(r marketplace.SearchRequest) bool {
			return r.Query == "jordan 4" && r.Page == 1 && r.PageSize == 6
		})).
		Return(&marketplace.SearchResponse{
			Products: []domain.Product{{ID: "aj4", Name: "Air Jordan 4"}},
		}, nil).
		Once()
	search.EXPECT().
		Search(mock.Anything, mock.MatchedBy(func(r marketplace.SearchRequest) bool {
			return r.Query == "slides"
		})).
		Return(&marketplace.SearchResponse{
			Products: []domain.Product{{ID: "s1"}, {ID: "s2"}},
		}, nil).
		Once()

	r := cms.NewTrendingResolver(sections, search, 6, silentLogger())

	resolved, err := r.Resolve(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, resolved, 2)

	// Rows come back in section order regardless of lookup completion order.
	assert.Equal(t, "Hot Right Now", resolved[0].Title)
	assert.Len(t, resolved[0].Products, 1)
	assert.Equal(t, "Summer Slides", resolved[1].Title)
	assert.Len(t, resolved[1].Products, 2)
}

func TestTrendingResolver_FailedLookupYieldsEmptyRow(t *testing.T) {
	t.Parallel()

	sections := cmsMocks.NewMockSectionFetcher(t)
	sections.EXPECT().
		Sections(mock.Anything, 2).
		Return([]cms.Section{
			{Title: "Working", Keyword: "ok"},
			{Title: "Broken", Keyword: "fail"},
		}, nil).
		Once()

	search := searchMocks.NewMockClient(t)
	search.EXPECT().
		Search(mock.Anything, mock.MatchedBy(func(r marketplace.SearchRequest) bool {
			return r.Query == "ok"
		})).
		Return(&marketplace.SearchResponse{Products: []domain.Product{{ID: "p1"}}}, nil).
		Once()
	search.EXPECT().
		Search(mock.Anything, mock.MatchedBy(func(r marketplace.SearchRequest) bool {
			return r.Query == "fail"
		})).
		Return(nil, errors.New("upstream down")).
		Once()

	r := cms.NewTrendingResolver(sections, search, 6, silentLogger())

	resolved, err := r.Resolve(context.Background(), 2)
	require.NoError(t, err, "a failed section lookup must not fail the page")
	require.Len(t, resolved, 2)

	assert.Len(t, resolved[0].Products, 1)
	assert.Empty(t, resolved[1].Products)
	assert.NotNil(t, resolved[1].Products, "failed rows render as empty lists, not null")
}

func TestTrendingResolver_SectionsErrorPropagates(t *testing.T) {
	t.Parallel()

	sections := cmsMocks.NewMockSectionFetcher(t)
	sections.EXPECT().
		Sections(mock.Anything, 5).
		Return(nil, errors.New("cms unreachable")).
		Once()

	search := searchMocks.NewMockClient(t)

	r := cms.NewTrendingResolver(sections, search, 6, silentLogger())

	_, err := r.Resolve(context.Background(), 5)
	assert.Error(t, err)
}
