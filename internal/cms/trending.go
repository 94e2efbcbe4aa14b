package cms

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bilegt6969/sainto-api/internal/marketplace"
	"github.com/bilegt6969/sainto-api/internal/metrics"
	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

// TrendingResolver turns CMS sections into product rows by running one
// marketplace lookup per section keyword. Lookups run concurrently and the
// results are merged by section index, not completion order.
type TrendingResolver struct {
	sections SectionFetcher
	search   marketplace.Client
	perRow   int
	log      *slog.Logger
}

// NewTrendingResolver creates a TrendingResolver. perRow is the number of
// products fetched per section.
func NewTrendingResolver(sections SectionFetcher, search marketplace.Client, perRow int, log *slog.Logger) *TrendingResolver {
	return &TrendingResolver{
		sections: sections,
		search:   search,
		perRow:   perRow,
		log:      log,
	}
}

// Resolve fetches the configured sections and their product rows. A failed
// section lookup yields an empty product row for that section; only a
// failure to list the sections themselves is an error.
func (r *TrendingResolver) Resolve(ctx context.Context, limit int) ([]domain.TrendingSection, error) {
	sections, err := r.sections.Sections(ctx, limit)
	if err != nil {
		return nil, err
	}

	resolved := make([]domain.TrendingSection, len(sections))

	var wg sync.WaitGroup
	for i, section := range sections {
		wg.Add(1)
		go func(idx int, s Section) {
			defer wg.Done()
			resolved[idx] = domain.TrendingSection{
				Title:    s.Title,
				Keyword:  s.Keyword,
				Products: r.lookup(ctx, s.Keyword),
			}
		}(i, section)
	}
	wg.Wait()

	return resolved, nil
}

// lookup runs one keyword search, swallowing failures into an empty list so
// the section still renders.
func (r *TrendingResolver) lookup(ctx context.Context, keyword string) []domain.Product {
	resp, err := r.search.Search(ctx, marketplace.SearchRequest{
		Query:    keyword,
		Page:     1,
		PageSize: r.perRow,
	})
	if err != nil {
		metrics.TrendingSectionErrorsTotal.Inc()
		r.log.Warn("trending section lookup failed", "keyword", keyword, "error", err)
		return []domain.Product{}
	}
	return resp.Products
}
