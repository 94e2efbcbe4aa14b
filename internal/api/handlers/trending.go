package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bilegt6969/sainto-api/internal/cms"
	"github.com/bilegt6969/sainto-api/internal/currency"
	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

// TrendingHandler serves editorial trending sections.
type TrendingHandler struct {
	trending     *cms.TrendingResolver
	fx           *currency.Converter
	sectionLimit int
	log          *slog.Logger
}

// NewTrendingHandler creates a new TrendingHandler. sectionLimit caps how
// many sections are resolved when the request does not name a limit.
func NewTrendingHandler(trending *cms.TrendingResolver, fx *currency.Converter, sectionLimit int, log *slog.Logger) *TrendingHandler {
	return &TrendingHandler{trending: trending, fx: fx, sectionLimit: sectionLimit, log: log}
}

// ListTrendingInput is the input for the trending endpoint.
type ListTrendingInput struct {
	Limit int `query:"limit,omitempty" doc:"Maximum number of sections" minimum:"1" maximum:"50"`
}

// ListTrendingOutput is the response for the trending endpoint.
type ListTrendingOutput struct {
	Body struct {
		Success  bool                     `json:"success"`
		Sections []domain.TrendingSection `json:"sections"`
	}
}

// ListTrending returns CMS sections resolved to their matching products.
// Sections whose product lookup failed come back with an empty product
// list rather than failing the page.
func (h *TrendingHandler) ListTrending(
	ctx context.Context,
	input *ListTrendingInput,
) (*ListTrendingOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = h.sectionLimit
	}

	sections, err := h.trending.Resolve(ctx, limit)
	if err != nil {
		status, msg := upstreamStatus(err)
		h.log.Error("trending resolution failed", "error", err)
		return nil, newEnvelopeError(status, msg)
	}

	if sections == nil {
		sections = []domain.TrendingSection{}
	}

	// Section rows carry marketplace prices in USD minor units; convert them
	// to the display currency like the search endpoints do.
	for i := range sections {
		for j := range sections[i].Products {
			sections[i].Products[j].Price = h.fx.Convert(ctx, sections[i].Products[j].PriceCents)
			sections[i].Products[j].Currency = h.fx.Display()
		}
	}

	out := &ListTrendingOutput{}
	out.Body.Success = true
	out.Body.Sections = sections

	return out, nil
}

// RegisterTrendingRoutes registers trending endpoints with the Huma API.
func RegisterTrendingRoutes(api huma.API, h *TrendingHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-trending",
		Method:      http.MethodGet,
		Path:        "/api/trending",
		Summary:     "List trending sections",
		Description: "Returns editorial sections resolved to their matching products.",
		Tags:        []string{"catalog"},
	}, h.ListTrending)
}
