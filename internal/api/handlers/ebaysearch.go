package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bilegt6969/sainto-api/internal/currency"
	"github.com/bilegt6969/sainto-api/internal/ebay"
)

// ebayReservedParams are query parameters consumed by the handler itself;
// everything else is treated as an aspect filter.
var ebayReservedParams = map[string]struct{}{
	"query":    {},
	"page":     {},
	"limit":    {},
	"sort":     {},
	"category": {},
}

// EbaySearchHandler serves the pre-owned search source backed by the eBay
// Browse API.
type EbaySearchHandler struct {
	ebay     ebay.Client
	fx       *currency.Converter
	pageSize int
	log      *slog.Logger
}

// NewEbaySearchHandler creates a new EbaySearchHandler.
func NewEbaySearchHandler(client ebay.Client, fx *currency.Converter, pageSize int, log *slog.Logger) *EbaySearchHandler {
	return &EbaySearchHandler{ebay: client, fx: fx, pageSize: pageSize, log: log}
}

// Search handles GET /api/search/ebay.
//
// @Summary Search pre-owned products
// @Description Proxies a product search to the eBay Browse API, restricted to
// @Description used items, with aspect filters and facet refinements.
// @Tags search
// @Produce json
// @Param query query string true "Search query"
// @Param page query string false "Page number (coerced to 1 when invalid)"
// @Param category query string false "eBay category ID"
// @Success 200 {object} SearchEnvelope
// @Failure 400 {object} SearchEnvelope
// @Router /api/search/ebay [get]
func (h *EbaySearchHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return c.JSON(http.StatusBadRequest, SearchEnvelope{
			Success: false,
			Error:   "query parameter is required",
		})
	}

	page := parsePage(c.QueryParam("page"))

	limit := h.pageSize
	if raw := c.QueryParam("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	req := ebay.SearchRequest{
		Query:              query,
		CategoryID:         c.QueryParam("category"),
		Limit:              limit,
		Offset:             (page - 1) * limit,
		Sort:               c.QueryParam("sort"),
		Aspects:            aspectParams(c.QueryParams()),
		PreOwnedOnly:       true,
		IncludeRefinements: true,
	}

	resp, err := h.ebay.Search(c.Request().Context(), req)
	if err != nil {
		status, msg := upstreamStatus(err)
		h.log.Error("ebay search failed", "query", query, "error", err)
		return c.JSON(status, SearchEnvelope{Success: false, Error: msg})
	}

	products := ebay.ToProducts(resp.Items)
	ctx := c.Request().Context()
	for i := range products {
		products[i].Price = h.fx.Convert(ctx, products[i].PriceCents)
		products[i].Currency = h.fx.Display()
	}

	return c.JSON(http.StatusOK, SearchEnvelope{
		Success: true,
		Data: &SearchData{
			Products: products,
			HasMore:  resp.HasMore,
			Total:    resp.Total,
			Filters:  ebay.ToFacetSet(resp.Refinement),
		},
	})
}

// aspectParams extracts aspect filters from raw query parameters, skipping
// the parameters the handler consumes itself.
func aspectParams(raw map[string][]string) map[string][]string {
	aspects := make(map[string][]string)
	for key, values := range raw {
		if _, reserved := ebayReservedParams[key]; reserved {
			continue
		}
		for _, v := range values {
			if v == "" {
				continue
			}
			aspects[key] = append(aspects[key], v)
		}
	}
	if len(aspects) == 0 {
		return nil
	}
	return aspects
}
