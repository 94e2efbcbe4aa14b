package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bilegt6969/sainto-api/internal/currency"
	"github.com/bilegt6969/sainto-api/internal/marketplace"
	"github.com/bilegt6969/sainto-api/internal/upstream"
	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

// SearchHandler serves marketplace product search.
type SearchHandler struct {
	search marketplace.Client
	fx     *currency.Converter
	log    *slog.Logger
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(search marketplace.Client, fx *currency.Converter, log *slog.Logger) *SearchHandler {
	return &SearchHandler{search: search, fx: fx, log: log}
}

// Search handles GET /api/search.
//
// @Summary Search marketplace products
// @Description Proxies a product search to the marketplace backend, applying
// @Description bracketed facet filters and converting prices to the display currency.
// @Tags search
// @Produce json
// @Param query query string true "Search query"
// @Param page query string false "Page number (coerced to 1 when invalid)"
// @Success 200 {object} SearchEnvelope
// @Failure 400 {object} SearchEnvelope
// @Router /api/search [get]
func (h *SearchHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return c.JSON(http.StatusBadRequest, SearchEnvelope{
			Success: false,
			Error:   "query parameter is required",
		})
	}

	page := parsePage(c.QueryParam("page"))
	filters, direct := marketplace.PartitionParams(c.QueryParams())

	resp, err := h.search.Search(c.Request().Context(), marketplace.SearchRequest{
		Query:   query,
		Page:    page,
		Filters: filters,
		Direct:  direct,
	})
	if err != nil {
		status, msg := upstreamStatus(err)
		h.log.Error("marketplace search failed", "query", query, "error", err)
		return c.JSON(status, SearchEnvelope{Success: false, Error: msg})
	}

	products := h.localizePrices(c.Request().Context(), resp.Products)

	return c.JSON(http.StatusOK, SearchEnvelope{
		Success: true,
		Data: &SearchData{
			Products: products,
			HasMore:  resp.HasMore,
			Total:    resp.Total,
			Filters:  nil,
		},
	})
}

// localizePrices converts product prices into the display currency.
func (h *SearchHandler) localizePrices(ctx context.Context, products []domain.Product) []domain.Product {
	if products == nil {
		return []domain.Product{}
	}
	for i := range products {
		products[i].Price = h.fx.Convert(ctx, products[i].PriceCents)
		products[i].Currency = h.fx.Display()
	}
	return products
}

// parsePage coerces a page parameter to a valid page number. Missing,
// non-numeric, and sub-1 values all map to page 1.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// upstreamStatus maps an upstream client error to a response status and a
// client-safe message. Upstream HTTP failures mirror the upstream status;
// everything else is treated as a gateway failure.
func upstreamStatus(err error) (int, string) {
	var statusErr *upstream.StatusError
	switch {
	case errors.Is(err, upstream.ErrMissingCredentials):
		return http.StatusInternalServerError, "search backend is not configured"
	case errors.As(err, &statusErr):
		return statusErr.StatusCode, "upstream request failed"
	case errors.Is(err, upstream.ErrMalformedPayload):
		return http.StatusUnprocessableEntity, "upstream returned a malformed response"
	default:
		return http.StatusBadGateway, "upstream request failed"
	}
}
