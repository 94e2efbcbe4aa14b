package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bilegt6969/sainto-api/internal/currency"
	"github.com/bilegt6969/sainto-api/internal/marketplace"
	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

// CategoryHandler serves category browse pages.
type CategoryHandler struct {
	search marketplace.Client
	fx     *currency.Converter
	log    *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(search marketplace.Client, fx *currency.Converter, log *slog.Logger) *CategoryHandler {
	return &CategoryHandler{search: search, fx: fx, log: log}
}

// BrowseCategoryInput is the input for browsing a category.
type BrowseCategoryInput struct {
	Slug string `path:"slug" doc:"Category slug"`
	Page string `query:"page,omitempty" doc:"Page number (coerced to 1 when invalid)"`
}

// BrowseCategoryOutput is the response for browsing a category.
type BrowseCategoryOutput struct {
	Body struct {
		Products []domain.Product `json:"products"`
		HasMore  bool             `json:"hasMore"`
		Total    int              `json:"total"`
	}
}

// BrowseCategory returns a page of products for a category slug.
func (h *CategoryHandler) BrowseCategory(
	ctx context.Context,
	input *BrowseCategoryInput,
) (*BrowseCategoryOutput, error) {
	page := parsePage(input.Page)

	resp, err := h.search.Browse(ctx, input.Slug, page)
	if err != nil {
		status, msg := upstreamStatus(err)
		h.log.Error("category browse failed", "slug", input.Slug, "error", err)
		return nil, newCategoryError(status, msg)
	}

	products := resp.Products
	if products == nil {
		products = []domain.Product{}
	}
	for i := range products {
		products[i].Price = h.fx.Convert(ctx, products[i].PriceCents)
		products[i].Currency = h.fx.Display()
	}

	out := &BrowseCategoryOutput{}
	out.Body.Products = products
	out.Body.HasMore = resp.HasMore
	out.Body.Total = resp.Total

	return out, nil
}

// RegisterCategoryRoutes registers category endpoints with the Huma API.
func RegisterCategoryRoutes(api huma.API, h *CategoryHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "browse-category",
		Method:      http.MethodGet,
		Path:        "/api/category/{slug}",
		Summary:     "Browse a category",
		Description: "Returns a page of products for a category slug.",
		Tags:        []string{"catalog"},
	}, h.BrowseCategory)
}
