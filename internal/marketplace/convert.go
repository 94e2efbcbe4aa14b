package marketplace

import (
	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

// toProducts converts marketplace API results into domain products. Prices
// stay in USD minor units here; display-currency conversion happens at the
// route-handler boundary.
func toProducts(results []searchAPIResult) []domain.Product {
	products := make([]domain.Product, 0, len(results))
	for i := range results {
		products = append(products, toProduct(&results[i]))
	}
	return products
}

func toProduct(r *searchAPIResult) domain.Product {
	return domain.Product{
		ID:         r.Data.ID,
		Name:       r.Value,
		ImageURL:   r.Data.ImageURL,
		Slug:       r.Data.Slug,
		PriceCents: r.Data.LowestPriceCents,
		Currency:   "USD",
		Brand:      r.Data.Brand,
		Category:   r.Data.Category,
		InStock:    r.Data.InStock,
		Source:     domain.SourceNew,
	}
}
