package ebay

import (
	"math"
	"strconv"

	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

// ToProducts converts eBay item summaries into normalized domain products.
func ToProducts(items []ItemSummary) []domain.Product {
	products := make([]domain.Product, 0, len(items))
	for i := range items {
		products = append(products, toProduct(&items[i]))
	}
	return products
}

func toProduct(item *ItemSummary) domain.Product {
	p := domain.Product{
		ID:        item.ItemID,
		Name:      item.Title,
		ItemURL:   item.ItemWebURL,
		Currency:  item.Price.Currency,
		Condition: item.Condition,
		InStock:   true,
		Source:    domain.SourcePreOwned,
	}

	if v, err := strconv.ParseFloat(item.Price.Value, 64); err == nil {
		p.PriceCents = int(math.Round(v * 100))
	}

	if item.Image != nil {
		p.ImageURL = item.Image.ImageURL
	}

	if len(item.Categories) > 0 {
		p.Category = item.Categories[0].CategoryName
	}

	return p
}

// ToFacetSet converts Browse API refinements into the facet metadata the
// search endpoint exposes. The dominant category, when present in the
// distributions, is promoted to the head of the category list.
func ToFacetSet(r *Refinement) *domain.FacetSet {
	if r == nil {
		return nil
	}

	fs := &domain.FacetSet{}

	dominantIdx := -1
	categories := make([]domain.FacetValue, 0, len(r.CategoryDistributions))
	for i, cd := range r.CategoryDistributions {
		if cd.CategoryID == r.DominantCategoryID {
			dominantIdx = i
			fs.DominantCategory = cd.CategoryID
		}
		categories = append(categories, domain.FacetValue{
			Value: cd.CategoryID,
			Name:  cd.CategoryName,
			Count: cd.MatchCount,
		})
	}
	if dominantIdx > 0 {
		promoted := categories[dominantIdx]
		categories = append(categories[:dominantIdx], categories[dominantIdx+1:]...)
		categories = append([]domain.FacetValue{promoted}, categories...)
	}
	fs.Categories = categories

	aspects := make([]domain.Facet, 0, len(r.AspectDistributions))
	for _, ad := range r.AspectDistributions {
		values := make([]domain.FacetValue, 0, len(ad.AspectValueDistributions))
		for _, av := range ad.AspectValueDistributions {
			values = append(values, domain.FacetValue{
				Value: av.LocalizedAspectValue,
				Count: av.MatchCount,
			})
		}
		aspects = append(aspects, domain.Facet{
			ID:     ad.LocalizedAspectName,
			Name:   ad.LocalizedAspectName,
			Values: values,
		})
	}
	fs.Aspects = aspects

	return fs
}
