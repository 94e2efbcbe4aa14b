// Package domain defines the core business types for the sainto storefront API.
package domain

// Source identifies which search backend a result set came from.
type Source string

// Source constants.
const (
	// SourceNew is the primary marketplace backend (new products).
	SourceNew Source = "new"
	// SourcePreOwned is the eBay-backed pre-owned backend.
	SourcePreOwned Source = "preow"
)

// CategoryFacetID is the reserved facet identifier treated as single-select.
// All other facets are multi-select.
const CategoryFacetID = "category"

// Product is a normalized search result from either backend. Instances are
// request-scoped: constructed per upstream response item, accumulated in a
// search session, discarded on navigation.
type Product struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	ImageURL   string  `json:"image_url,omitempty"`
	Slug       string  `json:"slug,omitempty"`
	ItemURL    string  `json:"item_url,omitempty"`
	PriceCents int     `json:"price_cents"`
	Price      float64 `json:"price"`
	Currency   string  `json:"currency"`
	Condition  string  `json:"condition,omitempty"`
	Brand      string  `json:"brand,omitempty"`
	Category   string  `json:"category,omitempty"`
	InStock    bool    `json:"in_stock"`
	Source     Source  `json:"source"`
}

// FacetValue is one selectable value within a facet, with its match count.
// Name carries a display label when the value itself is an opaque ID, as
// with eBay category IDs.
type FacetValue struct {
	Value string `json:"value"`
	Name  string `json:"name,omitempty"`
	Count int    `json:"count"`
}

// Facet is a filterable attribute with enumerable values, discovered per
// search source. The facet with ID CategoryFacetID is single-select.
type Facet struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Values []FacetValue `json:"values"`
}

// FacetSet holds the server-discovered facets for one query/source
// combination. Facets are regenerated on every top-level query or source
// change and never merged across queries.
type FacetSet struct {
	Categories []FacetValue `json:"categories,omitempty"`
	Aspects    []Facet      `json:"aspects,omitempty"`

	// DominantCategory is the category the backend considers dominant for
	// the query; it is promoted to the head of Categories when present.
	DominantCategory string `json:"dominant_category,omitempty"`
}

// OrderItem is a single line item in an outbound order.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Size      string  `json:"size,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderCustomer identifies the person placing an order.
type OrderCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// OrderAddress is the delivery address for an order.
type OrderAddress struct {
	City     string `json:"city,omitempty"`
	District string `json:"district,omitempty"`
	Street   string `json:"street,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Order is the ephemeral outbound order-notification payload. It is
// assembled from the checkout request, POSTed once to the notification
// webhook, and not persisted anywhere by this system. The declared
// TotalAmount comes from the client and is not recomputed server-side;
// payment is a manual bank transfer reconciled against PaymentReference.
type Order struct {
	OrderID          string        `json:"order_id"`
	OrderNumber      string        `json:"order_number"`
	PaymentReference string        `json:"payment_reference"`
	Items            []OrderItem   `json:"items"`
	Customer         OrderCustomer `json:"customer"`
	Address          OrderAddress  `json:"address"`
	TotalAmount      float64       `json:"total_amount"`
	Currency         string        `json:"currency"`
	DiscountCode     string        `json:"discount_code,omitempty"`
}

// TrendingSection is one editorial section from the CMS, resolved to the
// products its keyword currently matches.
type TrendingSection struct {
	Title    string    `json:"title"`
	Keyword  string    `json:"keyword"`
	Products []Product `json:"products"`
}
