package ebay

// ItemSummary represents a single item from the eBay Browse API search response.
type ItemSummary struct {
	ItemID        string         `json:"itemId"`
	Title         string         `json:"title"`
	Price         ItemPrice      `json:"price"`
	ItemWebURL    string         `json:"itemWebUrl"`
	Image         *ItemImage     `json:"image,omitempty"`
	Condition     string         `json:"condition"`
	ConditionID   string         `json:"conditionId"`
	BuyingOptions []string       `json:"buyingOptions"`
	Categories    []ItemCategory `json:"categories,omitempty"`
}

// ItemPrice holds eBay price information.
type ItemPrice struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// ItemImage holds eBay image information.
type ItemImage struct {
	ImageURL string `json:"imageUrl"`
}

// ItemCategory holds eBay category information.
type ItemCategory struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// Refinement holds the facet metadata the Browse API returns when refinement
// fieldgroups are requested. It is regenerated for every top-level query and
// never merged across queries.
type Refinement struct {
	DominantCategoryID    string                 `json:"dominantCategoryId"`
	CategoryDistributions []CategoryDistribution `json:"categoryDistributions"`
	AspectDistributions   []AspectDistribution   `json:"aspectDistributions"`
}

// CategoryDistribution is one category refinement with its match count.
type CategoryDistribution struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	MatchCount   int    `json:"matchCount"`
}

// AspectDistribution is one aspect refinement (name plus enumerated values).
type AspectDistribution struct {
	LocalizedAspectName      string                    `json:"localizedAspectName"`
	AspectValueDistributions []AspectValueDistribution `json:"aspectValueDistributions"`
}

// AspectValueDistribution is one value of an aspect with its match count.
type AspectValueDistribution struct {
	LocalizedAspectValue string `json:"localizedAspectValue"`
	MatchCount           int    `json:"matchCount"`
}
