package model

import "time"

// Listing kinds. Scraped listings come from a live store page, estimated
// ones from the built-in estimate tables.
const (
	KindScraped   = "scraped"
	KindEstimated = "estimated"
)

// Listing is one observed (or synthesized) price candidate for the
// queried product. Prices are whole VND.
type Listing struct {
	Title  string `json:"title"`
	Price  int64  `json:"price"`
	Source string `json:"source"`
	URL    string `json:"url"`
	Kind   string `json:"type"`
}

// PriceRange is the aggregated output of one suggestion request.
type PriceRange struct {
	MinPrice            int64   `json:"min_price"`
	MaxPrice            int64   `json:"max_price"`
	RecommendedPrice    int64   `json:"recommended_price"`
	MarketAverage       int64   `json:"market_average"`
	ConditionMultiplier float64 `json:"condition_multiplier"`
	SampleSize          int     `json:"sample_size"`
}

// SuggestionResult is the unit stored in the cache and returned to callers.
type SuggestionResult struct {
	ID              string     `json:"id"`
	ProductName     string     `json:"product_name"`
	Condition       string     `json:"condition"`
	Category        string     `json:"category"`
	CategoryName    string     `json:"category_name"`
	PriceRange      PriceRange `json:"price_range"`
	Sources         []Listing  `json:"sources"`
	Timestamp       time.Time  `json:"timestamp"`
	Success         bool       `json:"success"`
	DataSourcesUsed []string   `json:"data_sources_used"`
}
