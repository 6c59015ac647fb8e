package engine

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"pricesuggest/internal/cache"
	"pricesuggest/internal/market"
	"pricesuggest/internal/model"
	"pricesuggest/internal/observability"
	"pricesuggest/internal/pricing"
)

// maxResultSources caps the listings echoed back in a result so responses
// stay small even when many sources contribute.
const maxResultSources = 15

var ErrEmptyProductName = errors.New("product name is required")

// SourceScraper fetches listings from a single marketplace source.
type SourceScraper interface {
	Scrape(ctx context.Context, src market.Source, query string) ([]model.Listing, error)
}

// Engine turns a product name and condition into a suggested price range.
// It scrapes the sources registered for the detected category, falls back
// to estimated data when nothing usable comes back, and caches results.
type Engine struct {
	scraper     SourceScraper
	cache       cache.Cache
	sourceDelay time.Duration
}

func New(scraper SourceScraper, c cache.Cache, sourceDelay time.Duration) *Engine {
	return &Engine{scraper: scraper, cache: c, sourceDelay: sourceDelay}
}

func (e *Engine) Suggest(ctx context.Context, productName, condition string) (*model.SuggestionResult, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, ErrEmptyProductName
	}

	key := cache.Key(productName, condition)
	if cached, ok := e.cache.Get(ctx, key); ok {
		observability.CacheHitsTotal.Inc()
		log.Printf("cache hit for %q (%s)", productName, condition)
		return cached, nil
	}

	category := market.Detect(productName)
	log.Printf("suggesting price for %q, category %s, condition %s", productName, category, condition)

	var (
		listings []model.Listing
		used     []string
	)
	for i, src := range market.SourcesFor(category) {
		if i > 0 && e.sourceDelay > 0 {
			time.Sleep(e.sourceDelay)
		}

		found, err := e.scraper.Scrape(ctx, src, productName)
		if err != nil {
			observability.ScrapeErrorsTotal.WithLabelValues(src.Name).Inc()
			log.Printf("scrape %s failed: %v", src.Name, err)
			continue
		}

		found = market.FilterByBound(found, category)
		if len(found) == 0 {
			continue
		}
		listings = append(listings, found...)
		used = append(used, src.Name)
	}

	if len(listings) == 0 {
		observability.EstimatorFallbacksTotal.Inc()
		log.Printf("no scraped listings for %q, using estimated data", productName)
		listings = market.EstimateListings(productName, category)
		used = append(used, market.EstimatedDataSource)
	}

	prices := make([]int64, 0, len(listings))
	for _, l := range listings {
		prices = append(prices, l.Price)
	}

	priceRange := pricing.CalculateRange(prices, market.ConditionMultiplier(condition))

	if len(listings) > maxResultSources {
		listings = listings[:maxResultSources]
	}

	result := &model.SuggestionResult{
		ID:              uuid.New().String(),
		ProductName:     productName,
		Condition:       condition,
		Category:        string(category),
		CategoryName:    category.Name(),
		PriceRange:      priceRange,
		Sources:         listings,
		Timestamp:       time.Now(),
		Success:         len(prices) > 0,
		DataSourcesUsed: used,
	}

	e.cache.Put(ctx, key, result)
	observability.SuggestionsTotal.Inc()
	return result, nil
}

// Validate suggests a price for the product and grades the user's asking
// price against the resulting range.
func (e *Engine) Validate(ctx context.Context, productName, condition string, userPrice int64) (*model.SuggestionResult, model.Validation, error) {
	result, err := e.Suggest(ctx, productName, condition)
	if err != nil {
		return nil, model.Validation{}, err
	}
	return result, pricing.Validate(result, userPrice), nil
}
