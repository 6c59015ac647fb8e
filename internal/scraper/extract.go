package scraper

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"pricesuggest/internal/market"
	"pricesuggest/internal/model"
	"pricesuggest/internal/observability"
	"pricesuggest/internal/textutil"
)

// Skip reasons recorded when a candidate container yields no listing.
const (
	skipNoTitle    = "no_title"
	skipNoPrice    = "no_price"
	skipNotSimilar = "not_similar"
)

const (
	// A listing title must beat this Jaccard score against the query.
	similarityThreshold = 0.3
	// Titles shorter than this are navigation noise, not product names.
	minTitleLength = 6
	// Prices at or below this are item counts or badges, not prices.
	minListingPrice = 1_000
	// Hard cap on candidate containers examined per page.
	maxContainers = 20
)

// containerSelectors locate candidate product containers on an arbitrary
// store page. Tried in order; the first selector finding more than two
// nodes wins (fewer usually means a nav element matched, not a result
// list).
var containerSelectors = []string{
	`div[class*="product"]`,
	`div[class*="item"]`,
	`div[class*="card"]`,
	`article`,
	`li[class*="product"]`,
	`li[class*="item"]`,
	".product-item",
	".item-product",
	".product-card",
	".search-result-item",
	".listing-item",
}

// titleFallbacks run after the source's own title selector hint.
var titleFallbacks = []string{
	`a[title]`,
	"h3", "h4", "h5",
	".title", ".name", ".product-title",
	"a", `span[title]`,
}

// priceFallbacks run after the source's own price selector hint.
var priceFallbacks = []string{
	".price-current", ".current-price",
	".price-new", ".new-price",
	".sale-price", ".final-price",
	`[class*="price"]`,
	".cost", ".amount",
}

// Parser maps one source's candidate containers to listings. Sources
// name their parser by identifier; unknown identifiers fall back to the
// generic strategy.
type Parser interface {
	Extract(containers []*goquery.Selection, src market.Source, pageURL, query string, limit int) []model.Listing
}

var parsers = map[string]Parser{
	"generic": genericParser{},
}

// ParserFor resolves a parser identifier to a strategy.
func ParserFor(id string) Parser {
	if p, ok := parsers[id]; ok {
		return p
	}
	return genericParser{}
}

// Scraper turns one source's search page into listings.
type Scraper struct {
	fetcher Fetcher
	limit   int
}

func New(fetcher Fetcher, limit int) *Scraper {
	return &Scraper{fetcher: fetcher, limit: limit}
}

// Scrape fetches the source's search page for query and extracts
// relevant listings. A fetch or parse failure is returned to the caller,
// which logs it and moves on; bad individual containers are skipped
// silently.
func (s *Scraper) Scrape(ctx context.Context, src market.Source, query string) ([]model.Listing, error) {
	pageURL := src.SearchFor(query)

	html, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup from %s: %w", src.Name, err)
	}

	containers := findContainers(doc)
	return ParserFor(src.Parser).Extract(containers, src, pageURL, query, s.limit), nil
}

func findContainers(doc *goquery.Document) []*goquery.Selection {
	for _, selector := range containerSelectors {
		found := doc.Find(selector)
		if found.Length() <= 2 {
			continue
		}
		n := found.Length()
		if n > maxContainers {
			n = maxContainers
		}
		out := make([]*goquery.Selection, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, found.Eq(i))
		}
		return out
	}
	return nil
}

// genericParser is the default extraction strategy: selector hint plus
// fallback chains for both title and price, then a similarity gate.
type genericParser struct{}

func (genericParser) Extract(containers []*goquery.Selection, src market.Source, pageURL, query string, limit int) []model.Listing {
	normalizedQuery := textutil.Normalize(query)

	maxCandidates := 2 * limit
	if len(containers) < maxCandidates {
		maxCandidates = len(containers)
	}

	var listings []model.Listing
	for _, container := range containers[:maxCandidates] {
		title := extractTitle(container, src)
		if title == "" {
			observability.ListingSkipsTotal.WithLabelValues(skipNoTitle).Inc()
			continue
		}
		price, ok := extractContainerPrice(container, src)
		if !ok {
			observability.ListingSkipsTotal.WithLabelValues(skipNoPrice).Inc()
			continue
		}
		if textutil.Similarity(normalizedQuery, textutil.Normalize(title)) < similarityThreshold {
			observability.ListingSkipsTotal.WithLabelValues(skipNotSimilar).Inc()
			continue
		}

		listings = append(listings, model.Listing{
			Title:  title,
			Price:  price,
			Source: src.Name,
			URL:    pageURL,
			Kind:   model.KindScraped,
		})
		if len(listings) >= limit {
			break
		}
	}
	return listings
}

func extractTitle(container *goquery.Selection, src market.Source) string {
	selectors := make([]string, 0, len(titleFallbacks)+1)
	if src.TitleSelector != "" {
		selectors = append(selectors, src.TitleSelector)
	}
	selectors = append(selectors, titleFallbacks...)

	for _, selector := range selectors {
		elem := container.Find(selector).First()
		if elem.Length() == 0 {
			continue
		}
		title := strings.TrimSpace(elem.Text())
		if title == "" {
			title = strings.TrimSpace(elem.AttrOr("title", ""))
		}
		if utf8.RuneCountInString(title) >= minTitleLength {
			return title
		}
	}
	return ""
}

func extractContainerPrice(container *goquery.Selection, src market.Source) (int64, bool) {
	selectors := make([]string, 0, len(priceFallbacks)+1)
	if src.PriceSelector != "" {
		selectors = append(selectors, src.PriceSelector)
	}
	selectors = append(selectors, priceFallbacks...)

	for _, selector := range selectors {
		elem := container.Find(selector).First()
		if elem.Length() == 0 {
			continue
		}
		price, ok := ExtractPrice(strings.TrimSpace(elem.Text()))
		if ok && price > minListingPrice {
			return price, true
		}
	}
	return 0, false
}
