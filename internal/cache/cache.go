package cache

import (
	"context"

	"pricesuggest/internal/model"
	"pricesuggest/internal/textutil"
)

// Cache memoizes suggestion results for a bounded time. Concurrent
// requests for the same key may both miss and both recompute; that is
// fine because recomputation is idempotent and Put is last-writer-wins.
type Cache interface {
	Get(ctx context.Context, key string) (*model.SuggestionResult, bool)
	Put(ctx context.Context, key string, result *model.SuggestionResult)
}

// Key builds the cache key for a product/condition pair. The product
// name is normalized so "iPhone 13" and "iphone 13" share an entry.
func Key(productName, condition string) string {
	return textutil.Normalize(productName) + "_" + condition
}
