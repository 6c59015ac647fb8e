package pricing

import (
	"sort"

	"pricesuggest/internal/model"
)

// Band half-width around the recommended price.
const bandSpread = 0.15

// CalculateRange aggregates collected prices into a recommended range.
// Outliers are fenced off with 1.5×IQR before averaging; quartile
// positions are 1-based, which collapses the fence onto the bulk of the
// samples when a lone extreme value would otherwise stretch it. An empty
// input yields a zero-valued range rather than an error.
func CalculateRange(prices []int64, multiplier float64) model.PriceRange {
	if len(prices) == 0 {
		return model.PriceRange{ConditionMultiplier: 1.0}
	}

	sorted := make([]int64, len(prices))
	copy(sorted, prices)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	n := len(sorted)
	q1 := sorted[clampIndex(n/4-1, n)]
	q3 := sorted[clampIndex(3*n/4-1, n)]
	iqr := float64(q3 - q1)

	low := float64(q1) - 1.5*iqr
	high := float64(q3) + 1.5*iqr

	filtered := make([]int64, 0, len(prices))
	for _, p := range prices {
		if float64(p) >= low && float64(p) <= high {
			filtered = append(filtered, p)
		}
	}
	// Never aggregate over nothing when prices existed.
	if len(filtered) == 0 {
		filtered = prices
	}

	var sum float64
	for _, p := range filtered {
		sum += float64(p)
	}
	average := sum / float64(len(filtered))
	recommended := average * multiplier

	return model.PriceRange{
		MinPrice:            int64(recommended * (1 - bandSpread)),
		MaxPrice:            int64(recommended * (1 + bandSpread)),
		RecommendedPrice:    int64(recommended),
		MarketAverage:       int64(average),
		ConditionMultiplier: multiplier,
		SampleSize:          len(filtered),
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
