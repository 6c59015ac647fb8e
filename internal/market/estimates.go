package market

import (
	"fmt"
	"strings"

	"pricesuggest/internal/model"
	"pricesuggest/internal/textutil"
)

// EstimatedDataSource labels listings produced by the estimate tables.
const EstimatedDataSource = "Estimated Data"

// estimateURL marks estimated listings as internal, not a real address.
const estimateURL = "internal_estimation"

type estimateEntry struct {
	keyword string
	prices  [3]int64
}

// estimateTables holds three representative resale prices (low, mid, high)
// per well-known keyword. Scanned in order; keywords are pre-normalized.
var estimateTables = map[Category][]estimateEntry{
	Electronics: {
		{"iphone 16", [3]int64{25_000_000, 35_000_000, 45_000_000}},
		{"iphone 15", [3]int64{20_000_000, 28_000_000, 35_000_000}},
		{"iphone 14", [3]int64{15_000_000, 22_000_000, 28_000_000}},
		{"iphone 13", [3]int64{12_000_000, 18_000_000, 22_000_000}},
		{"samsung galaxy s24", [3]int64{15_000_000, 22_000_000, 28_000_000}},
		{"samsung galaxy s23", [3]int64{12_000_000, 18_000_000, 24_000_000}},
		{"macbook air", [3]int64{20_000_000, 30_000_000, 45_000_000}},
		{"macbook pro", [3]int64{35_000_000, 50_000_000, 80_000_000}},
		{"laptop dell", [3]int64{10_000_000, 20_000_000, 35_000_000}},
		{"laptop hp", [3]int64{8_000_000, 15_000_000, 25_000_000}},
		{"airpods", [3]int64{3_000_000, 5_000_000, 8_000_000}},
	},
	HomeAppliances: {
		{"tu lanh", [3]int64{8_000_000, 15_000_000, 30_000_000}},
		{"may giat", [3]int64{6_000_000, 12_000_000, 25_000_000}},
		{"dieu hoa", [3]int64{5_000_000, 10_000_000, 20_000_000}},
		{"ti vi", [3]int64{4_000_000, 8_000_000, 15_000_000}},
	},
	Fashion: {
		{"giay nike", [3]int64{1_500_000, 3_000_000, 6_000_000}},
		{"giay adidas", [3]int64{1_200_000, 2_500_000, 5_000_000}},
		{"tui xach", [3]int64{500_000, 2_000_000, 10_000_000}},
		{"dong ho", [3]int64{1_000_000, 5_000_000, 20_000_000}},
	},
	Vehicles: {
		{"honda", [3]int64{25_000_000, 50_000_000, 100_000_000}},
		{"yamaha", [3]int64{20_000_000, 40_000_000, 80_000_000}},
		{"toyota", [3]int64{400_000_000, 800_000_000, 1_500_000_000}},
	},
	RealEstate: {
		{"can ho", [3]int64{2_000_000_000, 4_000_000_000, 8_000_000_000}},
		{"nha", [3]int64{1_500_000_000, 3_000_000_000, 6_000_000_000}},
		{"dat", [3]int64{500_000_000, 2_000_000_000, 5_000_000_000}},
	},
	BeautyHealth: {
		{"my pham", [3]int64{200_000, 1_000_000, 3_000_000}},
		{"nuoc hoa", [3]int64{500_000, 2_000_000, 8_000_000}},
	},
}

var estimateDefaults = map[Category][3]int64{
	Electronics:    {1_000_000, 8_000_000, 20_000_000},
	HomeAppliances: {2_000_000, 8_000_000, 20_000_000},
	Fashion:        {200_000, 1_000_000, 5_000_000},
	Vehicles:       {30_000_000, 100_000_000, 500_000_000},
	RealEstate:     {1_000_000_000, 3_000_000_000, 8_000_000_000},
	BeautyHealth:   {100_000, 500_000, 2_000_000},
}

// EstimateListings produces exactly three synthetic listings for a
// product from the category's estimate table. The first table keyword
// with any of its words present in the normalized product name wins;
// unknown products use the category default triple.
func EstimateListings(productName string, c Category) []model.Listing {
	normalized := textutil.Normalize(productName)

	prices := estimateDefaults[c]
	for _, e := range estimateTables[c] {
		if anyWordIn(e.keyword, normalized) {
			prices = e.prices
			break
		}
	}

	out := make([]model.Listing, 0, len(prices))
	for i, p := range prices {
		out = append(out, model.Listing{
			Title:  fmt.Sprintf("%s - Estimated price %d (%s)", productName, i+1, c),
			Price:  p,
			Source: fmt.Sprintf("%s (%s)", EstimatedDataSource, c),
			URL:    estimateURL,
			Kind:   model.KindEstimated,
		})
	}
	return out
}

func anyWordIn(keyword, normalized string) bool {
	for _, w := range strings.Fields(keyword) {
		if strings.Contains(normalized, w) {
			return true
		}
	}
	return false
}
