package market

import (
	"strings"

	"pricesuggest/internal/model"
	"pricesuggest/internal/textutil"
)

// Category is one of the fixed product classification buckets.
type Category string

const (
	Electronics    Category = "electronics"
	HomeAppliances Category = "home_appliances"
	Fashion        Category = "fashion"
	Vehicles       Category = "vehicles"
	RealEstate     Category = "real_estate"
	BeautyHealth   Category = "beauty_health"
)

// categoryOrder fixes the iteration order for classification. Keyword
// scores can tie and the first category with the maximum score wins, so
// this order is part of the contract: appliance names often carry a brand
// that is also an electronics keyword ("tủ lạnh Samsung"), and the
// appliance bucket must win that tie.
var categoryOrder = []Category{
	HomeAppliances,
	Electronics,
	Fashion,
	Vehicles,
	RealEstate,
	BeautyHealth,
}

var displayNames = map[Category]string{
	Electronics:    "Đồ điện tử",
	HomeAppliances: "Đồ gia dụng & Nội thất",
	Fashion:        "Thời trang & Phụ kiện",
	Vehicles:       "Xe cộ & Phương tiện",
	RealEstate:     "Bất động sản",
	BeautyHealth:   "Sức khỏe & Làm đẹp",
}

// categoryKeywords drives classification. Entries are stored in
// normalized form (no diacritics) since they are matched against
// textutil.Normalize output.
var categoryKeywords = map[Category][]string{
	Electronics: {
		"iphone", "samsung", "laptop", "macbook", "ipad", "airpods",
		"watch", "camera", "ps5", "xbox", "nintendo", "smartphone",
		"tablet", "computer", "mouse", "keyboard", "headphone", "speaker",
	},
	HomeAppliances: {
		"tu lanh", "may giat", "dieu hoa", "ti vi", "tv", "lo vi song",
		"noi com dien", "may loc nuoc", "quat", "ban ghe", "giuong",
		"tu quan ao", "sofa", "ban an",
	},
	Fashion: {
		"ao", "quan", "vay", "giay", "tui xach", "dong ho", "kinh",
		"trang suc", "that lung", "mu", "ao khoac", "dress", "shirt",
	},
	Vehicles: {
		"xe may", "o to", "xe hoi", "xe dap", "honda", "yamaha",
		"toyota", "hyundai", "mazda", "ford", "vinfast",
	},
	RealEstate: {
		"nha", "can ho", "chung cu", "dat", "villa", "biet thu",
		"mat bang", "van phong",
	},
	BeautyHealth: {
		"my pham", "kem duong", "sua rua mat", "son", "phan",
		"nuoc hoa", "thuoc", "vitamin", "thuc pham chuc nang",
	},
}

// PriceBound is the plausible price window for a category, in VND.
type PriceBound struct {
	Min int64
	Max int64
}

var priceBounds = map[Category]PriceBound{
	Electronics:    {100_000, 100_000_000},
	HomeAppliances: {500_000, 200_000_000},
	Fashion:        {50_000, 20_000_000},
	Vehicles:       {5_000_000, 5_000_000_000},
	RealEstate:     {100_000_000, 50_000_000_000},
	BeautyHealth:   {20_000, 5_000_000},
}

// Name returns the category's display name.
func (c Category) Name() string {
	return displayNames[c]
}

// Bound returns the category's plausible price window.
func (c Category) Bound() PriceBound {
	return priceBounds[c]
}

// Detect maps a free-text product name to a category by counting keyword
// hits in the normalized name. Everything unrecognized falls back to
// electronics.
func Detect(productName string) Category {
	normalized := textutil.Normalize(productName)

	best := Electronics
	bestScore := 0
	for _, c := range categoryOrder {
		score := 0
		for _, kw := range categoryKeywords[c] {
			if strings.Contains(normalized, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best
}

// FilterByBound drops listings priced outside the category's plausible
// window. Runs before outlier detection.
func FilterByBound(listings []model.Listing, c Category) []model.Listing {
	bound := c.Bound()
	kept := make([]model.Listing, 0, len(listings))
	for _, l := range listings {
		if l.Price >= bound.Min && l.Price <= bound.Max {
			kept = append(kept, l)
		}
	}
	return kept
}
