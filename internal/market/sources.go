package market

import (
	"net/url"
	"strings"
)

// Source describes one scrapeable store for a category. Static
// configuration, immutable at runtime. SearchURL carries a {query}
// placeholder; the selector fields are hints tried first by the
// extraction chains. Parser picks the extraction strategy ("" means
// generic).
type Source struct {
	Name          string
	SearchURL     string
	PriceSelector string
	TitleSelector string
	Parser        string
	Active        bool
}

// SearchFor resolves the source's search URL for a query.
func (s Source) SearchFor(query string) string {
	return strings.ReplaceAll(s.SearchURL, "{query}", url.QueryEscape(query))
}

var categorySources = map[Category][]Source{
	Electronics: {
		{
			Name:          "Phong Vũ",
			SearchURL:     "https://phongvu.vn/tim-kiem?q={query}",
			PriceSelector: ".price-current",
			TitleSelector: ".product-name",
			Active:        true,
		},
		{
			Name:          "CellphoneS",
			SearchURL:     "https://cellphones.com.vn/tim-kiem?q={query}",
			PriceSelector: ".product-price",
			TitleSelector: ".product-name",
			Active:        true,
		},
		{
			Name:          "Thế Giới Di Động",
			SearchURL:     "https://thegioididong.com/tim-kiem?q={query}",
			PriceSelector: ".price",
			TitleSelector: ".name",
			Active:        true,
		},
	},
	HomeAppliances: {
		{
			Name:          "Điện Máy Xanh",
			SearchURL:     "https://dienmayxanh.com/tim-kiem?q={query}",
			PriceSelector: ".price",
			TitleSelector: ".name",
			Active:        true,
		},
		{
			Name:          "Nguyễn Kim",
			SearchURL:     "https://nguyenkim.com/tim-kiem?q={query}",
			PriceSelector: ".product-price",
			TitleSelector: ".product-name",
			Active:        true,
		},
		{
			Name:          "Tiki Gia Dụng",
			SearchURL:     "https://tiki.vn/tim-kiem?q={query}&category=1882",
			PriceSelector: ".product-price",
			TitleSelector: ".product-name",
			Active:        true,
		},
	},
	Fashion: {
		{
			Name:          "ZALORA",
			SearchURL:     "https://zalora.vn/tim-kiem/?q={query}",
			PriceSelector: ".price-current",
			TitleSelector: ".product-name",
			Active:        true,
		},
		{
			Name:          "Lazada Fashion",
			SearchURL:     "https://lazada.vn/tim-kiem/?q={query}&from=input",
			PriceSelector: ".pdp-price",
			TitleSelector: ".pdp-product-name",
			Active:        true,
		},
		{
			Name:          "Shopee Fashion",
			SearchURL:     "https://shopee.vn/search?keyword={query}&category=17",
			PriceSelector: ".shopee-price",
			TitleSelector: ".shopee-item-name",
			Active:        true,
		},
	},
	Vehicles: {
		{
			Name:          "Oto.com.vn",
			SearchURL:     "https://oto.com.vn/tim-kiem?q={query}",
			PriceSelector: ".price",
			TitleSelector: ".car-name",
			Active:        true,
		},
		{
			Name:          "Chợ Tốt Xe",
			SearchURL:     "https://xe.chotot.com/tim-kiem?q={query}",
			PriceSelector: ".ad-price",
			TitleSelector: ".ad-title",
			Active:        true,
		},
	},
	RealEstate: {
		{
			Name:          "Batdongsan.com.vn",
			SearchURL:     "https://batdongsan.com.vn/tim-kiem?q={query}",
			PriceSelector: ".price",
			TitleSelector: ".product-title",
			Active:        true,
		},
	},
	BeautyHealth: {
		{
			Name:          "Watsons Vietnam",
			SearchURL:     "https://watsons.vn/tim-kiem?q={query}",
			PriceSelector: ".price",
			TitleSelector: ".product-name",
			Active:        true,
		},
	},
}

// SourcesFor returns the active sources configured for a category, in
// configuration order.
func SourcesFor(c Category) []Source {
	all := categorySources[c]
	out := make([]Source, 0, len(all))
	for _, s := range all {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}
