package scraper

import "testing"

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		in    string
		want  int64
		found bool
	}{
		{"15 triệu", 15_000_000, true},
		{"15tr", 15_000_000, true},
		{"500k", 500_000, true},
		{"500 nghìn", 500_000, true},
		{"2 tỷ", 2_000_000_000, true},
		{"1.500.000 vnđ", 1_500_000, true},
		{"12,500,000 đồng", 12_500_000, true},
		{"Giá: 25.990.000₫", 25_990_000, true},
		{"19900000", 19_900_000, true},
		{"15 m", 15_000_000, true},
		{"abc", 0, false},
		{"", 0, false},
		{"999", 0, false},     // below the 1k floor with no unit
		{"miễn phí", 0, false},
		{"50 tỷ", 0, false},   // above the 10B ceiling
	}

	for _, tt := range tests {
		got, found := ExtractPrice(tt.in)
		if found != tt.found || got != tt.want {
			t.Errorf("ExtractPrice(%q) = (%d, %v); want (%d, %v)",
				tt.in, got, found, tt.want, tt.found)
		}
	}
}

func TestExtractPriceScaleGuards(t *testing.T) {
	// A value already past the unit threshold must not be re-scaled.
	tests := []struct {
		in   string
		want int64
	}{
		{"5.000 tr", 5_000},          // >= 1000, million scaling skipped
		{"15.000 k", 15_000},         // >= 10000, thousand scaling skipped
		{"150 tỷ đất nền", 150},      // >= 100 stays 150, below the 1k floor
	}

	for _, tt := range tests {
		got, found := ExtractPrice(tt.in)
		if tt.want < minPlausiblePrice {
			if found {
				t.Errorf("ExtractPrice(%q) = (%d, true); want not found", tt.in, got)
			}
			continue
		}
		if !found || got != tt.want {
			t.Errorf("ExtractPrice(%q) = (%d, %v); want (%d, true)", tt.in, got, found, tt.want)
		}
	}
}

func TestExtractPriceAlwaysInBounds(t *testing.T) {
	inputs := []string{
		"15 triệu", "500k", "1.500.000 vnđ", "2 tỷ", "123", "9.999.999.999",
		"1k", "999.999 vnd", "1 nghìn",
	}
	for _, in := range inputs {
		if v, ok := ExtractPrice(in); ok {
			if v < minPlausiblePrice || v > maxPlausiblePrice {
				t.Errorf("ExtractPrice(%q) = %d outside [%d, %d]",
					in, v, minPlausiblePrice, maxPlausiblePrice)
			}
		}
	}
}
