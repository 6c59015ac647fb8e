package pricing

import (
	"strings"
	"testing"

	"pricesuggest/internal/model"
)

func suggestionFixture() *model.SuggestionResult {
	return &model.SuggestionResult{
		Success: true,
		PriceRange: model.PriceRange{
			MinPrice:         8_500_000,
			MaxPrice:         11_500_000,
			RecommendedPrice: 10_000_000,
		},
	}
}

func TestValidateStatuses(t *testing.T) {
	tests := []struct {
		price int64
		want  string
	}{
		{20_000_000, model.StatusTooHigh},    // > max*1.3 (14.95M)
		{12_000_000, model.StatusHigh},       // between max and max*1.3
		{3_000_000, model.StatusTooLow},      // < min*0.7 (5.95M)
		{10_000_000, model.StatusGood},       // inside the band
		{8_500_000, model.StatusGood},        // inclusive lower edge
		{11_500_000, model.StatusGood},       // inclusive upper edge
		{6_500_000, model.StatusAcceptable},  // below min but above min*0.7
	}

	for _, tt := range tests {
		got := Validate(suggestionFixture(), tt.price)
		if got.Status != tt.want {
			t.Errorf("Validate(price=%d) = %q; want %q", tt.price, got.Status, tt.want)
		}
	}
}

func TestValidateInvalidPrice(t *testing.T) {
	for _, price := range []int64{0, -1000} {
		got := Validate(suggestionFixture(), price)
		if got.Status != model.StatusInvalidPrice {
			t.Errorf("Validate(price=%d) = %q; want invalid_price", price, got.Status)
		}
	}
}

func TestValidateNoData(t *testing.T) {
	result := &model.SuggestionResult{Success: false}
	got := Validate(result, 1_000_000)
	if got.Status != model.StatusNoData {
		t.Errorf("Validate on no-data suggestion = %q; want no_data", got.Status)
	}
}

func TestValidateCarriesBounds(t *testing.T) {
	high := Validate(suggestionFixture(), 12_000_000)
	if high.MaxSafePrice != 11_500_000 || high.RecommendedPrice != 10_000_000 {
		t.Errorf("high validation missing bounds: %+v", high)
	}

	low := Validate(suggestionFixture(), 3_000_000)
	if low.MinSafePrice != 8_500_000 {
		t.Errorf("too_low validation missing min bound: %+v", low)
	}

	if !strings.Contains(high.Message, "10,000,000") {
		t.Errorf("message should include the formatted recommended price: %q", high.Message)
	}
}

func TestFormatVND(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12_500_000, "12,500,000"},
		{1_000_000_000, "1,000,000,000"},
	}
	for _, tt := range tests {
		if got := formatVND(tt.in); got != tt.want {
			t.Errorf("formatVND(%d) = %q; want %q", tt.in, got, tt.want)
		}
	}
}
