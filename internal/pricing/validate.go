package pricing

import (
	"fmt"
	"strconv"

	"pricesuggest/internal/model"
)

// Validate classifies a user asking price against a computed suggestion.
// The conditions are evaluated top to bottom; the first match wins. A
// suggestion without data short-circuits to no_data before the table.
func Validate(result *model.SuggestionResult, userPrice int64) model.Validation {
	if userPrice <= 0 {
		return model.Validation{
			Status:  model.StatusInvalidPrice,
			Message: "Vui lòng nhập giá hợp lệ (lớn hơn 0)",
			Icon:    "⚠️",
		}
	}

	if !result.Success {
		return model.Validation{
			Status:  model.StatusNoData,
			Message: "Không tìm thấy dữ liệu tham khảo cho sản phẩm này",
			Icon:    "⚠️",
		}
	}

	pr := result.PriceRange
	recommended := formatVND(pr.RecommendedPrice)

	switch {
	case float64(userPrice) > float64(pr.MaxPrice)*1.3:
		return model.Validation{
			Status:           model.StatusTooHigh,
			Message:          fmt.Sprintf("Giá quá cao so với thị trường! Giá đề xuất: %s₫", recommended),
			Icon:             "🚫",
			RecommendedPrice: pr.RecommendedPrice,
			MaxSafePrice:     pr.MaxPrice,
		}
	case userPrice > pr.MaxPrice:
		return model.Validation{
			Status:           model.StatusHigh,
			Message:          fmt.Sprintf("Giá hơi cao. Giá đề xuất: %s₫", recommended),
			Icon:             "⚠️",
			RecommendedPrice: pr.RecommendedPrice,
			MaxSafePrice:     pr.MaxPrice,
		}
	case float64(userPrice) < float64(pr.MinPrice)*0.7:
		return model.Validation{
			Status:           model.StatusTooLow,
			Message:          fmt.Sprintf("Giá quá thấp! Bạn có thể bán với giá cao hơn: %s₫", recommended),
			Icon:             "💡",
			RecommendedPrice: pr.RecommendedPrice,
			MinSafePrice:     pr.MinPrice,
		}
	case userPrice >= pr.MinPrice && userPrice <= pr.MaxPrice:
		return model.Validation{
			Status:           model.StatusGood,
			Message:          "Giá hợp lý! Sản phẩm có thể bán nhanh",
			Icon:             "✅",
			RecommendedPrice: pr.RecommendedPrice,
		}
	default:
		return model.Validation{
			Status:           model.StatusAcceptable,
			Message:          fmt.Sprintf("Giá chấp nhận được. Giá đề xuất: %s₫", recommended),
			Icon:             "👍",
			RecommendedPrice: pr.RecommendedPrice,
		}
	}
}

// formatVND renders 12500000 as "12,500,000".
func formatVND(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
