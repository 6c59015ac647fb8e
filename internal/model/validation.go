package model

// Validation statuses, ordered from "reject the input" to "price is fine".
const (
	StatusInvalidPrice = "invalid_price"
	StatusNoData       = "no_data"
	StatusTooHigh      = "too_high"
	StatusHigh         = "high"
	StatusTooLow       = "too_low"
	StatusGood         = "good"
	StatusAcceptable   = "acceptable"
)

// Validation classifies a user-supplied asking price against a computed
// price range.
type Validation struct {
	Status           string `json:"status"`
	Message          string `json:"message"`
	Icon             string `json:"icon"`
	RecommendedPrice int64  `json:"recommended_price,omitempty"`
	MinSafePrice     int64  `json:"min_safe_price,omitempty"`
	MaxSafePrice     int64  `json:"max_safe_price,omitempty"`
}
