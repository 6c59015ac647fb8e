package market

// Condition multipliers scale the market average down to a fair resale
// price. Values come from how each wear level trades against new retail.
var conditionMultipliers = map[string]float64{
	"moi":          0.95,
	"nhu-moi":      0.85,
	"99%":          0.80,
	"con-bao-hanh": 0.75,
	"het-bao-hanh": 0.65,
}

var conditionOrder = []string{"moi", "nhu-moi", "99%", "con-bao-hanh", "het-bao-hanh"}

const defaultConditionMultiplier = 0.75

// ConditionMultiplier returns the multiplier for a condition tag,
// defaulting to 0.75 for unrecognized tags.
func ConditionMultiplier(condition string) float64 {
	if m, ok := conditionMultipliers[condition]; ok {
		return m
	}
	return defaultConditionMultiplier
}

// Conditions lists the recognized condition tags.
func Conditions() []string {
	out := make([]string, len(conditionOrder))
	copy(out, conditionOrder)
	return out
}
