package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"pricesuggest/internal/textutil"
)

// Plausibility bounds for any extracted price, in VND.
const (
	minPlausiblePrice = 1_000
	maxPlausiblePrice = 10_000_000_000
)

type unitClass int

const (
	unitNone unitClass = iota
	unitThousand
	unitMillion
	unitBillion
)

// pricePatterns is an ordered-alternative grammar: the first pattern that
// matches wins. Explicit unit words come first, then bare unit symbols,
// then currency suffixes, then raw digit groups. Input is folded to
// ASCII beforehand, so "triệu" arrives as "trieu" and "tỷ" as "ty".
var pricePatterns = []struct {
	re   *regexp.Regexp
	unit unitClass
}{
	{regexp.MustCompile(`(\d{1,3}(?:[,.]\d{3})*)\s*(?:trieu|tr|million)`), unitMillion},
	{regexp.MustCompile(`(\d{1,3}(?:[,.]\d{3})*)\s*(?:nghin|k|thousand)`), unitThousand},
	{regexp.MustCompile(`(\d{1,3}(?:[,.]\d{3})*)\s*(?:ty|billion)`), unitBillion},
	{regexp.MustCompile(`(\d{1,3}(?:[,.]\d{3})*)\s*tr(?:\s|$)`), unitMillion},
	{regexp.MustCompile(`(\d{1,3}(?:[,.]\d{3})*)\s*k(?:\s|$)`), unitThousand},
	{regexp.MustCompile(`(\d{1,3}(?:[,.]\d{3})*)\s*m(?:\s|$)`), unitMillion},
	{regexp.MustCompile(`(\d{1,3}(?:[,.]\d{3})*)\s*(?:vnd|dong|d)(?:\s|$)`), unitNone},
	{regexp.MustCompile(`(\d{1,3}(?:[,.]\d{3}){2,})`), unitNone},
	{regexp.MustCompile(`(\d{7,})`), unitNone},
	{regexp.MustCompile(`(\d{1,3}(?:[,.]\d{3})*)`), unitNone},
}

var (
	priceJunkRe  = regexp.MustCompile(`[^0-9.,\sa-z]`)
	priceSpaceRe = regexp.MustCompile(`\s+`)
	separatorRe  = strings.NewReplacer(",", "", ".", "")
)

// ExtractPrice pulls an integer VND amount out of a free-text price
// fragment ("15 triệu", "1.500.000 vnđ", "500k"). Returns false when no
// plausible price is found; malformed input never errors.
func ExtractPrice(text string) (int64, bool) {
	if text == "" {
		return 0, false
	}

	cleaned := textutil.Fold(text)
	cleaned = priceJunkRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(priceSpaceRe.ReplaceAllString(cleaned, " "))

	for _, p := range pricePatterns {
		m := p.re.FindStringSubmatch(cleaned)
		if m == nil {
			continue
		}

		value, err := strconv.ParseInt(separatorRe.Replace(m[1]), 10, 64)
		if err != nil {
			continue
		}

		// Scale by the matched unit, guarding against numbers that are
		// already written out in full ("15000000 tr" stays as-is).
		switch p.unit {
		case unitMillion:
			if value < 1_000 {
				value *= 1_000_000
			}
		case unitBillion:
			if value < 100 {
				value *= 1_000_000_000
			}
		case unitThousand:
			if value < 10_000 {
				value *= 1_000
			}
		}

		if value >= minPlausiblePrice && value <= maxPlausiblePrice {
			return value, true
		}
	}

	return 0, false
}
