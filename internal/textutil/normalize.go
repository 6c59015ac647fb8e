package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// NFD decomposition followed by removal of combining marks turns
	// "Điện" into "Đien"; đ/Đ carry no combining mark and need the replacer.
	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	dReplacer  = strings.NewReplacer("đ", "d")

	nonWordRe = regexp.MustCompile(`[^a-z0-9_\s]`)
	spacesRe  = regexp.MustCompile(`\s+`)
)

// Fold lowercases s and strips Vietnamese diacritics ("Tủ Lạnh" -> "tu lanh").
// Punctuation is left alone.
func Fold(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}
	return dReplacer.Replace(strings.ToLower(folded))
}

// Normalize prepares a string for keyword and similarity matching:
// diacritics stripped, lowercased, punctuation removed, whitespace
// collapsed. Empty input yields "".
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	out := Fold(s)
	out = nonWordRe.ReplaceAllString(out, "")
	out = spacesRe.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}
