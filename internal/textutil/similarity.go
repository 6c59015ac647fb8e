package textutil

import "strings"

// Similarity computes the Jaccard index of the word sets of a and b.
// Inputs are expected to be normalized already. Either side being empty
// means "not similar" (0), never a division error. Symmetric by
// construction.
func Similarity(a, b string) float64 {
	aWords := wordSet(a)
	bWords := wordSet(b)
	if len(aWords) == 0 || len(bWords) == 0 {
		return 0
	}

	intersection := 0
	union := len(bWords)
	for w := range aWords {
		if _, ok := bWords[w]; ok {
			intersection++
		} else {
			union++
		}
	}
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	words := strings.Fields(s)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
