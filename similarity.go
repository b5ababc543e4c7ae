package linediff

import "unicode/utf8"

// SimilarityThreshold is the minimum share of the longer line that must be
// covered by Equal text for a pair to be highlighted.
const SimilarityThreshold = 0.5

// Similarity returns the fraction of the longer of the two lines covered by
// Equal ops. Two empty lines are fully similar.
func Similarity(previous, current string, ops []DiffOp) float64 {
	total := max(utf8.RuneCountInString(previous), utf8.RuneCountInString(current))
	if total == 0 {
		return 1
	}
	return float64(EqualLength(ops)) / float64(total)
}

// IsSimilar reports whether the lines are similar enough to highlight.
func IsSimilar(previous, current string, ops []DiffOp) bool {
	return Similarity(previous, current, ops) >= SimilarityThreshold
}
