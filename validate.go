package linediff

import (
	"fmt"
	"unicode/utf8"
)

// ValidationReason identifies why a CharRange is invalid.
type ValidationReason string

// Validation error reasons.
const (
	ErrNegativeStart ValidationReason = "negative_start"
	ErrInvertedRange ValidationReason = "inverted_range"
	ErrOutOfBounds   ValidationReason = "out_of_bounds"
	ErrOverlap       ValidationReason = "overlap"
)

// ValidationError describes a single invalid range in a HighlightSet.
type ValidationError struct {
	List       string           // "insertions" or "deletions"
	Index      int              // Position of the range within its list
	Range      CharRange        // The problematic range
	Reason     ValidationReason // Why this range is invalid
	LineLength int              // Rune length of the line the range refers to
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	switch e.Reason {
	case ErrNegativeStart:
		return fmt.Sprintf("%s[%d]: start %d is negative", e.List, e.Index, e.Range.Start)
	case ErrInvertedRange:
		return fmt.Sprintf("%s[%d]: end %d is before start %d", e.List, e.Index, e.Range.End, e.Range.Start)
	case ErrOutOfBounds:
		return fmt.Sprintf("%s[%d]: range [%d, %d) exceeds line length %d",
			e.List, e.Index, e.Range.Start, e.Range.End, e.LineLength)
	case ErrOverlap:
		return fmt.Sprintf("%s[%d]: range [%d, %d) overlaps or precedes the previous range",
			e.List, e.Index, e.Range.Start, e.Range.End)
	default:
		return fmt.Sprintf("%s[%d]: unknown error for range [%d, %d)",
			e.List, e.Index, e.Range.Start, e.Range.End)
	}
}

// ValidateHighlightSet checks that every range in set fits the line it refers
// to and that each list is strictly increasing and non-overlapping. Returns
// nil if the set is valid.
func ValidateHighlightSet(set HighlightSet, previous, current string) []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateRanges("insertions", set.Insertions, utf8.RuneCountInString(current))...)
	errors = append(errors, validateRanges("deletions", set.Deletions, utf8.RuneCountInString(previous))...)
	return errors
}

func validateRanges(list string, ranges []CharRange, lineLength int) []ValidationError {
	var errors []ValidationError

	for i, r := range ranges {
		fail := func(reason ValidationReason) {
			errors = append(errors, ValidationError{
				List:       list,
				Index:      i,
				Range:      r,
				Reason:     reason,
				LineLength: lineLength,
			})
		}

		switch {
		case r.Start < 0:
			fail(ErrNegativeStart)
		case r.End < r.Start:
			fail(ErrInvertedRange)
		case r.End > lineLength:
			fail(ErrOutOfBounds)
		case i > 0 && (r.Start <= ranges[i-1].Start || r.Start < ranges[i-1].End):
			fail(ErrOverlap)
		}
	}

	return errors
}
