package linediff

import "unicode/utf8"

// Spans converts a diff-op sequence into the ranges to highlight.
// Ranges come out in sequence order, so each list is sorted and
// non-overlapping.
func Spans(ops []DiffOp) HighlightSet {
	var set HighlightSet
	currentIndex, previousIndex := 0, 0

	for _, op := range ops {
		n := utf8.RuneCountInString(op.Text)
		switch op.Op {
		case OpEqual:
			currentIndex += n
			previousIndex += n
		case OpInsert:
			set.Insertions = append(set.Insertions, CharRange{Start: currentIndex, End: currentIndex + n})
			currentIndex += n
		case OpDelete:
			set.Deletions = append(set.Deletions, CharRange{Start: previousIndex, End: previousIndex + n})
			previousIndex += n
		}
	}

	return set
}

// Substrings returns the text of line covered by each range. Ranges are
// clamped to the line.
func Substrings(line string, ranges []CharRange) []string {
	if len(ranges) == 0 {
		return nil
	}
	runes := []rune(line)
	out := make([]string, 0, len(ranges))
	for _, r := range ranges {
		start := min(max(r.Start, 0), len(runes))
		end := min(max(r.End, start), len(runes))
		out = append(out, string(runes[start:end]))
	}
	return out
}
