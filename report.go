package linediff

import "fmt"

// LineReport records the highlight decision for one pair of adjacent lines.
type LineReport struct {
	Path       string      `json:"path,omitempty"`
	Line       int         `json:"line"` // 1-based number of the current line
	Previous   string      `json:"previous"`
	Current    string      `json:"current"`
	Similarity float64     `json:"similarity"`
	Similar    bool        `json:"similar"`
	Insertions []CharRange `json:"insertions,omitempty"`
	Deletions  []CharRange `json:"deletions,omitempty"`
}

// Analyze reports on every row of doc that has a row above it, as if the
// cursor visited each one in turn. Dissimilar pairs are reported without
// ranges.
func Analyze(doc *Document, h *Highlighter) ([]LineReport, error) {
	if doc.LineCount() < 2 {
		return nil, nil
	}

	reports := make([]LineReport, 0, doc.LineCount()-1)
	for row := 1; row < doc.LineCount(); row++ {
		previous, current := doc.Line(row-1), doc.Line(row)
		ops := h.differ.Diff(previous, current)

		r := LineReport{
			Path:       doc.Path,
			Line:       row + 1,
			Previous:   previous,
			Current:    current,
			Similarity: Similarity(previous, current, ops),
			Similar:    IsSimilar(previous, current, ops),
		}
		if r.Similar {
			set := Spans(ops)
			if errs := ValidateHighlightSet(set, previous, current); len(errs) > 0 {
				return nil, fmt.Errorf("%s:%d: invalid highlight set: %w", doc.Path, r.Line, errs[0])
			}
			r.Insertions = set.Insertions
			r.Deletions = set.Deletions
		}
		reports = append(reports, r)
	}

	return reports, nil
}
