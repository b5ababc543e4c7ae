package linediff

// Highlighter gates and computes highlights for a pair of lines using a
// single Differ.
type Highlighter struct {
	differ Differ
}

// NewHighlighter creates a Highlighter backed by differ.
func NewHighlighter(differ Differ) *Highlighter {
	return &Highlighter{differ: differ}
}

// IsSimilar reports whether previous and current share enough text to be
// highlighted.
func (h *Highlighter) IsSimilar(previous, current string) bool {
	return IsSimilar(previous, current, h.differ.Diff(previous, current))
}

// ComputeSpans returns the inserted and deleted ranges between the lines,
// regardless of how similar they are.
func (h *Highlighter) ComputeSpans(previous, current string) HighlightSet {
	return Spans(h.differ.Diff(previous, current))
}

// Highlight diffs the lines once and returns their highlight set.
// It returns false when the pair is not similar enough to highlight.
func (h *Highlighter) Highlight(previous, current string) (HighlightSet, bool) {
	ops := h.differ.Diff(previous, current)
	if !IsSimilar(previous, current, ops) {
		return HighlightSet{}, false
	}
	return Spans(ops), true
}
