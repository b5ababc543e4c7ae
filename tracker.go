package linediff

// Tracker connects cursor movement to a Renderer. It owns the one highlight
// set currently on screen and replaces it on every line change.
//
// Tracker is not safe for concurrent use; hosts call it from their event loop.
type Tracker struct {
	highlighter *Highlighter
	renderer    Renderer

	line      int
	placement Placement
	current   HighlightSet
	active    bool
}

// NewTracker creates a Tracker that has not seen any cursor position yet.
func NewTracker(h *Highlighter, r Renderer) *Tracker {
	return &Tracker{
		highlighter: h,
		renderer:    r,
		line:        -1,
	}
}

// MoveTo handles the cursor arriving on row line of doc. Repeated calls for
// the same row are ignored.
func (t *Tracker) MoveTo(doc *Document, line int) {
	if line == t.line {
		return
	}
	t.line = line
	t.clear()

	// The first row has nothing above it.
	if line <= 0 || line >= doc.LineCount() {
		return
	}

	set, ok := t.highlighter.Highlight(doc.Line(line-1), doc.Line(line))
	if !ok {
		return
	}

	t.placement = Placement{PreviousLine: line - 1, CurrentLine: line}
	t.current = set
	t.active = true
	t.renderer.Apply(t.placement, set)
}

// Refresh re-evaluates the current row, e.g. after doc was reloaded.
func (t *Tracker) Refresh(doc *Document) {
	line := t.line
	t.line = -1
	t.MoveTo(doc, line)
}

// Current returns the highlight set on screen and where it is placed.
// It returns false when nothing is highlighted.
func (t *Tracker) Current() (Placement, HighlightSet, bool) {
	return t.placement, t.current, t.active
}

// Line returns the last row passed to MoveTo, or -1.
func (t *Tracker) Line() int {
	return t.line
}

// Close clears the renderer. The Tracker can be reused afterwards.
func (t *Tracker) Close() {
	t.clear()
	t.line = -1
}

func (t *Tracker) clear() {
	t.renderer.Clear()
	t.placement = Placement{}
	t.current = HighlightSet{}
	t.active = false
}
