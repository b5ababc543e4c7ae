package bubbletea

import "github.com/fwojciec/linediff"

// Compile-time interface verification.
var _ linediff.Renderer = (*Decorations)(nil)

// Decorations holds the highlight set the viewer paints. The Tracker drives
// it; the Model reads it on every render.
type Decorations struct {
	placement linediff.Placement
	set       linediff.HighlightSet
	active    bool
}

// NewDecorations creates an empty Decorations.
func NewDecorations() *Decorations {
	return &Decorations{}
}

// Apply replaces the painted set.
func (d *Decorations) Apply(p linediff.Placement, set linediff.HighlightSet) {
	d.placement = p
	d.set = set
	d.active = true
}

// Clear removes all painted highlights.
func (d *Decorations) Clear() {
	*d = Decorations{}
}

// decorationKind says which list of a set applies to a row.
type decorationKind int

const (
	decorationNone decorationKind = iota
	decorationInsertion
	decorationDeletion
)

// rangesFor returns the ranges painted on row and what they mark.
func (d *Decorations) rangesFor(row int) ([]linediff.CharRange, decorationKind) {
	if !d.active {
		return nil, decorationNone
	}
	switch row {
	case d.placement.CurrentLine:
		return d.set.Insertions, decorationInsertion
	case d.placement.PreviousLine:
		return d.set.Deletions, decorationDeletion
	default:
		return nil, decorationNone
	}
}
