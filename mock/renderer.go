package mock

import "github.com/fwojciec/linediff"

// Compile-time interface verification.
var _ linediff.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of linediff.Renderer.
type Renderer struct {
	ApplyFn func(p linediff.Placement, set linediff.HighlightSet)
	ClearFn func()
}

func (r *Renderer) Apply(p linediff.Placement, set linediff.HighlightSet) {
	r.ApplyFn(p, set)
}

func (r *Renderer) Clear() {
	r.ClearFn()
}
