package mock

import (
	"context"

	"github.com/fwojciec/linediff"
)

// Compile-time interface verification.
var _ linediff.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of linediff.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, doc *linediff.Document) error
}

func (v *Viewer) View(ctx context.Context, doc *linediff.Document) error {
	return v.ViewFn(ctx, doc)
}
