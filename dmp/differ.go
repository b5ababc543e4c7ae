// Package dmp computes line diffs with the diff-match-patch algorithm.
package dmp

import (
	"github.com/fwojciec/linediff"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Compile-time interface verification.
var _ linediff.Differ = (*Differ)(nil)

// Differ computes character diffs using diffmatchpatch and its semantic
// cleanup pass. It is safe for concurrent use.
type Differ struct{}

// NewDiffer creates a new Differ instance.
func NewDiffer() *Differ {
	return &Differ{}
}

// Diff returns the cleaned-up ops transforming previous into current.
func (d *Differ) Diff(previous, current string) []linediff.DiffOp {
	dmp := diffmatchpatch.New()
	// No deadline: the same pair must always produce the same ops.
	dmp.DiffTimeout = 0

	diffs := dmp.DiffMain(previous, current, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	ops := make([]linediff.DiffOp, 0, len(diffs))
	for _, diff := range diffs {
		if diff.Text == "" {
			continue
		}
		ops = append(ops, linediff.DiffOp{Op: opFor(diff.Type), Text: diff.Text})
	}
	return ops
}

func opFor(t diffmatchpatch.Operation) linediff.Op {
	switch t {
	case diffmatchpatch.DiffInsert:
		return linediff.OpInsert
	case diffmatchpatch.DiffDelete:
		return linediff.OpDelete
	default:
		return linediff.OpEqual
	}
}
