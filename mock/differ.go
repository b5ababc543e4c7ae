// Package mock provides test doubles for linediff interfaces.
package mock

import "github.com/fwojciec/linediff"

// Compile-time interface verification.
var _ linediff.Differ = (*Differ)(nil)

// Differ is a mock implementation of linediff.Differ.
type Differ struct {
	DiffFn func(previous, current string) []linediff.DiffOp
}

func (d *Differ) Diff(previous, current string) []linediff.DiffOp {
	return d.DiffFn(previous, current)
}
