package mock

import "github.com/fwojciec/linediff"

// Compile-time interface verification.
var _ linediff.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader is a mock implementation of linediff.DocumentLoader.
type DocumentLoader struct {
	LoadFn func(path string) (*linediff.Document, error)
}

func (l *DocumentLoader) Load(path string) (*linediff.Document, error) {
	return l.LoadFn(path)
}
