package mock

import "github.com/fwojciec/linediff"

// Compile-time interface verification.
var _ linediff.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of linediff.ReportWriter.
type ReportWriter struct {
	WriteFn func(r linediff.LineReport) error
}

func (w *ReportWriter) Write(r linediff.LineReport) error {
	return w.WriteFn(r)
}
