// Package jsonl writes line reports as JSON Lines.
package jsonl

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/linediff"
)

// Compile-time interface verification.
var _ linediff.ReportWriter = (*Writer)(nil)

// Writer encodes one LineReport per line.
type Writer struct {
	enc *json.Encoder
}

// NewWriter creates a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &Writer{enc: enc}
}

// Write encodes r followed by a newline.
func (w *Writer) Write(r linediff.LineReport) error {
	return w.enc.Encode(r)
}
