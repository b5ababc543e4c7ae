// Package linediff provides domain types for highlighting the character-level
// difference between a cursor line and the line above it.
package linediff

import "context"

// Op identifies what a DiffOp does to the previous line.
type Op int

// Diff operations.
const (
	OpEqual Op = iota
	OpInsert
	OpDelete
)

// String returns a short name for the operation.
func (o Op) String() string {
	switch o {
	case OpEqual:
		return "equal"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// DiffOp is one step of a diff-op sequence. Text is never empty.
//
// Concatenating the Equal and Insert texts of a sequence yields the current
// line; concatenating the Equal and Delete texts yields the previous line.
type DiffOp struct {
	Op   Op
	Text string
}

// CharRange is a half-open interval [Start, End) of rune offsets within a
// single line.
type CharRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of runes covered by the range.
func (r CharRange) Len() int {
	return r.End - r.Start
}

// HighlightSet describes what to mark between two adjacent lines.
// Insertions index into the current line, Deletions into the previous one.
type HighlightSet struct {
	Insertions []CharRange
	Deletions  []CharRange
}

// IsEmpty reports whether the set has no ranges at all.
func (s HighlightSet) IsEmpty() bool {
	return len(s.Insertions) == 0 && len(s.Deletions) == 0
}

// Placement tells a Renderer which document rows a HighlightSet refers to.
type Placement struct {
	PreviousLine int // 0-based row that Deletions index into
	CurrentLine  int // 0-based row that Insertions index into
}

// Document is the text a host shows, split into lines without newlines.
type Document struct {
	Path  string
	Lines []string
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	if d == nil {
		return 0
	}
	return len(d.Lines)
}

// Line returns the text of row n, or an empty string if n is out of range.
func (d *Document) Line(n int) string {
	if n < 0 || n >= d.LineCount() {
		return ""
	}
	return d.Lines[n]
}

// Differ computes a cleaned-up, character-level diff-op sequence.
type Differ interface {
	// Diff returns the ops transforming previous into current. Both lines
	// must be valid UTF-8; invalid bytes are replaced with U+FFFD and the
	// ops no longer rebuild the input.
	Diff(previous, current string) []DiffOp
}

// Renderer displays highlights on behalf of a host.
type Renderer interface {
	// Apply shows set at the given rows. Callers Clear before every Apply.
	Apply(p Placement, set HighlightSet)
	// Clear removes every highlight currently shown.
	Clear()
}

// DocumentLoader reads a Document from a path.
type DocumentLoader interface {
	Load(path string) (*Document, error)
}

// Viewer displays a document interactively.
type Viewer interface {
	// View displays the document and blocks until the user exits.
	View(ctx context.Context, doc *Document) error
}

// ReportWriter persists line reports.
type ReportWriter interface {
	Write(r LineReport) error
}

// Clipboard provides access to the system clipboard.
type Clipboard interface {
	// Copy writes content to the clipboard.
	Copy(content string) error
}
