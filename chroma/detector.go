package chroma

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/linediff"
)

var _ linediff.LanguageDetector = (*Detector)(nil)

// Detector picks a chroma lexer by file name.
type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// DetectFromPath returns the lexer name matching the base name of path, so
// both "main.go" and "/src/cmd/main.go" give "Go". Paths with no matching
// lexer, including "-" for standard input, give "".
func (d *Detector) DetectFromPath(path string) string {
	if lexer := lexers.Match(filepath.Base(path)); lexer != nil {
		return lexer.Config().Name
	}
	return ""
}
