// Package fs loads documents from the file system.
package fs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/linediff"
)

// StdinPath is the path that makes a Loader read standard input.
const StdinPath = "-"

// ErrNotText is returned when a file is not valid UTF-8 text.
var ErrNotText = errors.New("not a UTF-8 text file")

// Compile-time interface verification.
var _ linediff.DocumentLoader = (*Loader)(nil)

// Loader reads documents from files, or from Stdin for StdinPath.
type Loader struct {
	Stdin io.Reader
}

// NewLoader creates a Loader reading standard input from os.Stdin.
func NewLoader() *Loader {
	return &Loader{Stdin: os.Stdin}
}

// Load reads the file at path and splits it into lines.
func (l *Loader) Load(path string) (*linediff.Document, error) {
	var data []byte
	var err error
	if path == StdinPath {
		data, err = io.ReadAll(l.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotText)
	}

	return &linediff.Document{Path: path, Lines: SplitLines(string(data))}, nil
}

// SplitLines splits text into lines without their line endings. A trailing
// newline does not start another line; empty text is a single empty line.
func SplitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
