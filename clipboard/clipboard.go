// Package clipboard provides clipboard operations via atotto/clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/fwojciec/linediff"
)

// Ensure System implements the Clipboard interface.
var _ linediff.Clipboard = (*System)(nil)

// System implements Clipboard using the platform clipboard utilities
// (pbcopy, xclip, xsel, wl-copy or the Windows API).
type System struct{}

// NewSystem returns a new System clipboard.
func NewSystem() *System {
	return &System{}
}

// Copy writes content to the system clipboard.
func (s *System) Copy(content string) error {
	return clipboard.WriteAll(content)
}

// Available reports whether a clipboard utility was found.
func (s *System) Available() bool {
	return !clipboard.Unsupported
}
