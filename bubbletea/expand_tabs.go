package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tabWidth is the distance between tab stops, in cells.
const tabWidth = 4

// ExpandTabs replaces tabs in s with spaces up to the next tab stop, given
// that s starts at cell startCol. It returns the expanded text and the cell
// column just past it.
func ExpandTabs(s string, startCol int) (string, int) {
	if !strings.Contains(s, "\t") {
		return s, startCol + lipgloss.Width(s)
	}

	var sb strings.Builder
	col := startCol
	for _, r := range s {
		if r == '\t' {
			next := (col/tabWidth + 1) * tabWidth
			sb.WriteString(strings.Repeat(" ", next-col))
			col = next
			continue
		}
		sb.WriteRune(r)
		col += lipgloss.Width(string(r))
	}
	return sb.String(), col
}
