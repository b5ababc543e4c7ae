package linediff

import (
	"strings"
	"unicode/utf8"
)

// Previous rebuilds the previous line from a diff-op sequence.
func Previous(ops []DiffOp) string {
	var sb strings.Builder
	for _, op := range ops {
		if op.Op != OpInsert {
			sb.WriteString(op.Text)
		}
	}
	return sb.String()
}

// Current rebuilds the current line from a diff-op sequence.
func Current(ops []DiffOp) string {
	var sb strings.Builder
	for _, op := range ops {
		if op.Op != OpDelete {
			sb.WriteString(op.Text)
		}
	}
	return sb.String()
}

// EqualLength returns the number of runes covered by Equal ops.
func EqualLength(ops []DiffOp) int {
	n := 0
	for _, op := range ops {
		if op.Op == OpEqual {
			n += utf8.RuneCountInString(op.Text)
		}
	}
	return n
}
