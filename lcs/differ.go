// Package lcs computes line diffs from a longest common subsequence table.
package lcs

import (
	"unicode/utf8"

	"github.com/fwojciec/linediff"
)

// Compile-time interface verification.
var _ linediff.Differ = (*Differ)(nil)

// Differ computes rune-level diffs using an O(n×m) LCS table followed by a
// semantic cleanup pass. It is safe for concurrent use.
type Differ struct{}

// NewDiffer creates a new Differ instance.
func NewDiffer() *Differ {
	return &Differ{}
}

// Diff returns the cleaned-up ops transforming previous into current.
func (d *Differ) Diff(previous, current string) []linediff.DiffOp {
	if previous == current {
		if previous == "" {
			return nil
		}
		return []linediff.DiffOp{{Op: linediff.OpEqual, Text: previous}}
	}

	oldRunes, newRunes := []rune(previous), []rune(current)

	// Common prefix and suffix never take part in the table.
	prefix := commonPrefix(oldRunes, newRunes)
	oldRunes, newRunes = oldRunes[prefix:], newRunes[prefix:]
	suffix := commonSuffix(oldRunes, newRunes)
	oldMid, newMid := oldRunes[:len(oldRunes)-suffix], newRunes[:len(newRunes)-suffix]

	var ops []linediff.DiffOp
	if prefix > 0 {
		ops = append(ops, linediff.DiffOp{Op: linediff.OpEqual, Text: string([]rune(previous)[:prefix])})
	}
	ops = append(ops, lcsOps(oldMid, newMid)...)
	if suffix > 0 {
		ops = append(ops, linediff.DiffOp{Op: linediff.OpEqual, Text: string(oldRunes[len(oldRunes)-suffix:])})
	}

	return cleanupSemantic(ops)
}

func commonPrefix(a, b []rune) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func commonSuffix(a, b []rune) int {
	n := min(len(a), len(b))
	for i := 1; i <= n; i++ {
		if a[len(a)-i] != b[len(b)-i] {
			return i - 1
		}
	}
	return n
}

// lcsOps computes the LCS of two rune sequences and returns merged ops.
// Uses a flat DP table to keep it to a single allocation.
func lcsOps(oldRunes, newRunes []rune) []linediff.DiffOp {
	m, n := len(oldRunes), len(newRunes)
	if m == 0 && n == 0 {
		return nil
	}

	// table[i*(n+1)+j] is the LCS length of oldRunes[:i] and newRunes[:j]
	table := make([]int, (m+1)*(n+1))
	stride := n + 1

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if oldRunes[i-1] == newRunes[j-1] {
				table[i*stride+j] = table[(i-1)*stride+j-1] + 1
			} else if table[(i-1)*stride+j] > table[i*stride+j-1] {
				table[i*stride+j] = table[(i-1)*stride+j]
			} else {
				table[i*stride+j] = table[i*stride+j-1]
			}
		}
	}

	// Backtrack from the end, one rune per step.
	type step struct {
		op linediff.Op
		r  rune
	}
	steps := make([]step, 0, m+n)

	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && oldRunes[i-1] == newRunes[j-1]:
			steps = append(steps, step{linediff.OpEqual, oldRunes[i-1]})
			i--
			j--
		case j == 0 || (i > 0 && table[(i-1)*stride+j] > table[i*stride+j-1]):
			steps = append(steps, step{linediff.OpDelete, oldRunes[i-1]})
			i--
		default:
			steps = append(steps, step{linediff.OpInsert, newRunes[j-1]})
			j--
		}
	}

	// Walk the steps forwards, merging runs of the same op.
	var ops []linediff.DiffOp
	var run []rune
	runOp := linediff.OpEqual
	flush := func() {
		if len(run) > 0 {
			ops = append(ops, linediff.DiffOp{Op: runOp, Text: string(run)})
			run = run[:0]
		}
	}
	for k := len(steps) - 1; k >= 0; k-- {
		s := steps[k]
		if s.op != runOp {
			flush()
			runOp = s.op
		}
		run = append(run, s.r)
	}
	flush()

	return normalize(ops)
}

// normalize rewrites every run of edits between two equalities as a single
// Delete followed by a single Insert, and merges adjacent equalities.
func normalize(ops []linediff.DiffOp) []linediff.DiffOp {
	out := make([]linediff.DiffOp, 0, len(ops))
	var deleted, inserted string

	flush := func() {
		if deleted != "" {
			out = append(out, linediff.DiffOp{Op: linediff.OpDelete, Text: deleted})
		}
		if inserted != "" {
			out = append(out, linediff.DiffOp{Op: linediff.OpInsert, Text: inserted})
		}
		deleted, inserted = "", ""
	}

	for _, op := range ops {
		if op.Text == "" {
			continue
		}
		switch op.Op {
		case linediff.OpDelete:
			deleted += op.Text
		case linediff.OpInsert:
			inserted += op.Text
		default:
			flush()
			if len(out) > 0 && out[len(out)-1].Op == linediff.OpEqual {
				out[len(out)-1].Text += op.Text
				continue
			}
			out = append(out, op)
		}
	}
	flush()

	return out
}

// cleanupSemantic repeatedly turns an equality into a replacement when it is
// no longer than the edits on both of its sides.
func cleanupSemantic(ops []linediff.DiffOp) []linediff.DiffOp {
	ops = normalize(ops)
	for {
		i := eliminableEquality(ops)
		if i < 0 {
			return ops
		}
		text := ops[i].Text
		replaced := make([]linediff.DiffOp, 0, len(ops)+1)
		replaced = append(replaced, ops[:i]...)
		replaced = append(replaced,
			linediff.DiffOp{Op: linediff.OpDelete, Text: text},
			linediff.DiffOp{Op: linediff.OpInsert, Text: text},
		)
		replaced = append(replaced, ops[i+1:]...)
		ops = normalize(replaced)
	}
}

// eliminableEquality returns the index of the first equality surrounded by
// edits at least as long as itself, or -1.
func eliminableEquality(ops []linediff.DiffOp) int {
	for i, op := range ops {
		if op.Op != linediff.OpEqual || i == 0 || i == len(ops)-1 {
			continue
		}
		leftIns, leftDel := editLengths(ops, i, -1)
		rightIns, rightDel := editLengths(ops, i, 1)
		n := utf8.RuneCountInString(op.Text)
		if n <= max(leftIns, leftDel) && n <= max(rightIns, rightDel) {
			return i
		}
	}
	return -1
}

// editLengths sums the rune lengths of the insertions and deletions next to
// ops[i] in direction dir, stopping at the next equality.
func editLengths(ops []linediff.DiffOp, i, dir int) (inserted, deleted int) {
	for k := i + dir; k >= 0 && k < len(ops) && ops[k].Op != linediff.OpEqual; k += dir {
		switch ops[k].Op {
		case linediff.OpInsert:
			inserted += utf8.RuneCountInString(ops[k].Text)
		case linediff.OpDelete:
			deleted += utf8.RuneCountInString(ops[k].Text)
		}
	}
	return inserted, deleted
}
