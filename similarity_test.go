package linediff_test

import (
	"math"
	"testing"

	"github.com/fwojciec/linediff"
	"github.com/fwojciec/linediff/dmp"
	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	t.Parallel()

	t.Run("empty pair is fully similar", func(t *testing.T) {
		t.Parallel()

		ratio := linediff.Similarity("", "", nil)

		assert.Equal(t, 1.0, ratio)
		assert.False(t, math.IsNaN(ratio))
		assert.True(t, linediff.IsSimilar("", "", nil))
	})

	t.Run("ratio uses the longer line", func(t *testing.T) {
		t.Parallel()

		ops := []linediff.DiffOp{
			{Op: linediff.OpEqual, Text: "ab"},
			{Op: linediff.OpInsert, Text: "cdef"},
		}

		assert.InDelta(t, 2.0/6.0, linediff.Similarity("ab", "abcdef", ops), 1e-9)
	})

	t.Run("threshold is inclusive", func(t *testing.T) {
		t.Parallel()

		ops := []linediff.DiffOp{
			{Op: linediff.OpEqual, Text: "aa"},
			{Op: linediff.OpDelete, Text: "aa"},
			{Op: linediff.OpInsert, Text: "bb"},
		}

		assert.Equal(t, linediff.SimilarityThreshold, linediff.Similarity("aaaa", "aabb", ops))
		assert.True(t, linediff.IsSimilar("aaaa", "aabb", ops))
	})

	t.Run("just under the threshold is not similar", func(t *testing.T) {
		t.Parallel()

		ops := []linediff.DiffOp{
			{Op: linediff.OpEqual, Text: "aa"},
			{Op: linediff.OpDelete, Text: "aaa"},
			{Op: linediff.OpInsert, Text: "bbb"},
		}

		assert.False(t, linediff.IsSimilar("aaaaa", "aabbb", ops))
	})
}

func TestHighlighter_IsSimilar(t *testing.T) {
	t.Parallel()

	h := linediff.NewHighlighter(dmp.NewDiffer())

	tests := []struct {
		name     string
		previous string
		current  string
		want     bool
	}{
		{name: "identical", previous: "return nil", current: "return nil", want: true},
		{name: "half equal", previous: "aaaa", current: "aabb", want: true},
		{name: "disjoint", previous: "abc", current: "xyz", want: false},
		{name: "both empty", previous: "", current: "", want: true},
		{name: "one empty", previous: "", current: "text", want: false},
		{name: "small edit", previous: "foo bar", current: "foo baz", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, h.IsSimilar(tt.previous, tt.current))
		})
	}
}

func TestHighlighter_IsSimilar_SelfIsAlwaysSimilar(t *testing.T) {
	t.Parallel()

	h := linediff.NewHighlighter(dmp.NewDiffer())

	for _, line := range []string{"a", "hello world", "\t\tindented", "日本語", "    "} {
		assert.True(t, h.IsSimilar(line, line), "line %q", line)
	}
}
