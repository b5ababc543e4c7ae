package linediff_test

import (
	"testing"

	"github.com/fwojciec/linediff"
	"github.com/fwojciec/linediff/dmp"
	"github.com/fwojciec/linediff/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	t.Parallel()

	t.Run("reports every adjacent pair", func(t *testing.T) {
		t.Parallel()

		doc := &linediff.Document{
			Path:  "main.go",
			Lines: []string{"foo bar", "foo baz", "xyz"},
		}

		reports, err := linediff.Analyze(doc, linediff.NewHighlighter(dmp.NewDiffer()))

		require.NoError(t, err)
		require.Len(t, reports, 2)

		assert.Equal(t, linediff.LineReport{
			Path:       "main.go",
			Line:       2,
			Previous:   "foo bar",
			Current:    "foo baz",
			Similarity: 6.0 / 7.0,
			Similar:    true,
			Insertions: []linediff.CharRange{{Start: 6, End: 7}},
			Deletions:  []linediff.CharRange{{Start: 6, End: 7}},
		}, reports[0])

		assert.Equal(t, 3, reports[1].Line)
		assert.False(t, reports[1].Similar)
		assert.Nil(t, reports[1].Insertions)
		assert.Nil(t, reports[1].Deletions)
	})

	t.Run("single line document has no pairs", func(t *testing.T) {
		t.Parallel()

		reports, err := linediff.Analyze(&linediff.Document{Lines: []string{"only"}}, linediff.NewHighlighter(dmp.NewDiffer()))

		require.NoError(t, err)
		assert.Empty(t, reports)
	})

	t.Run("invalid spans are an error", func(t *testing.T) {
		t.Parallel()

		// A broken differ claiming an insertion longer than the line.
		h := linediff.NewHighlighter(&mock.Differ{
			DiffFn: func(previous, current string) []linediff.DiffOp {
				return []linediff.DiffOp{
					{Op: linediff.OpEqual, Text: previous},
					{Op: linediff.OpInsert, Text: "extra text"},
				}
			},
		})
		doc := &linediff.Document{Path: "bad.txt", Lines: []string{"abc", "abc"}}

		_, err := linediff.Analyze(doc, h)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad.txt:2")
		var verr linediff.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, linediff.ErrOutOfBounds, verr.Reason)
	})
}
