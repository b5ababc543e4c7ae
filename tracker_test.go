package linediff_test

import (
	"testing"

	"github.com/fwojciec/linediff"
	"github.com/fwojciec/linediff/dmp"
	"github.com/fwojciec/linediff/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRenderer records the calls a Tracker makes, in order.
type recordingRenderer struct {
	calls      []string
	placements []linediff.Placement
	sets       []linediff.HighlightSet
}

func (r *recordingRenderer) mock() *mock.Renderer {
	return &mock.Renderer{
		ApplyFn: func(p linediff.Placement, set linediff.HighlightSet) {
			r.calls = append(r.calls, "apply")
			r.placements = append(r.placements, p)
			r.sets = append(r.sets, set)
		},
		ClearFn: func() {
			r.calls = append(r.calls, "clear")
		},
	}
}

func newTestDocument() *linediff.Document {
	return &linediff.Document{
		Path: "test.txt",
		Lines: []string{
			"foo bar",
			"foo baz",
			"something else entirely",
			"something else entirely",
		},
	}
}

func TestTracker_MoveTo(t *testing.T) {
	t.Parallel()

	t.Run("clears then applies for similar lines", func(t *testing.T) {
		t.Parallel()

		rec := &recordingRenderer{}
		tr := linediff.NewTracker(linediff.NewHighlighter(dmp.NewDiffer()), rec.mock())

		tr.MoveTo(newTestDocument(), 1)

		assert.Equal(t, []string{"clear", "apply"}, rec.calls)
		require.Len(t, rec.placements, 1)
		assert.Equal(t, linediff.Placement{PreviousLine: 0, CurrentLine: 1}, rec.placements[0])
		assert.Equal(t, []linediff.CharRange{{Start: 6, End: 7}}, rec.sets[0].Insertions)
		assert.Equal(t, []linediff.CharRange{{Start: 6, End: 7}}, rec.sets[0].Deletions)

		p, set, ok := tr.Current()
		require.True(t, ok)
		assert.Equal(t, rec.placements[0], p)
		assert.Equal(t, rec.sets[0], set)
	})

	t.Run("clears without applying for dissimilar lines", func(t *testing.T) {
		t.Parallel()

		rec := &recordingRenderer{}
		tr := linediff.NewTracker(linediff.NewHighlighter(dmp.NewDiffer()), rec.mock())

		tr.MoveTo(newTestDocument(), 2)

		assert.Equal(t, []string{"clear"}, rec.calls)
		_, _, ok := tr.Current()
		assert.False(t, ok)
	})

	t.Run("first line clears highlights", func(t *testing.T) {
		t.Parallel()

		rec := &recordingRenderer{}
		tr := linediff.NewTracker(linediff.NewHighlighter(dmp.NewDiffer()), rec.mock())
		doc := newTestDocument()

		tr.MoveTo(doc, 1)
		tr.MoveTo(doc, 0)

		assert.Equal(t, []string{"clear", "apply", "clear"}, rec.calls)
		_, _, ok := tr.Current()
		assert.False(t, ok)
	})

	t.Run("first line never diffs", func(t *testing.T) {
		t.Parallel()

		tr := linediff.NewTracker(
			linediff.NewHighlighter(&mock.Differ{
				DiffFn: func(previous, current string) []linediff.DiffOp {
					t.Fatal("differ must not be called for the first line")
					return nil
				},
			}),
			(&recordingRenderer{}).mock(),
		)

		tr.MoveTo(newTestDocument(), 0)
	})

	t.Run("same line is handled once", func(t *testing.T) {
		t.Parallel()

		rec := &recordingRenderer{}
		tr := linediff.NewTracker(linediff.NewHighlighter(dmp.NewDiffer()), rec.mock())
		doc := newTestDocument()

		tr.MoveTo(doc, 1)
		tr.MoveTo(doc, 1)
		tr.MoveTo(doc, 1)

		assert.Equal(t, []string{"clear", "apply"}, rec.calls)
	})

	t.Run("identical lines apply an empty set", func(t *testing.T) {
		t.Parallel()

		rec := &recordingRenderer{}
		tr := linediff.NewTracker(linediff.NewHighlighter(dmp.NewDiffer()), rec.mock())

		tr.MoveTo(newTestDocument(), 3)

		assert.Equal(t, []string{"clear", "apply"}, rec.calls)
		assert.True(t, rec.sets[0].IsEmpty())
	})

	t.Run("new line replaces the previous set", func(t *testing.T) {
		t.Parallel()

		rec := &recordingRenderer{}
		tr := linediff.NewTracker(linediff.NewHighlighter(dmp.NewDiffer()), rec.mock())
		doc := newTestDocument()

		tr.MoveTo(doc, 1)
		tr.MoveTo(doc, 3)

		assert.Equal(t, []string{"clear", "apply", "clear", "apply"}, rec.calls)
		p, _, ok := tr.Current()
		require.True(t, ok)
		assert.Equal(t, linediff.Placement{PreviousLine: 2, CurrentLine: 3}, p)
	})

	t.Run("out of range line only clears", func(t *testing.T) {
		t.Parallel()

		rec := &recordingRenderer{}
		tr := linediff.NewTracker(linediff.NewHighlighter(dmp.NewDiffer()), rec.mock())

		tr.MoveTo(newTestDocument(), 10)

		assert.Equal(t, []string{"clear"}, rec.calls)
		assert.Equal(t, 10, tr.Line())
	})
}

func TestTracker_Refresh(t *testing.T) {
	t.Parallel()

	rec := &recordingRenderer{}
	tr := linediff.NewTracker(linediff.NewHighlighter(dmp.NewDiffer()), rec.mock())
	doc := newTestDocument()

	tr.MoveTo(doc, 1)
	doc.Lines[1] = "foo bar"
	tr.Refresh(doc)

	assert.Equal(t, []string{"clear", "apply", "clear", "apply"}, rec.calls)
	assert.True(t, rec.sets[1].IsEmpty())
	assert.Equal(t, 1, tr.Line())
}

func TestTracker_Close(t *testing.T) {
	t.Parallel()

	rec := &recordingRenderer{}
	tr := linediff.NewTracker(linediff.NewHighlighter(dmp.NewDiffer()), rec.mock())
	doc := newTestDocument()

	tr.MoveTo(doc, 1)
	tr.Close()

	assert.Equal(t, []string{"clear", "apply", "clear"}, rec.calls)
	_, _, ok := tr.Current()
	assert.False(t, ok)
	assert.Equal(t, -1, tr.Line())

	// After Close the same line counts as a move again.
	tr.MoveTo(doc, 1)
	assert.Equal(t, []string{"clear", "apply", "clear", "clear", "apply"}, rec.calls)
}
