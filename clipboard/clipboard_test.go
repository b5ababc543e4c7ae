package clipboard_test

import (
	"testing"

	atotto "github.com/atotto/clipboard"
	"github.com/fwojciec/linediff"
	"github.com/fwojciec/linediff/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem_ImplementsClipboard(t *testing.T) {
	t.Parallel()

	var _ linediff.Clipboard = clipboard.NewSystem()
}

func TestSystem_Copy(t *testing.T) {
	// Not parallel: uses the shared system clipboard.
	cb := clipboard.NewSystem()
	if !cb.Available() {
		t.Skip("no clipboard utility available, skipping clipboard test")
	}

	testContent := "test clipboard content from linediff"

	if err := cb.Copy(testContent); err != nil {
		// xclip and friends are often installed without a display to talk to.
		t.Skipf("clipboard utility unusable: %v", err)
	}

	out, err := atotto.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, testContent, out)
}
