package fs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/linediff/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty text", text: "", want: []string{""}},
		{name: "single line", text: "one", want: []string{"one"}},
		{name: "trailing newline", text: "one\ntwo\n", want: []string{"one", "two"}},
		{name: "blank lines kept", text: "one\n\ntwo", want: []string{"one", "", "two"}},
		{name: "crlf endings", text: "one\r\ntwo\r\n", want: []string{"one", "two"}},
		{name: "only newline", text: "\n", want: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fs.SplitLines(tt.text))
		})
	}
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("reads a file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "main.go")
		require.NoError(t, os.WriteFile(path, []byte("package main\n\nfunc main() {}\n"), 0o644))

		doc, err := fs.NewLoader().Load(path)

		require.NoError(t, err)
		assert.Equal(t, path, doc.Path)
		assert.Equal(t, []string{"package main", "", "func main() {}"}, doc.Lines)
	})

	t.Run("reads stdin", func(t *testing.T) {
		t.Parallel()

		loader := &fs.Loader{Stdin: strings.NewReader("a\nb\n")}

		doc, err := loader.Load(fs.StdinPath)

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, doc.Lines)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewLoader().Load(filepath.Join(t.TempDir(), "missing.txt"))

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("binary file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "blob.bin")
		require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00}, 0o644))

		_, err := fs.NewLoader().Load(path)

		require.ErrorIs(t, err, fs.ErrNotText)
	})
}
