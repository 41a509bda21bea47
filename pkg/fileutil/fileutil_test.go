package fileutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"records.csv", "csv"},
		{"records.XLSX", "xlsx"},
		{"dir/sub/out.json", "json"},
		{"archive.tar.gz", "gz"},
		{"noext", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Extension(tt.path), "Extension(%q)", tt.path)
	}
}

func TestAtomicWrite(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.csv")

	err := AtomicWrite(dest, func(w io.Writer) error {
		_, err := w.Write([]byte("hello"))
		return err
	})
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	// No temp file remains.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAtomicWriteReplacesExisting(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(dest, []byte("old"), 0644))

	err := AtomicWrite(dest, func(w io.Writer) error {
		_, err := w.Write([]byte("new"))
		return err
	})
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestAtomicWriteFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.csv")

	writeErr := errors.New("boom")
	err := AtomicWrite(dest, func(w io.Writer) error {
		return writeErr
	})
	assert.ErrorIs(t, err, writeErr)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "failed write leaves neither destination nor temp file")

	// An existing destination survives a failed rewrite.
	require.NoError(t, os.WriteFile(dest, []byte("keep"), 0644))
	assert.Error(t, AtomicWrite(dest, func(io.Writer) error { return writeErr }))
	data, readErr := os.ReadFile(dest)
	require.NoError(t, readErr)
	assert.Equal(t, "keep", string(data))
}
