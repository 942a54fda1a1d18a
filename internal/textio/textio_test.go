package textio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keosu/jsontree/internal/textio"
)

func TestReadWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	const text = "{\n  \"a\": 1\n}\n"

	require.NoError(t, textio.WriteText(path, text))
	got, err := textio.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestWriteText_ReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, textio.WriteText(path, "old contents that are longer"))
	require.NoError(t, textio.WriteText(path, "new"))

	got, err := textio.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "new", got)
}

func TestWriteText_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, textio.WriteText(filepath.Join(dir, "doc.json"), "x"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "doc.json", entries[0].Name())
}

func TestReadText_MissingFile(t *testing.T) {
	_, err := textio.ReadText(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
