package preview_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pickd/internal/preview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadTextFile(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("hello\nworld\n"))

	p := preview.Load(path, 1000)
	assert.Equal(t, "hello\nworld\n", p.Content)
	assert.False(t, p.Binary)
	assert.False(t, p.Truncated)
	assert.Equal(t, int64(12), p.Size)
	assert.Equal(t, "12 B", p.SizeLabel())
}

func TestLoadBinaryExtensionNotRead(t *testing.T) {
	path := writeFile(t, "photo.JPG", []byte("not really a jpeg"))

	p := preview.Load(path, 1000)
	assert.True(t, p.Binary)
	assert.Equal(t, "Binary file: photo.JPG", p.Content)
}

func TestLoadNulBytesMeansBinary(t *testing.T) {
	path := writeFile(t, "blob.dat", []byte{'a', 0, 'b'})

	p := preview.Load(path, 1000)
	assert.True(t, p.Binary)
	assert.Contains(t, p.Content, "Binary file: blob.dat")
}

func TestLoadTruncatesOversizeContent(t *testing.T) {
	path := writeFile(t, "big.log", []byte(strings.Repeat("x", 500)))

	p := preview.Load(path, 100)
	assert.True(t, p.Truncated)
	assert.True(t, strings.HasPrefix(p.Content, strings.Repeat("x", 100)))
	assert.Contains(t, p.Content, "[File truncated - 500 bytes total]")
}

func TestLoadMissingFileDegrades(t *testing.T) {
	p := preview.Load(filepath.Join(t.TempDir(), "absent.txt"), 1000)
	assert.Equal(t, "Could not read file", p.Content)
	assert.Equal(t, int64(-1), p.Size)
	assert.Empty(t, p.SizeLabel())
}
