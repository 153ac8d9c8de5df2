package objectstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreOpen(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.bin"), []byte("hello"), 0o644))

	store := NewLocalStore(dir)
	b, err := store.Open("x.bin")
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, int64(5), b.Size())
	buf := make([]byte, 5)
	n, err := b.ReadAt(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", string(buf))
}

func TestLocalStoreOpenMissing(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	_, err := store.Open("missing.bin")
	assert.ErrorIs(t, err, ErrNotFound)
}
