package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	data := []byte("4\n2 10 1\n1 1 1\n0 1 0\n1 0 1\n0 0 0\n")
	require.NoError(t, store.Put(ctx, "data/spect.txt", data))

	_, err := os.Stat(filepath.Join(tmpDir, "data", "spect.txt"))
	require.NoError(t, err)

	blob, err := store.Open(ctx, "data/spect.txt")
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 6)
	n, err := blob.ReadAt(buf, 2)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, "2 10 1", string(buf))

	m, ok := blob.(Mappable)
	require.True(t, ok)
	mapped, err := m.Bytes()
	require.NoError(t, err)
	assert.Equal(t, data, mapped)

	all, err := io.ReadAll(NewReader(blob))
	require.NoError(t, err)
	assert.Equal(t, data, all)
}

func TestLocalStore_ReadAtPastEnd(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "a", []byte("abc")))

	blob, err := store.Open(ctx, "a")
	require.NoError(t, err)
	defer blob.Close()

	buf := make([]byte, 5)
	n, err := blob.ReadAt(buf, 1)
	assert.Equal(t, 2, n)
	assert.ErrorIs(t, err, io.EOF)

	_, err = blob.ReadAt(buf, 3)
	assert.ErrorIs(t, err, io.EOF)
}

func TestLocalStore_Overwrite(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "report.json", []byte("old content")))
	require.NoError(t, store.Put(ctx, "report.json", []byte("new")))

	got, err := ReadAll(ctx, store, "report.json")
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestLocalStore_EmptyFile(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "empty", nil))

	blob, err := store.Open(ctx, "empty")
	require.NoError(t, err)
	assert.Equal(t, int64(0), blob.Size())
	require.NoError(t, blob.Close())
}

func TestLocalStore_NotFound(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	_, err := store.Open(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_Canceled(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Put(ctx, "a", []byte("x")), context.Canceled)
	_, err := store.Open(ctx, "a")
	assert.ErrorIs(t, err, context.Canceled)
}
