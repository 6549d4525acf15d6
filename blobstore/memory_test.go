package blobstore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte("hello world")
	require.NoError(t, store.Put(ctx, "in/a.txt", data))
	require.NoError(t, store.Put(ctx, "in/b.txt", []byte("b")))
	require.NoError(t, store.Put(ctx, "out/r.json", []byte("{}")))

	// Mutating the caller's slice does not change the stored blob.
	data[0] = 'H'

	got, err := ReadAll(ctx, store, "in/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(got))

	names, err := store.List(ctx, "in/")
	require.NoError(t, err)
	assert.Equal(t, []string{"in/a.txt", "in/b.txt"}, names)

	blob, err := store.Open(ctx, "in/a.txt")
	require.NoError(t, err)
	buf := make([]byte, 5)
	n, err := blob.ReadAt(buf, 6)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "world", string(buf))

	all, err := io.ReadAll(NewReader(blob))
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(all))
	require.NoError(t, blob.Close())

	require.NoError(t, store.Delete(ctx, "in/a.txt"))
	_, err = store.Open(ctx, "in/a.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

type readerAtBlob struct {
	data []byte
}

func (b readerAtBlob) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (readerAtBlob) Close() error  { return nil }
func (b readerAtBlob) Size() int64 { return int64(len(b.data)) }

type plainStore struct {
	blob Blob
}

func (s plainStore) Open(context.Context, string) (Blob, error) { return s.blob, nil }
func (plainStore) Put(context.Context, string, []byte) error    { return nil }

func TestReadAll_WithoutMapping(t *testing.T) {
	store := plainStore{blob: readerAtBlob{data: []byte("0 1 1\n")}}

	got, err := ReadAll(context.Background(), store, "x")
	require.NoError(t, err)
	assert.Equal(t, "0 1 1\n", string(got))
}
