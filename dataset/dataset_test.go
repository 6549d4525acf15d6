package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleRows() [][]int {
	return [][]int{
		{1, 1, 1},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}
}

func TestNew(t *testing.T) {
	ds := MustFromInts(2, exampleRows())

	assert.Equal(t, 4, ds.NumInstances())
	assert.Equal(t, 2, ds.NumAttributes())
	assert.Equal(t, []uint8{1, 0, 0}, ds.Row(1))
	assert.Equal(t, uint8(1), ds.Value(2, 1))
	assert.Equal(t, uint8(1), ds.Label(0))
	assert.Equal(t, uint8(0), ds.Label(3))
}

func TestNewValidation(t *testing.T) {
	t.Run("RowLength", func(t *testing.T) {
		_, err := New(2, [][]uint8{{1, 0, 1}, {1, 0}})
		var rl *ErrRowLength
		require.ErrorAs(t, err, &rl)
		assert.Equal(t, 1, rl.Row)
		assert.Equal(t, 3, rl.Expected)
		assert.Equal(t, 2, rl.Actual)
	})

	t.Run("NonBinary", func(t *testing.T) {
		_, err := New(1, [][]uint8{{0, 2}})
		var iv *ErrInvalidValue
		require.ErrorAs(t, err, &iv)
		assert.Equal(t, 0, iv.Row)
		assert.Equal(t, 1, iv.Column)
		assert.Equal(t, 2, iv.Value)

		_, err = FromInts(1, [][]int{{-1, 0}})
		require.ErrorAs(t, err, &iv)
	})

	t.Run("NegativeAttributes", func(t *testing.T) {
		_, err := New(-1, nil)
		assert.ErrorIs(t, err, ErrNegativeAttributes)
	})

	t.Run("TooManyAttributes", func(t *testing.T) {
		_, err := New(MaxAttributes+1, nil)
		assert.ErrorIs(t, err, ErrTooManyAttributes)
	})

	t.Run("Empty", func(t *testing.T) {
		ds, err := New(3, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, ds.NumInstances())
		assert.Equal(t, 0, ds.Count(1))
	})
}

func TestImmutable(t *testing.T) {
	rows := [][]uint8{{1, 1}, {0, 0}}
	ds, err := New(1, rows)
	require.NoError(t, err)

	rows[0][0] = 0
	assert.Equal(t, uint8(1), ds.Value(0, 0))

	row := ds.Row(0)
	row[0] = 0
	assert.Equal(t, uint8(1), ds.Value(0, 0))

	col := ds.Column(0)
	col.Add(1)
	assert.False(t, ds.Column(0).Contains(1))
}

func TestColumns(t *testing.T) {
	ds := MustFromInts(2, exampleRows())

	assert.Equal(t, []uint32{0, 1}, ds.Column(0).ToArray())
	assert.Equal(t, []uint32{0, 2}, ds.Column(1).ToArray())
	assert.Equal(t, []uint32{0}, ds.LabelColumn().ToArray())

	assert.Equal(t, []uint32{2, 3}, ds.Matching(0, 0).ToArray())
	assert.Equal(t, []uint32{0, 1}, ds.Matching(0, 1).ToArray())
	assert.Equal(t, []uint32{1, 2, 3}, ds.Matching(2, 0).ToArray())

	assert.Equal(t, 1, ds.Count(1))
	assert.Equal(t, 3, ds.Count(0))
}
