package hypothesis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		h, err := New(0, 2, 5)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 2, 5}, h.Attributes())
		assert.Equal(t, 3, h.Len())
		assert.Equal(t, 5, h.Last())
		assert.False(t, h.IsRoot())
		assert.False(t, h.IsScored())
	})

	t.Run("Empty", func(t *testing.T) {
		h, err := New()
		require.NoError(t, err)
		assert.True(t, h.IsRoot())
		assert.Equal(t, -1, h.Last())
	})

	t.Run("NotIncreasing", func(t *testing.T) {
		_, err := New(1, 1)
		assert.ErrorIs(t, err, ErrNotIncreasing)

		_, err = New(3, 2)
		assert.ErrorIs(t, err, ErrNotIncreasing)
	})

	t.Run("Negative", func(t *testing.T) {
		_, err := New(-1, 2)
		assert.ErrorIs(t, err, ErrNegativeAttribute)
	})

	t.Run("CopiesInput", func(t *testing.T) {
		in := []int{1, 2}
		h := MustNew(in...)
		in[0] = 9
		assert.Equal(t, []int{1, 2}, h.Attributes())

		out := h.Attributes()
		out[1] = 7
		assert.Equal(t, []int{1, 2}, h.Attributes())
	})
}

func TestScored(t *testing.T) {
	h := MustNew(1)
	s := h.Scored(0.25)

	assert.True(t, s.IsScored())
	assert.Equal(t, 0.25, s.Quality())
	assert.False(t, h.IsScored(), "original value stays unscored")

	assert.PanicsWithValue(t, ErrAlreadyScored, func() {
		s.Scored(0.5)
	})
}

func TestContainsAndKey(t *testing.T) {
	h := MustNew(0, 3, 7)
	assert.True(t, h.Contains(3))
	assert.False(t, h.Contains(4))
	assert.False(t, h.Contains(8))
	assert.Equal(t, "0,3,7", h.Key())
	assert.Equal(t, "", Root().Key())
}

func TestString(t *testing.T) {
	h := MustNew(0, 1).Scored(0.5)
	assert.Equal(t, "Hypo: attributes: [0, 1] quality = 0.5", h.String())
	assert.Equal(t, "Hypo: attributes: [] quality = 0", Root().String())
}

func TestCompare(t *testing.T) {
	low := MustNew(0).Scored(0.1)
	high := MustNew(1).Scored(0.9)

	assert.Equal(t, -1, Compare(low, high))
	assert.Equal(t, 1, Compare(high, low))
	assert.True(t, Better(high, low))
	assert.False(t, Better(low, high))

	t.Run("TieBreakLexicographic", func(t *testing.T) {
		a := MustNew(0, 2).Scored(0.5)
		b := MustNew(1).Scored(0.5)
		prefix := MustNew(0).Scored(0.5)

		assert.True(t, Better(a, b), "[0 2] sorts before [1]")
		assert.True(t, Better(prefix, a), "prefix ranks above its refinement")
		assert.Equal(t, 0, Compare(a, MustNew(0, 2).Scored(0.5)))
	})

	t.Run("Equal", func(t *testing.T) {
		assert.True(t, Equal(MustNew(1, 2).Scored(1), MustNew(1, 2).Scored(1)))
		assert.False(t, Equal(MustNew(1, 2).Scored(1), MustNew(1, 3).Scored(1)))
		assert.False(t, Equal(MustNew(1, 2).Scored(1), MustNew(1, 2).Scored(2)))
	})
}
