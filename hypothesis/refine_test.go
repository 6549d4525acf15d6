package hypothesis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefinerChildren(t *testing.T) {
	r := NewRefiner(4)

	t.Run("Root", func(t *testing.T) {
		children := r.Children(Root())
		require.Len(t, children, 4)
		for i, c := range children {
			assert.Equal(t, []int{i}, c.Attributes())
			assert.False(t, c.IsScored())
		}
	})

	t.Run("Inner", func(t *testing.T) {
		h := MustNew(0, 1)
		children := r.Children(h)
		require.Len(t, children, 2)
		assert.Equal(t, []int{0, 1, 2}, children[0].Attributes())
		assert.Equal(t, []int{0, 1, 3}, children[1].Attributes())
		assert.Equal(t, []int{0, 1}, h.Attributes(), "parent is not mutated")
	})

	t.Run("Leaf", func(t *testing.T) {
		assert.Empty(t, r.Children(MustNew(3)))
		assert.Equal(t, 0, r.Count(MustNew(1, 3)))
	})

	t.Run("ParentSliceNotAliased", func(t *testing.T) {
		h := MustNew(0)
		children := r.Children(h)
		assert.Equal(t, []int{0, 1}, children[0].Attributes())
		assert.Equal(t, []int{0, 2}, children[1].Attributes())
		assert.Equal(t, []int{0, 3}, children[2].Attributes())
	})
}

func TestRefinerNoAttributes(t *testing.T) {
	r := NewRefiner(0)
	assert.Empty(t, r.Children(Root()))

	r = NewRefiner(-3)
	assert.Equal(t, 0, r.NumAttributes())
}

func TestRefinerSingleAttribute(t *testing.T) {
	r := NewRefiner(1)
	children := r.Children(Root())
	require.Len(t, children, 1)
	assert.Empty(t, r.Children(children[0]), "no grandchildren")
}

func TestRefinerEachStops(t *testing.T) {
	r := NewRefiner(10)
	var seen []int
	r.Each(Root(), func(_ Hypothesis, attr int) bool {
		seen = append(seen, attr)
		return attr < 2
	})
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestRefinerCompleteness(t *testing.T) {
	for m := 0; m <= 8; m++ {
		r := NewRefiner(m)
		seen := make(map[string]int)

		pending := []Hypothesis{Root()}
		for len(pending) > 0 {
			h := pending[0]
			pending = pending[1:]
			for _, c := range r.Children(h) {
				seen[c.Key()]++
				pending = append(pending, c)
			}
		}

		// Powerset minus the empty set.
		assert.Len(t, seen, (1<<m)-1, "m=%d", m)
		for key, n := range seen {
			assert.Equal(t, 1, n, "duplicate %q", key)
		}
	}
}
