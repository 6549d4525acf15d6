package queue

import (
	"math"
	"sync"
	"testing"

	"github.com/hupe1980/midos/hypothesis"
	"github.com/hupe1980/midos/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(q float64, attrs ...int) hypothesis.Hypothesis {
	return hypothesis.MustNew(attrs...).Scored(q)
}

func keys(hs []hypothesis.Hypothesis) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.Key()
	}
	return out
}

func TestBestK(t *testing.T) {
	b := NewBestK(3)
	assert.Equal(t, 3, b.Capacity())
	assert.Equal(t, 0, b.Len())

	_, ok := b.PeekWorst()
	assert.False(t, ok)
	assert.True(t, math.IsInf(b.Threshold(BoundWhenNonEmpty), -1))

	require.True(t, b.Offer(scored(0.5, 0)))
	require.True(t, b.Offer(scored(0.2, 1)))
	require.True(t, b.Offer(scored(0.9, 2)))
	assert.True(t, b.Full())

	worst, ok := b.PeekWorst()
	require.True(t, ok)
	assert.Equal(t, "1", worst.Key())
	assert.Equal(t, 0.2, b.Threshold(BoundWhenFull))

	t.Run("RejectWorse", func(t *testing.T) {
		assert.False(t, b.Offer(scored(0.1, 3)))
		assert.False(t, b.Insert(scored(5, 3)), "Insert never exceeds capacity")
		assert.Equal(t, 3, b.Len())
	})

	t.Run("ReplaceWorst", func(t *testing.T) {
		assert.True(t, b.Offer(scored(0.7, 3)))
		assert.Equal(t, 3, b.Len())
		assert.Equal(t, []string{"2", "3", "0"}, keys(b.Sorted()))
		assert.Equal(t, 0.5, b.Threshold(BoundWhenFull))
	})

	t.Run("EvictWorst", func(t *testing.T) {
		h, ok := b.EvictWorst()
		require.True(t, ok)
		assert.Equal(t, "0", h.Key())
		assert.Equal(t, 2, b.Len())
	})
}

func TestBestKThresholdModes(t *testing.T) {
	b := NewBestK(2)
	b.Offer(scored(0.4, 0))

	assert.True(t, math.IsInf(b.Threshold(BoundWhenFull), -1))
	assert.Equal(t, 0.4, b.Threshold(BoundWhenNonEmpty))
}

func TestBestKZeroCapacity(t *testing.T) {
	for _, c := range []int{0, -2} {
		b := NewBestK(c)
		assert.False(t, b.Offer(scored(1, 0)))
		assert.Equal(t, 0, b.Len())
		assert.True(t, math.IsInf(b.Threshold(BoundWhenFull), -1))
		assert.True(t, math.IsInf(b.Threshold(BoundWhenNonEmpty), -1))
	}
}

func TestBestKTieBreak(t *testing.T) {
	b := NewBestK(2)
	b.Offer(scored(0.5, 2))
	b.Offer(scored(0.5, 1))

	// Equal quality: [0] ranks above both retained hypotheses.
	assert.True(t, b.Offer(scored(0.5, 0)))
	assert.Equal(t, []string{"0", "1"}, keys(b.Sorted()))

	// [3] ranks below everything retained.
	assert.False(t, b.Offer(scored(0.5, 3)))
}

func TestBestKOrderIndependent(t *testing.T) {
	rng := testutil.NewRNG(5)
	var hs []hypothesis.Hypothesis
	for i := range 200 {
		// Coarse qualities force many ties.
		hs = append(hs, scored(float64(rng.Intn(10))/10, i))
	}

	reference := NewBestK(15)
	for _, h := range hs {
		reference.Offer(h)
	}
	want := keys(reference.Sorted())

	for range 10 {
		b := NewBestK(15)
		for _, i := range permutation(rng, len(hs)) {
			b.Offer(hs[i])
			assert.LessOrEqual(t, b.Len(), 15)
		}
		assert.Equal(t, want, keys(b.Sorted()))
	}
}

func TestSyncBestK(t *testing.T) {
	s := NewSyncBestK(10, BoundWhenFull)

	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				q := float64((w*100+i)%37) / 37
				s.TryOffer(1, scored(q, w*100+i))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, s.Len())
	best := s.Sorted()
	require.Len(t, best, 10)
	assert.Equal(t, 36.0/37, best[0].Quality())
	assert.Equal(t, best[9].Quality(), s.Threshold())

	assert.Equal(t, Pruned, s.TryOffer(-1, scored(2, 9999)))
	assert.Equal(t, Kept, s.TryOffer(1, scored(0, 9999)))
	assert.Equal(t, Accepted, s.TryOffer(1, scored(2, 9999)))
}

func permutation(rng *testutil.RNG, n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}
