package queue

import (
	"math"
	"sort"

	"github.com/hupe1980/midos/hypothesis"
)

// BoundMode selects when the worst retained quality starts acting as the
// pruning threshold.
type BoundMode int

const (
	// BoundWhenFull uses the worst quality only once K hypotheses are held.
	// Pruning is then exact: nothing that belongs to the final best K is cut.
	BoundWhenFull BoundMode = iota
	// BoundWhenNonEmpty uses the worst quality as soon as one hypothesis is
	// held. This prunes more aggressively while the structure fills up.
	BoundWhenNonEmpty
)

// BestK is a bounded min-heap of hypotheses. The worst hypothesis is at
// index 0. It is not safe for concurrent use; see SyncBestK.
type BestK struct {
	capacity int
	items    []hypothesis.Hypothesis
}

// NewBestK creates an empty structure holding at most capacity hypotheses.
// A capacity <= 0 never stores anything.
func NewBestK(capacity int) *BestK {
	capacity = max(capacity, 0)
	return &BestK{
		capacity: capacity,
		items:    make([]hypothesis.Hypothesis, 0, min(capacity, 1024)),
	}
}

// Capacity returns K.
func (b *BestK) Capacity() int { return b.capacity }

// Len returns the number of retained hypotheses.
func (b *BestK) Len() int { return len(b.items) }

// Full reports whether K hypotheses are retained.
func (b *BestK) Full() bool { return len(b.items) >= b.capacity }

// PeekWorst returns the worst retained hypothesis.
func (b *BestK) PeekWorst() (hypothesis.Hypothesis, bool) {
	if len(b.items) == 0 {
		return hypothesis.Hypothesis{}, false
	}
	return b.items[0], true
}

// Threshold returns the quality a branch's optimistic estimate must reach to
// stay in the search, or -Inf if there is no bound yet.
func (b *BestK) Threshold(mode BoundMode) float64 {
	if len(b.items) == 0 {
		return math.Inf(-1)
	}
	if mode == BoundWhenFull && !b.Full() {
		return math.Inf(-1)
	}
	return b.items[0].Quality()
}

// Insert adds h if there is room. It reports whether h was added.
func (b *BestK) Insert(h hypothesis.Hypothesis) bool {
	if b.Full() {
		return false
	}
	b.items = append(b.items, h)
	b.siftUp(len(b.items) - 1)
	return true
}

// EvictWorst removes and returns the worst retained hypothesis.
func (b *BestK) EvictWorst() (hypothesis.Hypothesis, bool) {
	n := len(b.items)
	if n == 0 {
		return hypothesis.Hypothesis{}, false
	}
	root := b.items[0]
	last := b.items[n-1]
	b.items[n-1] = hypothesis.Hypothesis{}
	b.items = b.items[:n-1]
	if n-1 > 0 {
		b.items[0] = last
		b.siftDown(0)
	}
	return root, true
}

// Offer inserts h if there is room, otherwise replaces the worst retained
// hypothesis when h ranks strictly above it. It reports whether h was kept.
func (b *BestK) Offer(h hypothesis.Hypothesis) bool {
	if b.capacity == 0 {
		return false
	}
	if !b.Full() {
		return b.Insert(h)
	}
	if !hypothesis.Better(h, b.items[0]) {
		return false
	}
	b.items[0] = h
	b.siftDown(0)
	return true
}

// Items returns a copy of the retained hypotheses in heap order.
func (b *BestK) Items() []hypothesis.Hypothesis {
	out := make([]hypothesis.Hypothesis, len(b.items))
	copy(out, b.items)
	return out
}

// Sorted returns a copy of the retained hypotheses, best first.
func (b *BestK) Sorted() []hypothesis.Hypothesis {
	out := b.Items()
	sort.Slice(out, func(i, j int) bool {
		return hypothesis.Better(out[i], out[j])
	})
	return out
}

func (b *BestK) less(i, j int) bool {
	return hypothesis.Compare(b.items[i], b.items[j]) < 0
}

func (b *BestK) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !b.less(i, p) {
			return
		}
		b.items[i], b.items[p] = b.items[p], b.items[i]
		i = p
	}
}

func (b *BestK) siftDown(i int) {
	n := len(b.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		worst := l
		if r := l + 1; r < n && b.less(r, l) {
			worst = r
		}
		if !b.less(worst, i) {
			return
		}
		b.items[i], b.items[worst] = b.items[worst], b.items[i]
		i = worst
	}
}
