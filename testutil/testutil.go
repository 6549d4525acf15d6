package testutil

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/midos/dataset"
	"github.com/hupe1980/midos/hypothesis"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Rows generates num rows of numAttributes+1 binary values. Each cell is 1
// with probability density.
func (r *RNG) Rows(num, numAttributes int, density float64) [][]uint8 {
	r.mu.Lock()
	defer r.mu.Unlock()

	width := numAttributes + 1
	data := make([]uint8, num*width)
	rows := make([][]uint8, num)
	for i := range num {
		row := data[i*width : (i+1)*width]
		for j := range row {
			if r.rand.Float64() < density {
				row[j] = 1
			}
		}
		rows[i] = row
	}
	return rows
}

// Dataset generates a random dataset. It panics if construction fails,
// which cannot happen for generated binary rows.
func (r *RNG) Dataset(num, numAttributes int, density float64) *dataset.Dataset {
	ds, err := dataset.New(numAttributes, r.Rows(num, numAttributes, density))
	if err != nil {
		panic(err)
	}
	return ds
}

// Hypothesis returns a random unscored hypothesis over [0, numAttributes)
// with at most maxLen attributes. It may return the root.
func (r *RNG) Hypothesis(numAttributes, maxLen int) hypothesis.Hypothesis {
	r.mu.Lock()
	n := 0
	if maxLen > 0 && numAttributes > 0 {
		n = r.rand.Intn(min(maxLen, numAttributes) + 1)
	}
	attrs := r.rand.Perm(numAttributes)[:n]
	r.mu.Unlock()

	sort.Ints(attrs)
	return hypothesis.MustNew(attrs...)
}

// Refinements returns every proper superset of h over [0, numAttributes),
// i.e. all hypotheses whose attribute list contains h's.
func Refinements(h hypothesis.Hypothesis, numAttributes int) []hypothesis.Hypothesis {
	var out []hypothesis.Hypothesis
	base := h.Attributes()
	for _, sub := range Powerset(numAttributes) {
		if len(sub) <= len(base) || !containsAll(sub, base) {
			continue
		}
		out = append(out, hypothesis.MustNew(sub...))
	}
	return out
}

// Powerset returns all non-empty strictly increasing subsets of
// [0, numAttributes).
func Powerset(numAttributes int) [][]int {
	var out [][]int
	for mask := 1; mask < 1<<numAttributes; mask++ {
		var attrs []int
		for i := range numAttributes {
			if mask&(1<<i) != 0 {
				attrs = append(attrs, i)
			}
		}
		out = append(out, attrs)
	}
	return out
}

// ExactTopK scores every non-empty hypothesis over [0, numAttributes) and
// returns the k best, best first, using hypothesis.Better as the order.
func ExactTopK(numAttributes, k int, quality func(hypothesis.Hypothesis) float64) []hypothesis.Hypothesis {
	all := make([]hypothesis.Hypothesis, 0, 1<<numAttributes)
	for _, attrs := range Powerset(numAttributes) {
		h := hypothesis.MustNew(attrs...)
		all = append(all, h.Scored(quality(h)))
	}

	sort.Slice(all, func(i, j int) bool {
		return hypothesis.Better(all[i], all[j])
	})

	if k < len(all) {
		all = all[:k]
	}
	return all
}

func containsAll(set, sub []int) bool {
	i := 0
	for _, v := range set {
		if i < len(sub) && sub[i] == v {
			i++
		}
	}
	return i == len(sub)
}
