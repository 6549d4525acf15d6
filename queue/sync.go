package queue

import (
	"sync"

	"github.com/hupe1980/midos/hypothesis"
)

// Decision is the outcome of SyncBestK.TryOffer.
type Decision int

const (
	// Pruned means the estimate fell below the threshold.
	Pruned Decision = iota
	// Kept means the branch survives but the hypothesis was not retained.
	Kept
	// Accepted means the branch survives and the hypothesis was retained.
	Accepted
)

// SyncBestK guards a BestK with a mutex so that the prune test and the
// insertion happen as one step.
type SyncBestK struct {
	mu   sync.Mutex
	best *BestK
	mode BoundMode
}

// NewSyncBestK creates a concurrent best-K structure.
func NewSyncBestK(capacity int, mode BoundMode) *SyncBestK {
	return &SyncBestK{best: NewBestK(capacity), mode: mode}
}

// TryOffer prunes h when estimate is below the current threshold and offers
// it to the structure otherwise. The threshold read and the offer are atomic.
func (s *SyncBestK) TryOffer(estimate float64, h hypothesis.Hypothesis) Decision {
	s.mu.Lock()
	defer s.mu.Unlock()

	if estimate < s.best.Threshold(s.mode) {
		return Pruned
	}
	if s.best.Offer(h) {
		return Accepted
	}
	return Kept
}

// Threshold returns the current pruning threshold.
func (s *SyncBestK) Threshold() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best.Threshold(s.mode)
}

// Len returns the number of retained hypotheses.
func (s *SyncBestK) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best.Len()
}

// Sorted returns the retained hypotheses, best first.
func (s *SyncBestK) Sorted() []hypothesis.Hypothesis {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best.Sorted()
}
