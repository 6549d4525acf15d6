package engine

import (
	"sync/atomic"
	"time"
)

// Stats summarizes a search run.
type Stats struct {
	// Expanded is the number of hypotheses taken from the queue and refined.
	Expanded int64
	// Generated is the number of children produced and scored.
	Generated int64
	// Pruned is the number of children cut by the optimistic estimate.
	Pruned int64
	// Accepted is the number of times a child entered the best-K structure.
	Accepted int64
	// MaxQueue is the largest observed queue length.
	MaxQueue int64
	// Duration is the wall time of the search.
	Duration time.Duration
}

type counters struct {
	expanded  atomic.Int64
	generated atomic.Int64
	pruned    atomic.Int64
	accepted  atomic.Int64
	maxQueue  atomic.Int64
}

func (c *counters) observeQueue(n int) {
	v := int64(n)
	for {
		cur := c.maxQueue.Load()
		if v <= cur || c.maxQueue.CompareAndSwap(cur, v) {
			return
		}
	}
}

func (c *counters) snapshot() Stats {
	return Stats{
		Expanded:  c.expanded.Load(),
		Generated: c.generated.Load(),
		Pruned:    c.pruned.Load(),
		Accepted:  c.accepted.Load(),
		MaxQueue:  c.maxQueue.Load(),
	}
}
