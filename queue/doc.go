// Package queue provides the two collections driving the subgroup search:
// BestK, a bounded min-heap retaining the K best hypotheses seen so far, and
// FIFO, the pending work queue.
//
// BestK keeps its worst member at the top of the heap so the pruning threshold
// is available in O(1). Ordering follows hypothesis.Compare, which breaks
// quality ties lexicographically on the attribute list; this makes the
// retained set independent of insertion order.
package queue
