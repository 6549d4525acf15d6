// Package engine implements the branch-and-bound subgroup search.
//
// The searcher keeps two collections: a FIFO of hypotheses waiting to be
// refined and a bounded best-K structure. Each refinement step scores every
// child, compares its optimistic estimate against the worst retained quality,
// cuts the whole subtree when the estimate falls short, and otherwise offers
// the child to the best-K structure and queues it for refinement.
//
// With more than one worker the queue is processed in waves: all pending
// hypotheses are refined concurrently and the prune test plus the best-K
// update run as one critical section.
package engine
