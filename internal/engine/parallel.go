package engine

import (
	"context"

	"github.com/hupe1980/midos/hypothesis"
	"github.com/hupe1980/midos/queue"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// searchParallel refines the queue in waves. Every hypothesis of a wave is
// refined by its own goroutine; children surviving the prune test form the
// next wave, kept in the order of their parents.
func (s *Searcher) searchParallel(ctx context.Context, c *counters) ([]hypothesis.Hypothesis, error) {
	best := queue.NewSyncBestK(s.k, s.mode)
	pending := queue.NewFIFO[node](s.refiner.NumAttributes() + 1)
	pending.Push(s.root())

	progress := rate.Sometimes{Interval: s.progress}

	for pending.Len() > 0 {
		wave := pending.Drain()
		next := make([][]node, len(wave))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.workers)

		for i, parent := range wave {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				c.expanded.Add(1)

				var out []node
				s.refiner.Each(parent.h, func(h hypothesis.Hypothesis, attr int) bool {
					n, estimate := s.child(parent, h, attr)
					c.generated.Add(1)

					switch best.TryOffer(estimate, n.h) {
					case queue.Pruned:
						c.pruned.Add(1)
						return true
					case queue.Accepted:
						c.accepted.Add(1)
					}
					out = append(out, n)
					return true
				})
				next[i] = out
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for _, children := range next {
			for _, n := range children {
				pending.Push(n)
			}
		}

		c.observeQueue(pending.Len())
		progress.Do(func() {
			s.logProgress(ctx, c, pending.Len(), best.Threshold())
		})
	}

	return best.Sorted(), nil
}
