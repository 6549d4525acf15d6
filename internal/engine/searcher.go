package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/hupe1980/midos/hypothesis"
	"github.com/hupe1980/midos/quality"
	"github.com/hupe1980/midos/queue"
	"golang.org/x/time/rate"
)

// Result is the outcome of a search.
type Result struct {
	// Hypotheses are the retained hypotheses, best first.
	Hypotheses []hypothesis.Hypothesis
	Stats      Stats
}

// node is a queued hypothesis together with the rows it covers, so children
// are scored by one bitmap intersection.
type node struct {
	h     hypothesis.Hypothesis
	cover quality.Cover
}

// Searcher runs the branch-and-bound search over one quality engine.
type Searcher struct {
	q       *quality.Engine
	refiner hypothesis.Refiner

	k        int
	workers  int
	mode     queue.BoundMode
	logger   *slog.Logger
	progress time.Duration
}

// Option defines a configuration option for the Searcher.
type Option func(*Searcher)

// WithK sets the number of hypotheses to retain.
func WithK(k int) Option {
	return func(s *Searcher) {
		s.k = k
	}
}

// WithWorkers sets the number of goroutines refining hypotheses.
// 0 and 1 run the sequential loop.
func WithWorkers(n int) Option {
	return func(s *Searcher) {
		s.workers = n
	}
}

// WithBoundMode selects when the pruning threshold becomes active.
func WithBoundMode(mode queue.BoundMode) Option {
	return func(s *Searcher) {
		s.mode = mode
	}
}

// WithLogger sets the logger for progress and summary messages.
func WithLogger(l *slog.Logger) Option {
	return func(s *Searcher) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithProgressInterval sets the minimum time between progress log lines.
func WithProgressInterval(d time.Duration) Option {
	return func(s *Searcher) {
		s.progress = d
	}
}

// New creates a Searcher.
func New(q *quality.Engine, opts ...Option) (*Searcher, error) {
	s := &Searcher{
		q:        q,
		refiner:  hypothesis.NewRefiner(q.NumAttributes()),
		k:        1,
		mode:     queue.BoundWhenFull,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		progress: time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidK, s.k)
	}
	if s.workers < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkers, s.workers)
	}
	return s, nil
}

// Search runs the search to exhaustion or until ctx is canceled.
func (s *Searcher) Search(ctx context.Context) (*Result, error) {
	start := time.Now()
	var c counters

	var (
		best []hypothesis.Hypothesis
		err  error
	)
	if s.workers > 1 {
		best, err = s.searchParallel(ctx, &c)
	} else {
		best, err = s.searchSequential(ctx, &c)
	}

	stats := c.snapshot()
	stats.Duration = time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("search aborted after %d expansions: %w", stats.Expanded, err)
	}

	s.logger.DebugContext(ctx, "search finished",
		"k", s.k,
		"results", len(best),
		"expanded", stats.Expanded,
		"generated", stats.Generated,
		"pruned", stats.Pruned,
		"duration", stats.Duration,
	)
	return &Result{Hypotheses: best, Stats: stats}, nil
}

func (s *Searcher) root() node {
	cover := s.q.RootCover()
	return node{
		h:     hypothesis.Root().Scored(s.q.QualityOf(cover.Stats())),
		cover: cover,
	}
}

// child scores the refinement of parent by attr.
func (s *Searcher) child(parent node, h hypothesis.Hypothesis, attr int) (node, float64) {
	cover := s.q.Extend(parent.cover, attr)
	st := cover.Stats()
	return node{h: h.Scored(s.q.QualityOf(st)), cover: cover}, s.q.EstimateOf(st)
}

func (s *Searcher) searchSequential(ctx context.Context, c *counters) ([]hypothesis.Hypothesis, error) {
	best := queue.NewBestK(s.k)
	pending := queue.NewFIFO[node](s.refiner.NumAttributes() + 1)
	pending.Push(s.root())

	progress := rate.Sometimes{Interval: s.progress}

	for pending.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// The threshold is fixed for all children of one hypothesis.
		threshold := best.Threshold(s.mode)
		parent, _ := pending.Pop()
		c.expanded.Add(1)

		s.refiner.Each(parent.h, func(h hypothesis.Hypothesis, attr int) bool {
			n, estimate := s.child(parent, h, attr)
			c.generated.Add(1)

			if estimate < threshold {
				c.pruned.Add(1)
				return true
			}
			if best.Offer(n.h) {
				c.accepted.Add(1)
			}
			pending.Push(n)
			return true
		})

		c.observeQueue(pending.Len())
		progress.Do(func() {
			s.logProgress(ctx, c, pending.Len(), threshold)
		})
	}

	return best.Sorted(), nil
}

func (s *Searcher) logProgress(ctx context.Context, c *counters, queued int, threshold float64) {
	st := c.snapshot()
	s.logger.DebugContext(ctx, "search progress",
		"expanded", st.Expanded,
		"generated", st.Generated,
		"pruned", st.Pruned,
		"queued", queued,
		"threshold", threshold,
	)
}
