package midos

import (
	"log/slog"

	"github.com/hupe1980/midos/dataset"
	"github.com/hupe1980/midos/quality"
	"github.com/hupe1980/midos/queue"
)

// DefaultK is the number of hypotheses returned when no K is configured.
const DefaultK = 10

type options struct {
	k                int
	workers          int
	quality          quality.Config
	boundMode        queue.BoundMode
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Miner.
type Option func(*options)

// WithK sets the number of hypotheses to return.
// 0 is allowed: the lattice is still enumerated but nothing is retained.
func WithK(k int) Option {
	return func(o *options) {
		o.k = k
	}
}

// WithFunction selects the quality function.
// Unsupported values score every hypothesis as 0.
func WithFunction(f quality.Function) Option {
	return func(o *options) {
		o.quality.Function = f
	}
}

// WithTargetLabel sets the value (0 or 1) attributes must hold and the class
// counted as positive. Default: 1.
func WithTargetLabel(label uint8) Option {
	return func(o *options) {
		o.quality.TargetLabel = label
	}
}

// WithSignificanceZ sets the z threshold used by Result.Significant.
// Default: 2.58 (significance level 0.01).
func WithSignificanceZ(z float64) Option {
	return func(o *options) {
		o.quality.SignificanceZ = z
	}
}

// WithHeader takes K and the quality function from a dataset header.
// Options applied after it override those values.
func WithHeader(h dataset.Header) Option {
	return func(o *options) {
		o.k = h.K
		o.quality.Function = quality.Function(h.Function)
	}
}

// WithWorkers sets the number of goroutines refining hypotheses.
// 0 or 1 runs the sequential search.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithEagerBound makes the worst retained quality act as pruning threshold as
// soon as one hypothesis is retained, instead of once K are retained. This is
// the classic MIDOS bound. It prunes more but may miss hypotheses that belong
// to the best K, so results are no longer guaranteed to equal an exhaustive
// search. The best hypothesis is always found.
func WithEagerBound() Option {
	return func(o *options) {
		o.boundMode = queue.BoundWhenNonEmpty
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &midos.BasicMetricsCollector{}
//	m, _ := midos.New(ds, midos.WithMetricsCollector(metrics))
//	// ... run ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, pruned: %d\n", stats.SearchCount, stats.Pruned)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := midos.NewJSONLogger(slog.LevelInfo)
//	m, _ := midos.New(ds, midos.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		k:                DefaultK,
		quality:          quality.DefaultConfig(),
		boundMode:        queue.BoundWhenFull,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
