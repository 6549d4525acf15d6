package midos

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus (see the metrics/prometheus package).
type MetricsCollector interface {
	// RecordLoad is called after a dataset has been read.
	// instances and attributes are 0 if err is non-nil.
	RecordLoad(instances, attributes int, duration time.Duration, err error)

	// RecordSearch is called after each search.
	// k is the number of hypotheses requested, stats summarizes the
	// traversal (only Duration is meaningful when err is non-nil).
	RecordSearch(k int, stats Stats, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSearch(int, Stats, error)            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount        atomic.Int64
	LoadErrors       atomic.Int64
	LoadTotalNanos   atomic.Int64
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64
	Expanded         atomic.Int64
	Generated        atomic.Int64
	Pruned           atomic.Int64
	Accepted         atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(instances, attributes int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(k int, stats Stats, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(stats.Duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
		return
	}
	b.Expanded.Add(stats.Expanded)
	b.Generated.Add(stats.Generated)
	b.Pruned.Add(stats.Pruned)
	b.Accepted.Add(stats.Accepted)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:      b.LoadCount.Load(),
		LoadErrors:     b.LoadErrors.Load(),
		LoadAvgNanos:   avgNanos(b.LoadTotalNanos.Load(), b.LoadCount.Load()),
		SearchCount:    b.SearchCount.Load(),
		SearchErrors:   b.SearchErrors.Load(),
		SearchAvgNanos: avgNanos(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
		Expanded:       b.Expanded.Load(),
		Generated:      b.Generated.Load(),
		Pruned:         b.Pruned.Load(),
		Accepted:       b.Accepted.Load(),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount      int64
	LoadErrors     int64
	LoadAvgNanos   int64
	SearchCount    int64
	SearchErrors   int64
	SearchAvgNanos int64
	Expanded       int64
	Generated      int64
	Pruned         int64
	Accepted       int64
}
