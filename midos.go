package midos

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/midos/blobstore"
	"github.com/hupe1980/midos/dataset"
	"github.com/hupe1980/midos/hypothesis"
	"github.com/hupe1980/midos/internal/engine"
	"github.com/hupe1980/midos/quality"
)

// Hypothesis is a scored conjunction of attribute indices.
type Hypothesis = hypothesis.Hypothesis

// Stats summarizes a search run.
type Stats = engine.Stats

// Miner discovers the best K hypotheses of one dataset.
// A Miner is safe for concurrent use; each Run is independent.
type Miner struct {
	ds      *dataset.Dataset
	quality *quality.Engine
	opts    options
}

// New creates a Miner for ds.
func New(ds *dataset.Dataset, optFns ...Option) (*Miner, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}

	o := applyOptions(optFns)
	if o.k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidK, o.k)
	}
	if o.workers < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkers, o.workers)
	}

	q, err := quality.NewEngine(ds, o.quality)
	if err != nil {
		return nil, translateError(err, &o)
	}

	return &Miner{ds: ds, quality: q, opts: o}, nil
}

// LoadReader parses a dataset from r (plain, gzip, zstd or lz4) and creates
// a Miner for it. K and the quality function of the header are used as
// defaults; optFns override them.
func LoadReader(ctx context.Context, r io.Reader, optFns ...Option) (*Miner, error) {
	return load(ctx, "reader", func() (io.Reader, func() error, error) {
		return r, func() error { return nil }, nil
	}, optFns)
}

// Load reads the dataset name from store and creates a Miner for it.
// See LoadReader for the header handling.
func Load(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (*Miner, error) {
	return load(ctx, name, func() (io.Reader, func() error, error) {
		b, err := store.Open(ctx, name)
		if err != nil {
			return nil, nil, err
		}
		return blobstore.NewReader(b), b.Close, nil
	}, optFns)
}

func load(ctx context.Context, source string, open func() (io.Reader, func() error, error), optFns []Option) (*Miner, error) {
	o := applyOptions(optFns)
	start := time.Now()

	ds, hdr, err := func() (*dataset.Dataset, dataset.Header, error) {
		r, closeFn, err := open()
		if err != nil {
			return nil, dataset.Header{}, err
		}
		defer func() { _ = closeFn() }()
		return dataset.Open(r)
	}()

	if err != nil {
		o.metricsCollector.RecordLoad(0, 0, time.Since(start), err)
		o.logger.LogLoad(ctx, source, 0, 0, err)
		return nil, fmt.Errorf("load %s: %w", source, err)
	}
	o.metricsCollector.RecordLoad(ds.NumInstances(), ds.NumAttributes(), time.Since(start), nil)
	o.logger.LogLoad(ctx, source, ds.NumInstances(), ds.NumAttributes(), nil)

	return New(ds, append([]Option{WithHeader(hdr)}, optFns...)...)
}

// Dataset returns the mined dataset.
func (m *Miner) Dataset() *dataset.Dataset { return m.ds }

// Engine returns the quality engine. It can score arbitrary hypotheses.
func (m *Miner) Engine() *quality.Engine { return m.quality }

// K returns the number of hypotheses a Run retains.
func (m *Miner) K() int { return m.opts.k }

// Run searches the hypothesis lattice and returns the best K hypotheses.
// It returns ctx.Err() (wrapped) if ctx is canceled before the search ends.
func (m *Miner) Run(ctx context.Context) (*Result, error) {
	logger := m.opts.logger.WithK(m.opts.k).WithFunction(m.opts.quality.Function.String())

	s, err := engine.New(m.quality,
		engine.WithK(m.opts.k),
		engine.WithWorkers(m.opts.workers),
		engine.WithBoundMode(m.opts.boundMode),
		engine.WithLogger(logger.Logger),
	)
	if err != nil {
		return nil, translateError(err, &m.opts)
	}

	start := time.Now()
	res, err := s.Search(ctx)
	if err != nil {
		stats := Stats{Duration: time.Since(start)}
		m.opts.metricsCollector.RecordSearch(m.opts.k, stats, err)
		logger.LogSearch(ctx, m.opts.k, stats, 0, err)
		return nil, err
	}

	m.opts.metricsCollector.RecordSearch(m.opts.k, res.Stats, nil)
	logger.LogSearch(ctx, m.opts.k, res.Stats, len(res.Hypotheses), nil)

	return &Result{
		Hypotheses: res.Hypotheses,
		Stats:      res.Stats,
		engine:     m.quality,
	}, nil
}

// Discover is a convenience wrapper for New followed by Run.
func Discover(ctx context.Context, ds *dataset.Dataset, optFns ...Option) (*Result, error) {
	m, err := New(ds, optFns...)
	if err != nil {
		return nil, err
	}
	return m.Run(ctx)
}

// Result holds the hypotheses found by a Run, best first.
type Result struct {
	Hypotheses []Hypothesis
	Stats      Stats

	engine *quality.Engine
}

// Engine returns the quality engine that scored the hypotheses.
func (r *Result) Engine() *quality.Engine { return r.engine }

// Significant returns the hypotheses that pass the z-test, in rank order.
func (r *Result) Significant() []Hypothesis {
	return r.engine.FilterSignificant(r.Hypotheses)
}
