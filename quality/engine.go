package quality

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/midos/dataset"
	"github.com/hupe1980/midos/hypothesis"
)

// Stats are the counts a quality value is derived from.
type Stats struct {
	// Coverage is the number of instances satisfying the hypothesis.
	Coverage int
	// Labeled is the number of covered instances whose class is the target.
	Labeled int
}

// Cover is the set of rows satisfying a hypothesis together with its counts.
// A Cover is immutable.
type Cover struct {
	rows  *roaring.Bitmap
	stats Stats
}

// Stats returns the coverage counts.
func (c Cover) Stats() Stats { return c.stats }

// Engine evaluates hypotheses against a dataset.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	cfg           Config
	n             int
	numAttributes int

	// attrs[j] holds the rows where attribute j equals the target label.
	attrs   []*roaring.Bitmap
	labeled *roaring.Bitmap
	all     *roaring.Bitmap
	p0      float64
}

// NewEngine indexes ds for the given configuration.
func NewEngine(ds *dataset.Dataset, cfg Config) (*Engine, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	n := ds.NumInstances()
	m := ds.NumAttributes()

	attrs := make([]*roaring.Bitmap, m)
	for j := range m {
		attrs[j] = ds.Matching(j, cfg.TargetLabel)
	}

	all := roaring.New()
	all.AddRange(0, uint64(n))

	e := &Engine{
		cfg:           cfg,
		n:             n,
		numAttributes: m,
		attrs:         attrs,
		labeled:       ds.Matching(m, cfg.TargetLabel),
		all:           all,
	}
	if n > 0 {
		e.p0 = float64(ds.Count(cfg.TargetLabel)) / float64(n)
	}
	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// NumInstances returns the population size N.
func (e *Engine) NumInstances() int { return e.n }

// NumAttributes returns the number of attributes.
func (e *Engine) NumAttributes() int { return e.numAttributes }

// P0 returns the target rate of the whole population.
func (e *Engine) P0() float64 { return e.p0 }

// RootCover returns the cover of the empty hypothesis: every row.
func (e *Engine) RootCover() Cover {
	return Cover{
		rows:  e.all,
		stats: Stats{Coverage: e.n, Labeled: int(e.labeled.GetCardinality())},
	}
}

// Extend returns the cover of the hypothesis obtained by adding attr to the
// hypothesis covered by parent. Attributes outside [0, NumAttributes) are
// never satisfied.
func (e *Engine) Extend(parent Cover, attr int) Cover {
	if attr < 0 || attr >= e.numAttributes {
		return Cover{rows: roaring.New()}
	}
	rows := roaring.And(parent.rows, e.attrs[attr])
	return Cover{
		rows: rows,
		stats: Stats{
			Coverage: int(rows.GetCardinality()),
			Labeled:  int(rows.AndCardinality(e.labeled)),
		},
	}
}

// CoverOf computes the cover of h from scratch.
func (e *Engine) CoverOf(h hypothesis.Hypothesis) Cover {
	if h.IsRoot() {
		return e.RootCover()
	}

	bms := make([]*roaring.Bitmap, h.Len())
	for i := range h.Len() {
		a := h.At(i)
		if a >= e.numAttributes {
			return Cover{rows: roaring.New()}
		}
		bms[i] = e.attrs[a]
	}

	var rows *roaring.Bitmap
	if len(bms) == 1 {
		rows = bms[0].Clone()
	} else {
		rows = roaring.FastAnd(bms...)
	}
	return Cover{
		rows: rows,
		stats: Stats{
			Coverage: int(rows.GetCardinality()),
			Labeled:  int(rows.AndCardinality(e.labeled)),
		},
	}
}

// Stats returns the coverage counts of h.
func (e *Engine) Stats(h hypothesis.Hypothesis) Stats {
	return e.CoverOf(h).stats
}

// Coverage returns the number of instances satisfying h.
func (e *Engine) Coverage(h hypothesis.Hypothesis) int {
	return e.Stats(h).Coverage
}

// LabeledCoverage returns the number of instances satisfying h whose class
// equals the target label.
func (e *Engine) LabeledCoverage(h hypothesis.Hypothesis) int {
	return e.Stats(h).Labeled
}

// Satisfies reports whether row satisfies h: every attribute of h holds the
// target label value. This is the row-scan form of coverage.
func (e *Engine) Satisfies(h hypothesis.Hypothesis, row []uint8) bool {
	for i := range h.Len() {
		a := h.At(i)
		if a >= len(row) || row[a] != e.cfg.TargetLabel {
			return false
		}
	}
	return true
}

// G returns the relative size of the subgroup.
func (e *Engine) G(s Stats) float64 {
	if e.n == 0 {
		return 0
	}
	return float64(s.Coverage) / float64(e.n)
}

// P returns the target rate inside the subgroup, 0 for an empty subgroup.
func (e *Engine) P(s Stats) float64 {
	if s.Coverage == 0 {
		return 0
	}
	return float64(s.Labeled) / float64(s.Coverage)
}

// maxDeviation is the largest |p - p0| any subgroup can reach.
func (e *Engine) maxDeviation() float64 {
	return math.Max(e.p0, 1-e.p0)
}
