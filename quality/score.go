package quality

import (
	"math"

	"github.com/hupe1980/midos/hypothesis"
)

// QualityOf returns the configured interestingness of a subgroup with the
// given counts.
func (e *Engine) QualityOf(s Stats) float64 {
	g := e.G(s)
	p := e.P(s)

	switch e.cfg.Function {
	case SqrtDeviation:
		return math.Sqrt(g) * math.Abs(p-e.p0)
	case OddsSquared:
		if s.Coverage >= e.n {
			return 0
		}
		// g/(1-g) in counts, the same expression EstimateOf uses.
		d := p - e.p0
		return float64(s.Coverage) / float64(e.n-s.Coverage) * d * d
	case WeightedAccuracy:
		return g*(2*p-1) + (1 - e.p0)
	default:
		return 0
	}
}

// Quality returns the interestingness of h.
func (e *Engine) Quality(h hypothesis.Hypothesis) float64 {
	return e.QualityOf(e.Stats(h))
}

// Score returns h frozen with its quality attached.
func (e *Engine) Score(h hypothesis.Hypothesis) hypothesis.Hypothesis {
	return h.Scored(e.Quality(h))
}

// EstimateOf returns an upper bound on the quality of a subgroup with the
// given counts and of every subgroup nested inside it.
//
// For SqrtDeviation (and unsupported functions) the bound is
// sqrt(g) * max(p0, 1-p0). That expression does not dominate OddsSquared or
// WeightedAccuracy, so those get their own bounds:
//
//	OddsSquared:      c/(N-c) * max(p0, 1-p0)^2, c = min(coverage, N-1)
//	WeightedAccuracy: labeled/N + (1 - p0)
func (e *Engine) EstimateOf(s Stats) float64 {
	dev := e.maxDeviation()

	switch e.cfg.Function {
	case OddsSquared:
		c := min(s.Coverage, e.n-1)
		if c <= 0 {
			return 0
		}
		return float64(c) / float64(e.n-c) * dev * dev
	case WeightedAccuracy:
		if e.n == 0 {
			return 1 - e.p0
		}
		// g*(2p-1) = (labeled - unlabeled)/N, which never exceeds labeled/N,
		// and labeled only shrinks under refinement.
		return float64(s.Labeled)/float64(e.n) + (1 - e.p0)
	default:
		return math.Sqrt(e.G(s)) * dev
	}
}

// OptimisticEstimate returns an upper bound on the quality of h and of every
// refinement of h.
func (e *Engine) OptimisticEstimate(h hypothesis.Hypothesis) float64 {
	return e.EstimateOf(e.Stats(h))
}
