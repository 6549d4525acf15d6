package quality

import (
	"math"

	"github.com/hupe1980/midos/hypothesis"
)

// SignificanceOf returns the z-score (p - p0) / sqrt(p0(1-p0)/n) of a
// subgroup with n = coverage.
func (e *Engine) SignificanceOf(s Stats) (float64, error) {
	if s.Coverage == 0 || e.p0 <= 0 || e.p0 >= 1 {
		return 0, ErrUndefinedSignificance
	}
	p := e.P(s)
	return (p - e.p0) / math.Sqrt(e.p0*(1-e.p0)/float64(s.Coverage)), nil
}

// Significance returns the z-score of h.
func (e *Engine) Significance(h hypothesis.Hypothesis) (float64, error) {
	return e.SignificanceOf(e.Stats(h))
}

// IsSignificant reports whether the target rate of h deviates from the
// population rate beyond the configured z threshold. Hypotheses with an
// undefined z-score are not significant.
func (e *Engine) IsSignificant(h hypothesis.Hypothesis) bool {
	z, err := e.Significance(h)
	if err != nil {
		return false
	}
	return math.Abs(z) >= e.cfg.SignificanceZ
}

// FilterSignificant returns the significant hypotheses of hs in their
// original order. It is a post-processing step and never affects pruning.
func (e *Engine) FilterSignificant(hs []hypothesis.Hypothesis) []hypothesis.Hypothesis {
	out := make([]hypothesis.Hypothesis, 0, len(hs))
	for _, h := range hs {
		if e.IsSignificant(h) {
			out = append(out, h)
		}
	}
	return out
}
