// Package midos provides exact subgroup discovery over binary data.
//
// Given N instances described by M binary attributes and a binary class
// label, midos finds the K conjunctions of attributes ("hypotheses") whose
// covered instances deviate most from the population's class distribution
// under a chosen quality function. The search is a branch-and-bound walk over
// the attribute lattice: every subset is reachable exactly once, and a branch
// is cut as soon as its optimistic estimate cannot beat the worst of the K
// best hypotheses found so far.
//
// # Quick Start
//
//	f, _ := os.Open("spect.txt")
//	ds, hdr, _ := dataset.Open(f)
//
//	m, _ := midos.New(ds, midos.WithHeader(hdr))
//	res, _ := m.Run(ctx)
//	for _, h := range res.Hypotheses {
//	    fmt.Println(h)   // Hypo: attributes: [0, 3] quality = 0.21
//	}
//
// # Quality Functions
//
//	quality.SqrtDeviation     sqrt(g) * |p - p0|
//	quality.OddsSquared       g / (1 - g) * (p - p0)^2
//	quality.WeightedAccuracy  g * (2p - 1) + (1 - p0)
//
// where g is the relative subgroup size, p the target rate inside the
// subgroup and p0 the target rate of the population.
//
// # Parallel Search
//
// WithWorkers(n) refines the pending hypotheses of each lattice level
// concurrently. Quality ties are broken by the attribute list, so sequential
// and parallel runs return the same hypotheses.
//
// # Significance
//
// Result.Significant applies a z-test against the population rate as a
// post-filter. It never influences pruning.
package midos
