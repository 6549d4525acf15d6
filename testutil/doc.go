// Package testutil provides testing utilities for midos.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random binary datasets and random
// hypotheses, and an exhaustive reference search used as ground truth.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	ds := rng.Dataset(200, 8, 0.4)   // 200 rows, 8 attributes, P(value=1)=0.4
//	h := rng.Hypothesis(8, 3)        // up to 3 attributes
//
// # Exact Search (Ground Truth)
//
//	best := testutil.ExactTopK(8, k, engine.Quality)
package testutil
