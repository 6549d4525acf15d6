// Package quality scores hypotheses against a dataset.
//
// For a hypothesis h over N instances let
//
//	g  = coverage(h) / N          relative subgroup size
//	p  = labeled(h) / coverage(h) target rate inside the subgroup (0 if empty)
//	p0 = labeled(root) / N        target rate of the population
//
// The interestingness functions are
//
//	1  sqrt(g) * |p - p0|
//	2  g / (1 - g) * (p - p0)^2   (0 when g == 1)
//	3  g * (2p - 1) + (1 - p0)
//
// Any other function scores every hypothesis as 0.
//
// OptimisticEstimate bounds the quality of h and every refinement of h. The
// search prunes a branch when its estimate falls below the worst retained
// result, so the bound must never underestimate a descendant.
//
// Coverage is computed on roaring bitmaps: the covered rows of a child are the
// parent's covered rows intersected with the rows where the new attribute holds
// the target value. Cover carries that row set through the search.
package quality
