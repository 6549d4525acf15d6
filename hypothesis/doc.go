// Package hypothesis defines the conjunctive attribute subsets explored by the
// subgroup search and the refinement operator that enumerates them.
//
// A Hypothesis is an immutable, strictly increasing list of attribute indices.
// It is built in two phases: first the attribute list, then a single call to
// Scored attaches the quality. After that the value is frozen.
//
// The Refiner turns the attribute powerset into a prefix tree: a hypothesis is
// only ever extended with attributes larger than its last one, so every subset
// is generated exactly once.
package hypothesis
