// Package linarr computes edge crossings of graphs laid out along a line.
//
// A linear arrangement places the vertices of a graph at the integer
// positions 0..n-1. Two edges cross when their position intervals overlap
// without nesting and without sharing an endpoint. The package answers two
// questions about a graph:
//
//  1. the exact crossing count under a given, fixed arrangement, and
//  2. the exact minimum crossing count over all n! arrangements.
//
// The second problem is NP-hard in general, so the exact solvers are
// exponential: an exhaustive permutation search for very small graphs
// (BruteForce) and a memoized subset search with branch-and-bound pruning
// for graphs up to MaxSubsetVertices vertices (SubsetSolver). Minimize
// dispatches between them on vertex count.
//
// # Fixed arrangements
//
//	g := graph.Cycle(4)
//	arr := linarr.Identity(4)
//	c := linarr.Count(g, arr) // 0
//
// Three evaluation algorithms are available (CountBruteForce, CountDynProg,
// CountPairs); they always agree and differ only in cost profile. Each has
// a decision variant that stops as soon as the running count exceeds a
// supplied bound, which the solvers use for pruning.
//
// # Minimum crossings
//
//	c, best, err := linarr.Minimize(g)              // exact minimum + witness
//	dec, err := linarr.MinimizeWithBound(g, 2)      // threshold question only
//	if dec.Verdict == linarr.VerdictLE { ... }
//
// Decision outcomes are a tagged Decision value, never a magic number: the
// bound variant reports either VerdictLE with the exact minimum, or
// VerdictGT when every arrangement exceeds the bound.
//
// All computations are synchronous and pure; workspaces give exclusive
// scratch storage to one invocation at a time and can be reused across
// sequential calls to avoid reallocation in batch workloads.
package linarr
