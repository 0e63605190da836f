// Package graph provides the adjacency representations consumed by the
// crossing-number algorithms in pkg/linarr.
//
// Vertices are the integers 0..n-1. Two concrete types are provided:
//
//   - Undirected: symmetric adjacency lists
//   - Directed: separate in- and out-neighbor lists
//
// Both types reject self-loops, since the crossing definition assumes
// none exist. Edge direction never affects crossings; directed graphs
// expose a combined neighbor view (out followed by in) so the counting
// code can treat both variants uniformly.
//
// # Building graphs
//
//	g := graph.MustUndirected(4)
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 2)
//
// Common test fixtures have shorthand constructors:
//
//	p := graph.Path(5)     // 0-1-2-3-4
//	c := graph.Cycle(4)    // 0-1-2-3-0
//	s := graph.Star(6)     // center 0, leaves 1..5
//	k := graph.Complete(4) // all 6 edges
//
// # Serialization
//
// The Document type is the canonical JSON format used by the CLI and the
// HTTP API. It round-trips through ReadGraph/WriteGraph and carries bson
// tags for document-store persistence.
//
// # Edge pairs
//
// EdgePairs iterates all unordered pairs of edges that share no endpoint,
// the candidate set for crossings under any arrangement. The crossing
// evaluator in pkg/linarr consumes it for the pairwise counting algorithm.
package graph
