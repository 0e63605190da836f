package graph

// EdgePair is an unordered pair of edges with no shared endpoint. Only such
// pairs can cross under an arrangement.
type EdgePair struct {
	First  Edge
	Second Edge
}

// Independent reports whether two edges share no endpoint.
func Independent(a, b Edge) bool {
	return a.From != b.From && a.From != b.To && a.To != b.From && a.To != b.To
}

// EdgePairs calls fn for every unordered pair of independent edges of g,
// in edge-insertion order. Iteration stops early when fn returns false.
//
// The number of pairs is quadratic in the edge count; for the evaluator's
// pairwise counting algorithm this is the dominant cost.
func EdgePairs(g Graph, fn func(EdgePair) bool) {
	edges := g.Edges()
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if !Independent(edges[i], edges[j]) {
				continue
			}
			if !fn(EdgePair{First: edges[i], Second: edges[j]}) {
				return
			}
		}
	}
}

// NumEdgePairs returns the number of unordered independent edge pairs of g.
// This is a trivial upper bound on the number of crossings under any
// arrangement.
func NumEdgePairs(g Graph) int {
	count := 0
	EdgePairs(g, func(EdgePair) bool {
		count++
		return true
	})
	return count
}
