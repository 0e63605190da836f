package graph

// Path returns the path graph 0-1-...-(n-1).
func Path(n int) *Undirected {
	g := MustUndirected(n)
	for u := 0; u+1 < n; u++ {
		_ = g.AddEdge(u, u+1)
	}
	return g
}

// Cycle returns the cycle graph 0-1-...-(n-1)-0. For n < 3 it degenerates
// to a path.
func Cycle(n int) *Undirected {
	g := Path(n)
	if n >= 3 {
		_ = g.AddEdge(n-1, 0)
	}
	return g
}

// Star returns the star graph with center 0 and leaves 1..n-1.
func Star(n int) *Undirected {
	g := MustUndirected(n)
	for v := 1; v < n; v++ {
		_ = g.AddEdge(0, v)
	}
	return g
}

// Complete returns the complete graph on n vertices.
func Complete(n int) *Undirected {
	g := MustUndirected(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			_ = g.AddEdge(u, v)
		}
	}
	return g
}
