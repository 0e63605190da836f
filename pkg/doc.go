// Package pkg provides the core libraries for linarr crossing minimization.
//
// # Overview
//
// linarr places the vertices of a graph along a line and reasons about the
// edge crossings that layout produces: exact counts for a fixed arrangement,
// exact minima over all arrangements, and the bounded decision variant. The
// pkg directory is organized into five areas:
//
//  1. [linarr] - Domain logic (arrangements, evaluators, exact solvers)
//  2. [graph] - Graph structures and their serialization format
//  3. [render] - Arc diagram output (DOT, SVG)
//  4. [cache] - Result cache backends (file, memory, Redis, MongoDB)
//  5. [observability] - Hooks for metrics and tracing backends
//
// # Architecture
//
// The typical data flow:
//
//	Graph document (JSON)
//	         ↓
//	    [graph] package (validate, build adjacency)
//	         ↓
//	    [linarr] package (count / minimize / decide)
//	         ↓
//	    [render] package (arc diagram)
//	         ↓
//	    DOT/SVG output
//
// # Quick Start
//
// Minimize crossings and draw the result:
//
//	import (
//	    "github.com/linarr-project/linarr/pkg/graph"
//	    "github.com/linarr-project/linarr/pkg/linarr"
//	    "github.com/linarr-project/linarr/pkg/render"
//	)
//
//	// 1. Build a graph
//	g := graph.Cycle(6)
//
//	// 2. Solve
//	crossings, arr, _ := linarr.Minimize(g)
//
//	// 3. Render the optimal arrangement
//	dot := render.ToDOT(g, arr, render.Options{ShowCrossings: true})
//	svg, _ := render.SVG(dot)
//
// # Main Packages
//
// [linarr] - Arrangements, crossing evaluators, and the exact solvers. The
// evaluators count crossings of a fixed arrangement; [linarr.BruteForce]
// enumerates arrangements and [linarr.SubsetSolver] runs a prefix search
// with memoization, both with bounded decision variants.
//
// [graph] - Undirected and directed graphs over vertices 0..n-1, standard
// families (path, cycle, star, complete), edge pair enumeration, and the
// JSON document format shared by the CLI, the HTTP API, and the cache.
//
// [render] - Arc diagrams: vertices on a line, edges as arcs, rendered to
// DOT and (via Graphviz) SVG.
//
// [cache] - Result caching keyed by graph hash with file, memory, Redis,
// and MongoDB backends behind one interface.
//
// [errors] - Coded errors with user-facing messages, plus input validators.
//
// [observability] - Hook interfaces for solver, cache, and HTTP events with
// no-op defaults; backends are registered by main, never imported by
// libraries.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/linarr/...   # Specific package
//	go test -run Example       # Examples only
//
// [linarr]: https://pkg.go.dev/github.com/linarr-project/linarr/pkg/linarr
// [graph]: https://pkg.go.dev/github.com/linarr-project/linarr/pkg/graph
// [render]: https://pkg.go.dev/github.com/linarr-project/linarr/pkg/render
// [cache]: https://pkg.go.dev/github.com/linarr-project/linarr/pkg/cache
// [errors]: https://pkg.go.dev/github.com/linarr-project/linarr/pkg/errors
// [observability]: https://pkg.go.dev/github.com/linarr-project/linarr/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/linarr-project/linarr/pkg/buildinfo
// [linarr.BruteForce]: https://pkg.go.dev/github.com/linarr-project/linarr/pkg/linarr#BruteForce
// [linarr.SubsetSolver]: https://pkg.go.dev/github.com/linarr-project/linarr/pkg/linarr#SubsetSolver
package pkg
