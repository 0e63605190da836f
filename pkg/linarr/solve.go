package linarr

import (
	"context"
	"time"

	"github.com/linarr-project/linarr/pkg/graph"
	"github.com/linarr-project/linarr/pkg/observability"
)

// BruteForceCutoff is the vertex count up to which the package-level
// dispatchers run the exhaustive search. Below it, factorial enumeration
// with bounded evaluation beats the subset search's table management; past
// it, the factorial blows up first.
const BruteForceCutoff = 10

// Solver is the common surface of the exact minimization algorithms.
type Solver interface {
	// Minimize returns the minimum crossing count over all arrangements of
	// g and an arrangement attaining it.
	Minimize(g graph.Graph) (uint64, *Arrangement, error)

	// MinimizeWithBound reports whether some arrangement of g has at most
	// bound crossings, short-circuiting as soon as the answer is known.
	MinimizeWithBound(g graph.Graph, bound uint64) (Decision, error)
}

var (
	_ Solver = (*BruteForce)(nil)
	_ Solver = (*SubsetSolver)(nil)
)

// SolverFor returns the solver the package-level dispatchers pick for g:
// BruteForce up to BruteForceCutoff vertices, SubsetSolver beyond.
func SolverFor(g graph.Graph) Solver {
	if g.NumVertices() <= BruteForceCutoff {
		return &BruteForce{}
	}
	return &SubsetSolver{}
}

func algorithmName(s Solver) string {
	if _, ok := s.(*BruteForce); ok {
		return "brute-force"
	}
	return "subset"
}

// Minimize returns the minimum crossing count of g over all arrangements
// and an arrangement attaining it, dispatching on vertex count. Graphs
// beyond MaxSubsetVertices fail with ErrTooManyVertices.
func Minimize(g graph.Graph) (uint64, *Arrangement, error) {
	s := SolverFor(g)
	name := algorithmName(s)
	ctx := context.Background()
	start := time.Now()
	observability.Solver().OnSolveStart(ctx, name, g.NumVertices(), g.NumEdges())
	c, arr, err := s.Minimize(g)
	observability.Solver().OnSolveComplete(ctx, name, c, time.Since(start), err)
	return c, arr, err
}

// MinimizeWithBound reports whether some arrangement of g has at most
// bound crossings, dispatching on vertex count. On VerdictLE the
// decision's Value is the count of a witness arrangement, not necessarily
// the minimum.
func MinimizeWithBound(g graph.Graph, bound uint64) (Decision, error) {
	s := SolverFor(g)
	name := algorithmName(s)
	ctx := context.Background()
	start := time.Now()
	observability.Solver().OnSolveStart(ctx, name, g.NumVertices(), g.NumEdges())
	dec, err := s.MinimizeWithBound(g, bound)
	observability.Solver().OnSolveComplete(ctx, name, dec.Value, time.Since(start), err)
	return dec, err
}
