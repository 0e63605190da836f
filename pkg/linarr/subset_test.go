package linarr

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linarr-project/linarr/pkg/graph"
)

// The brute-force search is the oracle: on every graph small enough for
// both, the subset search must report the same minimum.
func TestSubsetSolverMatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(13))

	for trial := 0; trial < 60; trial++ {
		n := 4 + r.Intn(5) // 4..8
		p := 0.2 + 0.6*r.Float64()
		g := randomGraph(r, n, p)

		bf := &BruteForce{}
		want, _, err := bf.Minimize(g)
		require.NoError(t, err)

		ss := &SubsetSolver{}
		got, arr, err := ss.Minimize(g)
		require.NoError(t, err)

		require.Equalf(t, want, got, "n=%d edges=%v", n, g.Edges())
		require.Equalf(t, got, Count(g, arr), "witness count mismatch, n=%d edges=%v", n, g.Edges())
	}
}

func TestSubsetSolverKnownMinima(t *testing.T) {
	tests := []struct {
		name string
		g    graph.Graph
		want uint64
	}{
		{"path", graph.Path(12), 0},
		{"cycle", graph.Cycle(12), 0},
		{"star", graph.Star(12), 0},
		{"K5", graph.Complete(5), 5},
		{"K7", graph.Complete(7), 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &SubsetSolver{}
			got, arr, err := s.Minimize(tt.g)
			if err != nil {
				t.Fatalf("Minimize() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Minimize() = %d, want %d", got, tt.want)
			}
			if c := Count(tt.g, arr); c != got {
				t.Errorf("witness arrangement has %d crossings, reported %d", c, got)
			}
		})
	}
}

func TestSubsetSolverMinimizeWithBound(t *testing.T) {
	r := rand.New(rand.NewSource(29))

	for trial := 0; trial < 30; trial++ {
		n := 5 + r.Intn(4)
		g := randomGraph(r, n, 0.5)

		ss := &SubsetSolver{}
		min, _, err := ss.Minimize(g)
		if err != nil {
			t.Fatalf("Minimize() error: %v", err)
		}

		for _, bound := range []uint64{min, min + 1, min + 10} {
			dec, err := ss.MinimizeWithBound(g, bound)
			if err != nil {
				t.Fatalf("MinimizeWithBound(%d) error: %v", bound, err)
			}
			if !dec.LessEq() {
				t.Errorf("MinimizeWithBound(%d) = %v, want LE (minimum %d)", bound, dec, min)
			}
			if dec.Value < min || dec.Value > bound {
				t.Errorf("MinimizeWithBound(%d) witness value %d outside [%d, %d]", bound, dec.Value, min, bound)
			}
		}
		if min > 0 {
			dec, err := ss.MinimizeWithBound(g, min-1)
			if err != nil {
				t.Fatalf("MinimizeWithBound(%d) error: %v", min-1, err)
			}
			if dec.LessEq() {
				t.Errorf("MinimizeWithBound(%d) = %v, want GT (minimum %d)", min-1, dec, min)
			}
		}
	}
}

func TestSubsetSolverTooManyVertices(t *testing.T) {
	g := graph.Path(MaxSubsetVertices + 1)

	s := &SubsetSolver{}
	if _, _, err := s.Minimize(g); !errors.Is(err, ErrTooManyVertices) {
		t.Errorf("Minimize() error = %v, want ErrTooManyVertices", err)
	}
	if _, err := s.MinimizeWithBound(g, 0); !errors.Is(err, ErrTooManyVertices) {
		t.Errorf("MinimizeWithBound() error = %v, want ErrTooManyVertices", err)
	}
}

func TestSubsetSolverAtCapacity(t *testing.T) {
	if testing.Short() {
		t.Skip("full-capacity solve")
	}
	g := graph.Cycle(MaxSubsetVertices)

	s := &SubsetSolver{}
	got, _, err := s.Minimize(g)
	if err != nil {
		t.Fatalf("Minimize() error: %v", err)
	}
	if got != 0 {
		t.Errorf("Minimize(C%d) = %d, want 0", MaxSubsetVertices, got)
	}
}

func TestSubsetSolverSharedWorkspace(t *testing.T) {
	r := rand.New(rand.NewSource(31))
	w := NewWorkspace()

	for trial := 0; trial < 15; trial++ {
		n := 4 + r.Intn(4)
		g := randomGraph(r, n, 0.5)

		fresh := &SubsetSolver{}
		want, _, err := fresh.Minimize(g)
		require.NoError(t, err)

		shared := &SubsetSolver{Workspace: w}
		got, _, err := shared.Minimize(g)
		require.NoError(t, err)
		require.Equalf(t, want, got, "shared workspace diverged, n=%d edges=%v", n, g.Edges())
	}
}

func TestSubsetSolverMemoWidths(t *testing.T) {
	r := rand.New(rand.NewSource(37))

	for _, width := range []int{1, 2, 8} {
		for trial := 0; trial < 10; trial++ {
			n := 5 + r.Intn(3)
			g := randomGraph(r, n, 0.5)

			bf := &BruteForce{}
			want, _, err := bf.Minimize(g)
			require.NoError(t, err)

			ss := &SubsetSolver{MemoWidth: width}
			got, _, err := ss.Minimize(g)
			require.NoError(t, err)
			require.Equalf(t, want, got, "width=%d n=%d edges=%v", width, n, g.Edges())
		}
	}
}

func TestSubsetSolverOnImprove(t *testing.T) {
	r := rand.New(rand.NewSource(41))
	g := randomGraph(r, 8, 0.6)

	var seen []uint64
	s := &SubsetSolver{OnImprove: func(c uint64, order []int) {
		seen = append(seen, c)
	}}
	got, _, err := s.Minimize(g)
	if err != nil {
		t.Fatalf("Minimize() error: %v", err)
	}
	for i := 1; i < len(seen); i++ {
		if seen[i] >= seen[i-1] {
			t.Errorf("improvements not strictly decreasing: %v", seen)
		}
	}
	if len(seen) > 0 && seen[len(seen)-1] != got {
		t.Errorf("last improvement %d, final minimum %d", seen[len(seen)-1], got)
	}
}
