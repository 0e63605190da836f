package linarr

import (
	"math/rand"
	"testing"

	"github.com/linarr-project/linarr/pkg/graph"
)

func TestBruteForceKnownMinima(t *testing.T) {
	tests := []struct {
		name string
		g    graph.Graph
		want uint64
	}{
		{"empty", graph.MustUndirected(0), 0},
		{"edgeless", graph.MustUndirected(6), 0},
		{"path", graph.Path(7), 0},
		{"cycle", graph.Cycle(7), 0},
		{"star", graph.Star(7), 0},
		{"K4", graph.Complete(4), 1},
		{"K5", graph.Complete(5), 5},
		{"K6", graph.Complete(6), 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &BruteForce{}
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

// Exhaustive enumeration of every arrangement is the ground truth the
// search's pruning and mirror skipping are checked against.
func TestBruteForceMatchesExhaustive(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for trial := 0; trial < 30; trial++ {
		n := 4 + r.Intn(4) // 4..7
		g := randomGraph(r, n, 0.5)

		want := noBound
		permute(make([]int, 0, n), make([]bool, n), func(order []int) {
			arr, _ := FromOrder(order)
			if c := CountPairs(g, arr); c < want {
				want = c
			}
		})

		s := &BruteForce{}
		got, _, err := s.Minimize(g)
		if err != nil {
			t.Fatalf("Minimize() error: %v", err)
		}
		if got != want {
			t.Errorf("n=%d edges=%v: Minimize() = %d, exhaustive minimum %d", n, g.Edges(), got, want)
		}
	}
}

// permute calls fn with every permutation of 0..cap(prefix)-1.
func permute(prefix []int, used []bool, fn func([]int)) {
	if len(prefix) == cap(prefix) {
		fn(prefix)
		return
	}
	for v := range used {
		if used[v] {
			continue
		}
		used[v] = true
		permute(append(prefix, v), used, fn)
		used[v] = false
	}
}

// Adding an edge can only introduce crossings, never remove any, so the
// minimum must be non-decreasing as a graph grows.
func TestMinimumEdgeMonotone(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for trial := 0; trial < 15; trial++ {
		n := 4 + r.Intn(4)
		g := randomGraph(r, n, 0.3)

		s := &BruteForce{}
		prev, _, err := s.Minimize(g)
		if err != nil {
			t.Fatalf("Minimize() error: %v", err)
		}
		for step := 0; step < 4; step++ {
			u, v := r.Intn(n), r.Intn(n)
			if u == v {
				continue
			}
			_ = g.AddEdge(u, v)
			cur, _, err := s.Minimize(g)
			if err != nil {
				t.Fatalf("Minimize() error: %v", err)
			}
			if cur < prev {
				t.Errorf("adding edge {%d,%d} dropped the minimum from %d to %d", u, v, prev, cur)
			}
			prev = cur
		}
	}
}

func TestBruteForceOnImprove(t *testing.T) {
	g := graph.Complete(5)

	var seen []uint64
	s := &BruteForce{OnImprove: func(c uint64, order []int) {
		seen = append(seen, c)
		if len(order) != 5 {
			t.Errorf("OnImprove order has %d entries, want 5", len(order))
		}
	}}

	got, _, err := s.Minimize(g)
	if err != nil {
		t.Fatalf("Minimize() error: %v", err)
	}
	if len(seen) == 0 {
		t.Fatal("OnImprove was never called")
	}
	for i := 1; i < len(seen); i++ {
		if seen[i] >= seen[i-1] {
			t.Errorf("improvements not strictly decreasing: %v", seen)
		}
	}
	if seen[len(seen)-1] != got {
		t.Errorf("last improvement %d, final minimum %d", seen[len(seen)-1], got)
	}
}

func TestBruteForceMinimizeWithBound(t *testing.T) {
	g := graph.Complete(5) // minimum 5 under every arrangement

	s := &BruteForce{}
	tests := []struct {
		bound  uint64
		lessEq bool
	}{
		{0, false},
		{4, false},
		{5, true},
		{100, true},
	}
	for _, tt := range tests {
		dec, err := s.MinimizeWithBound(g, tt.bound)
		if err != nil {
			t.Fatalf("MinimizeWithBound(%d) error: %v", tt.bound, err)
		}
		if dec.LessEq() != tt.lessEq {
			t.Errorf("MinimizeWithBound(%d) = %v, want LessEq=%v", tt.bound, dec, tt.lessEq)
		}
		if dec.LessEq() && dec.Value > tt.bound {
			t.Errorf("MinimizeWithBound(%d) witness value %d exceeds bound", tt.bound, dec.Value)
		}
	}
}

func TestBruteForceTrivialFastPath(t *testing.T) {
	g := graph.MustUndirected(3)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)

	s := &BruteForce{}
	got, arr, err := s.Minimize(g)
	if err != nil {
		t.Fatalf("Minimize() error: %v", err)
	}
	if got != 0 {
		t.Errorf("Minimize() = %d, want 0", got)
	}
	if arr.Len() != 3 {
		t.Errorf("witness has %d positions, want 3", arr.Len())
	}
}
