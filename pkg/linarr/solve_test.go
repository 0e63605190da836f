package linarr

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/linarr-project/linarr/pkg/graph"
	"github.com/linarr-project/linarr/pkg/observability"
)

func TestSolverFor(t *testing.T) {
	if _, ok := SolverFor(graph.Path(BruteForceCutoff)).(*BruteForce); !ok {
		t.Errorf("SolverFor at the cutoff should pick *BruteForce")
	}
	if _, ok := SolverFor(graph.Path(BruteForceCutoff + 1)).(*SubsetSolver); !ok {
		t.Errorf("SolverFor past the cutoff should pick *SubsetSolver")
	}
}

func TestMinimizeDispatch(t *testing.T) {
	// one graph per side of the cutoff
	for _, g := range []graph.Graph{graph.Cycle(6), graph.Cycle(12)} {
		got, arr, err := Minimize(g)
		if err != nil {
			t.Fatalf("Minimize() error: %v", err)
		}
		if got != 0 {
			t.Errorf("Minimize(C%d) = %d, want 0", g.NumVertices(), got)
		}
		if c := Count(g, arr); c != got {
			t.Errorf("witness arrangement has %d crossings, reported %d", c, got)
		}
	}
}

func TestMinimizeTooLarge(t *testing.T) {
	g := graph.Cycle(MaxSubsetVertices + 5)
	if _, _, err := Minimize(g); !errors.Is(err, ErrTooManyVertices) {
		t.Errorf("Minimize() error = %v, want ErrTooManyVertices", err)
	}
}

func TestMinimizeWithBoundDispatch(t *testing.T) {
	g := graph.Complete(5) // minimum 5

	dec, err := MinimizeWithBound(g, 5)
	if err != nil {
		t.Fatalf("MinimizeWithBound() error: %v", err)
	}
	if !dec.LessEq() || dec.Value != 5 {
		t.Errorf("MinimizeWithBound(K5, 5) = %v, want LE 5", dec)
	}

	dec, err = MinimizeWithBound(g, 4)
	if err != nil {
		t.Fatalf("MinimizeWithBound() error: %v", err)
	}
	if dec.LessEq() {
		t.Errorf("MinimizeWithBound(K5, 4) = %v, want GT", dec)
	}
}

// recordingHooks captures solver events for assertion.
type recordingHooks struct {
	observability.NoopSolverHooks

	mu        sync.Mutex
	starts    []string
	completes []string
	lastCount uint64
	lastErr   error
}

func (h *recordingHooks) OnSolveStart(_ context.Context, algorithm string, _, _ int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.starts = append(h.starts, algorithm)
}

func (h *recordingHooks) OnSolveComplete(_ context.Context, algorithm string, crossings uint64, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.completes = append(h.completes, algorithm)
	h.lastCount = crossings
	h.lastErr = err
}

func TestMinimizeEmitsSolverHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetSolverHooks(hooks)
	defer observability.Reset()

	got, _, err := Minimize(graph.Complete(5))
	if err != nil {
		t.Fatalf("Minimize() error: %v", err)
	}

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if len(hooks.starts) != 1 || hooks.starts[0] != "brute-force" {
		t.Errorf("starts = %v, want one brute-force event", hooks.starts)
	}
	if len(hooks.completes) != 1 {
		t.Fatalf("completes = %v, want one event", hooks.completes)
	}
	if hooks.lastCount != got || hooks.lastErr != nil {
		t.Errorf("complete event carried (%d, %v), want (%d, nil)", hooks.lastCount, hooks.lastErr, got)
	}
}

func TestMinimizeEmitsErrorToHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetSolverHooks(hooks)
	defer observability.Reset()

	_, _, err := Minimize(graph.Path(MaxSubsetVertices + 1))
	if err == nil {
		t.Fatal("Minimize() should fail above the capacity limit")
	}

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if len(hooks.starts) != 1 || hooks.starts[0] != "subset" {
		t.Errorf("starts = %v, want one subset event", hooks.starts)
	}
	if !errors.Is(hooks.lastErr, ErrTooManyVertices) {
		t.Errorf("complete event error = %v, want ErrTooManyVertices", hooks.lastErr)
	}
}
