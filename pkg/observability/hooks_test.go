package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Solver hooks
	s := NoopSolverHooks{}
	s.OnSolveStart(ctx, "brute-force", 8, 12)
	s.OnImprove(ctx, "brute-force", 3)
	s.OnSolveComplete(ctx, "brute-force", 2, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "result")
	c.OnCacheMiss(ctx, "result")
	c.OnCacheSet(ctx, "render", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "localhost:8080", "/v1/minimize")
	h.OnResponse(ctx, "POST", "localhost:8080", "/v1/minimize", 200, time.Second)
	h.OnError(ctx, "POST", "localhost:8080", "/v1/minimize", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Solver().(NoopSolverHooks); !ok {
		t.Error("Solver() should return NoopSolverHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customSolver := &testSolverHooks{}
	SetSolverHooks(customSolver)
	if Solver() != customSolver {
		t.Error("SetSolverHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Solver().(NoopSolverHooks); !ok {
		t.Error("Reset() should restore NoopSolverHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testSolverHooks{}
	SetSolverHooks(custom)

	// Setting nil should be ignored
	SetSolverHooks(nil)

	if Solver() != custom {
		t.Error("SetSolverHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testSolverHooks struct{ NoopSolverHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
