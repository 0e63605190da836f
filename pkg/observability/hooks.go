// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about solver runs, cache operations, and API traffic.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSolverHooks(&mySolverHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Solver().OnSolveStart(ctx, algorithm, vertices, edges)
//	// ... run solver ...
//	observability.Solver().OnSolveComplete(ctx, algorithm, crossings, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Solver Hooks
// =============================================================================

// SolverHooks receives events from crossing-minimization runs.
type SolverHooks interface {
	// OnSolveStart records the start of a minimization or decision run.
	OnSolveStart(ctx context.Context, algorithm string, vertices, edges int)

	// OnImprove records a new incumbent arrangement found mid-search.
	OnImprove(ctx context.Context, algorithm string, crossings uint64)

	// OnSolveComplete records the end of a run.
	OnSolveComplete(ctx context.Context, algorithm string, crossings uint64, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSolverHooks is a no-op implementation of SolverHooks.
type NoopSolverHooks struct{}

func (NoopSolverHooks) OnSolveStart(context.Context, string, int, int)                        {}
func (NoopSolverHooks) OnImprove(context.Context, string, uint64)                             {}
func (NoopSolverHooks) OnSolveComplete(context.Context, string, uint64, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	solverHooks SolverHooks = NoopSolverHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetSolverHooks registers custom solver hooks.
// This should be called once at application startup before any solver runs.
func SetSolverHooks(h SolverHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		solverHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving traffic.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Solver returns the registered solver hooks.
func Solver() SolverHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return solverHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	solverHooks = NoopSolverHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
