// Package cache provides pluggable storage for computed crossing results.
//
// Exact crossing minimization is exponential, so solved instances are worth
// remembering. The cache maps content-addressed keys (graph hashes plus
// solve options) to serialized results and rendered artifacts.
//
// # Backends
//
//   - MemoryCache: process-local, for tests and short-lived runs
//   - FileCache: directory of entry files, for CLI usage
//   - RedisCache: shared cache for the HTTP API
//   - MongoStore: durable result store with queryable documents
//   - NullCache: disables caching
//
// All backends implement the Cache interface and are safe for concurrent
// use. Keys are produced by a Keyer so every component agrees on the
// layout; ScopedKeyer adds a namespace prefix for multi-tenant setups.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with per-entry expiry.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present; absence is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl stores it without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ResultKeyOpts distinguishes solver results computed for the same graph.
type ResultKeyOpts struct {
	// Algorithm names the solver ("brute-force", "subset", "auto").
	Algorithm string `json:"algorithm"`

	// Bounded marks a decision run; Bound is its threshold.
	Bounded bool   `json:"bounded"`
	Bound   uint64 `json:"bound"`
}

// RenderKeyOpts distinguishes rendered artifacts of the same arrangement.
type RenderKeyOpts struct {
	// Format is the output format ("dot", "svg").
	Format string `json:"format"`
}

// Keyer generates cache keys so all components agree on the layout.
type Keyer interface {
	// GraphKey generates a key for a stored graph document.
	GraphKey(graphHash string) string

	// ResultKey generates a key for a solver result.
	ResultKey(graphHash string, opts ResultKeyOpts) string

	// RenderKey generates a key for a rendered diagram.
	RenderKey(graphHash string, opts RenderKeyOpts) string
}

// DefaultKeyer is the standard key layout: a type prefix followed by the
// graph hash and a hash of the distinguishing options.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// GraphKey generates a key for a stored graph document.
func (k *DefaultKeyer) GraphKey(graphHash string) string {
	return "graph:" + graphHash
}

// ResultKey generates a key for a solver result.
func (k *DefaultKeyer) ResultKey(graphHash string, opts ResultKeyOpts) string {
	return hashKey("result:"+graphHash, opts)
}

// RenderKey generates a key for a rendered diagram.
func (k *DefaultKeyer) RenderKey(graphHash string, opts RenderKeyOpts) string {
	return hashKey("render:"+graphHash, opts)
}
