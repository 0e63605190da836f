package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/linarr-project/linarr/pkg/graph"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Full SHA-256 (64 hex chars) to prevent collisions
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// HashGraph content-addresses a graph: the hash of its canonical document
// form. Two graphs with the same vertex count and edge list hash
// identically regardless of how they were built.
func HashGraph(g graph.Graph) (string, error) {
	data, err := graph.MarshalGraph(g)
	if err != nil {
		return "", err
	}
	return Hash(data), nil
}
