package cache

// ScopedKeyer wraps a Keyer with a prefix so separate deployments or
// tenants sharing one backend get disjoint key namespaces.
//
// Example usage:
//
//	// Per-user keys for a hosted API
//	userKeyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "user:abc123:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every generated
// key. A nil inner keyer falls back to the default layout.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// GraphKey generates a prefixed key for a stored graph document.
func (k *ScopedKeyer) GraphKey(graphHash string) string {
	return k.prefix + k.inner.GraphKey(graphHash)
}

// ResultKey generates a prefixed key for a solver result.
func (k *ScopedKeyer) ResultKey(graphHash string, opts ResultKeyOpts) string {
	return k.prefix + k.inner.ResultKey(graphHash, opts)
}

// RenderKey generates a prefixed key for a rendered diagram.
func (k *ScopedKeyer) RenderKey(graphHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(graphHash, opts)
}
