package cache

// ScopedKeyer wraps a Keyer with a prefix so several deployments can share
// one Redis instance without key collisions. The server prefixes keys with
// its configured namespace, e.g. "mazegen:prod:".
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key. A nil
// inner keyer falls back to the default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// GridKey generates a prefixed key for a generated grid.
func (k *ScopedKeyer) GridKey(width, height int, weaveFraction float64, seed string) string {
	return k.prefix + k.inner.GridKey(width, height, weaveFraction, seed)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(gridHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(gridHash, opts)
}
