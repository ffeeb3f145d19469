// Package cache provides content-addressed caching for generated mazes and
// rendered artifacts. Generation is cheap but rendering large PNGs and SVGs
// is not, so the server and CLI cache finished artifacts keyed by the full
// set of inputs that produced them.
//
// Two backends are provided: a file cache for CLI usage and a Redis cache
// for the server, plus a null cache that disables caching entirely. All
// backends store opaque byte slices with an optional TTL.
package cache

import (
	"context"
	"time"
)

// Cache is the common interface of all cache backends.
type Cache interface {
	// Get returns the cached bytes for key and whether the key was found.
	// A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer builds cache keys from maze inputs. Separating key construction
// from storage lets the server namespace keys without touching backends.
type Keyer interface {
	// GridKey identifies a generated grid by its generation inputs.
	GridKey(width, height int, weaveFraction float64, seed string) string

	// ArtifactKey identifies a rendered artifact by the grid it came from
	// and the rendering options.
	ArtifactKey(gridHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the rendering inputs that distinguish artifacts of
// the same grid. Fields irrelevant to a format are left at their zero
// value; they still hash, which only costs a few redundant cache slots.
type ArtifactKeyOpts struct {
	Format       string // "text", "png", "svg" or "dot"
	Space        string // text renderer space style
	CellWidth    int
	WallWidth    int
	PassageWidth int
	Palette      string
}

// DefaultKeyer hashes inputs into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// GridKey generates a key for a generated grid.
func (k *DefaultKeyer) GridKey(width, height int, weaveFraction float64, seed string) string {
	return hashKey("grid", width, height, weaveFraction, seed)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(gridHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", gridHash, opts)
}
