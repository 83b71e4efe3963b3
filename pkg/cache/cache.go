// Package cache stores generated networks and assignment snapshots so that
// repeated runs with the same recipe skip regeneration and recoloring.
//
// Three backends are provided: a file cache for CLI usage, a Redis cache for
// long-running service deployments, and a null cache that disables caching
// entirely. Keys are derived from content hashes by a Keyer, so identical
// recipes and graphs always map to the same entry regardless of backend.
package cache

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for caching operations.
var (
	// ErrCacheMiss is returned by backends that report misses as errors.
	ErrCacheMiss = errors.New("cache miss")
)

// Default TTLs per entry kind. Generated networks and snapshots are fully
// deterministic in their keys, so the TTLs exist only to bound disk usage.
const (
	// TTLNetwork is how long generated topologies are kept.
	TTLNetwork = 7 * 24 * time.Hour

	// TTLSnapshot is how long assignment snapshots are kept.
	TTLSnapshot = 24 * time.Hour
)

// Cache is the interface for cache storage backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// NetworkKeyOpts are the recipe parameters that identify a generated
// topology. Only the fields relevant to the chosen topology are set; the
// zero values of the rest still participate in the key, which keeps key
// construction total.
type NetworkKeyOpts struct {
	Nodes        int
	Radius       float64
	Width        float64
	Height       float64
	Rows         int
	Cols         int
	Connectivity string
	Attachment   int
	Seed         uint64
}

// Keyer derives cache keys for the two cacheable artifact kinds.
type Keyer interface {
	// NetworkKey identifies a generated network by topology name and recipe.
	NetworkKey(topology string, opts NetworkKeyOpts) string

	// SnapshotKey identifies an assignment by graph content hash and algorithm.
	SnapshotKey(graphHash, algorithm string) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// NetworkKey generates a key for a generated network.
func (k *DefaultKeyer) NetworkKey(topology string, opts NetworkKeyOpts) string {
	return hashKey("network", topology, opts)
}

// SnapshotKey generates a key for an assignment snapshot.
func (k *DefaultKeyer) SnapshotKey(graphHash, algorithm string) string {
	return hashKey("snapshot", graphHash, algorithm)
}
