// Package cache provides artifact caching for the render pipeline.
//
// Rendering a radar is cheap, but hosts that serve many identical requests
// (the HTTP serve mode, CI jobs re-rendering an unchanged dataset) can skip
// the whole pass when the dataset, colour customizations, and render options
// hash to a key that was seen before.
//
// Three backends are provided: FileCache for CLI use, RedisCache for
// multi-instance deployments, and NullCache to disable caching.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached. Artifacts are
// pure functions of their key, so the TTL only bounds disk usage.
const TTLArtifact = 7 * 24 * time.Hour

// Cache stores rendered artifacts keyed by content hash.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
