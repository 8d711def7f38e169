// Package cache provides pluggable byte caches used to memoize generated
// puzzles.
//
// Generation is deterministic, so a puzzle is fully identified by the hash of
// its normalized word list and engine options; [PuzzleKey] builds that key.
// Three backends are provided: [FileCache] for the CLI, [RedisCache] for
// multi-instance server deployments, and [NullCache] to disable caching.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the default lifetime for cached puzzles. Entries never go
// stale in a semantic sense (generation is deterministic), so the TTL only
// bounds storage growth.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is the interface implemented by all cache backends.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// PuzzleKey builds a cache key for a generation request. Identical word
// lists with identical options map to the same key; word order matters
// because it is the tie-breaker for equal-length words.
func PuzzleKey(words []string, maxAttempts, minIntersections, gridPadding int) string {
	return hashKey("puzzle", words, maxAttempts, minIntersections, gridPadding)
}
