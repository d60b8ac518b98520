// Package cache stores expensive computation results keyed by content hash.
//
// fstkit uses it to memoize determinization: the serialized source graph is
// hashed with [Key], and the serialized determinized graph is stored under
// that key. Backends:
//   - file: per-user cache directory, for CLI usage
//   - redis: shared cache for multi-instance deployments
//   - mongo: shared cache with server-side document storage
//   - null: disables caching
//
// All backends store opaque []byte values with an optional TTL and treat a
// missing or expired entry as a miss, never an error.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache is the interface implemented by all storage backends.
type Cache interface {
	// Get retrieves a value. The second result reports whether the key
	// was present (and unexpired).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any backend resources.
	Close() error
}

// Key builds a namespaced content-hash cache key: "prefix:sha256(data)".
func Key(prefix string, data []byte) string {
	return fmt.Sprintf("%s:%s", prefix, Hash(data))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
