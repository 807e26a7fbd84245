// Package cache stores rendered artifacts between CLI runs. Rendering a
// large map to PNG is the slow path; the cache lets repeated renders of
// an unchanged map file skip straight to the bytes.
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry kind. Layouts are cheap to recompute, so they
// expire sooner than rendered artifacts.
const (
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented store with per-entry expiry.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// LayoutKey builds the cache key for a computed layout, derived from a
// hash of the map description so any edit invalidates the entry.
func LayoutKey(plasmidHash string) string {
	return hashKey("layout", plasmidHash)
}

// ArtifactKey builds the cache key for a rendered artifact. The format
// and scale are part of the key: the same layout rendered as SVG and as
// a 2x PNG are distinct entries.
func ArtifactKey(layoutHash, format string, scale float64) string {
	return hashKey("artifact", layoutHash, format, scale)
}
