// Package cache stores derived photometric data keyed by content hash.
//
// Parsing a large EULUMDAT or IES file and expanding its symmetry is cheap
// compared with rendering, but the CLI and server parse the same files
// over and over. Entries are opaque bytes (usually a JSON web document from
// pkg/io) stored under keys built by a [Keyer].
//
// Backends:
//   - [NullCache]: stores nothing
//   - [FileCache]: one file per entry under a directory, for the CLI
//   - [RedisCache]: shared cache for server deployments
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry kind.
const (
	WebTTL     = 7 * 24 * time.Hour
	AverageTTL = 24 * time.Hour
	ChartTTL   = 24 * time.Hour
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys. Keys include every input that changes the
// cached value.
type Keyer interface {
	// WebKey is the key for the web parsed from a file with the given
	// content hash and format.
	WebKey(contentHash, format string) string

	// AverageKey is the key for the average of webs with these content
	// hashes, in order.
	AverageKey(contentHashes []string) string

	// ChartKey is the key for a rendered chart of a web.
	ChartKey(webKey string, opts ChartKeyOpts) string
}

// ChartKeyOpts are the render options that change a chart.
type ChartKeyOpts struct {
	Kind     string    `json:"kind"`
	Format   string    `json:"format"`
	Title    string    `json:"title,omitempty"`
	Planes   []float64 `json:"planes,omitempty"`
	Width    int       `json:"width,omitempty"`
	Height   int       `json:"height,omitempty"`
	Detailed bool      `json:"detailed,omitempty"`
}

// DefaultKeyer builds keys as prefix:sha256(parts).
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) WebKey(contentHash, format string) string {
	return hashKey("web", contentHash, format)
}

func (DefaultKeyer) AverageKey(contentHashes []string) string {
	return hashKey("avg", contentHashes)
}

func (DefaultKeyer) ChartKey(webKey string, opts ChartKeyOpts) string {
	return hashKey("chart", webKey, opts)
}

// NullCache never stores anything.
type NullCache struct{}

// NewNullCache returns a cache that always misses.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error { return nil }
func (NullCache) Close() error { return nil }

var (
	_ Cache = NullCache{}
	_ Keyer = DefaultKeyer{}
)
