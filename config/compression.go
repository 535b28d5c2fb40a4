// Package config defines the per-client compression configuration.
//
// A CompressionConfig is an immutable value constructed once per client and
// validated at construction; after NewCompressionConfig returns, the value is
// trusted for the client's lifetime and is only ever read by the codec.
package config

import (
	"errors"
	"fmt"

	"github.com/xdk-amz/valkey-glide/format"
)

// ErrInvalidConfiguration is wrapped by every validation failure reported by
// NewCompressionConfig. Client construction must not proceed past it.
var ErrInvalidConfiguration = errors.New("invalid compression configuration")

// DefaultMinCompressionSize is the value-size threshold below which
// compression is skipped when the configuration does not set one.
const DefaultMinCompressionSize = 64

// CompressionConfig controls transparent compression of values for
// single-key write and read commands.
//
// Values written while compression is enabled are compressed before
// transmission when they fall inside the configured size window; values read
// back are decompressed when they carry a frame header. The configuration is
// per-client: clients with different settings coexist against the same data
// because stored frames are self-describing.
type CompressionConfig struct {
	enabled bool
	backend format.Backend
	level   *int
	minSize int
	maxSize *int
}

// Option configures a CompressionConfig under construction.
type Option func(*CompressionConfig)

// WithEnabled toggles compression. Defaults to false.
func WithEnabled(enabled bool) Option {
	return func(c *CompressionConfig) { c.enabled = enabled }
}

// WithBackend selects the compression backend used on writes.
// Defaults to format.BackendZstd. Reads are unaffected: decompression
// dispatches on the backend recorded in the stored frame.
func WithBackend(backend format.Backend) Option {
	return func(c *CompressionConfig) { c.backend = backend }
}

// WithCompressionLevel sets an explicit compression level. When unset, the
// backend default applies (zstd: 3). Valid ranges are 1-22 for zstd and
// 1-12 for lz4.
func WithCompressionLevel(level int) Option {
	return func(c *CompressionConfig) { c.level = &level }
}

// WithMinCompressionSize sets the minimum value size in bytes eligible for
// compression. Smaller values are stored verbatim to avoid header and CPU
// overhead. Defaults to DefaultMinCompressionSize.
func WithMinCompressionSize(size int) Option {
	return func(c *CompressionConfig) { c.minSize = size }
}

// WithMaxCompressionSize sets the maximum value size in bytes eligible for
// compression, capping the CPU spent on pathologically large values. When
// unset, no upper bound applies.
func WithMaxCompressionSize(size int) Option {
	return func(c *CompressionConfig) { c.maxSize = &size }
}

// NewCompressionConfig builds and validates a compression configuration.
// It is the single origin of configuration errors: any invariant violation
// is reported here, wrapped in ErrInvalidConfiguration, and never again
// during data operations.
func NewCompressionConfig(opts ...Option) (*CompressionConfig, error) {
	cfg := &CompressionConfig{
		backend: format.BackendZstd,
		minSize: DefaultMinCompressionSize,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *CompressionConfig) validate() error {
	if c.minSize < 0 {
		return fmt.Errorf("%w: min_compression_size must be non-negative", ErrInvalidConfiguration)
	}

	if c.maxSize != nil {
		if *c.maxSize < 0 {
			return fmt.Errorf("%w: max_compression_size must be non-negative", ErrInvalidConfiguration)
		}
		if *c.maxSize < c.minSize {
			return fmt.Errorf(
				"%w: max_compression_size must be greater than or equal to min_compression_size",
				ErrInvalidConfiguration,
			)
		}
	}

	if !c.backend.Valid() {
		return fmt.Errorf("%w: unsupported compression backend: %s", ErrInvalidConfiguration, c.backend)
	}

	if c.level != nil {
		switch c.backend {
		case format.BackendZstd:
			if *c.level < format.ZstdMinLevel || *c.level > format.ZstdMaxLevel {
				return fmt.Errorf(
					"%w: compression_level for ZSTD backend must be between %d and %d",
					ErrInvalidConfiguration, format.ZstdMinLevel, format.ZstdMaxLevel,
				)
			}
		case format.BackendLZ4:
			if *c.level < format.LZ4MinLevel || *c.level > format.LZ4MaxLevel {
				return fmt.Errorf(
					"%w: compression_level for LZ4 backend must be between %d and %d",
					ErrInvalidConfiguration, format.LZ4MinLevel, format.LZ4MaxLevel,
				)
			}
		}
	}

	return nil
}

// Enabled reports whether compression is active for this client.
func (c *CompressionConfig) Enabled() bool {
	return c.enabled
}

// Backend returns the backend used for compressing writes.
func (c *CompressionConfig) Backend() format.Backend {
	return c.backend
}

// CompressionLevel returns the explicit compression level, if one was set.
func (c *CompressionConfig) CompressionLevel() (level int, ok bool) {
	if c.level == nil {
		return 0, false
	}

	return *c.level, true
}

// MinCompressionSize returns the lower eligibility bound in bytes.
func (c *CompressionConfig) MinCompressionSize() int {
	return c.minSize
}

// MaxCompressionSize returns the upper eligibility bound in bytes, if one
// was set.
func (c *CompressionConfig) MaxCompressionSize() (size int, ok bool) {
	if c.maxSize == nil {
		return 0, false
	}

	return *c.maxSize, true
}
