// Package codec implements the transparent value codec: best-effort
// compression of values on single-key writes and decompression on single-key
// reads, governed by an immutable per-client configuration.
//
// Compression is an optimization layered over a correctness-preserving
// read/write path. Encode and Decode never fail: any internal codec fault
// falls back to passing the input through unchanged, and decode failures are
// additionally reported to the logging collaborator. Configuration errors are
// the only fatal tier and are raised by the config package at construction,
// never here.
//
// Both operations are pure functions of their input plus the immutable
// configuration, hold no mutable state, and are safe for unlimited concurrent
// use on one client.
package codec

import (
	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/xdk-amz/valkey-glide/compress"
	"github.com/xdk-amz/valkey-glide/config"
	"github.com/xdk-amz/valkey-glide/format"
)

// ValueCodec encodes and decodes single-key command values according to one
// client's compression configuration.
type ValueCodec struct {
	cfg    *config.CompressionConfig
	logger *zap.Logger
}

// Option configures a ValueCodec.
type Option func(*ValueCodec)

// WithLogger sets the sink for non-fatal decode warnings.
// Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *ValueCodec) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a value codec bound to an already-validated configuration.
// A nil configuration behaves as compression disabled.
func New(cfg *config.CompressionConfig, opts ...Option) *ValueCodec {
	if cfg == nil {
		// NewCompressionConfig without options cannot fail.
		cfg, _ = config.NewCompressionConfig()
	}

	c := &ValueCodec{cfg: cfg, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Config returns the configuration the codec is bound to.
func (c *ValueCodec) Config() *config.CompressionConfig {
	return c.cfg
}

// Encode transforms a value about to be written by a single-key command.
//
// The value is compressed and framed only when compression is enabled, the
// value length falls inside the configured size window, and the framed result
// is smaller than the original; in every other case, including any backend
// failure, the original bytes are returned unchanged. Multi-key commands
// never route through Encode.
func (c *ValueCodec) Encode(raw []byte) []byte {
	if !c.cfg.Enabled() {
		return raw
	}

	// An empty value is never compressed, even with a zero minimum: a
	// header-only frame has no benefit.
	if len(raw) == 0 || len(raw) < c.cfg.MinCompressionSize() {
		return raw
	}

	if maxSize, ok := c.cfg.MaxCompressionSize(); ok && len(raw) > maxSize {
		return raw
	}

	backend := c.cfg.Backend()

	// A value already framed by this client's backend is stored as-is rather
	// than double-compressed. Frames bearing other discriminants are opaque
	// bytes here and compress like any other value, so decoding recovers
	// them exactly.
	if b, ok := format.FrameBackend(raw); ok && b == backend {
		return raw
	}
	codec, err := compress.GetCodec(backend)
	if err != nil {
		// Unreachable for a validated configuration.
		c.warnEncode(raw, err)
		return raw
	}

	level, _ := c.cfg.CompressionLevel()
	compressed, err := codec.Compress(raw, level)
	if err != nil {
		c.warnEncode(raw, err)
		return raw
	}

	// Compression is best-effort space reduction: if framing would not
	// shrink the stored value, keep the original bytes.
	if format.HeaderSize+len(compressed) >= len(raw) {
		return raw
	}

	framed := make([]byte, 0, format.HeaderSize+len(compressed))
	framed = format.AppendHeader(framed, backend)

	return append(framed, compressed...)
}

// Decode transforms a value returned by a single-key read command.
//
// With compression disabled the stored bytes pass through untouched, header
// or not; that is what lets a disabled client coexist with compressed data
// written by other clients. With compression enabled, a framed value is
// decompressed by the backend named in its header, independent of this
// client's configured backend. Unframed values, unknown discriminants, and
// corrupt payloads all fall back to the stored bytes unchanged; the latter
// two are reported to the logger. Multi-key commands never route through
// Decode.
func (c *ValueCodec) Decode(stored []byte) []byte {
	if !c.cfg.Enabled() {
		return stored
	}

	backend, ok := format.FrameBackend(stored)
	if !ok {
		// No header: the value was never compressed.
		return stored
	}

	codec, err := compress.GetCodec(backend)
	if err != nil {
		c.warnDecode(stored, backend, err)
		return stored
	}

	decompressed, err := codec.Decompress(format.Payload(stored))
	if err != nil {
		c.warnDecode(stored, backend, err)
		return stored
	}

	return decompressed
}

// warnEncode reports a compression failure that was absorbed by falling back
// to the raw value. Values may hold application data, so they are identified
// by length and xxHash fingerprint rather than content.
func (c *ValueCodec) warnEncode(raw []byte, err error) {
	c.logger.Warn("compression failed, storing value uncompressed",
		zap.Stringer("backend", c.cfg.Backend()),
		zap.Int("value_size", len(raw)),
		zap.Uint64("value_hash", xxhash.Sum64(raw)),
		zap.Error(err),
	)
}

// warnDecode reports a decompression failure that was absorbed by returning
// the stored bytes unchanged.
func (c *ValueCodec) warnDecode(stored []byte, backend format.Backend, err error) {
	c.logger.Warn("decompression failed, returning stored value as-is",
		zap.Stringer("backend", backend),
		zap.Int("stored_size", len(stored)),
		zap.Uint64("stored_hash", xxhash.Sum64(stored)),
		zap.Error(err),
	)
}
