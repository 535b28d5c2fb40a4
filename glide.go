// Package glide provides transparent, best-effort value compression for a
// key-value client: values are compressed before single-key writes and
// decompressed after single-key reads, governed by a per-client
// configuration, while staying byte-compatible with clients that have
// compression disabled or use a different backend.
//
// # Core Properties
//
//   - Self-describing frames: a compressed value is stored as a 5-byte header
//     (ASCII "GLID" + backend discriminant) followed by the backend-native
//     stream; a value without the header was never compressed.
//   - Cross-client compatibility: decoding dispatches on the backend recorded
//     in the frame, so a zstd-configured writer and an lz4-configured reader
//     interoperate, and a disabled client reads raw stored bytes untouched.
//   - Graceful fallback: no compression or decompression failure ever fails a
//     read or write; the codec passes the original bytes through and reports
//     decode anomalies to a logger.
//   - Size window: values below the configured minimum (default 64 bytes) or
//     above the optional maximum are stored verbatim.
//
// # Basic Usage
//
//	cfg, err := glide.NewCompressionConfig(
//	    config.WithEnabled(true),
//	    config.WithBackend(format.BackendZstd),
//	    config.WithCompressionLevel(3),
//	)
//	if err != nil {
//	    return err
//	}
//
//	vc := glide.NewValueCodec(cfg)
//	stored := vc.Encode(value)   // before a single-key write
//	value = vc.Decode(stored)    // after a single-key read
//
// Multi-key commands (MSET/MGET) bypass the codec entirely; see the command
// package for the dispatch boundary.
//
// # Package Structure
//
// This package provides thin constructors over the config and codec packages.
// The format package holds the wire constants shared across language
// bindings, and the compress package holds the backend registry.
package glide

import (
	"github.com/xdk-amz/valkey-glide/codec"
	"github.com/xdk-amz/valkey-glide/config"
)

// NewCompressionConfig builds and validates a per-client compression
// configuration. It fails if any option violates a configuration invariant;
// client construction must not proceed past such an error.
func NewCompressionConfig(opts ...config.Option) (*config.CompressionConfig, error) {
	return config.NewCompressionConfig(opts...)
}

// NewValueCodec returns the value codec for a validated configuration.
// A nil configuration yields a codec with compression disabled.
func NewValueCodec(cfg *config.CompressionConfig, opts ...codec.Option) *codec.ValueCodec {
	return codec.New(cfg, opts...)
}
