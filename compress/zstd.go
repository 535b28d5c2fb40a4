package compress

import "github.com/xdk-amz/valkey-glide/format"

// ZstdCompressor provides Zstandard compression for stored values.
//
// Two implementations exist behind build tags, mirroring the level semantics
// of the other language bindings:
//   - cgo builds use valyala/gozstd (libzstd), honoring the exact 1-22 level.
//   - pure-Go builds use klauspost/compress, mapping the configured zstd
//     level onto its nearest encoder speed class.
type ZstdCompressor struct{}

var _ Codec = ZstdCompressor{}

// NewZstdCompressor creates a new Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Backend returns the zstd wire discriminant.
func (c ZstdCompressor) Backend() format.Backend {
	return format.BackendZstd
}
