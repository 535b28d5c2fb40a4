// Package compress implements the closed set of compression backends used by
// the transparent value codec.
//
// Two backends are registered, keyed by their wire discriminant
// (format.Backend):
//
//   - Zstd (0x01): better compression ratio, levels 1-22, default 3.
//   - LZ4 (0x02): fastest decompression, single block mode.
//
// Each backend implements the Codec interface:
//
//	type Codec interface {
//	    Compress(data []byte, level int) ([]byte, error)
//	    Decompress(data []byte) ([]byte, error)
//	    Backend() format.Backend
//	}
//
// Compress and Decompress operate on bare payloads; the frame header that
// makes stored values self-describing is applied by the codec package, not
// here. A level of zero selects the backend default.
//
// Backends are stateless values and safe for concurrent use; internal
// encoder/decoder instances are pooled.
//
// The registry is a fixed map, not an open registration surface: the
// discriminant bytes are shared with other language bindings, so adding a
// backend means assigning a new identifier in the format package and wiring
// it here.
package compress
