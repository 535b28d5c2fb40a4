package compress

import (
	"errors"
	"fmt"

	"github.com/xdk-amz/valkey-glide/format"
)

// ErrIncompressible is returned by Compress when the backend cannot reduce
// the input (lz4 reports this for high-entropy blocks). Callers are expected
// to store the original bytes instead.
var ErrIncompressible = errors.New("input is not compressible")

// Compressor compresses a single value payload.
type Compressor interface {
	// Compress compresses data at the given level and returns a newly
	// allocated slice. A level of zero selects the backend default; the
	// caller is responsible for range-validating any explicit level at
	// configuration time.
	Compress(data []byte, level int) ([]byte, error)
}

// Decompressor restores a payload previously produced by the matching
// Compressor.
type Decompressor interface {
	// Decompress decompresses data and returns a newly allocated slice.
	// It returns an error if the payload is corrupted or was produced by a
	// different backend.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one backend.
type Codec interface {
	Compressor
	Decompressor

	// Backend returns the wire discriminant this codec serializes as.
	Backend() format.Backend
}

var builtinCodecs = map[format.Backend]Codec{
	format.BackendZstd: NewZstdCompressor(),
	format.BackendLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in codec for the given backend discriminant.
// Encoder dispatch (by configured backend) and decoder dispatch (by the
// discriminant read from the frame header) both resolve through here, so a
// reader can decode frames written under a backend it never configured.
func GetCodec(backend format.Backend) (Codec, error) {
	if codec, ok := builtinCodecs[backend]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression backend: %s", backend)
}
