//go:build cgo

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/xdk-amz/valkey-glide/format"
)

// Compress compresses the input data using libzstd at the exact requested
// level. A level of zero selects the conventional zstd default (3).
func (c ZstdCompressor) Compress(data []byte, level int) ([]byte, error) {
	if level == 0 {
		level = format.ZstdDefaultLevel
	}

	return gozstd.CompressLevel(nil, data, level), nil
}

// Decompress decompresses Zstd-compressed data using libzstd.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
