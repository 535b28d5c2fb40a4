package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/xdk-amz/valkey-glide/format"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor provides LZ4 block compression for stored values.
//
// LZ4 runs in a single fast block mode: configurations may carry a level
// (1-12) for compatibility with other language bindings, but the level does
// not change the produced stream.
type LZ4Compressor struct{}

var _ Codec = LZ4Compressor{}

// NewLZ4Compressor creates a new LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Backend returns the lz4 wire discriminant.
func (c LZ4Compressor) Backend() format.Backend {
	return format.BackendLZ4
}

// Compress compresses the input data as a single LZ4 block. The level is
// accepted for interface symmetry and ignored.
//
// Returns ErrIncompressible when the block compressor cannot reduce the
// input; the caller should store the original bytes instead.
func (c LZ4Compressor) Compress(data []byte, _ int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Zero output with no error means the input is incompressible.
		return nil, ErrIncompressible
	}

	return dst[:n], nil
}

// maxBlockExpansion is the largest expansion a valid LZ4 block can demand: a
// match sequence costs at least one byte per 255 output bytes. A payload
// still reporting a short buffer at this ratio is corrupt.
const maxBlockExpansion = 255

// Decompress decompresses a single LZ4 block.
//
// The block format carries no decompressed-size field, so an adaptive buffer
// strategy is used:
//  1. Start with a buffer 4x the compressed size (common expansion ratio)
//  2. On ErrInvalidSourceShortBuffer, double the buffer size
//  3. Give up once the buffer reaches maxBlockExpansion times the compressed
//     size
//
// Value sizes are unbounded here, so the ceiling scales with the payload
// instead of being absolute.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 4
	maxSize := len(data) * maxBlockExpansion

	for {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				if bufSize > maxSize {
					bufSize = maxSize
				}
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}
}
