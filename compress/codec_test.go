package compress

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xdk-amz/valkey-glide/format"
)

func TestGetCodec(t *testing.T) {
	tests := []struct {
		name    string
		backend format.Backend
		wantErr bool
	}{
		{name: "zstd backend", backend: format.BackendZstd},
		{name: "lz4 backend", backend: format.BackendLZ4},
		{name: "unknown backend", backend: format.Backend(0x7F), wantErr: true},
		{name: "zero backend", backend: format.Backend(0), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := GetCodec(tt.backend)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, codec)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.backend, codec.Backend())
		})
	}
}

func TestZstd_RoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 50)

	// Level 0 selects the backend default; 1 and 22 are the range bounds.
	for _, level := range []int{0, 1, 3, 22} {
		codec := NewZstdCompressor()

		compressed, err := codec.Compress(data, level)
		require.NoError(t, err)
		require.NotEmpty(t, compressed)
		require.Less(t, len(compressed), len(data))

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Equal(t, data, decompressed)
	}
}

func TestLZ4_RoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefgh"), 200)
	codec := NewLZ4Compressor()

	compressed, err := codec.Compress(data, 0)
	require.NoError(t, err)
	require.NotEmpty(t, compressed)
	require.Less(t, len(compressed), len(data))

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestLZ4_LevelIgnored(t *testing.T) {
	// The lz4 backend runs in a single block mode: any configured level
	// produces the same stream.
	data := bytes.Repeat([]byte("level-independent payload "), 100)
	codec := NewLZ4Compressor()

	base, err := codec.Compress(data, 0)
	require.NoError(t, err)

	for _, level := range []int{1, 6, 12} {
		compressed, err := codec.Compress(data, level)
		require.NoError(t, err)
		require.Equal(t, base, compressed)
	}
}

func TestLZ4_LargePayloadRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates several hundred MB")
	}

	// Alternating 64-byte high-entropy and 64-byte zero runs: roughly half
	// the input survives as literals, so the compressed payload lands well
	// above 32MB while staying smaller than the input. The decompress buffer
	// ceiling must scale with the payload rather than cut off large values.
	const unit = 128
	const units = 640 * 1024 // 80MB total
	data := make([]byte, unit*units)
	state := uint64(0x9E3779B97F4A7C15)
	for u := 0; u < units; u++ {
		base := u * unit
		for i := 0; i < unit/2; i++ {
			state = state*6364136223846793005 + 1442695040888963407
			data[base+i] = byte(state >> 56)
		}
	}

	codec := NewLZ4Compressor()
	compressed, err := codec.Compress(data, 0)
	require.NoError(t, err)
	require.Greater(t, len(compressed), 32*1024*1024)
	require.Less(t, len(compressed), len(data))

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestCompress_EmptyInput(t *testing.T) {
	for _, codec := range []Codec{NewZstdCompressor(), NewLZ4Compressor()} {
		t.Run(codec.Backend().String(), func(t *testing.T) {
			compressed, err := codec.Compress(nil, 0)
			if codec.Backend() == format.BackendLZ4 {
				require.NoError(t, err)
				require.Empty(t, compressed)
			} else {
				require.NoError(t, err)
			}

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestDecompress_CorruptedInput(t *testing.T) {
	garbage := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01, 0x02, 0x03}

	for _, codec := range []Codec{NewZstdCompressor(), NewLZ4Compressor()} {
		t.Run(codec.Backend().String(), func(t *testing.T) {
			_, err := codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestZstd_DecompressForeignPayload(t *testing.T) {
	// An lz4 stream is not a valid zstd frame; the error surfaces instead of
	// corrupt output.
	data := bytes.Repeat([]byte("cross-backend payload "), 100)

	compressed, err := NewLZ4Compressor().Compress(data, 0)
	require.NoError(t, err)

	_, err = NewZstdCompressor().Decompress(compressed)
	require.Error(t, err)
}

func TestCodec_ConcurrentUse(t *testing.T) {
	// Pooled encoder/decoder state must hold up under concurrent round trips.
	data := bytes.Repeat([]byte("concurrent use payload "), 200)

	for _, codec := range []Codec{NewZstdCompressor(), NewLZ4Compressor()} {
		t.Run(codec.Backend().String(), func(t *testing.T) {
			done := make(chan error, 8)
			for i := 0; i < 8; i++ {
				go func() {
					for j := 0; j < 50; j++ {
						compressed, err := codec.Compress(data, 0)
						if err != nil {
							done <- err
							return
						}
						decompressed, err := codec.Decompress(compressed)
						if err != nil {
							done <- err
							return
						}
						if !bytes.Equal(data, decompressed) {
							done <- errMismatch
							return
						}
					}
					done <- nil
				}()
			}
			for i := 0; i < 8; i++ {
				require.NoError(t, <-done)
			}
		})
	}
}

var errMismatch = errors.New("round trip mismatch")
