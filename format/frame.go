package format

// A compressed value is stored as a fixed 5-byte header followed by the
// backend-native compressed stream:
//
//	+---------------------+------------+------------------------+
//	| magic "GLID" (4B)   | backend ID | compressed payload ... |
//	+---------------------+------------+------------------------+
//
// A value stored without this header was never compressed. No length field is
// needed: zstd frames and lz4 block payloads are self-delimiting given the
// stored length.

// HeaderSize is the total size of the frame header: magic marker plus one
// backend discriminant byte.
const HeaderSize = 5

// magicBytes is the ASCII marker "GLID" identifying a compressed frame.
var magicBytes = [4]byte{0x47, 0x4C, 0x49, 0x44}

// HasMagicHeader reports whether data begins with a complete frame header.
// Data shorter than HeaderSize can never be a frame.
func HasMagicHeader(data []byte) bool {
	if len(data) < HeaderSize {
		return false
	}

	return data[0] == magicBytes[0] &&
		data[1] == magicBytes[1] &&
		data[2] == magicBytes[2] &&
		data[3] == magicBytes[3]
}

// FrameBackend extracts the backend discriminant from a framed value.
// It returns false when data does not carry a frame header. The returned
// Backend is the raw discriminant byte and may not satisfy Valid when the
// frame was written by a newer binding.
func FrameBackend(data []byte) (Backend, bool) {
	if !HasMagicHeader(data) {
		return 0, false
	}

	return Backend(data[4]), true
}

// AppendHeader appends a frame header for the given backend to dst and
// returns the extended slice.
func AppendHeader(dst []byte, backend Backend) []byte {
	dst = append(dst, magicBytes[:]...)

	return append(dst, byte(backend))
}

// Payload returns the backend-native compressed stream of a framed value.
// The caller must have verified the header with HasMagicHeader.
func Payload(data []byte) []byte {
	return data[HeaderSize:]
}
