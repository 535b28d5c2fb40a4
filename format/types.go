package format

import (
	"fmt"
	"strings"
)

// Backend identifies a compression backend. The numeric value doubles as the
// discriminant byte stored in the frame header, so it is a versioned wire
// contract shared by all language bindings and must never be renumbered.
type Backend uint8

const (
	// BackendZstd represents Zstandard compression.
	BackendZstd Backend = 0x01
	// BackendLZ4 represents LZ4 block compression.
	BackendLZ4 Backend = 0x02
)

const (
	// ZstdMinLevel and ZstdMaxLevel bound the configurable zstd compression level.
	ZstdMinLevel = 1
	ZstdMaxLevel = 22
	// ZstdDefaultLevel is the zstd level used when the configuration leaves
	// the level unset.
	ZstdDefaultLevel = 3

	// LZ4MinLevel and LZ4MaxLevel bound the configurable lz4 compression level.
	// The lz4 backend runs in a single block mode; the level is accepted for
	// cross-binding configuration compatibility.
	LZ4MinLevel = 1
	LZ4MaxLevel = 12
)

func (b Backend) String() string {
	switch b {
	case BackendZstd:
		return "zstd"
	case BackendLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(b))
	}
}

// Valid reports whether b is a registered backend identifier.
func (b Backend) Valid() bool {
	return b == BackendZstd || b == BackendLZ4
}

// LevelRange returns the inclusive range of compression levels accepted by
// configuration validation for this backend.
func (b Backend) LevelRange() (minLevel, maxLevel int) {
	switch b {
	case BackendLZ4:
		return LZ4MinLevel, LZ4MaxLevel
	default:
		return ZstdMinLevel, ZstdMaxLevel
	}
}

// DefaultLevel returns the level applied when a configuration does not set
// one. Zero means the backend has no level concept.
func (b Backend) DefaultLevel() int {
	if b == BackendZstd {
		return ZstdDefaultLevel
	}

	return 0
}

// ParseBackend resolves a backend from its textual name, case-insensitively.
// Both "zstd" and "zstandard" resolve to BackendZstd.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(s) {
	case "zstd", "zstandard":
		return BackendZstd, nil
	case "lz4":
		return BackendLZ4, nil
	default:
		return 0, fmt.Errorf("unsupported compression backend: %q", s)
	}
}
