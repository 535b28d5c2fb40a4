// Package command defines the compression boundary of the command-dispatch
// layer: which request types route their values through the value codec.
//
// Only single-key value writes compress and only single-key value reads
// decompress. Multi-key batched commands (MSET/MGET) and commands without
// value payloads transport bytes unmodified even when compression is enabled.
// This is a documented behavioral boundary of the wire contract, not an
// optimization to revisit.
package command

import "github.com/xdk-amz/valkey-glide/codec"

// RequestType identifies the command being dispatched, as far as the
// compression boundary cares.
type RequestType uint8

const (
	Unknown RequestType = iota
	Set
	Get
	MSet
	MGet
	Del
	Exists
	Expire
	Ping
	Info
)

func (r RequestType) String() string {
	switch r {
	case Set:
		return "SET"
	case Get:
		return "GET"
	case MSet:
		return "MSET"
	case MGet:
		return "MGET"
	case Del:
		return "DEL"
	case Exists:
		return "EXISTS"
	case Expire:
		return "EXPIRE"
	case Ping:
		return "PING"
	case Info:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// Behavior classifies how the compression layer treats a request type.
type Behavior uint8

const (
	// Untouched commands transport values unmodified in both directions.
	Untouched Behavior = iota
	// CompressValue commands have their value argument encoded before
	// transmission.
	CompressValue
	// DecompressValue commands have their response value decoded after
	// reception.
	DecompressValue
)

func (b Behavior) String() string {
	switch b {
	case CompressValue:
		return "CompressValue"
	case DecompressValue:
		return "DecompressValue"
	default:
		return "Untouched"
	}
}

// BehaviorFor returns the compression behavior of a request type. Everything
// outside single-key SET/GET, multi-key commands explicitly included, is
// Untouched.
func BehaviorFor(requestType RequestType) Behavior {
	switch requestType {
	case Set:
		return CompressValue
	case Get:
		return DecompressValue
	default:
		return Untouched
	}
}

// setValueIndex is the position of the value in SET argument lists
// (key, value, ...).
const setValueIndex = 1

// EncodeRequestArgs applies the value codec to the value argument of a
// compress-classified request, in place. Requests of any other class, short
// argument lists, and a nil codec are all left untouched.
func EncodeRequestArgs(vc *codec.ValueCodec, requestType RequestType, args [][]byte) {
	if vc == nil || BehaviorFor(requestType) != CompressValue {
		return
	}

	if len(args) <= setValueIndex {
		return
	}

	args[setValueIndex] = vc.Encode(args[setValueIndex])
}

// DecodeResponseValue applies the value codec to the response of a
// decompress-classified request. Responses of any other class, nil responses
// (missing keys), and a nil codec pass through unchanged.
func DecodeResponseValue(vc *codec.ValueCodec, requestType RequestType, value []byte) []byte {
	if vc == nil || value == nil || BehaviorFor(requestType) != DecompressValue {
		return value
	}

	return vc.Decode(value)
}
