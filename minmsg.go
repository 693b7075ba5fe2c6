package minmsg

import (
	"errors"
	"math"
)

var (
	ErrOverflow         = errors.New("buffer overflow")
	ErrStringTooLarge   = errors.New("string too large")
	ErrShortDestination = errors.New("destination too small")
	ErrTooLong          = errors.New("payload exceeds length prefix")
	ErrUnsupported      = errors.New("unsupported field type")
	ErrNilField         = errors.New("nil field reference")
)

// MaxLen is the largest string or blob a uint16 length prefix can describe.
const MaxLen = math.MaxUint16

// prefixSize is the width of the string/blob length prefix.
const prefixSize = 2

// Fixed lists the primitives that are encoded with a fixed width.
// Platform-sized int and uint are excluded; named types must be converted.
type Fixed interface {
	bool | int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}
