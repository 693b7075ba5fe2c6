package minmsg

import (
	"encoding/binary"
	"fmt"

	"github.com/rawbytedev/minmsg/internal/common"
)

// Writer appends encoded values to a borrowed byte slice.
type Writer struct {
	cursor
}

// NewWriter returns a Writer over buf. Its capacity is len(buf); pass arr[:]
// for a fixed-size array.
func NewWriter(buf []byte) *Writer {
	return &Writer{cursor{data: buf}}
}

// Write appends the fixed-width little-endian encoding of v.
func Write[T Fixed](w *Writer, v T) error {
	slot, err := w.get(sizeOf[T](), false)
	if err != nil {
		return err
	}
	common.PutFixed(slot, v)
	return nil
}

// WriteString appends s as a uint16 length prefix followed by its bytes.
func (w *Writer) WriteString(s string) error {
	if err := w.reserve(len(s)); err != nil {
		return err
	}
	w.putPrefix(len(s))
	copy(w.head(), s)
	w.advance(len(s))
	return nil
}

// WriteBytes appends b as a uint16 length prefix followed by its bytes.
func (w *Writer) WriteBytes(b []byte) error {
	if err := w.reserve(len(b)); err != nil {
		return err
	}
	w.putPrefix(len(b))
	copy(w.head(), b)
	w.advance(len(b))
	return nil
}

// reserve checks that a prefixed payload of n bytes is encodable and fits.
func (w *Writer) reserve(n int) error {
	if n > MaxLen {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrTooLong, n, MaxLen)
	}
	return w.checkBoundsCritical(prefixSize + n)
}

func (w *Writer) putPrefix(n int) {
	binary.LittleEndian.PutUint16(w.head(), uint16(n))
	w.advance(prefixSize)
}
