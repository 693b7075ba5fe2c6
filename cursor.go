package minmsg

import (
	"fmt"

	"github.com/rawbytedev/minmsg/internal/common"
)

// cursor tracks an offset into a borrowed, fixed-capacity region.
// The region must outlive the cursor.
type cursor struct {
	data []byte
	off  int
}

// get returns the n-byte slot at the current offset. The slot aliases the
// region, so the write path fills it in place. Unless peek is set the offset
// moves past it.
func (c *cursor) get(n int, peek bool) ([]byte, error) {
	if err := c.checkBoundsCritical(n); err != nil {
		return nil, err
	}
	slot := c.data[c.off : c.off+n : c.off+n]
	if !peek {
		c.off += n
	}
	return slot, nil
}

// head returns the region from the current offset onwards.
func (c *cursor) head() []byte {
	return c.data[c.off:]
}

// advance moves the offset unconditionally. Callers check bounds first.
func (c *cursor) advance(n int) {
	c.off += n
}

func (c *cursor) checkBoundsCritical(n int) error {
	if !c.checkBounds(n) {
		return fmt.Errorf("%w: need %d bytes at offset %d, capacity %d", ErrOverflow, n, c.off, len(c.data))
	}
	return nil
}

func (c *cursor) checkBounds(n int) bool {
	return c.off >= 0 && n >= 0 && c.off <= len(c.data) && n <= len(c.data)-c.off
}

// clamped returns the offset limited to the region.
func (c *cursor) clamped() int {
	switch {
	case c.off < 0:
		return 0
	case c.off > len(c.data):
		return len(c.data)
	default:
		return c.off
	}
}

// Seek repositions the cursor. The position is not validated here; the next
// checked operation fails if it lies outside the region.
func (c *cursor) Seek(pos int) {
	c.off = pos
}

// Size returns the number of bytes produced or consumed so far.
func (c *cursor) Size() int {
	return c.off
}

// Cap returns the capacity of the region.
func (c *cursor) Cap() int {
	return len(c.data)
}

// Remaining returns the bytes left between the offset and the end of the region.
func (c *cursor) Remaining() int {
	return len(c.data) - c.clamped()
}

// Clear zeroes the region from its start through the current offset.
func (c *cursor) Clear() {
	clear(c.data[:c.clamped()])
}

// Bytes returns the region up to the current offset. It aliases the region.
func (c *cursor) Bytes() []byte {
	return c.data[:c.clamped()]
}

// CopyTo copies the region up to the current offset into dst. It fails with
// ErrShortDestination, copying nothing, if dst is too small.
func (c *cursor) CopyTo(dst []byte) (int, error) {
	n := c.clamped()
	if len(dst) < n {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrShortDestination, n, len(dst))
	}
	return copy(dst, c.data[:n]), nil
}

// sizeOf returns the encoded width of T.
func sizeOf[T Fixed]() int {
	var v T
	return common.SizeOf(v)
}
