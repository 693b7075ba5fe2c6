package minmsg

import (
	"fmt"

	"github.com/rawbytedev/minmsg/internal/common"
)

// Reader decodes values from a borrowed byte slice.
type Reader struct {
	cursor
}

// NewReader returns a Reader over buf. Its capacity is len(buf).
func NewReader(buf []byte) *Reader {
	return &Reader{cursor{data: buf}}
}

// Read decodes a fixed-width value and advances past it.
func Read[T Fixed](r *Reader) (T, error) {
	return get[T](r, false)
}

// Peek decodes a fixed-width value without advancing.
func Peek[T Fixed](r *Reader) (T, error) {
	return get[T](r, true)
}

func get[T Fixed](r *Reader, peek bool) (T, error) {
	var v T
	slot, err := r.get(sizeOf[T](), peek)
	if err != nil {
		return v, err
	}
	common.GetFixed(slot, &v)
	return v, nil
}

// ReadString decodes a length-prefixed string into a newly allocated string.
// A maxSize above zero bounds the accepted length; longer strings fail with
// ErrStringTooLarge before any payload is copied.
func (r *Reader) ReadString(maxSize int) (string, error) {
	payload, err := r.payload(maxSize)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// ReadBlob decodes a length-prefixed byte slice into a newly allocated slice.
// maxSize behaves as in ReadString. An empty payload decodes to nil, so nil
// and empty slices both come back as nil.
func (r *Reader) ReadBlob(maxSize int) ([]byte, error) {
	payload, err := r.payload(maxSize)
	if err != nil || len(payload) == 0 {
		return nil, err
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

// ReadBytes copies a length-prefixed payload into dst and returns its length.
// If dst is too small it fails with ErrShortDestination; if the payload runs
// past the buffer it fails with ErrOverflow. Either way dst is untouched and
// the reader is left at the prefix, so the caller can retry with a larger dst
// or SkipBytes and carry on.
func (r *Reader) ReadBytes(dst []byte) (int, error) {
	start := r.off
	n, err := Read[uint16](r)
	if err != nil {
		return 0, err
	}
	if int(n) > len(dst) {
		r.off = start
		return 0, fmt.Errorf("%w: payload %d bytes, destination %d", ErrShortDestination, n, len(dst))
	}
	if err := r.checkBoundsCritical(int(n)); err != nil {
		r.off = start
		return 0, err
	}
	copy(dst, r.head()[:n])
	r.advance(int(n))
	return int(n), nil
}

// SkipBytes advances past one length-prefixed payload without copying it.
func (r *Reader) SkipBytes() error {
	_, err := r.payload(0)
	return err
}

// payload reads a length prefix and returns the payload it describes,
// aliasing the buffer. On failure the offset is restored.
func (r *Reader) payload(maxSize int) ([]byte, error) {
	start := r.off
	n, err := Read[uint16](r)
	if err != nil {
		return nil, err
	}
	if maxSize > 0 && int(n) > maxSize {
		r.off = start
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrStringTooLarge, n, maxSize)
	}
	slot, err := r.get(int(n), false)
	if err != nil {
		r.off = start
		return nil, err
	}
	return slot, nil
}
