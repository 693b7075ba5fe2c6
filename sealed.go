package minmsg

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

var (
	ErrChecksum    = errors.New("sealed frame checksum mismatch")
	ErrFrameLength = errors.New("sealed frame length mismatch")
)

// Sealed frame layout:
//
//	[uint32 payload length][payload][uint64 xxhash64 of payload]
const (
	sealHeaderSize  = 4
	sealTrailerSize = 8
)

// SealedSize returns the encoded size of a sealed frame around a payload of
// n bytes.
func SealedSize(n int) int {
	return sealHeaderSize + n + sealTrailerSize
}

// PackSealed packs v inside a sealed frame. On failure the writer is rewound
// to where the frame would have started.
func PackSealed(w *Writer, v Packable) error {
	start := w.Size()
	if err := Write(w, uint32(0)); err != nil {
		return err
	}
	if err := Pack(w, v); err != nil {
		w.Seek(start)
		return err
	}
	payload := w.data[start+sealHeaderSize : w.off]
	binary.LittleEndian.PutUint32(w.data[start:], uint32(len(payload)))
	if err := Write(w, xxhash.Sum64(payload)); err != nil {
		w.Seek(start)
		return err
	}
	return nil
}

// UnpackSealed verifies a sealed frame and unpacks its payload into v. The
// digest is checked before decoding; afterwards the payload must have been
// consumed exactly, which catches most shape mismatches between writer and
// reader. On failure the reader is rewound to the frame start.
func UnpackSealed(r *Reader, v Packable) error {
	start := r.Size()
	n, err := Read[uint32](r)
	if err != nil {
		return err
	}
	if !r.checkBounds(int(n) + sealTrailerSize) {
		r.Seek(start)
		return fmt.Errorf("%w: frame of %d bytes at offset %d, capacity %d", ErrOverflow, n, start, r.Cap())
	}
	body := r.off
	payload := r.data[body : body+int(n)]
	want := binary.LittleEndian.Uint64(r.data[body+int(n):])
	if got := xxhash.Sum64(payload); got != want {
		r.Seek(start)
		return fmt.Errorf("%w: got %016x, want %016x", ErrChecksum, got, want)
	}

	// Decode against a reader bounded to the payload so a mismatched shape
	// cannot run into the trailer.
	inner := NewReader(payload)
	if err := Unpack(inner, v); err != nil {
		r.Seek(start)
		return err
	}
	if inner.Size() != len(payload) {
		r.Seek(start)
		return fmt.Errorf("%w: decoded %d of %d bytes", ErrFrameLength, inner.Size(), len(payload))
	}
	r.advance(int(n) + sealTrailerSize)
	return nil
}
