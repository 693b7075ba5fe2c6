// Package minmsg packs values into a caller-owned, fixed-capacity byte buffer
// and unpacks them again.
//
// # Wire format
//
// The format is positional and carries no field names or tags:
//
//	fixed primitive   little-endian, 1/2/4/8 bytes, no padding
//	string, []byte    [uint16 length][length bytes]
//	nested value      its fields' encodings, in declared order
//
// A message is the concatenation of the root value's fields. Framing is the
// caller's business; Writer.Size reports the bytes produced so far. Sealed
// frames (PackSealed/UnpackSealed) add an optional length header and digest.
//
// # Cursors
//
// Writer and Reader borrow the slice they are built around and never grow
// it. Every checked operation that fails returns an error wrapping
// ErrOverflow, ErrStringTooLarge, ErrShortDestination or ErrTooLong and leaves
// the offset where it was. Neither type is safe for concurrent use.
//
// # Packable values
//
// A type takes part in nested packing by implementing Packable, or by
// exposing its ordered field references through Shaper:
//
//	type Point struct {
//		X, Y int32
//		Label string
//	}
//
//	func (p *Point) Shape() []any { return []any{&p.X, &p.Y, &p.Label} }
//	func (p *Point) Pack(w *minmsg.Writer) error { return minmsg.PackFields(w, p.Shape()...) }
//	func (p *Point) Unpack(r *minmsg.Reader) error { return minmsg.UnpackFields(r, p.Shape()...) }
//
// The minmsggen command writes these methods from the struct declaration.
// Pack and Unpack must see the same fields in the same order; a mismatch
// silently desynchronizes decoding.
//
// Big-endian targets are not supported and fail to build.
package minmsg
