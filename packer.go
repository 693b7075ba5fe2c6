package minmsg

import (
	"fmt"
	"reflect"
)

// Packable is implemented by values that encode and decode themselves
// against a cursor. Pack and Unpack must walk the same fields in the same
// order.
type Packable interface {
	Pack(w *Writer) error
	Unpack(r *Reader) error
}

// Shaper is implemented by values that expose their ordered field
// references. The returned slice is built fresh on each call and holds
// pointers into the value.
type Shaper interface {
	Shape() []any
}

// Pack encodes v with its own Pack routine.
func Pack(w *Writer, v Packable) error {
	if isNilPtr(v) {
		return ErrNilField
	}
	return v.Pack(w)
}

// Unpack decodes into v with its own Unpack routine.
func Unpack(r *Reader, v Packable) error {
	if isNilPtr(v) {
		return ErrNilField
	}
	return v.Unpack(r)
}

// PackFields encodes each field reference in order. A field is either a
// Packable or Shaper, which is delegated to, or a pointer to a string,
// []byte or Fixed primitive, which is written directly.
func PackFields(w *Writer, fields ...any) error {
	for i, f := range fields {
		if err := packField(w, f); err != nil {
			return fmt.Errorf("field %d (%T): %w", i, f, err)
		}
	}
	return nil
}

// UnpackFields decodes each field reference in order, assigning through the
// pointers. It accepts the same field kinds as PackFields.
func UnpackFields(r *Reader, fields ...any) error {
	for i, f := range fields {
		if err := unpackField(r, f); err != nil {
			return fmt.Errorf("field %d (%T): %w", i, f, err)
		}
	}
	return nil
}

func packField(w *Writer, f any) error {
	switch x := f.(type) {
	case Packable:
		if isNilPtr(x) {
			return ErrNilField
		}
		return x.Pack(w)
	case Shaper:
		if isNilPtr(x) {
			return ErrNilField
		}
		return PackFields(w, x.Shape()...)
	case *string:
		if x == nil {
			return ErrNilField
		}
		return w.WriteString(*x)
	case *[]byte:
		if x == nil {
			return ErrNilField
		}
		return w.WriteBytes(*x)
	case *bool:
		return packFixed(w, x)
	case *int8:
		return packFixed(w, x)
	case *int16:
		return packFixed(w, x)
	case *int32:
		return packFixed(w, x)
	case *int64:
		return packFixed(w, x)
	case *uint8:
		return packFixed(w, x)
	case *uint16:
		return packFixed(w, x)
	case *uint32:
		return packFixed(w, x)
	case *uint64:
		return packFixed(w, x)
	case *float32:
		return packFixed(w, x)
	case *float64:
		return packFixed(w, x)
	case nil:
		return ErrNilField
	default:
		return ErrUnsupported
	}
}

func unpackField(r *Reader, f any) error {
	switch x := f.(type) {
	case Packable:
		if isNilPtr(x) {
			return ErrNilField
		}
		return x.Unpack(r)
	case Shaper:
		if isNilPtr(x) {
			return ErrNilField
		}
		return UnpackFields(r, x.Shape()...)
	case *string:
		if x == nil {
			return ErrNilField
		}
		s, err := r.ReadString(0)
		if err != nil {
			return err
		}
		*x = s
		return nil
	case *[]byte:
		if x == nil {
			return ErrNilField
		}
		b, err := r.ReadBlob(0)
		if err != nil {
			return err
		}
		*x = b
		return nil
	case *bool:
		return unpackFixed(r, x)
	case *int8:
		return unpackFixed(r, x)
	case *int16:
		return unpackFixed(r, x)
	case *int32:
		return unpackFixed(r, x)
	case *int64:
		return unpackFixed(r, x)
	case *uint8:
		return unpackFixed(r, x)
	case *uint16:
		return unpackFixed(r, x)
	case *uint32:
		return unpackFixed(r, x)
	case *uint64:
		return unpackFixed(r, x)
	case *float32:
		return unpackFixed(r, x)
	case *float64:
		return unpackFixed(r, x)
	case nil:
		return ErrNilField
	default:
		return ErrUnsupported
	}
}

// isNilPtr reports whether v is nil or a typed nil pointer.
func isNilPtr(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func packFixed[T Fixed](w *Writer, p *T) error {
	if p == nil {
		return ErrNilField
	}
	return Write(w, *p)
}

func unpackFixed[T Fixed](r *Reader, p *T) error {
	if p == nil {
		return ErrNilField
	}
	v, err := Read[T](r)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
