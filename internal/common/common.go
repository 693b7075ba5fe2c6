package common

import (
	"encoding/binary"
	"math"
	"reflect"
)

// IsFixedKind reports whether k is a fixed-size primitive kind.
// Platform-sized int, uint and uintptr are not fixed.
func IsFixedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// FixedSize returns the byte width for fixed-size primitive kinds.
func FixedSize(k reflect.Kind) int {
	switch k {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return 8
	default:
		return -1
	}
}

// kindByName maps Go basic type names to kinds. byte and rune are aliases.
var kindByName = map[string]reflect.Kind{
	"bool":    reflect.Bool,
	"int8":    reflect.Int8,
	"int16":   reflect.Int16,
	"int32":   reflect.Int32,
	"rune":    reflect.Int32,
	"int64":   reflect.Int64,
	"uint8":   reflect.Uint8,
	"byte":    reflect.Uint8,
	"uint16":  reflect.Uint16,
	"uint32":  reflect.Uint32,
	"uint64":  reflect.Uint64,
	"float32": reflect.Float32,
	"float64": reflect.Float64,
	"string":  reflect.String,
	"int":     reflect.Int,
	"uint":    reflect.Uint,
	"uintptr": reflect.Uintptr,
}

// KindByName returns the kind of a Go basic type name.
func KindByName(name string) (reflect.Kind, bool) {
	k, ok := kindByName[name]
	return k, ok
}

// SizeOf returns the encoded width of a fixed primitive value or of the value
// a pointer to one refers to, or -1 for anything else.
func SizeOf(v any) int {
	switch v.(type) {
	case bool, int8, uint8, *bool, *int8, *uint8:
		return 1
	case int16, uint16, *int16, *uint16:
		return 2
	case int32, uint32, float32, *int32, *uint32, *float32:
		return 4
	case int64, uint64, float64, *int64, *uint64, *float64:
		return 8
	default:
		return -1
	}
}

// PutFixed encodes v little-endian into the front of b, which must be at
// least SizeOf(v) bytes long. It reports false if v is not a fixed primitive.
func PutFixed(b []byte, v any) bool {
	switch x := v.(type) {
	case bool:
		if x {
			b[0] = 1
		} else {
			b[0] = 0
		}
	case int8:
		b[0] = byte(x)
	case uint8:
		b[0] = x
	case int16:
		binary.LittleEndian.PutUint16(b, uint16(x))
	case uint16:
		binary.LittleEndian.PutUint16(b, x)
	case int32:
		binary.LittleEndian.PutUint32(b, uint32(x))
	case uint32:
		binary.LittleEndian.PutUint32(b, x)
	case int64:
		binary.LittleEndian.PutUint64(b, uint64(x))
	case uint64:
		binary.LittleEndian.PutUint64(b, x)
	case float32:
		binary.LittleEndian.PutUint32(b, math.Float32bits(x))
	case float64:
		binary.LittleEndian.PutUint64(b, math.Float64bits(x))
	default:
		return false
	}
	return true
}

// GetFixed decodes a little-endian primitive from b into the value p points
// to. It reports false if p is not a pointer to a fixed primitive.
func GetFixed(b []byte, p any) bool {
	switch x := p.(type) {
	case *bool:
		*x = b[0] != 0
	case *int8:
		*x = int8(b[0])
	case *uint8:
		*x = b[0]
	case *int16:
		*x = int16(binary.LittleEndian.Uint16(b))
	case *uint16:
		*x = binary.LittleEndian.Uint16(b)
	case *int32:
		*x = int32(binary.LittleEndian.Uint32(b))
	case *uint32:
		*x = binary.LittleEndian.Uint32(b)
	case *int64:
		*x = int64(binary.LittleEndian.Uint64(b))
	case *uint64:
		*x = binary.LittleEndian.Uint64(b)
	case *float32:
		*x = math.Float32frombits(binary.LittleEndian.Uint32(b))
	case *float64:
		*x = math.Float64frombits(binary.LittleEndian.Uint64(b))
	default:
		return false
	}
	return true
}
