package common

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedSizeMatchesSizeOf(t *testing.T) {
	values := []any{
		true, int8(-1), uint8(2), int16(-3), uint16(4), int32(-5), uint32(6),
		int64(-7), uint64(8), float32(9.5), float64(-10.25),
	}
	for _, v := range values {
		k := reflect.TypeOf(v).Kind()
		require.True(t, IsFixedKind(k), "%T", v)
		assert.Equal(t, FixedSize(k), SizeOf(v), "%T", v)
	}
	assert.Equal(t, -1, SizeOf("abc"))
	assert.Equal(t, -1, SizeOf(1))
	assert.False(t, IsFixedKind(reflect.Int))
	assert.Equal(t, -1, FixedSize(reflect.String))
}

func TestPutGetFixedLittleEndian(t *testing.T) {
	b := make([]byte, 8)
	require.True(t, PutFixed(b, uint32(0x01020304)))
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, b[:4])

	var u uint32
	require.True(t, GetFixed(b, &u))
	assert.Equal(t, uint32(0x01020304), u)

	require.True(t, PutFixed(b, math.Pi))
	var f float64
	require.True(t, GetFixed(b, &f))
	assert.Equal(t, math.Pi, f)

	require.True(t, PutFixed(b, int16(-2)))
	var i int16
	require.True(t, GetFixed(b, &i))
	assert.Equal(t, int16(-2), i)

	require.True(t, PutFixed(b, true))
	var ok bool
	require.True(t, GetFixed(b, &ok))
	assert.True(t, ok)
}

func TestPutGetFixedRejectsOtherTypes(t *testing.T) {
	b := make([]byte, 8)
	assert.False(t, PutFixed(b, "x"))
	assert.False(t, PutFixed(b, 7))
	var s string
	assert.False(t, GetFixed(b, &s))
	assert.False(t, GetFixed(b, uint8(1)))
}

func TestKindByName(t *testing.T) {
	k, ok := KindByName("byte")
	require.True(t, ok)
	assert.Equal(t, reflect.Uint8, k)
	k, ok = KindByName("rune")
	require.True(t, ok)
	assert.Equal(t, reflect.Int32, k)
	_, ok = KindByName("complex64")
	assert.False(t, ok)
}
