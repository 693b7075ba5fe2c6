package minmsg

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func BenchmarkPackFlat(b *testing.B) {
	in := sampleFlat()
	buf := make([]byte, flatSize)
	w := NewWriter(buf)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.Seek(0)
		_ = Pack(w, &in)
	}
}

func BenchmarkUnpackFlat(b *testing.B) {
	in := sampleFlat()
	buf := make([]byte, flatSize)
	require.NoError(b, Pack(NewWriter(buf), &in))
	var out flatStruct
	r := NewReader(buf)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.Seek(0)
		_ = Unpack(r, &out)
	}
	require.Equal(b, in, out)
}

func BenchmarkPackNested(b *testing.B) {
	in := nestedStruct{A: "Test String", B: sampleFlat()}
	buf := make([]byte, 128)
	w := NewWriter(buf)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.Seek(0)
		_ = Pack(w, &in)
	}
}

func BenchmarkPackSealed(b *testing.B) {
	in := nestedStruct{A: "Test String", B: sampleFlat()}
	buf := make([]byte, 128)
	w := NewWriter(buf)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.Seek(0)
		_ = PackSealed(w, &in)
	}
}

func BenchmarkWriteUint64(b *testing.B) {
	w := NewWriter(make([]byte, 8))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.Seek(0)
		_ = Write(w, uint64(i))
	}
}

func BenchmarkYaml(b *testing.B) {
	in := sampleFlat()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = yaml.Marshal(in)
	}
}
