package binary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterLittleEndian(t *testing.T) {
	w := NewWriter()
	w.WriteUint16(0x1234)
	w.WriteUint32(0xAABBCCDD)
	require.Equal(t, 6, w.Len())
	assert.Equal(t, []byte{0x34, 0x12, 0xDD, 0xCC, 0xBB, 0xAA}, w.Bytes())
}

func TestWriterSignedValues(t *testing.T) {
	w := NewWriter()
	w.WriteInt8(-128)
	w.WriteInt32(-1)
	assert.Equal(t, []byte{0x80, 0xFF, 0xFF, 0xFF, 0xFF}, w.Bytes())
}

func TestWriterFloats(t *testing.T) {
	w := NewWriter()
	w.WriteFloat32(1.0)
	w.WriteFloat64(-2.5)

	r := NewReader(w.Bytes())
	f32, err := r.ReadFloat32()
	require.NoError(t, err)
	assert.Equal(t, float32(1.0), f32)
	f64, err := r.ReadFloat64()
	require.NoError(t, err)
	assert.Equal(t, -2.5, f64)
}

func TestWriteFixedString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		size int
		want []byte
	}{
		{"padded", "ab", 4, []byte{'a', 'b', 0, 0}},
		{"exact", "abcd", 4, []byte{'a', 'b', 'c', 0}},
		{"truncated", "abcdef", 4, []byte{'a', 'b', 'c', 0}},
		{"empty", "", 3, []byte{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter()
			w.WriteFixedString(tt.in, tt.size)
			assert.Equal(t, tt.want, w.Bytes())
		})
	}
}

func TestWriteZeros(t *testing.T) {
	w := NewWriter()
	w.WriteZeros(3)
	w.WriteZeros(0)
	w.WriteZeros(-1)
	assert.Equal(t, []byte{0, 0, 0}, w.Bytes())
}
