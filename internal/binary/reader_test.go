package binary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderFields(t *testing.T) {
	w := NewWriter()
	w.WriteUint8(7)
	w.WriteInt8(-128)
	w.WriteUint16(512)
	w.WriteInt32(-42)
	w.WriteFixedString("res", 9)

	r := NewReader(w.Bytes())

	u8, err := r.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(7), u8)

	i8, err := r.ReadInt8()
	require.NoError(t, err)
	assert.Equal(t, int8(-128), i8)

	u16, err := r.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(512), u16)

	i32, err := r.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(-42), i32)

	s, err := r.ReadFixedString(9)
	require.NoError(t, err)
	assert.Equal(t, "res", s)

	assert.Equal(t, 0, r.Remaining())
}

func TestReaderShortData(t *testing.T) {
	r := NewReader([]byte{1, 2})
	_, err := r.ReadUint32()
	assert.ErrorIs(t, err, ErrShortData)

	// Position must not advance on a failed read.
	assert.Equal(t, 0, r.Pos())
}

func TestReaderSeekAndSkip(t *testing.T) {
	r := NewReader([]byte{0, 0, 0, 0, 0xAA})
	require.NoError(t, r.Seek(4))
	b, err := r.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xAA), b)

	assert.ErrorIs(t, r.Seek(6), ErrShortData)
	assert.ErrorIs(t, r.Skip(1), ErrShortData)
}
