// Package binary provides low-level little-endian I/O for SPC file encoding
// and decoding.
package binary

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Writer accumulates an SPC byte stream in memory. The format is fully
// little-endian, and the file header depends on the total size of everything
// that follows it, so the stream is assembled in buffers before any byte
// reaches the caller's sink.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter creates an empty writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Bytes returns the accumulated bytes. The slice is valid until the next
// write.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// WriteBytes appends raw bytes.
func (w *Writer) WriteBytes(data []byte) {
	w.buf.Write(data)
}

// WriteUint8 writes an unsigned 8-bit integer.
func (w *Writer) WriteUint8(v uint8) {
	w.buf.WriteByte(v)
}

// WriteInt8 writes a signed 8-bit integer.
func (w *Writer) WriteInt8(v int8) {
	w.buf.WriteByte(byte(v))
}

// WriteUint16 writes an unsigned 16-bit integer.
func (w *Writer) WriteUint16(v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteUint32 writes an unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteInt32 writes a signed 32-bit integer.
func (w *Writer) WriteInt32(v int32) {
	w.WriteUint32(uint32(v))
}

// WriteFloat32 writes an IEEE-754 single-precision float.
func (w *Writer) WriteFloat32(v float32) {
	w.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 writes an IEEE-754 double-precision float.
func (w *Writer) WriteFloat64(v float64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	w.buf.Write(buf[:])
}

// WriteZeros writes n zero bytes.
func (w *Writer) WriteZeros(n int) {
	if n <= 0 {
		return
	}
	w.buf.Write(make([]byte, n))
}

// WriteFixedString writes s into a field of exactly size bytes. Shorter
// strings are zero-padded; longer strings are truncated with the final byte
// forced to NUL, since SPC string fields are null terminated.
func (w *Writer) WriteFixedString(s string, size int) {
	field := make([]byte, size)
	copy(field, s)
	if len(s) >= size {
		field[size-1] = 0
	}
	w.buf.Write(field)
}
