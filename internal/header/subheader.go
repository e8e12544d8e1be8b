package header

import (
	stdbinary "encoding/binary"
	"fmt"
	"math"

	"github.com/spectrakit/go-spc/internal/binary"
)

// Subfile flag bits (subflgs).
const (
	SubFlagChanged     = 0x01 // subfile changed
	SubFlagNoPeakTable = 0x08 // peak table should not be used
	SubFlagModified    = 0x80 // modified by arithmetic
)

// Sub is the 32-byte header preceding each subfile's data block. Field
// comments give the spc.h names. Points is only meaningful in the XYXYXY
// layout; elsewhere it is written as zero.
type Sub struct {
	Flags    uint8   // subflgs
	Exponent int8    // subexp, -128 for IEEE float data
	Index    uint16  // subindx
	StartZ   float32 // subtime
	EndZ     float32 // subnext
	Noise    float32 // subnois, null per the format
	Points   uint32  // subnpts
	Scans    uint32  // subscan, null per the format
	WLevel   float32 // subwlevel
}

// Encode serializes the subheader to exactly SubSize bytes.
func (s *Sub) Encode() ([]byte, error) {
	w := binary.NewWriter()
	w.WriteUint8(s.Flags)
	w.WriteInt8(s.Exponent)
	w.WriteUint16(s.Index)
	w.WriteFloat32(s.StartZ)
	w.WriteFloat32(s.EndZ)
	w.WriteFloat32(s.Noise)
	w.WriteUint32(s.Points)
	w.WriteUint32(s.Scans)
	w.WriteFloat32(s.WLevel)
	w.WriteZeros(4) // subresv

	if w.Len() != SubSize {
		return nil, fmt.Errorf("subheader encoded to %d bytes, want %d", w.Len(), SubSize)
	}
	return w.Bytes(), nil
}

// ParseSub decodes a subheader from the first SubSize bytes of data.
func ParseSub(data []byte) (*Sub, error) {
	if len(data) < SubSize {
		return nil, binary.ErrShortData
	}
	le := stdbinary.LittleEndian
	return &Sub{
		Flags:    data[0],
		Exponent: int8(data[1]),
		Index:    le.Uint16(data[2:]),
		StartZ:   math.Float32frombits(le.Uint32(data[4:])),
		EndZ:     math.Float32frombits(le.Uint32(data[8:])),
		Noise:    math.Float32frombits(le.Uint32(data[12:])),
		Points:   le.Uint32(data[16:]),
		Scans:    le.Uint32(data[20:]),
		WLevel:   math.Float32frombits(le.Uint32(data[24:])),
	}, nil
}
