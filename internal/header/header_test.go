package header

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	binpkg "github.com/spectrakit/go-spc/internal/binary"
)

func TestMainEncodeSize(t *testing.T) {
	h := &Main{Version: NewFormatVersion}
	b, err := h.Encode()
	require.NoError(t, err)
	assert.Len(t, b, MainSize)
}

func TestMainFieldOffsets(t *testing.T) {
	h := &Main{
		FileType:    FlagMulti | FlagXValues,
		Version:     NewFormatVersion,
		Exponent:    -128,
		Points:      512,
		FirstX:      100.5,
		LastX:       3600.25,
		Subfiles:    3,
		XUnits:      13, // Raman shift
		YUnits:      4,  // counts
		ResDesc:     "4cm-1",
		SourceInstr: "FTIR",
		Memo:        "calibration run",
		LogOffset:   4096,
	}
	b, err := h.Encode()
	require.NoError(t, err)

	le := binary.LittleEndian
	assert.Equal(t, uint8(FlagMulti|FlagXValues), b[0])
	assert.Equal(t, uint8(0x4B), b[1])
	assert.Equal(t, uint8(0x80), b[3])
	assert.Equal(t, uint32(512), le.Uint32(b[4:]))
	assert.Equal(t, uint32(3), le.Uint32(b[24:]))
	assert.Equal(t, uint8(13), b[28])
	assert.Equal(t, uint8(4), b[29])
	assert.Equal(t, byte('4'), b[36])
	assert.Equal(t, byte('F'), b[45])
	assert.Equal(t, byte('c'), b[88])
	assert.Equal(t, uint32(4096), le.Uint32(b[248:]))

	// Reserved tail stays zeroed.
	for i := 325; i < MainSize; i++ {
		require.Zero(t, b[i], "reserved byte %d", i)
	}
}

func TestMainRoundTrip(t *testing.T) {
	in := &Main{
		FileType:    FlagXValues,
		Version:     NewFormatVersion,
		Experiment:  11,
		Exponent:    9,
		Points:      128,
		FirstX:      -1.5,
		LastX:       98.75,
		Subfiles:    1,
		XUnits:      1,
		YUnits:      2,
		ZUnits:      4,
		Date:        PackTime(time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC)),
		ResDesc:     "res",
		SourceInstr: "instr",
		Memo:        "memo text",
		CustomAxes:  []string{"wavenumber", "counts"},
		LogOffset:   9000,
		ZInc:        1.0,
		WUnits:      5,
	}
	b, err := in.Encode()
	require.NoError(t, err)

	out, err := ParseMain(b)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParseMainRejectsOldFormat(t *testing.T) {
	b := make([]byte, MainSize)
	b[1] = 0x4D // pre-"new" MSB version byte
	_, err := ParseMain(b)
	assert.Error(t, err)

	_, err = ParseMain(b[:100])
	assert.Error(t, err)
}

func TestSubEncode(t *testing.T) {
	s := &Sub{
		Flags:    SubFlagNoPeakTable,
		Exponent: -128,
		Index:    2,
		StartZ:   1.5,
		EndZ:     1.5,
		Points:   64,
		WLevel:   0.25,
	}
	b, err := s.Encode()
	require.NoError(t, err)
	require.Len(t, b, SubSize)

	le := binary.LittleEndian
	assert.Equal(t, uint8(SubFlagNoPeakTable), b[0])
	assert.Equal(t, uint8(0x80), b[1])
	assert.Equal(t, uint16(2), le.Uint16(b[2:]))
	assert.Equal(t, uint32(64), le.Uint32(b[16:]))

	out, err := ParseSub(b)
	require.NoError(t, err)
	assert.Equal(t, s, out)
}

func TestLogHeaderEncode(t *testing.T) {
	l := &LogHeader{BinaryLen: 10, TextLen: 100}
	b, err := l.Encode()
	require.NoError(t, err)
	require.Len(t, b, LogHeaderSize)

	le := binary.LittleEndian
	assert.Equal(t, uint32(174), le.Uint32(b[0:]))  // 64+10+100
	assert.Equal(t, uint32(0), le.Uint32(b[4:]))    // rounds down to 0 blocks
	assert.Equal(t, uint32(74), le.Uint32(b[8:]))   // text offset
	assert.Equal(t, uint32(10), le.Uint32(b[12:]))  // binary length
	assert.Equal(t, uint32(0), le.Uint32(b[16:]))   // disk length
}

func TestLogHeaderMemoryRounding(t *testing.T) {
	l := &LogHeader{TextLen: 3000}
	b, err := l.Encode()
	require.NoError(t, err)
	assert.Equal(t, uint32(4096), binary.LittleEndian.Uint32(b[4:]))
}

func TestPackTime(t *testing.T) {
	ts := time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC)
	packed := PackTime(ts)
	assert.Equal(t, ts, UnpackTime(packed))

	assert.Zero(t, PackTime(time.Time{}))
	assert.True(t, UnpackTime(0).IsZero())
}

func TestDirEntrySize(t *testing.T) {
	// Each entry is 12 bytes, one per subfile.
	w := binpkg.NewWriter()
	e := &DirEntry{Offset: 544, Size: 160, Z: 2.0}
	e.EncodeTo(w)
	require.Equal(t, DirEntrySize, w.Len())

	le := binary.LittleEndian
	assert.Equal(t, uint32(544), le.Uint32(w.Bytes()[0:]))
	assert.Equal(t, uint32(160), le.Uint32(w.Bytes()[4:]))
}
