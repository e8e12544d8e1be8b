// Package header defines the fixed-layout on-disk records of the SPC "new"
// LSB file format: the 512-byte main header, the 32-byte subfile header, the
// 64-byte log block header and the 12-byte directory entry. All records
// encode little-endian at fixed offsets.
package header

import (
	stdbinary "encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/spectrakit/go-spc/internal/binary"
)

// Record and field sizes, from the format definition (spc.h).
const (
	MainSize      = 512
	SubSize       = 32
	LogHeaderSize = 64
	DirEntrySize  = 12

	// NewFormatVersion is the fversn byte for the new LSB-first format.
	NewFormatVersion = 0x4B

	resDescSize  = 9
	sourceSize   = 9
	spareSize    = 32
	memoSize     = 130
	axesSize     = 30
	methodSize   = 48
	reservedSize = 187
	logSpareSize = 44
)

// File type flag bits (ftflgs).
const (
	FlagSixteenPrec = 0x01 // 16-bit Y precision (never emitted)
	FlagExperExt    = 0x02 // fexper meaning extension (TCGRAM)
	FlagMulti       = 0x04 // multiple subfiles
	FlagRandomZ     = 0x08 // arbitrary Z values
	FlagOrderedZ    = 0x10 // ordered but uneven Z values
	FlagCustomAxes  = 0x20 // custom axis labels present
	FlagXYXY        = 0x40 // each subfile has its own X array
	FlagXValues     = 0x80 // explicit (uneven) X values stored
)

// Main is the 512-byte global file header. Field comments give the spc.h
// names. Points holds the per-trace point count, except in the XYXYXY
// layout where it holds the byte offset of the subfile directory.
type Main struct {
	FileType     uint8    // ftflgs
	Version      uint8    // fversn
	Experiment   uint8    // fexper
	Exponent     int8     // fexp, -128 for IEEE float data
	Points       uint32   // fnpts
	FirstX       float64  // ffirst
	LastX        float64  // flast
	Subfiles     uint32   // fnsub
	XUnits       uint8    // fxtype
	YUnits       uint8    // fytype
	ZUnits       uint8    // fztype
	PostDisp     uint8    // fpost
	Date         uint32   // fdate, packed per PackTime
	ResDesc      string   // fres
	SourceInstr  string   // fsource
	PeakPoint    uint16   // fpeakpt
	Memo         string   // fcmnt
	CustomAxes   []string // fcatxt, NUL-joined
	LogOffset    uint32   // flogoff
	ModFlags     uint32   // fmods
	ProcessCode  uint8    // fprocs
	CalibLevel   uint8    // flevel
	SampleInject uint16   // fsampin
	DataMul      float32  // ffactor
	MethodFile   string   // fmethod
	ZInc         float32  // fzinc
	WPlanes      uint32   // fwplanes
	WInc         float32  // fwinc
	WUnits       uint8    // fwtype
}

// Encode serializes the header to exactly MainSize bytes.
func (h *Main) Encode() ([]byte, error) {
	w := binary.NewWriter()
	w.WriteUint8(h.FileType)
	w.WriteUint8(h.Version)
	w.WriteUint8(h.Experiment)
	w.WriteInt8(h.Exponent)
	w.WriteUint32(h.Points)
	w.WriteFloat64(h.FirstX)
	w.WriteFloat64(h.LastX)
	w.WriteUint32(h.Subfiles)
	w.WriteUint8(h.XUnits)
	w.WriteUint8(h.YUnits)
	w.WriteUint8(h.ZUnits)
	w.WriteUint8(h.PostDisp)
	w.WriteUint32(h.Date)
	w.WriteFixedString(h.ResDesc, resDescSize)
	w.WriteFixedString(h.SourceInstr, sourceSize)
	w.WriteUint16(h.PeakPoint)
	w.WriteZeros(spareSize)
	w.WriteFixedString(h.Memo, memoSize)
	w.WriteFixedString(strings.Join(h.CustomAxes, "\x00"), axesSize)
	w.WriteUint32(h.LogOffset)
	w.WriteUint32(h.ModFlags)
	w.WriteUint8(h.ProcessCode)
	w.WriteUint8(h.CalibLevel)
	w.WriteUint16(h.SampleInject)
	w.WriteFloat32(h.DataMul)
	w.WriteFixedString(h.MethodFile, methodSize)
	w.WriteFloat32(h.ZInc)
	w.WriteUint32(h.WPlanes)
	w.WriteFloat32(h.WInc)
	w.WriteUint8(h.WUnits)
	w.WriteZeros(reservedSize)

	if w.Len() != MainSize {
		return nil, fmt.Errorf("main header encoded to %d bytes, want %d", w.Len(), MainSize)
	}
	return w.Bytes(), nil
}

// Byte offsets of main header fields, used by ParseMain and by layout tests.
const (
	offFileType    = 0
	offVersion     = 1
	offExperiment  = 2
	offExponent    = 3
	offPoints      = 4
	offFirstX      = 8
	offLastX       = 16
	offSubfiles    = 24
	offXUnits      = 28
	offYUnits      = 29
	offZUnits      = 30
	offPostDisp    = 31
	offDate        = 32
	offResDesc     = 36
	offSourceInstr = 45
	offPeakPoint   = 54
	offMemo        = 88
	offCustomAxes  = 218
	offLogOffset   = 248
	offModFlags    = 252
	offProcessCode = 256
	offCalibLevel  = 257
	offSampleInj   = 258
	offDataMul     = 260
	offMethodFile  = 264
	offZInc        = 312
	offWPlanes     = 316
	offWInc        = 320
	offWUnits      = 324
)

// ParseMain decodes a main header from the first MainSize bytes of data.
// Only the new LSB format (version 0x4B) is understood.
func ParseMain(data []byte) (*Main, error) {
	if len(data) < MainSize {
		return nil, binary.ErrShortData
	}
	if data[offVersion] != NewFormatVersion {
		return nil, fmt.Errorf("unsupported file version 0x%02X", data[offVersion])
	}
	le := stdbinary.LittleEndian
	h := &Main{
		FileType:     data[offFileType],
		Version:      data[offVersion],
		Experiment:   data[offExperiment],
		Exponent:     int8(data[offExponent]),
		Points:       le.Uint32(data[offPoints:]),
		FirstX:       math.Float64frombits(le.Uint64(data[offFirstX:])),
		LastX:        math.Float64frombits(le.Uint64(data[offLastX:])),
		Subfiles:     le.Uint32(data[offSubfiles:]),
		XUnits:       data[offXUnits],
		YUnits:       data[offYUnits],
		ZUnits:       data[offZUnits],
		PostDisp:     data[offPostDisp],
		Date:         le.Uint32(data[offDate:]),
		ResDesc:      cString(data[offResDesc : offResDesc+resDescSize]),
		SourceInstr:  cString(data[offSourceInstr : offSourceInstr+sourceSize]),
		PeakPoint:    le.Uint16(data[offPeakPoint:]),
		Memo:         cString(data[offMemo : offMemo+memoSize]),
		CustomAxes:   splitAxes(data[offCustomAxes : offCustomAxes+axesSize]),
		LogOffset:    le.Uint32(data[offLogOffset:]),
		ModFlags:     le.Uint32(data[offModFlags:]),
		ProcessCode:  data[offProcessCode],
		CalibLevel:   data[offCalibLevel],
		SampleInject: le.Uint16(data[offSampleInj:]),
		DataMul:      math.Float32frombits(le.Uint32(data[offDataMul:])),
		MethodFile:   cString(data[offMethodFile : offMethodFile+methodSize]),
		ZInc:         math.Float32frombits(le.Uint32(data[offZInc:])),
		WPlanes:      le.Uint32(data[offWPlanes:]),
		WInc:         math.Float32frombits(le.Uint32(data[offWInc:])),
		WUnits:       data[offWUnits],
	}
	return h, nil
}

// cString strips a fixed-size field at the first NUL.
func cString(b []byte) string {
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}

// splitAxes splits the NUL-joined fcatxt field into labels, dropping the
// zero padding after the last label.
func splitAxes(b []byte) []string {
	s := strings.TrimRight(string(b), "\x00")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\x00")
}
