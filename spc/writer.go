package spc

import (
	"errors"
	"io"
	"math"
	"os"

	"github.com/rs/zerolog"

	binpkg "github.com/spectrakit/go-spc/internal/binary"
	"github.com/spectrakit/go-spc/internal/fixedpoint"
	"github.com/spectrakit/go-spc/internal/header"
)

// Writer encodes spectra collections into SPC byte streams. A Writer is
// stateless between calls and safe for concurrent use as long as each call
// gets its own collection.
type Writer struct {
	log zerolog.Logger
}

// NewWriter creates a Writer.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write encodes the collection and writes the complete file to sink. The
// operation is all-or-nothing: nothing reaches the sink unless the whole
// stream assembled successfully.
func (w *Writer) Write(c *SpectraCollection, sink io.Writer) error {
	out, err := w.Encode(c)
	if err != nil {
		return err
	}
	_, err = sink.Write(out)
	return err
}

// WriteFile encodes the collection into a new file at path. The file is
// removed again if encoding or writing fails.
func (w *Writer) WriteFile(c *SpectraCollection, path string) error {
	out, err := w.Encode(c)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(out); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// Write encodes the collection with a default Writer.
func Write(c *SpectraCollection, sink io.Writer) error {
	return NewWriter().Write(c, sink)
}

// Encode assembles the complete SPC byte stream for the collection:
// validation, layout selection, per-subfile encoding, header assembly and
// the optional trailing log block, in that order. Output is deterministic
// for a given collection.
func (w *Writer) Encode(c *SpectraCollection) ([]byte, error) {
	if err := validate(c); err != nil {
		return nil, err
	}
	kind, err := selectLayout(c)
	if err != nil {
		return nil, err
	}
	n := len(c.Spectra)

	// Resolve the shared axis. A single spectrum's private X serves as
	// the file's X array; with no axis at all a single trace defaults to
	// even spacing over its point count.
	var sharedX []float64
	even := c.Even
	if kind != LayoutPerSpectrumXY {
		switch {
		case c.GlobalX != nil:
			sharedX = c.GlobalX
		case n == 1 && c.Spectra[0].X != nil:
			sharedX = c.Spectra[0].X
		case even == nil:
			even = &EvenSpacing{FirstX: 0, LastX: float64(len(c.Spectra[0].Y))}
		}
	}
	explicitX := sharedX != nil

	flags := fileTypeFlags(kind, explicitX)
	if len(c.CustomAxisLabels) > 0 {
		flags |= header.FlagCustomAxes
	}
	flags |= zOrderFlags(c)

	firstX, lastX := globalXRange(c, kind, sharedX, even)

	w.log.Debug().
		Stringer("layout", kind).
		Int("spectra", n).
		Bool("explicit_x", explicitX).
		Stringer("mode", c.Mode).
		Msg("selected layout")

	// Subfile data begins after the header and the shared X block.
	subStart := header.MainSize
	if explicitX && kind != LayoutPerSpectrumXY {
		subStart += 4 * len(sharedX)
	}

	subs := binpkg.NewWriter()
	dir := make([]header.DirEntry, 0, n)
	globalExp := fixedpoint.IEEEExponent
	for i := range c.Spectra {
		s := &c.Spectra[i]

		exp := fixedpoint.IEEEExponent
		if c.Mode == EncodingLegacy {
			if s.Exponent != nil {
				exp = int(*s.Exponent)
			} else {
				exp, err = fixedpoint.Exponent(s.Y)
				if err != nil {
					return nil, wrapOverflow(err, i)
				}
			}
			if exp > globalExp || globalExp == fixedpoint.IEEEExponent {
				globalExp = exp
			}
		}

		sub := header.Sub{
			Flags:    uint8(s.Flags),
			Exponent: int8(exp),
			Index:    uint16(i),
			StartZ:   float32(s.Z),
			EndZ:     float32(s.Z),
			WLevel:   float32(s.WLevel),
		}
		if kind == LayoutPerSpectrumXY {
			sub.Points = uint32(len(s.Y))
		}

		offset := subStart + subs.Len()
		sb, err := sub.Encode()
		if err != nil {
			return nil, &InternalError{Reason: err.Error()}
		}
		subs.WriteBytes(sb)

		// Private X arrays are always IEEE floats; only Y obeys the
		// encoding mode.
		if kind == LayoutPerSpectrumXY {
			for _, x := range s.X {
				subs.WriteFloat32(float32(x))
			}
		}
		if c.Mode == EncodingLegacy {
			mantissas, err := fixedpoint.Encode(s.Y, exp)
			if err != nil {
				return nil, wrapOverflow(err, i)
			}
			for _, m := range mantissas {
				subs.WriteInt32(m)
			}
		} else {
			for _, y := range s.Y {
				subs.WriteFloat32(float32(y))
			}
		}

		size := subStart + subs.Len() - offset
		dir = append(dir, header.DirEntry{
			Offset: uint32(offset),
			Size:   uint32(size),
			Z:      float32(s.Z),
		})
		w.log.Debug().Int("subfile", i).Int("exponent", exp).Int("bytes", size).Msg("encoded subfile")
	}

	// The directory (XYXYXY only) sits between the subfiles and the log
	// block; the header's points field becomes its offset.
	dirOffset := subStart + subs.Len()
	dirW := binpkg.NewWriter()
	if kind == LayoutPerSpectrumXY {
		for i := range dir {
			dir[i].EncodeTo(dirW)
		}
	}

	var pointsField uint32
	if kind == LayoutPerSpectrumXY {
		pointsField = uint32(dirOffset)
	} else {
		pointsField = uint32(len(c.Spectra[0].Y))
	}

	var logBytes []byte
	var logOffset uint32
	if !c.Log.empty() {
		text := c.Log.textBytes()
		lh := header.LogHeader{BinaryLen: len(c.Log.Data), TextLen: len(text)}
		lb, err := lh.Encode()
		if err != nil {
			return nil, &InternalError{Reason: err.Error()}
		}
		logOffset = uint32(dirOffset + dirW.Len())
		logBytes = make([]byte, 0, lh.BlockSize())
		logBytes = append(logBytes, lb...)
		logBytes = append(logBytes, c.Log.Data...)
		logBytes = append(logBytes, text...)
	}

	zinc := c.ZIncrement
	if zinc == 0 {
		zinc = 1.0
	}

	h := &header.Main{
		FileType:    flags,
		Version:     header.NewFormatVersion,
		Experiment:  uint8(c.Technique),
		Exponent:    int8(globalExp),
		Points:      pointsField,
		FirstX:      firstX,
		LastX:       lastX,
		Subfiles:    uint32(n),
		XUnits:      uint8(c.XUnits),
		YUnits:      uint8(c.YUnits),
		ZUnits:      uint8(c.ZUnits),
		Date:        header.PackTime(c.Timestamp),
		ResDesc:     c.ResolutionDesc,
		SourceInstr: c.SourceInstrument,
		PeakPoint:   c.PeakPoint,
		Memo:        c.Memo,
		CustomAxes:  c.CustomAxisLabels,
		LogOffset:   logOffset,
		ModFlags:    uint32(c.ModFlags),
		ProcessCode: uint8(c.ProcessCode),
		MethodFile:  c.MethodFile,
		ZInc:        float32(zinc),
		WPlanes:     c.WPlaneCount,
		WInc:        float32(c.WPlaneIncrement),
		WUnits:      uint8(c.WUnits),
	}
	hb, err := h.Encode()
	if err != nil {
		return nil, &InternalError{Reason: err.Error()}
	}

	out := binpkg.NewWriter()
	out.WriteBytes(hb)
	if explicitX && kind != LayoutPerSpectrumXY {
		for _, x := range sharedX {
			out.WriteFloat32(float32(x))
		}
	}
	out.WriteBytes(subs.Bytes())
	out.WriteBytes(dirW.Bytes())
	out.WriteBytes(logBytes)

	w.log.Debug().Int("total_bytes", out.Len()).Uint32("log_offset", logOffset).Msg("assembled spc stream")
	return out.Bytes(), nil
}

// globalXRange computes the header's first/last X: the extremes of the
// shared axis, the union of private axis ranges, or the declared even
// spacing bounds.
func globalXRange(c *SpectraCollection, kind LayoutKind, sharedX []float64, even *EvenSpacing) (float64, float64) {
	if kind == LayoutPerSpectrumXY {
		first, last := math.Inf(1), math.Inf(-1)
		for i := range c.Spectra {
			for _, x := range c.Spectra[i].X {
				first = math.Min(first, x)
				last = math.Max(last, x)
			}
		}
		if first > last { // all axes empty
			return 0, 0
		}
		return first, last
	}
	if sharedX != nil {
		first, last := math.Inf(1), math.Inf(-1)
		for _, x := range sharedX {
			first = math.Min(first, x)
			last = math.Max(last, x)
		}
		if first > last {
			return 0, 0
		}
		return first, last
	}
	return even.FirstX, even.LastX
}

// zOrderFlags derives the Z ordering flag bits from the subfile Z values:
// evenly spaced values need no flag (the header's Z increment covers them),
// monotonic but uneven values are "ordered", anything else is "random".
func zOrderFlags(c *SpectraCollection) uint8 {
	if len(c.Spectra) < 2 {
		return 0
	}
	zs := make([]float64, len(c.Spectra))
	allZero := true
	for i := range c.Spectra {
		zs[i] = c.Spectra[i].Z
		if zs[i] != 0 {
			allZero = false
		}
	}
	if allZero {
		return 0
	}
	step := zs[1] - zs[0]
	evenSpaced := true
	monotonic := true
	for i := 1; i < len(zs); i++ {
		d := zs[i] - zs[i-1]
		if d != step {
			evenSpaced = false
		}
		if d <= 0 {
			monotonic = false
		}
	}
	switch {
	case evenSpaced:
		return 0
	case monotonic:
		return header.FlagOrderedZ
	default:
		return header.FlagRandomZ
	}
}

// wrapOverflow tags a fixed-point encoding failure with its subfile index.
func wrapOverflow(err error, subfile int) error {
	var oe *fixedpoint.OverflowError
	if errors.As(err, &oe) {
		return &ExponentOverflowError{Subfile: subfile, Sample: oe.SampleIndex, Exponent: oe.Exponent}
	}
	return err
}
