package spc

import "time"

// Spectrum is one logical trace. Y is required. X is the trace's private
// axis and may only be set when every spectrum in the collection carries one
// (the XYXYXY layout), or on a single-spectrum collection where it acts as
// the file's X array.
type Spectrum struct {
	Y []float64
	X []float64

	// Z is the subfile's position along the third axis, typically time.
	Z float64

	// WLevel is the subfile's W plane value, meaningful only when the
	// collection declares W planes.
	WLevel float64

	// Exponent overrides the derived fixed-point exponent for this
	// subfile in legacy mode. Ignored in IEEE mode.
	Exponent *int8

	// Flags carries subfile flag bits, e.g. SubNoPeakTable to disable
	// peak picking for this trace.
	Flags SubFlag
}

// Points returns the number of samples in the trace.
func (s *Spectrum) Points() int {
	return len(s.Y)
}

// EvenSpacing declares an implicit, evenly spaced X axis running from
// FirstX to LastX. No X block is written; readers reconstruct the axis from
// the header.
type EvenSpacing struct {
	FirstX float64
	LastX  float64
}

// LogEntry is one key/value line of the trailing log block text.
type LogEntry struct {
	Key   string
	Value string
}

// LogBlock is the optional trailing metadata block: a free-form binary
// region followed by text. Text may be supplied pre-serialized via Text, or
// as ordered Entries rendered one "key = value" line each.
type LogBlock struct {
	Data    []byte
	Entries []LogEntry
	Text    string
}

// SpectraCollection is the writer input: one or more spectra, the axis
// configuration, the Y encoding mode and the file-level metadata. Spectrum
// order is preserved and becomes subfile order on disk.
type SpectraCollection struct {
	// Spectra holds the traces, one subfile each.
	Spectra []Spectrum

	// GlobalX is the shared X axis for spectra without private arrays.
	// Nil when spectra carry private axes or the axis is evenly spaced.
	GlobalX []float64

	// Even declares an implicit evenly spaced axis when no explicit X
	// values exist. Ignored if GlobalX or private axes are set. A
	// single-spectrum collection with no axis at all defaults to an even
	// axis from 0 to its point count.
	Even *EvenSpacing

	// Mode selects the Y sample representation. X arrays are always
	// written as IEEE floats regardless of this setting.
	Mode EncodingMode

	XUnits XUnit
	YUnits YUnit
	ZUnits XUnit
	WUnits XUnit

	Technique TechType

	// Timestamp is the collection date stamped into the header. The zero
	// time writes a null date.
	Timestamp time.Time

	// ResolutionDesc and SourceInstrument are short description strings
	// (9 bytes on disk, truncated if longer).
	ResolutionDesc   string
	SourceInstrument string

	// Memo is the free-text comment field (130 bytes on disk).
	Memo string

	// CustomAxisLabels hold custom axis names; setting them raises the
	// custom-axes flag bit.
	CustomAxisLabels []string

	ModFlags    ModFlag
	ProcessCode ProcessCode
	MethodFile  string

	// PeakPoint is the interferogram peak point number, used with
	// Y units of interferogram type.
	PeakPoint uint16

	// ZIncrement is the Z spacing between subfiles; zero means the
	// format default of 1.
	ZIncrement float64

	// W plane configuration; zero WPlaneCount means no W dimension.
	WPlaneCount     uint32
	WPlaneIncrement float64

	// Log is the optional trailing metadata block.
	Log *LogBlock
}

// hasPrivateX reports whether spectrum i carries its own X array.
func (c *SpectraCollection) hasPrivateX(i int) bool {
	return c.Spectra[i].X != nil
}
