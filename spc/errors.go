// Package spc encodes in-memory spectroscopic data into the Thermo Galactic
// SPC binary file format (new LSB variant, version 0x4B).
//
// A caveat on the XYXYXY layout (per-spectrum X arrays): files of this shape
// are written per the primary format specification and parse correctly in
// most readers, but at least one commercial parser rejects the layout as
// invalid. Prefer a shared X axis when the consuming software is unknown.
package spc

import (
	"errors"
	"fmt"
)

// ErrEmptyCollection is returned when a collection contains no spectra.
var ErrEmptyCollection = errors.New("collection contains no spectra")

// ShapeMismatchError reports a spectrum whose Y length disagrees with its
// axis length.
type ShapeMismatchError struct {
	Index   int // offending spectrum
	AxisLen int // expected length (private or global X)
	YLen    int // actual Y length
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("spectrum %d: y length %d does not match x length %d", e.Index, e.YLen, e.AxisLen)
}

// MissingAxisError reports a spectrum with no private X array in a
// collection that declares neither a global nor an evenly spaced axis.
type MissingAxisError struct {
	Index int
}

func (e *MissingAxisError) Error() string {
	return fmt.Sprintf("spectrum %d: no x axis available (no private, global or evenly spaced axis)", e.Index)
}

// InconsistentLayoutError reports a collection mixing spectra with and
// without private X arrays. A collection must be homogeneously one layout.
type InconsistentLayoutError struct {
	Index int // first spectrum differing from spectrum 0
}

func (e *InconsistentLayoutError) Error() string {
	return fmt.Sprintf("spectrum %d: private x presence differs from spectrum 0; collections must use one layout", e.Index)
}

// ExponentOverflowError reports a subfile whose dynamic range cannot be
// represented in the legacy fixed-point encoding.
type ExponentOverflowError struct {
	Subfile  int
	Sample   int // index of the offending sample within the subfile
	Exponent int // the exponent that could not be applied
}

func (e *ExponentOverflowError) Error() string {
	return fmt.Sprintf("subfile %d: sample %d not representable in fixed point with exponent %d", e.Subfile, e.Sample, e.Exponent)
}

// InternalError reports a condition that upstream validation should have
// made unreachable.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return "internal inconsistency: " + e.Reason
}
