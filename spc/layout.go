package spc

import (
	"github.com/spectrakit/go-spc/internal/header"
)

// LayoutKind is the on-disk arrangement of X and Y arrays across subfiles.
// It is derived from the collection's shape, never chosen directly.
type LayoutKind int

const (
	// LayoutSingleY is a single trace with a shared (explicit or evenly
	// spaced) X axis.
	LayoutSingleY LayoutKind = iota

	// LayoutSharedXMultiY is many Y-only traces of equal length over one
	// shared X axis.
	LayoutSharedXMultiY

	// LayoutPerSpectrumXY gives every trace its own X array; lengths may
	// differ between traces (the XYXYXY layout).
	LayoutPerSpectrumXY
)

func (k LayoutKind) String() string {
	switch k {
	case LayoutSingleY:
		return "single-y"
	case LayoutSharedXMultiY:
		return "shared-x-multi-y"
	case LayoutPerSpectrumXY:
		return "per-spectrum-xy"
	default:
		return "unknown"
	}
}

// selectLayout derives the layout from a validated collection. The shapes
// that would make the decision ambiguous are rejected by validate, so any
// fallthrough here is an internal inconsistency.
func selectLayout(c *SpectraCollection) (LayoutKind, error) {
	n := len(c.Spectra)
	switch {
	case n == 0:
		return 0, &InternalError{Reason: "layout selection on empty collection"}
	case n == 1:
		return LayoutSingleY, nil
	}

	private := 0
	for i := range c.Spectra {
		if c.hasPrivateX(i) {
			private++
		}
	}
	switch private {
	case 0:
		return LayoutSharedXMultiY, nil
	case n:
		return LayoutPerSpectrumXY, nil
	default:
		return 0, &InternalError{Reason: "mixed private x presence survived validation"}
	}
}

// fileTypeFlags maps a layout to its header flag bits. explicitX reports
// whether an explicit X block is stored (as opposed to an evenly spaced
// implicit axis). This is the single source of the flag-bit mapping; the
// header builder and the tests both go through it.
func fileTypeFlags(kind LayoutKind, explicitX bool) uint8 {
	var flags uint8
	switch kind {
	case LayoutSharedXMultiY:
		flags |= header.FlagMulti
	case LayoutPerSpectrumXY:
		// Per-subfile X implies explicit X values and multiple traces.
		return header.FlagMulti | header.FlagXValues | header.FlagXYXY
	}
	if explicitX {
		flags |= header.FlagXValues
	}
	return flags
}
