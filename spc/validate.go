package spc

// validate checks a collection's shape before any byte is encoded. Checks
// are by array length, not byte size; length is the property the layouts
// actually constrain.
func validate(c *SpectraCollection) error {
	n := len(c.Spectra)
	if n == 0 {
		return ErrEmptyCollection
	}

	// Private X presence must be homogeneous across the collection.
	first := c.hasPrivateX(0)
	for i := 1; i < n; i++ {
		if c.hasPrivateX(i) != first {
			return &InconsistentLayoutError{Index: i}
		}
	}

	if first {
		// Every spectrum carries its own axis; each must agree with
		// its own Y.
		for i := range c.Spectra {
			s := &c.Spectra[i]
			if len(s.X) != len(s.Y) {
				return &ShapeMismatchError{Index: i, AxisLen: len(s.X), YLen: len(s.Y)}
			}
		}
		return nil
	}

	// Y-only spectra rely on a shared axis: an explicit global X, a
	// declared even spacing, or (single trace only) the default even
	// axis over the point count.
	switch {
	case c.GlobalX != nil:
		for i := range c.Spectra {
			if len(c.Spectra[i].Y) != len(c.GlobalX) {
				return &ShapeMismatchError{Index: i, AxisLen: len(c.GlobalX), YLen: len(c.Spectra[i].Y)}
			}
		}
	case c.Even != nil, n == 1:
		// Implicit axis; multifile traces must still be rectangular
		// since they share one point count.
		want := len(c.Spectra[0].Y)
		for i := 1; i < n; i++ {
			if len(c.Spectra[i].Y) != want {
				return &ShapeMismatchError{Index: i, AxisLen: want, YLen: len(c.Spectra[i].Y)}
			}
		}
	default:
		// Multiple Y-only traces and nothing to derive an axis from.
		return &MissingAxisError{Index: 0}
	}
	return nil
}
