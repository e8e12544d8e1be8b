package spc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmptyCollection(t *testing.T) {
	err := validate(&SpectraCollection{})
	assert.ErrorIs(t, err, ErrEmptyCollection)
}

func TestValidateShapeMismatchGlobalX(t *testing.T) {
	c := &SpectraCollection{
		GlobalX: []float64{1, 2, 3},
		Spectra: []Spectrum{
			{Y: []float64{1, 2, 3}},
			{Y: []float64{1, 2}},
		},
	}
	var sme *ShapeMismatchError
	err := validate(c)
	require.ErrorAs(t, err, &sme)
	assert.Equal(t, 1, sme.Index)
	assert.Equal(t, 3, sme.AxisLen)
	assert.Equal(t, 2, sme.YLen)
}

func TestValidateShapeMismatchPrivateX(t *testing.T) {
	c := &SpectraCollection{
		Spectra: []Spectrum{
			{X: []float64{1, 2}, Y: []float64{1, 2}},
			{X: []float64{1, 2, 3}, Y: []float64{1, 2}},
		},
	}
	var sme *ShapeMismatchError
	err := validate(c)
	require.ErrorAs(t, err, &sme)
	assert.Equal(t, 1, sme.Index)
}

func TestValidateInconsistentLayout(t *testing.T) {
	c := &SpectraCollection{
		GlobalX: []float64{1, 2},
		Spectra: []Spectrum{
			{X: []float64{1, 2}, Y: []float64{1, 2}},
			{Y: []float64{1, 2}},
		},
	}
	var ile *InconsistentLayoutError
	err := validate(c)
	require.ErrorAs(t, err, &ile)
	assert.Equal(t, 1, ile.Index)
}

func TestValidateMissingAxis(t *testing.T) {
	c := &SpectraCollection{
		Spectra: []Spectrum{
			{Y: []float64{1, 2}},
			{Y: []float64{1, 2}},
		},
	}
	var mae *MissingAxisError
	err := validate(c)
	assert.ErrorAs(t, err, &mae)
}

func TestValidateSingleSpectrumNeedsNoAxis(t *testing.T) {
	c := &SpectraCollection{
		Spectra: []Spectrum{{Y: []float64{1, 2, 3}}},
	}
	assert.NoError(t, validate(c))
}

func TestValidateEvenSpacingSuppliesAxis(t *testing.T) {
	c := &SpectraCollection{
		Even: &EvenSpacing{FirstX: 100, LastX: 200},
		Spectra: []Spectrum{
			{Y: []float64{1, 2, 3}},
			{Y: []float64{4, 5, 6}},
		},
	}
	assert.NoError(t, validate(c))

	// Even spacing still requires rectangular traces.
	c.Spectra[1].Y = []float64{4, 5}
	var sme *ShapeMismatchError
	assert.ErrorAs(t, validate(c), &sme)
}

func TestValidatePerSpectrumLengthsMayDiffer(t *testing.T) {
	c := &SpectraCollection{
		Spectra: []Spectrum{
			{X: []float64{1, 2}, Y: []float64{1, 2}},
			{X: []float64{1, 2, 3, 4}, Y: []float64{1, 2, 3, 4}},
		},
	}
	assert.NoError(t, validate(c))
}
