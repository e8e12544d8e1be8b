package spc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spectrakit/go-spc/internal/header"
)

func TestSelectLayout(t *testing.T) {
	tests := []struct {
		name string
		c    *SpectraCollection
		want LayoutKind
	}{
		{
			"single y",
			&SpectraCollection{Spectra: []Spectrum{{Y: []float64{1}}}},
			LayoutSingleY,
		},
		{
			"single xy",
			&SpectraCollection{Spectra: []Spectrum{{X: []float64{1}, Y: []float64{1}}}},
			LayoutSingleY,
		},
		{
			"shared x multi y",
			&SpectraCollection{
				GlobalX: []float64{1, 2},
				Spectra: []Spectrum{{Y: []float64{1, 2}}, {Y: []float64{3, 4}}, {Y: []float64{5, 6}}},
			},
			LayoutSharedXMultiY,
		},
		{
			"per spectrum xy",
			&SpectraCollection{
				Spectra: []Spectrum{
					{X: []float64{1}, Y: []float64{1}},
					{X: []float64{1, 2}, Y: []float64{1, 2}},
				},
			},
			LayoutPerSpectrumXY,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, validate(tt.c))
			got, err := selectLayout(tt.c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Determinism: repeated selection agrees.
			again, err := selectLayout(tt.c)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestSelectLayoutInternalChecks(t *testing.T) {
	var ie *InternalError
	_, err := selectLayout(&SpectraCollection{})
	assert.ErrorAs(t, err, &ie)

	mixed := &SpectraCollection{
		Spectra: []Spectrum{
			{X: []float64{1}, Y: []float64{1}},
			{Y: []float64{1}},
		},
	}
	_, err = selectLayout(mixed)
	assert.ErrorAs(t, err, &ie)
}

func TestFileTypeFlags(t *testing.T) {
	tests := []struct {
		name      string
		kind      LayoutKind
		explicitX bool
		want      uint8
	}{
		{"single even", LayoutSingleY, false, 0},
		{"single explicit x", LayoutSingleY, true, header.FlagXValues},
		{"multi even", LayoutSharedXMultiY, false, header.FlagMulti},
		{"multi explicit x", LayoutSharedXMultiY, true, header.FlagMulti | header.FlagXValues},
		{"xyxy", LayoutPerSpectrumXY, true, header.FlagMulti | header.FlagXValues | header.FlagXYXY},
		{"xyxy ignores explicitX", LayoutPerSpectrumXY, false, header.FlagMulti | header.FlagXValues | header.FlagXYXY},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fileTypeFlags(tt.kind, tt.explicitX))
		})
	}
}

func TestLayoutKindString(t *testing.T) {
	assert.Equal(t, "single-y", LayoutSingleY.String())
	assert.Equal(t, "shared-x-multi-y", LayoutSharedXMultiY.String())
	assert.Equal(t, "per-spectrum-xy", LayoutPerSpectrumXY.String())
}
