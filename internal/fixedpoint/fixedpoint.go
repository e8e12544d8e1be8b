// Package fixedpoint implements the legacy SPC sample representation: a
// per-block power-of-two exponent shared by 32-bit signed fixed-point
// mantissas. A stored value decodes as mantissa * 2^(exponent-31), so the
// exponent is chosen to make the largest magnitude in the block nearly fill
// the signed 31-bit range.
package fixedpoint

import (
	"fmt"
	"math"
)

const (
	// IEEEExponent is the sentinel exponent marking IEEE float data
	// instead of fixed-point mantissas.
	IEEEExponent = -128

	// MaxExponent and MinExponent bound the representable exponent range.
	// The field is a signed byte and -128 is reserved as the sentinel.
	MaxExponent = 127
	MinExponent = -127
)

// OverflowError reports a block whose dynamic range cannot be represented,
// or a sample that is not a finite number.
type OverflowError struct {
	SampleIndex int
	Exponent    int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("sample %d not representable with exponent %d", e.SampleIndex, e.Exponent)
}

// Exponent derives the block exponent for samples: the smallest e such that
// every |sample| < 2^e, clamped to the representable range. An all-zero
// block yields exponent 0. Non-finite samples and magnitudes at or above
// 2^127 are overflow errors.
func Exponent(samples []float64) (int, error) {
	maxAbs := 0.0
	maxIdx := 0
	for i, s := range samples {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return 0, &OverflowError{SampleIndex: i, Exponent: MaxExponent}
		}
		if a := math.Abs(s); a > maxAbs {
			maxAbs = a
			maxIdx = i
		}
	}
	if maxAbs == 0 {
		return 0, nil
	}
	// Ilogb(m) is the e with 2^e <= m < 2^(e+1); one above is the
	// smallest strict upper bound, which keeps the scaled maximum below
	// 2^31 rather than exactly at it.
	exp := math.Ilogb(maxAbs) + 1
	if exp > MaxExponent {
		return 0, &OverflowError{SampleIndex: maxIdx, Exponent: exp}
	}
	if exp < MinExponent {
		exp = MinExponent
	}
	return exp, nil
}

// Encode converts samples to mantissas under exponent exp. Each mantissa is
// round(sample * 2^(31-exp)), saturated at the int32 boundary to absorb
// rounding at the very top of the range. Values whose scaled magnitude
// exceeds 2^31 (possible only with a caller-supplied exponent) are overflow
// errors, as are non-finite samples.
func Encode(samples []float64, exp int) ([]int32, error) {
	if exp == IEEEExponent || exp > MaxExponent || exp < MinExponent {
		return nil, &OverflowError{SampleIndex: 0, Exponent: exp}
	}
	mantissas := make([]int32, len(samples))
	for i, s := range samples {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, &OverflowError{SampleIndex: i, Exponent: exp}
		}
		scaled := math.Ldexp(s, 31-exp)
		if scaled > float64(1<<31) || scaled < -float64(1<<31) {
			return nil, &OverflowError{SampleIndex: i, Exponent: exp}
		}
		m := math.Round(scaled)
		switch {
		case m > math.MaxInt32:
			mantissas[i] = math.MaxInt32
		case m < math.MinInt32:
			mantissas[i] = math.MinInt32
		default:
			mantissas[i] = int32(m)
		}
	}
	return mantissas, nil
}

// Decode converts mantissas back to floats under exponent exp. Used for
// round-trip verification and file inspection.
func Decode(mantissas []int32, exp int) []float64 {
	samples := make([]float64, len(mantissas))
	for i, m := range mantissas {
		samples[i] = math.Ldexp(float64(m), exp-31)
	}
	return samples
}

// Quantum returns the spacing between adjacent representable values under
// exponent exp.
func Quantum(exp int) float64 {
	return math.Ldexp(1, exp-31)
}
