// SPDX-License-Identifier: MIT

package asymmetry_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/charmcp/amplitude"
	"github.com/katalvlaran/charmcp/asymmetry"
	"github.com/katalvlaran/charmcp/constants"
	"github.com/stretchr/testify/assert"
)

func assertClose(t *testing.T, want, got complex128, name string) {
	t.Helper()
	tol := cmplx.Abs(want) * 1e-12
	assert.InDelta(t, real(want), real(got), tol, name)
	assert.InDelta(t, imag(want), imag(got), tol, name)
}

// TestTotals_Reference pins the D0 total amplitudes.
func TestTotals_Reference(t *testing.T) {
	tb := constants.Default()
	ts := asymmetry.Totals(tb, amplitude.Bare(tb, false))

	assertClose(t, complex(-5.467495649222685e-05, 0.0011476558735836393), ts.T0PiPi, "t0_pipi")
	assertClose(t, complex(0.0004493648290949383, -2.65533762647009e-07), ts.T2PiPiZero, "t2_pipi phi=0")
	assertClose(t, complex(-0.0004493648290949383, 2.6553376264706404e-07), ts.T2PiPiPi, "t2_pipi phi=pi")
	assertClose(t, complex(0.00045016995549260793, -0.001017931606831119), ts.T0KK, "t0_kk")
	assertClose(t, complex(-0.0002742367321657092, 0.0005988006921185205), ts.T1KK, "t1_kk")
}

// TestTotals_PhaseHypothesesDifferBySign: e^{iπ} = −1 up to rounding.
func TestTotals_PhaseHypothesesDifferBySign(t *testing.T) {
	tb := constants.Default()
	ts := asymmetry.Totals(tb, amplitude.Bare(tb, false))

	assertClose(t, -ts.T2PiPiZero, ts.T2PiPiPi, "t2(pi) = -t2(0)")
}

// TestTotals_VariantsDoNotMix: anti-D0 totals depend only on anti-D0 bare
// amplitudes.
func TestTotals_VariantsDoNotMix(t *testing.T) {
	tb := constants.Default()
	bare := amplitude.Bare(tb, true)

	a := asymmetry.Totals(tb, bare)
	b := asymmetry.Totals(tb, bare)
	assert.Equal(t, a, b)

	bare.T2PiPi = 0
	c := asymmetry.Totals(tb, bare)
	assert.Equal(t, a.T0PiPi, c.T0PiPi)
	assert.Equal(t, complex128(0), c.T2PiPiZero)
}

func TestInterference(t *testing.T) {
	a, b := complex(1, 2), complex(3, -1)
	got := asymmetry.Interference(a, b)

	// |a+b|² − |a|² − |b|²
	want := math.Pow(cmplx.Abs(a+b), 2) - math.Pow(cmplx.Abs(a), 2) - math.Pow(cmplx.Abs(b), 2)
	assert.InDelta(t, want, real(got), 1e-12)
	assert.Equal(t, 0.0, imag(got))
	assert.Equal(t, got, asymmetry.Interference(b, a), "symmetric")
}

func TestCoefficient_Value(t *testing.T) {
	c := asymmetry.Coefficient{Modulus: 2, Phase: math.Pi / 2}
	v := c.Value()
	assert.InDelta(t, 0, real(v), 1e-15)
	assert.InDelta(t, 2, imag(v), 1e-15)
}
