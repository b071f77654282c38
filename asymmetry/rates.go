// SPDX-License-Identifier: MIT

package asymmetry

import (
	"math"
	"math/cmplx"
)

// Interference returns conj(a)·b + conj(b)·a, the isospin cross-term of
// |a + b|². Mathematically real; any imaginary part is rounding residue.
func Interference(a, b complex128) complex128 {
	return cmplx.Conj(a)*b + cmplx.Conj(b)*a
}

// RatesOf squares one variant's total amplitudes into decay rates:
//
//	Γ(KK)    = ¼·(|T0KK|² + |T1KK|² + I(T1KK, T0KK))
//	Γ(ππ, φ) = |T0ππ|²/6 + |T2ππ(φ)|²/12 + I(T2ππ(φ), T0ππ)/(6√2)
func RatesOf(ts TotalSet) Rates {
	kk := 0.25 * (complex(abs2(ts.T0KK)+abs2(ts.T1KK), 0) + Interference(ts.T1KK, ts.T0KK))

	return Rates{
		KK:       kk,
		PiPiZero: pipiRate(ts.T0PiPi, ts.T2PiPiZero),
		PiPiPi:   pipiRate(ts.T0PiPi, ts.T2PiPiPi),
	}
}

// pipiRate returns |t0|²/6 + |t2|²/12 + I(t2, t0)/(6√2).
func pipiRate(t0, t2 complex128) complex128 {
	return complex(abs2(t0)/6+abs2(t2)/12, 0) + Interference(t2, t0)/complex(6*math.Sqrt2, 0)
}

// CP returns the CP asymmetry Re[(Γ − Γ̄) / (Γ + Γ̄)].
//
// The imaginary part of the ratio is discarded without a check. For the
// reference inputs it is rounding noise; a table producing a sizeable
// imaginary residue would have it dropped silently.
//
// Errors:
//   - ErrNonFinite      — either rate is NaN or ±Inf.
//   - ErrDegenerateRate — Γ + Γ̄ == 0 (0/0); the returned value is NaN.
func CP(rate, rateBar complex128) (float64, error) {
	if cmplx.IsNaN(rate) || cmplx.IsInf(rate) || cmplx.IsNaN(rateBar) || cmplx.IsInf(rateBar) {
		return math.NaN(), ErrNonFinite
	}

	sum := rate + rateBar
	if sum == 0 {
		return math.NaN(), ErrDegenerateRate
	}

	return real((rate - rateBar) / sum), nil
}

// abs2 returns |z|², computed through |z| as the reference formulas do.
func abs2(z complex128) float64 {
	a := cmplx.Abs(z)

	return a * a
}
