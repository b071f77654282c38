// SPDX-License-Identifier: MIT

package asymmetry

import (
	"math/cmplx"

	"github.com/katalvlaran/charmcp/amplitude"
)

// Coefficient is a rescattering coefficient in polar form, Modulus·e^{i·Phase}.
type Coefficient struct {
	Modulus float64
	Phase   float64 // radians
}

// Value returns the coefficient as a complex number.
func (c Coefficient) Value() complex128 { return cmplx.Rect(c.Modulus, c.Phase) }

// TotalSet holds the rescattered isospin amplitudes of one decay variant.
type TotalSet struct {
	T0PiPi     complex128 // π+π−, I = 0
	T2PiPiZero complex128 // π+π−, I = 2, φ = δ(I=2, zero)
	T2PiPiPi   complex128 // π+π−, I = 2, φ = δ(I=2, π)
	T0KK       complex128 // K+K−, I = 0
	T1KK       complex128 // K+K−, I = 1
}

// Rates holds the squared decay amplitudes of one decay variant. They are
// kept complex: the interference sum is real up to rounding, and CP drops
// the imaginary residue only at the very end.
type Rates struct {
	KK       complex128
	PiPiZero complex128
	PiPiPi   complex128
}

// Result holds the three CP asymmetries.
type Result struct {
	KK       float64 // Acp(K+K−)
	PiPiZero float64 // Acp(π+π−), φ = 0
	PiPiPi   float64 // Acp(π+π−), φ = π
}

// DeltaZero returns ΔAcp = Acp(K+K−) − Acp(π+π−) for φ = 0.
func (r Result) DeltaZero() float64 { return r.KK - r.PiPiZero }

// DeltaPi returns ΔAcp = Acp(K+K−) − Acp(π+π−) for φ = π.
func (r Result) DeltaPi() float64 { return r.KK - r.PiPiPi }

// Variant bundles every intermediate of one decay variant.
type Variant struct {
	Bare   amplitude.BareSet
	Totals TotalSet
	Rates  Rates
}

// Detail is the full breakdown behind a Result.
type Detail struct {
	Derived amplitude.Derived
	D       Variant // D0
	DBar    Variant // anti-D0
	Result  Result
}

// Channel names used when wrapping per-asymmetry errors.
const (
	ChannelKK       = "K+K-"
	ChannelPiPiZero = "pi+pi- [phi=0]"
	ChannelPiPiPi   = "pi+pi- [phi=pi]"
)
