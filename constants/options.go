// SPDX-License-Identifier: MIT

// Package constants: functional overrides on top of the reference table.
//
// Design goals:
//   - Deterministic behavior: no global state; Default() is the single
//     source of truth and New(opts...) only ever starts from it.
//   - Safe by construction: constructors panic on non-finite input
//     (programmer error); zero is a legal value everywhere.
//   - Options are applied in order; the last writer wins.
package constants

import (
	"math"
	"math/cmplx"
)

// Option mutates a Table under construction. Safe to apply repeatedly.
type Option func(*Table)

// New returns Default() with opts applied in order.
//
// Example:
//
//	t := constants.New(
//	  constants.WithGFermi(0),
//	  constants.WithCKM(cmplx.Conj(constants.DefaultLambdaD),
//	    cmplx.Conj(constants.DefaultLambdaS),
//	    cmplx.Conj(constants.DefaultLambdaB)),
//	)
func New(opts ...Option) Table {
	t := Default()
	for _, opt := range opts {
		opt(&t)
	}

	return t
}

// WithGFermi overrides the Fermi constant (MeV⁻²).
// Panics when g is NaN or ±Inf.
func WithGFermi(g float64) Option {
	if isNonFinite(g) {
		panic(panicGFermiInvalid)
	}

	return func(t *Table) { t.GFermi = g }
}

// WithCKM overrides the three CKM Wolfenstein combinations.
// Panics when any real or imaginary part is NaN or ±Inf.
func WithCKM(lambdaD, lambdaS, lambdaB complex128) Option {
	for _, z := range [...]complex128{lambdaD, lambdaS, lambdaB} {
		if isNonFiniteComplex(z) {
			panic(panicCKMInvalid)
		}
	}

	return func(t *Table) {
		t.LambdaD, t.LambdaS, t.LambdaB = lambdaD, lambdaS, lambdaB
	}
}

// WithWilson overrides c1…c6, in that order.
// Panics when any coefficient is NaN or ±Inf.
func WithWilson(c [6]float64) Option {
	for _, v := range c {
		if isNonFinite(v) {
			panic(panicWilsonInvalid)
		}
	}

	return func(t *Table) {
		t.C1, t.C2, t.C3, t.C4, t.C5, t.C6 = c[0], c[1], c[2], c[3], c[4], c[5]
	}
}

// WithRescattering overrides the rescattering moduli |Ω1|, |Ω2| and the
// I=1 strong phase δ(I=1). The two I=2 phase hypotheses (0 and π) are
// fixed by construction and not affected.
// Panics when any argument is NaN or ±Inf.
func WithRescattering(modOmega1, modOmega2, deltaI1 float64) Option {
	if isNonFinite(modOmega1) || isNonFinite(modOmega2) || isNonFinite(deltaI1) {
		panic(panicRescatteringInvalid)
	}

	return func(t *Table) {
		t.ModOmega1, t.ModOmega2, t.DeltaI1 = modOmega1, modOmega2, deltaI1
	}
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

func isNonFiniteComplex(z complex128) bool { return cmplx.IsNaN(z) || cmplx.IsInf(z) }
