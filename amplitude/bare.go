// SPDX-License-Identifier: MIT

package amplitude

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/charmcp/constants"
)

// Derive computes the CKM-independent intermediate quantities.
//
// Algorithm Outline:
//  1. f_π = f_K / 1.1934.
//  2. Pole-corrected form factors:
//     F^π = F_{D→π}(0) / (1 − m_π²/m_{D0*}²),  F^K = F_{D→K}(0) / (1 − m_K²/m_{Ds0*}²).
//  3. Chiral scalar factors, x ∈ {π, K}:
//     F_x^S = 1 + 16·(2L8+L5)·m_x²/f_x² + 8·L5·m_x²/f_x².
//  4. Penguin enhancements, with m̄ the average light-quark mass:
//     δ6^π = 2/(m_c−m̄) · m_π²/(2m̄)     · (1 + f_D m_D²/(f_π(m_D²−m_π²)) · (m_c−m̄)/(m_c+m̄) · F_π^S/F^π)
//     δ6^K = 2/(m_c−m_s) · m_K²/(m_s+m̄) · (1 + f_D m_D²/(f_K(m_D²−m_K²)) · (m_c−m_s)/(m_c+m̄) · F_K^S/F^K)
//
// The kaon channel deliberately mixes m_s and m̄ in its mass terms; this
// follows the reference derivation and must not be "symmetrised".
func Derive(t constants.Table) Derived {
	var d Derived

	// 1. pion decay constant
	d.FPi = t.FK / FKOverFPi

	mD2, mPi2, mK2 := sq(t.MD0), sq(t.MPi), sq(t.MK)
	mBar := t.AvgLightQuarkMass

	// 2. pole-corrected form factors
	d.CorrFDPi00 = t.FDToPi00 / (1 - (mPi2 / sq(t.MD0Star)))
	d.CorrFDK00 = t.FDToK00 / (1 - (mK2 / sq(t.MD0sStar)))

	// 3. chiral corrections for the penguin operators
	d.FPiS = chiralFactor(t, mPi2, d.FPi)
	d.FKS = chiralFactor(t, mK2, t.FK)

	// 4. penguin enhancement δ6
	termPi := (t.FD * mD2) / (d.FPi * (mD2 - mPi2)) *
		(t.MC - mBar) / (t.MC + mBar) * d.FPiS / d.CorrFDPi00
	d.Delta6Pi = (2 / (t.MC - mBar)) * (mPi2 / (2 * mBar)) * (1 + termPi)

	termK := (t.FD * mD2) / (t.FK * (mD2 - mK2)) *
		(t.MC - t.MS) / (t.MC + mBar) * d.FKS / d.CorrFDK00
	d.Delta6K = (2 / (t.MC - t.MS)) * (mK2 / (t.MS + mBar)) * (1 + termK)

	return d
}

// Bare computes the bare isospin amplitudes for D0 (conjugate=false) or
// anti-D0 (conjugate=true). Only the CKM combinations are conjugated.
//
// Amplitudes (G = G_F, K^π = f_π(m_D²−m_π²)F^π, K^K = f_K(m_D²−m_K²)F^K):
//
//	T0PiPi = −(G/√2)·√(2/3)·K^π · [λd(2c1−c2) − 3λb(c4 − c6·δ6^π)]
//	T2PiPi = −(G/√6)·2·K^π      · [λd(c1+c2)]
//	T1KK   =  (G/√2)·K^K        · [λs·c1 − λb(c4 − c6·δ6^K)]
//	T0KK   = −T1KK
//
// Bare never fails: it is closed-form arithmetic over the table.
func Bare(t constants.Table, conjugate bool) BareSet {
	lambdaD, lambdaS, lambdaB := t.LambdaD, t.LambdaS, t.LambdaB
	if conjugate {
		lambdaD, lambdaS, lambdaB = cmplx.Conj(lambdaD), cmplx.Conj(lambdaS), cmplx.Conj(lambdaB)
	}

	d := Derive(t)
	mD2 := sq(t.MD0)

	// D0 → π+π−
	termPiPiI0 := lambdaD*complex(2*t.C1-t.C2, 0) -
		3*lambdaB*complex(t.C4-t.C6*d.Delta6Pi, 0)
	termPiPiI2 := lambdaD * complex(t.C1+t.C2, 0)

	constPi0 := -(t.GFermi / math.Sqrt2) * math.Sqrt(2.0/3.0)
	constPi2 := -(t.GFermi / math.Sqrt(6))
	commonPi := d.FPi * (mD2 - sq(t.MPi)) * d.CorrFDPi00

	// D0 → K+K−
	termKKI0 := lambdaS*complex(t.C1, 0) - lambdaB*complex(t.C4-t.C6*d.Delta6K, 0)

	constK := t.GFermi / math.Sqrt2
	commonK := t.FK * (mD2 - sq(t.MK)) * d.CorrFDK00

	t1KK := complex(constK*commonK, 0) * termKKI0

	return BareSet{
		T0PiPi: complex(constPi0*commonPi, 0) * termPiPiI0,
		T2PiPi: complex(constPi2*2*commonPi, 0) * termPiPiI2,
		T0KK:   -t1KK,
		T1KK:   t1KK,
	}
}

// chiralFactor returns 1 + 16·(2L8+L5)·m²/f² + 8·L5·m²/f².
func chiralFactor(t constants.Table, m2, f float64) float64 {
	f2 := sq(f)

	return 1 + 16*t.DoubleL8PlusL5*m2/f2 + 8*t.L5*m2/f2
}

func sq(x float64) float64 { return x * x }
