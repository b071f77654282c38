// SPDX-License-Identifier: MIT

// Package constants assembles the physical and model inputs of the charm
// CP-asymmetry calculation into one immutable Table.
//
// 🚀 What lives in the table?
//
//	• Wilson coefficients c1…c6 at μ = 2 GeV (dimensionless)
//	• Quark masses m_u, m_d, m_s, m_c and the light-quark average (MeV, 2 GeV)
//	• Meson masses m_D0, m_D0*, m_Ds0*, m_π, m_K (MeV)
//	• CKM Wolfenstein combinations λd, λs, λb (complex)
//	• G_F, f_K, f_D, chiral LECs L5 and 2L8+L5, D→π / D→K form factors at q²=0
//	• Rescattering moduli |Ω1|, |Ω2| and strong phases δ(I=2), δ(I=1)
//
// ⚙️ Usage:
//
//	t := constants.Default()                      // reference literals
//	z := constants.New(constants.WithGFermi(0))   // override for a what-if
//	e, err := t.Lookup("lambda_d")                // addressed by canonical key
//
// A Table is a plain value: copies never share state, so every consumer
// reads the inputs it was handed and nothing else.
package constants
