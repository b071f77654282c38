// SPDX-License-Identifier: MIT

// Package amplitude computes the bare (tree-level, pre-rescattering)
// isospin amplitudes of D0 → π+π− and D0 → K+K−.
//
// 🚀 What is a bare amplitude?
//
//	The decay amplitude obtained from the effective Hamiltonian before any
//	final-state interaction mixes the isospin channels. Four are produced:
//	  • T0PiPi — π+π−, I = 0 (tree + penguin)
//	  • T2PiPi — π+π−, I = 2 (tree only)
//	  • T1KK   — K+K−, I = 1 (tree + penguin)
//	  • T0KK   — K+K−, I = 0, fixed to −T1KK by the isospin relation
//
// ✨ Key features:
//   - Derive exposes f_π, the pole-corrected form factors, the chiral
//     factors F_π^S and F_K^S and the penguin enhancements δ6^π, δ6^K
//   - Bare(t, true) models the CP-conjugate decay by conjugating the CKM
//     combinations; every other input is CP-even
//   - pure functions of a constants.Table; no shared state between calls
//
// ⚙️ Usage:
//
//	d := amplitude.Bare(constants.Default(), false)   // D0
//	db := amplitude.Bare(constants.Default(), true)   // anti-D0
package amplitude
