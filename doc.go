// SPDX-License-Identifier: MIT

// Package charmcp computes theoretical CP-violating asymmetries for the
// singly Cabibbo-suppressed charm decays D0 → π+π− and D0 → K+K−.
//
// 🚀 What is charmcp?
//
//	A small, deterministic pipeline built on an effective Hamiltonian:
//		• Constant table: Wilson coefficients, quark & meson masses, CKM,
//		  decay constants, chiral LECs, form factors, rescattering inputs
//		• Bare amplitudes: tree-level isospin amplitudes with penguin (δ6)
//		  enhancement, for D0 and its CP conjugate
//		• Rescattering: complex final-state mixing of the I=0 ππ/KK channels
//		• Asymmetries: Acp(K+K−), Acp(π+π−) for φ=0 and φ=π, and ΔAcp
//
// Under the hood, everything is organized under a handful of packages:
//
//	constants/  — the immutable constant table + functional options
//	amplitude/  — derived quantities (f_π, corrected form factors, δ6) and bare amplitudes
//	asymmetry/  — total amplitudes, decay rates and CP asymmetries
//	report/     — the fixed-width RESULTS report and YAML tabulation of inputs
//	cmd/charmcp — the command-line entry point
//
// Quick example:
//
//	res, err := asymmetry.Evaluate(constants.Default())
//	if err != nil {
//		// ErrDegenerateRate / ErrNonFinite
//	}
//	_ = report.Write(os.Stdout, res)
//
//	go install github.com/katalvlaran/charmcp/cmd/charmcp@latest
package charmcp
