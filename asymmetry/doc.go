// SPDX-License-Identifier: MIT

// Package asymmetry turns bare amplitudes into CP asymmetries.
//
// 🚀 Pipeline:
//
//	bare (D0, anti-D0) ─▶ rescattering ─▶ total isospin amplitudes
//	                                    ─▶ squared decay amplitudes (rates)
//	                                    ─▶ Acp = (Γ − Γ̄) / (Γ + Γ̄)
//
// Rescattering mixes the I=0 ππ and KK channels through fixed complex
// coefficients, rotates the ππ I=2 amplitude by |Ω2|·e^{iφ} for the two
// strong-phase hypotheses φ ∈ {0, π}, and the KK I=1 amplitude by
// |Ω1|·e^{iδ1}. D0 and anti-D0 are processed independently; anti-D0 totals
// never see D0 bare amplitudes.
//
// ⚙️ Usage:
//
//	res, err := asymmetry.Evaluate(constants.Default())
//	fmt.Printf("%.6f %.6f\n", res.KK, res.DeltaZero())
//
// Errors:
//   - ErrDegenerateRate — Γ + Γ̄ is exactly zero (e.g. G_F = 0); the
//     asymmetry is reported as NaN, never as 0.
//   - ErrNonFinite — a rate is NaN or ±Inf.
//   - constants.ErrNonFinite — the input table itself is not finite.
package asymmetry
