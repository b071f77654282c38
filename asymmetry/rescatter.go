// SPDX-License-Identifier: MIT

package asymmetry

import (
	"github.com/katalvlaran/charmcp/amplitude"
	"github.com/katalvlaran/charmcp/constants"
)

// I=0 coupled-channel rescattering coefficients (ππ ↔ KK).
var (
	// piPiFromPiPi weights the bare ππ I=0 amplitude in the total ππ I=0 amplitude.
	piPiFromPiPi = Coefficient{Modulus: 0.58, Phase: 1.8}
	// piPiFromKK weights the bare KK I=0 amplitude in the total ππ I=0 amplitude.
	piPiFromKK = Coefficient{Modulus: 0.64, Phase: -1.74}
	// kkFromPiPi weights the bare ππ I=0 amplitude in the total KK I=0 amplitude.
	kkFromPiPi = Coefficient{Modulus: 0.58, Phase: -1.37}
	// kkFromKK weights the bare KK I=0 amplitude in the total KK I=0 amplitude.
	kkFromKK = Coefficient{Modulus: 0.61, Phase: 2.26}
)

// Totals applies final-state rescattering to one variant's bare amplitudes.
//
//	T0PiPi     = 0.58·e^{1.8i}·t0ππ  + 0.64·e^{−1.74i}·t0KK
//	T2PiPi(φ)  = |Ω2|·e^{iφ}·t2ππ,  φ ∈ {δ(I=2,zero), δ(I=2,π)}
//	T0KK       = 0.58·e^{−1.37i}·t0ππ + 0.61·e^{2.26i}·t0KK
//	T1KK       = |Ω1|·e^{iδ1}·t1KK
func Totals(t constants.Table, bare amplitude.BareSet) TotalSet {
	omega2Zero := Coefficient{Modulus: t.ModOmega2, Phase: t.DeltaI2Zero}.Value()
	omega2Pi := Coefficient{Modulus: t.ModOmega2, Phase: t.DeltaI2Pi}.Value()
	omega1 := Coefficient{Modulus: t.ModOmega1, Phase: t.DeltaI1}.Value()

	return TotalSet{
		T0PiPi:     piPiFromPiPi.Value()*bare.T0PiPi + piPiFromKK.Value()*bare.T0KK,
		T2PiPiZero: omega2Zero * bare.T2PiPi,
		T2PiPiPi:   omega2Pi * bare.T2PiPi,
		T0KK:       kkFromPiPi.Value()*bare.T0PiPi + kkFromKK.Value()*bare.T0KK,
		T1KK:       omega1 * bare.T1KK,
	}
}
