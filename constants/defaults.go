// SPDX-License-Identifier: MIT

package constants

import "math"

// Wilson coefficients at μ = 2 GeV.
const (
	DefaultC1 = 1.18
	DefaultC2 = -0.32
	DefaultC3 = 0.011
	DefaultC4 = -0.031
	DefaultC5 = 0.0068
	DefaultC6 = -0.032
)

// Quark masses (MeV) at μ = 2 GeV.
const (
	DefaultMU                = 2.14
	DefaultMD                = 4.7
	DefaultMS                = 93.46
	DefaultMC                = 1097
	DefaultAvgLightQuarkMass = 3.427 // (m_u + m_d) / 2
)

// Meson masses (MeV).
const (
	DefaultMD0      = 1864.84
	DefaultMD0Star  = 2343
	DefaultMD0sStar = 2317.8
	DefaultMPi      = 139.57
	DefaultMK       = 496
)

// CKM Wolfenstein combinations.
const (
	DefaultLambdaD complex128 = -0.22 + 1.3e-4i
	DefaultLambdaS complex128 = 0.22 + 6.9e-6i
	DefaultLambdaB complex128 = 6.1e-5 - 1.4e-4i
)

// Couplings, decay constants, chiral LECs and form factors.
const (
	DefaultGFermi         = 1.1663788e-11 // MeV⁻²
	DefaultFK             = 155.7         // MeV
	DefaultFD             = 212.0         // MeV
	DefaultL5             = 1.2e-3
	DefaultDoubleL8PlusL5 = -0.15e-3
	DefaultFDToPi00       = 0.612
	DefaultFDToK00        = 0.7385
)

// Rescattering moduli and strong phases (radians).
const (
	DefaultModOmega1   = 0.79
	DefaultModOmega2   = 0.9
	DefaultDeltaI2Zero = 0.0
	DefaultDeltaI2Pi   = math.Pi
	DefaultDeltaI1     = 2.0
)

// Default returns the reference constant table.
//
// Every value is a literal; changing any of them changes the physics and
// the golden asymmetries pinned in the tests.
func Default() Table {
	return Table{
		C1: DefaultC1, C2: DefaultC2, C3: DefaultC3,
		C4: DefaultC4, C5: DefaultC5, C6: DefaultC6,

		MU: DefaultMU, MD: DefaultMD, MS: DefaultMS, MC: DefaultMC,
		AvgLightQuarkMass: DefaultAvgLightQuarkMass,

		MD0: DefaultMD0, MD0Star: DefaultMD0Star, MD0sStar: DefaultMD0sStar,
		MPi: DefaultMPi, MK: DefaultMK,

		LambdaD: DefaultLambdaD,
		LambdaS: DefaultLambdaS,
		LambdaB: DefaultLambdaB,

		GFermi:         DefaultGFermi,
		FK:             DefaultFK,
		FD:             DefaultFD,
		L5:             DefaultL5,
		DoubleL8PlusL5: DefaultDoubleL8PlusL5,
		FDToPi00:       DefaultFDToPi00,
		FDToK00:        DefaultFDToK00,

		ModOmega1:   DefaultModOmega1,
		ModOmega2:   DefaultModOmega2,
		DeltaI2Zero: DefaultDeltaI2Zero,
		DeltaI2Pi:   DefaultDeltaI2Pi,
		DeltaI1:     DefaultDeltaI1,
	}
}
