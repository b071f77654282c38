// SPDX-License-Identifier: MIT

package constants

// Table holds every input of the calculation. Masses and decay constants
// are in MeV, G_F in MeV⁻²; everything else is dimensionless. Phases are in
// radians.
//
// The zero Table is not meaningful; obtain one from Default or New.
type Table struct {
	// Wilson coefficients at μ = 2 GeV.
	C1, C2, C3, C4, C5, C6 float64

	// Quark masses at μ = 2 GeV. AvgLightQuarkMass is stored, not derived
	// from MU and MD, so it matches the reference value bit for bit.
	MU, MD, MS, MC    float64
	AvgLightQuarkMass float64

	// Meson masses.
	MD0, MD0Star, MD0sStar, MPi, MK float64

	// CKM Wolfenstein combinations.
	LambdaD, LambdaS, LambdaB complex128

	GFermi         float64 // Fermi constant
	FK             float64 // kaon decay constant
	FD             float64 // D-meson decay constant
	L5             float64 // chiral low-energy constant
	DoubleL8PlusL5 float64 // 2·L8 + L5
	FDToPi00       float64 // D→π form factor at q² = 0
	FDToK00        float64 // D→K form factor at q² = 0

	// Rescattering moduli and strong phases.
	ModOmega1   float64
	ModOmega2   float64
	DeltaI2Zero float64
	DeltaI2Pi   float64
	DeltaI1     float64
}

// Category groups table entries for tabulation.
type Category string

const (
	CategoryWilson       Category = "wilson"
	CategoryQuarkMass    Category = "quark_mass"
	CategoryMesonMass    Category = "meson_mass"
	CategoryCKM          Category = "ckm"
	CategoryOther        Category = "other"
	CategoryRescattering Category = "rescattering"
)

// Entry is one named quantity of a Table.
//
// Real entries carry their value in Real; complex entries (the CKM
// combinations) set IsComplex and carry their value in Complex.
type Entry struct {
	Name      string
	Category  Category
	Unit      string
	Real      float64
	Complex   complex128
	IsComplex bool
}

// Value returns the entry as a complex number regardless of its kind.
func (e Entry) Value() complex128 {
	if e.IsComplex {
		return e.Complex
	}

	return complex(e.Real, 0)
}
