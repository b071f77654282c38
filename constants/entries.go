// SPDX-License-Identifier: MIT

package constants

import "fmt"

// Entries returns every quantity of t keyed by its canonical name, in a
// stable order: Wilson coefficients, quark masses, meson masses, CKM,
// other constants, rescattering parameters.
func (t Table) Entries() []Entry {
	r := func(name string, c Category, unit string, v float64) Entry {
		return Entry{Name: name, Category: c, Unit: unit, Real: v}
	}
	z := func(name string, v complex128) Entry {
		return Entry{Name: name, Category: CategoryCKM, Complex: v, IsComplex: true}
	}

	return []Entry{
		r("c1", CategoryWilson, "", t.C1),
		r("c2", CategoryWilson, "", t.C2),
		r("c3", CategoryWilson, "", t.C3),
		r("c4", CategoryWilson, "", t.C4),
		r("c5", CategoryWilson, "", t.C5),
		r("c6", CategoryWilson, "", t.C6),

		r("m_u", CategoryQuarkMass, "MeV", t.MU),
		r("m_d", CategoryQuarkMass, "MeV", t.MD),
		r("m_s", CategoryQuarkMass, "MeV", t.MS),
		r("m_c", CategoryQuarkMass, "MeV", t.MC),
		r("avg_light_quark_mass", CategoryQuarkMass, "MeV", t.AvgLightQuarkMass),

		r("m_D0", CategoryMesonMass, "MeV", t.MD0),
		r("m_D0_star", CategoryMesonMass, "MeV", t.MD0Star),
		r("m_D0s_star", CategoryMesonMass, "MeV", t.MD0sStar),
		r("m_pi", CategoryMesonMass, "MeV", t.MPi),
		r("m_k", CategoryMesonMass, "MeV", t.MK),

		z("lambda_d", t.LambdaD),
		z("lambda_s", t.LambdaS),
		z("lambda_b", t.LambdaB),

		r("G_fermi", CategoryOther, "MeV^-2", t.GFermi),
		r("f_k", CategoryOther, "MeV", t.FK),
		r("f_d", CategoryOther, "MeV", t.FD),
		r("L5", CategoryOther, "", t.L5),
		r("doubleL8_plus_L5", CategoryOther, "", t.DoubleL8PlusL5),
		r("F_D_to_pi_00", CategoryOther, "", t.FDToPi00),
		r("F_D_to_K_00", CategoryOther, "", t.FDToK00),

		r("mod_omega_1", CategoryRescattering, "", t.ModOmega1),
		r("mod_omega_2", CategoryRescattering, "", t.ModOmega2),
		r("delta_I2_zero", CategoryRescattering, "rad", t.DeltaI2Zero),
		r("delta_I2_pi", CategoryRescattering, "rad", t.DeltaI2Pi),
		r("delta_I1", CategoryRescattering, "rad", t.DeltaI1),
	}
}

// Lookup returns the entry named name, or ErrUnknownKey.
func (t Table) Lookup(name string) (Entry, error) {
	for _, e := range t.Entries() {
		if e.Name == name {
			return e, nil
		}
	}

	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// Validate reports the first non-finite entry of t, wrapped in ErrNonFinite.
// Tables from Default and New are always valid; Validate guards tables
// assembled by hand.
func (t Table) Validate() error {
	for _, e := range t.Entries() {
		if (e.IsComplex && isNonFiniteComplex(e.Complex)) || (!e.IsComplex && isNonFinite(e.Real)) {
			return fmt.Errorf("%w: %s", ErrNonFinite, e.Name)
		}
	}

	return nil
}
