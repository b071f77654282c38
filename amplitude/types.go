// SPDX-License-Identifier: MIT

package amplitude

// FKOverFPi is the lattice ratio f_K / f_π used to derive f_π from f_K.
const FKOverFPi = 1.1934

// BareSet holds the four bare isospin amplitudes of one decay variant
// (D0 or anti-D0). Units follow the constant table: G_F·MeV³ ⇒ MeV.
type BareSet struct {
	T0PiPi complex128 // π+π−, I = 0
	T2PiPi complex128 // π+π−, I = 2
	T0KK   complex128 // K+K−, I = 0 (always −T1KK)
	T1KK   complex128 // K+K−, I = 1
}

// Derived holds the intermediate real quantities of the bare-amplitude
// calculation. None of them depends on the CKM inputs, so one Derived
// serves both D0 and anti-D0.
type Derived struct {
	FPi        float64 // f_π = f_K / 1.1934 (MeV)
	CorrFDPi00 float64 // D→π form factor with D0* pole correction
	CorrFDK00  float64 // D→K form factor with Ds0* pole correction
	FPiS       float64 // chiral scalar factor, pion channel
	FKS        float64 // chiral scalar factor, kaon channel
	Delta6Pi   float64 // penguin enhancement δ6, pion channel
	Delta6K    float64 // penguin enhancement δ6, kaon channel
}
