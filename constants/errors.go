// SPDX-License-Identifier: MIT

package constants

import "errors"

// Every message is prefixed with "constants: " so it can be grepped in logs.
// Callers match with errors.Is; wrap with fmt.Errorf("ctx: %w", ErrX) when
// context is needed.
var (
	// ErrUnknownKey is returned by Lookup for a name outside the table.
	ErrUnknownKey = errors.New("constants: unknown key")

	// ErrNonFinite signals a NaN or ±Inf entry where finite values are required.
	ErrNonFinite = errors.New("constants: NaN or Inf encountered")
)

// Internal panic messages (no magic strings).
const (
	panicGFermiInvalid       = "constants: WithGFermi: value must be finite"
	panicCKMInvalid          = "constants: WithCKM: components must be finite"
	panicWilsonInvalid       = "constants: WithWilson: coefficients must be finite"
	panicRescatteringInvalid = "constants: WithRescattering: moduli and phases must be finite"
)
