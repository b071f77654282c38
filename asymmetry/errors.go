// SPDX-License-Identifier: MIT

package asymmetry

import "errors"

// Every message is prefixed with "asymmetry: ". Evaluate wraps these with
// the channel name; match with errors.Is.
var (
	// ErrDegenerateRate signals Γ + Γ̄ == 0, where Acp is 0/0.
	ErrDegenerateRate = errors.New("asymmetry: degenerate rate sum")

	// ErrNonFinite signals a NaN or ±Inf decay rate.
	ErrNonFinite = errors.New("asymmetry: NaN or Inf rate")
)
