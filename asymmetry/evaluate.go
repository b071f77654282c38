// SPDX-License-Identifier: MIT

package asymmetry

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/charmcp/amplitude"
	"github.com/katalvlaran/charmcp/constants"
)

// Evaluate runs the full pipeline on t and returns the three asymmetries.
//
// When a channel fails, the Result is still returned and that channel holds
// NaN; an invalid table yields the zero Result. Use errors.Is with
// ErrDegenerateRate, ErrNonFinite or constants.ErrNonFinite to classify.
func Evaluate(t constants.Table) (Result, error) {
	d, err := EvaluateDetailed(t)

	return d.Result, err
}

// EvaluateDetailed is Evaluate that also returns every intermediate:
// derived quantities, bare and total amplitudes and rates for D0 and anti-D0.
func EvaluateDetailed(t constants.Table) (Detail, error) {
	if err := t.Validate(); err != nil {
		return Detail{}, fmt.Errorf("asymmetry: %w", err)
	}

	d := Detail{
		Derived: amplitude.Derive(t),
		D:       variant(t, false),
		DBar:    variant(t, true),
	}

	var errs []error
	acp := func(channel string, rate, rateBar complex128) float64 {
		v, err := CP(rate, rateBar)
		if err != nil {
			errs = append(errs, fmt.Errorf("acp(%s): %w", channel, err))
		}

		return v
	}

	d.Result = Result{
		KK:       acp(ChannelKK, d.D.Rates.KK, d.DBar.Rates.KK),
		PiPiZero: acp(ChannelPiPiZero, d.D.Rates.PiPiZero, d.DBar.Rates.PiPiZero),
		PiPiPi:   acp(ChannelPiPiPi, d.D.Rates.PiPiPi, d.DBar.Rates.PiPiPi),
	}

	return d, errors.Join(errs...)
}

// variant computes bare amplitudes, totals and rates for one decay variant.
func variant(t constants.Table, conjugate bool) Variant {
	bare := amplitude.Bare(t, conjugate)
	totals := Totals(t, bare)

	return Variant{Bare: bare, Totals: totals, Rates: RatesOf(totals)}
}
