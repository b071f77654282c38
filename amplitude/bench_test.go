// SPDX-License-Identifier: MIT

package amplitude_test

import (
	"testing"

	"github.com/katalvlaran/charmcp/amplitude"
	"github.com/katalvlaran/charmcp/constants"
)

var sinkBare amplitude.BareSet

// BenchmarkBare measures one bare-amplitude evaluation (Derive included).
func BenchmarkBare(b *testing.B) {
	tb := constants.Default()

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		sinkBare = amplitude.Bare(tb, i%2 == 1)
	}
}
