// SPDX-License-Identifier: MIT

package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/charmcp/asymmetry"
	"github.com/katalvlaran/charmcp/constants"
	"github.com/katalvlaran/charmcp/internal/logging"
)

func TestNew_QuietIsNop(t *testing.T) {
	log, err := logging.New(false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	log, err := logging.New(true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

// TestDetail_LogsEveryStage checks one entry per stage and variant.
func TestDetail_LogsEveryStage(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	d, err := asymmetry.EvaluateDetailed(constants.Default())
	require.NoError(t, err)
	logging.Detail(zap.New(core), d)

	assert.Equal(t, 1, logs.FilterMessage("derived quantities").Len())
	assert.Equal(t, 2, logs.FilterMessage("bare amplitudes").Len())
	assert.Equal(t, 2, logs.FilterMessage("total amplitudes").Len())
	assert.Equal(t, 2, logs.FilterMessage("decay rates").Len())

	derived := logs.FilterMessage("derived quantities").All()[0].ContextMap()
	assert.Equal(t, d.Derived.Delta6Pi, derived["delta6_pi"])

	rates := logs.FilterMessage("decay rates").FilterField(zap.String("variant", "D-bar")).All()
	require.Len(t, rates, 1)
	kk, ok := rates[0].ContextMap()["kk"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, real(d.DBar.Rates.KK), kk["re"])
}
