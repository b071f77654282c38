// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/charmcp/asymmetry"
	"github.com/katalvlaran/charmcp/constants"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()

	return out.String(), err
}

// TestRoot_NoArgsPrintsReport is the reference scenario: five numeric
// lines, fixed order, 6 decimals.
func TestRoot_NoArgsPrintsReport(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "CP Asymmetry Acp(K+K-):               -0.000700", lines[3])
	assert.Equal(t, "CP Asymmetry Acp(pi+pi-) [phi=0]:     0.000153", lines[4])
	assert.Equal(t, "CP Asymmetry Acp(pi+pi-) [phi=pi]:    0.000314", lines[5])
	assert.Equal(t, "Difference ΔAcp [phi=0]:             -0.000853", lines[7])
	assert.Equal(t, "Difference ΔAcp [phi=pi]:            -0.001014", lines[8])
}

// TestRoot_Idempotent runs the command twice and compares bytes.
func TestRoot_Idempotent(t *testing.T) {
	a, err := execute(t)
	require.NoError(t, err)
	b, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestRoot_VerboseKeepsStdoutClean: logs never reach the report writer.
func TestRoot_VerboseKeepsStdoutClean(t *testing.T) {
	quiet, err := execute(t)
	require.NoError(t, err)
	loud, err := execute(t, "--verbose")
	require.NoError(t, err)
	assert.Equal(t, quiet, loud)
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, err := execute(t, "extra")
	assert.Error(t, err)
}

func TestConstantsCmd_YAML(t *testing.T) {
	out, err := execute(t, "constants")
	require.NoError(t, err)

	var entries []map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &entries))
	assert.Len(t, entries, len(constants.Default().Entries()))
	assert.Equal(t, "c1", entries[0]["name"])
}

// TestRunResults_DegenerateIsLoud: G_F = 0 prints NaN, logs an error and
// returns ErrDegenerateRate.
func TestRunResults_DegenerateIsLoud(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	var out bytes.Buffer
	err := runResults(&out, zap.New(core), constants.New(constants.WithGFermi(0)))
	assert.ErrorIs(t, err, asymmetry.ErrDegenerateRate)
	assert.Contains(t, out.String(), "NaN")
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}
