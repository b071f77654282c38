// SPDX-License-Identifier: MIT

// Command charmcp prints the CP asymmetries of D0 → K+K− and D0 → π+π−
// for the reference constant table.
//
// Usage:
//
//	charmcp              # RESULTS report on stdout
//	charmcp constants    # constant table as YAML
//	charmcp -v           # also log every intermediate to stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/charmcp/asymmetry"
	"github.com/katalvlaran/charmcp/constants"
	"github.com/katalvlaran/charmcp/internal/logging"
	"github.com/katalvlaran/charmcp/report"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "charmcp:", err)
		os.Exit(1)
	}
}

// newRootCmd wires the command tree around out, so tests can capture stdout.
func newRootCmd(out io.Writer) *cobra.Command {
	var (
		verbose bool
		logger  = zap.NewNop()
	)

	root := &cobra.Command{
		Use:   "charmcp",
		Short: "CP asymmetries in D0 → π+π− and D0 → K+K−",
		Long: `Evaluates the effective-Hamiltonian model of D0 → π+π− and D0 → K+K−
with final-state rescattering and prints Acp(K+K−), Acp(π+π−) for the
strong-phase hypotheses φ=0 and φ=π, and the two ΔAcp differences.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(verbose)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			logger = l

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResults(out, logger, constants.Default())
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log intermediate quantities to stderr")

	root.AddCommand(&cobra.Command{
		Use:   "constants",
		Short: "Print the constant table as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report.WriteConstants(out, constants.Default())
		},
	})

	return root
}

// runResults evaluates t and writes the report.
// A degenerate or non-finite asymmetry is a logic fault: it is logged,
// the NaN report is still printed, and the error is returned.
func runResults(out io.Writer, logger *zap.Logger, t constants.Table) error {
	d, evalErr := asymmetry.EvaluateDetailed(t)
	logging.Detail(logger, d)

	if err := report.Write(out, d.Result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if evalErr != nil {
		logger.Error("asymmetry evaluation failed", zap.Error(evalErr))

		return evalErr
	}

	logger.Debug("asymmetries",
		zap.Float64("acp_kk", d.Result.KK),
		zap.Float64("acp_pipi_phi_zero", d.Result.PiPiZero),
		zap.Float64("acp_pipi_phi_pi", d.Result.PiPiPi),
	)

	return nil
}
