// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by the command-line tool.
// Logs go to stderr so stdout carries nothing but the report.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/charmcp/amplitude"
	"github.com/katalvlaran/charmcp/asymmetry"
)

// New returns a debug-level console logger on stderr when verbose is set,
// and a no-op logger otherwise.
func New(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	return cfg.Build()
}

// Complex renders z as a pair of float fields, key.re and key.im.
func Complex(key string, z complex128) zap.Field {
	return zap.Object(key, complexMarshaler(z))
}

type complexMarshaler complex128

func (c complexMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("re", real(c))
	enc.AddFloat64("im", imag(c))

	return nil
}

// Detail logs every intermediate of an evaluation at debug level.
func Detail(log *zap.Logger, d asymmetry.Detail) {
	dv := d.Derived
	log.Debug("derived quantities",
		zap.Float64("f_pi", dv.FPi),
		zap.Float64("corr_fdpi00", dv.CorrFDPi00),
		zap.Float64("corr_fdk00", dv.CorrFDK00),
		zap.Float64("FpiS", dv.FPiS),
		zap.Float64("FkS", dv.FKS),
		zap.Float64("delta6_pi", dv.Delta6Pi),
		zap.Float64("delta6_k", dv.Delta6K),
	)

	for _, v := range []struct {
		name string
		v    asymmetry.Variant
	}{{"D", d.D}, {"D-bar", d.DBar}} {
		log.Debug("bare amplitudes", zap.String("variant", v.name), bareFields(v.v.Bare))
		log.Debug("total amplitudes",
			zap.String("variant", v.name),
			Complex("t0_pipi", v.v.Totals.T0PiPi),
			Complex("t2_pipi_phi_zero", v.v.Totals.T2PiPiZero),
			Complex("t2_pipi_phi_pi", v.v.Totals.T2PiPiPi),
			Complex("t0_kk", v.v.Totals.T0KK),
			Complex("t1_kk", v.v.Totals.T1KK),
		)
		log.Debug("decay rates",
			zap.String("variant", v.name),
			Complex("kk", v.v.Rates.KK),
			Complex("pipi_phi_zero", v.v.Rates.PiPiZero),
			Complex("pipi_phi_pi", v.v.Rates.PiPiPi),
		)
	}
}

func bareFields(b amplitude.BareSet) zap.Field {
	return zap.Dict("bare",
		Complex("t0_pipi", b.T0PiPi),
		Complex("t2_pipi", b.T2PiPi),
		Complex("t0_kk", b.T0KK),
		Complex("t1_kk", b.T1KK),
	)
}
