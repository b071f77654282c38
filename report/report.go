// SPDX-License-Identifier: MIT

// Package report renders asymmetry results and the constant table.
package report

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/charmcp/asymmetry"
	"github.com/katalvlaran/charmcp/constants"
)

// Width is the border width of the RESULTS report.
const Width = 49

const title = "RESULTS"

// Write prints r as the fixed-width RESULTS report:
// three asymmetry lines, a rule, two ΔAcp lines, all at 6 decimals.
func Write(w io.Writer, r asymmetry.Result) error {
	heavy := strings.Repeat("=", Width)
	light := strings.Repeat("-", Width)
	pad := strings.Repeat(" ", (Width-len(title))/2)

	lines := []string{
		heavy,
		pad + title + pad,
		heavy,
		fmt.Sprintf("CP Asymmetry Acp(K+K-):               %.6f", r.KK),
		fmt.Sprintf("CP Asymmetry Acp(pi+pi-) [phi=0]:     %.6f", r.PiPiZero),
		fmt.Sprintf("CP Asymmetry Acp(pi+pi-) [phi=pi]:    %.6f", r.PiPiPi),
		light,
		fmt.Sprintf("Difference ΔAcp [phi=0]:             %.6f", r.DeltaZero()),
		fmt.Sprintf("Difference ΔAcp [phi=pi]:            %.6f", r.DeltaPi()),
		heavy,
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")

	return err
}

// yamlEntry is the YAML shape of one constant.
type yamlEntry struct {
	Name     string      `yaml:"name"`
	Category string      `yaml:"category"`
	Unit     string      `yaml:"unit,omitempty"`
	Value    interface{} `yaml:"value"`
}

// yamlComplex is the YAML shape of a complex value.
type yamlComplex struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im"`
}

// WriteConstants prints t as a YAML sequence in Table.Entries order.
// Complex entries are written as {re, im} mappings.
func WriteConstants(w io.Writer, t constants.Table) error {
	entries := t.Entries()
	out := make([]yamlEntry, 0, len(entries))
	for _, e := range entries {
		ye := yamlEntry{Name: e.Name, Category: string(e.Category), Unit: e.Unit, Value: e.Real}
		if e.IsComplex {
			ye.Value = yamlComplex{Re: real(e.Complex), Im: imag(e.Complex)}
		}
		out = append(out, ye)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("report: encode constants: %w", err)
	}

	return enc.Close()
}
