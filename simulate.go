package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"qdense/quantum"
)

// SimulateCircuit runs the first upTo gates of the circuit on a fresh
// register, or every gate when upTo is negative.
func SimulateCircuit(c *Circuit, upTo int) (*quantum.Register, error) {
	reg, err := quantum.New(c.NumQubits)
	if err != nil {
		return nil, err
	}
	gates := c.Gates
	if upTo >= 0 && upTo < len(gates) {
		gates = gates[:upTo]
	}
	for i, g := range gates {
		if err := reg.Apply(g); err != nil {
			return nil, fmt.Errorf("gate %d: %w", i, err)
		}
	}
	return reg, nil
}

// basisLabel renders basis index i as an n-bit string, qubit 0 first.
func basisLabel(i, n int) string {
	s := strconv.FormatInt(int64(i), 2)
	for len(s) < n {
		s = "0" + s
	}
	return s
}

// writeState prints the non-negligible amplitudes of reg as a table.
func writeState(w io.Writer, reg *quantum.Register, tol float64) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Basis", "Index", "Amplitude", "Probability"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	probs := reg.Probabilities()
	for i, a := range reg.State() {
		if probs[i] <= tol {
			continue
		}
		table.Append([]string{
			"|" + basisLabel(i, reg.NumQubits()) + "⟩",
			strconv.Itoa(i),
			strconv.FormatFloat(a, 'f', 6, 64),
			strconv.FormatFloat(probs[i], 'f', 6, 64),
		})
	}
	table.Render()
}
