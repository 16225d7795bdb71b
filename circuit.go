package main

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"qdense/quantum"
)

// Pre-compiled regexps for QASM parsing.
var (
	singleGateRegex = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\]\s*;?$`)
	twoQubitRegex   = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\]\s*,\s*q\[(\d+)\]\s*;?$`)
	qregRegex       = regexp.MustCompile(`^qreg\s+(\w+)\[(\d+)\]\s*;?$`)
)

// Circuit is an ordered gate list over a fixed number of qubits.
// Gates run strictly in list order; column i of the TUI grid is gate i.
type Circuit struct {
	NumQubits int
	Gates     []quantum.Gate
}

// AddGate appends a gate to the circuit. A CNOT takes its control as the
// optional trailing argument.
func (c *Circuit) AddGate(kind quantum.GateKind, target int, control ...int) {
	ctrl := -1
	if len(control) > 0 {
		ctrl = control[0]
	}
	c.Gates = append(c.Gates, quantum.Gate{Kind: kind, Target: target, Control: ctrl})
}

// InsertGate inserts a gate before position step (appends when step is past the end).
func (c *Circuit) InsertGate(step int, g quantum.Gate) {
	step = min(max(step, 0), len(c.Gates))
	c.Gates = slices.Insert(c.Gates, step, g)
}

// RemoveGate removes the gate at position step.
func (c *Circuit) RemoveGate(step int) {
	if step < 0 || step >= len(c.Gates) {
		return
	}
	c.Gates = slices.Delete(c.Gates, step, step+1)
}

// gateReferences reports whether the gate touches the given qubit.
func gateReferences(g quantum.Gate, qubit int) bool {
	return g.Target == qubit || (g.Kind.Controlled() && g.Control == qubit)
}

// RemoveGatesOnQubit removes every gate that references the given qubit.
func (c *Circuit) RemoveGatesOnQubit(qubit int) {
	c.Gates = slices.DeleteFunc(c.Gates, func(g quantum.Gate) bool {
		return gateReferences(g, qubit)
	})
}

// Validate checks every gate against the circuit's qubit count.
func (c *Circuit) Validate() error {
	if c.NumQubits <= 0 {
		return fmt.Errorf("circuit: %w", quantum.ErrNoQubits)
	}
	for i, g := range c.Gates {
		if err := g.Validate(c.NumQubits); err != nil {
			return fmt.Errorf("circuit: gate %d: %w", i, err)
		}
	}
	return nil
}

// ToQASM generates OpenQASM 2.0 output from the circuit.
func (c *Circuit) ToQASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n\n", max(c.NumQubits, 1))

	for _, g := range c.Gates {
		name := strings.ToLower(g.Kind.String())
		if g.Kind.Controlled() {
			fmt.Fprintf(&sb, "%s q[%d], q[%d];\n", name, g.Control, g.Target)
			continue
		}
		fmt.Fprintf(&sb, "%s q[%d];\n", name, g.Target)
	}
	return sb.String()
}

// ParseQASM parses QASM text and rebuilds the circuit from it. Only the
// x, z, h and cx gates are accepted; anything else is an error naming the line.
func (c *Circuit) ParseQASM(qasm string) error {
	var parsed Circuit

	for i, line := range strings.Split(qasm, "\n") {
		lineNo := i + 1
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "OPENQASM"), strings.HasPrefix(line, "include"), strings.HasPrefix(line, "creg"):
			continue
		case strings.HasPrefix(line, "qreg"):
			matches := qregRegex.FindStringSubmatch(line)
			if matches == nil {
				return fmt.Errorf("line %d: malformed qreg %q", lineNo, line)
			}
			if matches[1] != "q" {
				return fmt.Errorf("line %d: register must be named q, got %q", lineNo, matches[1])
			}
			n, err := strconv.Atoi(matches[2])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			parsed.NumQubits = n
			continue
		}

		if matches := twoQubitRegex.FindStringSubmatch(line); matches != nil {
			kind, err := quantum.ParseGateKind(matches[1])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			if !kind.Controlled() {
				return fmt.Errorf("line %d: %s takes one qubit", lineNo, kind)
			}
			control, _ := strconv.Atoi(matches[2])
			target, _ := strconv.Atoi(matches[3])
			parsed.AddGate(kind, target, control)
			continue
		}

		if matches := singleGateRegex.FindStringSubmatch(line); matches != nil {
			kind, err := quantum.ParseGateKind(matches[1])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			if kind.Controlled() {
				return fmt.Errorf("line %d: %s needs a control and a target", lineNo, kind)
			}
			target, _ := strconv.Atoi(matches[2])
			parsed.AddGate(kind, target)
			continue
		}

		return fmt.Errorf("line %d: unsupported statement %q", lineNo, line)
	}

	*c = parsed
	return nil
}
