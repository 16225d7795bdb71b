package main

import (
	"errors"
	"math"
	"strings"
	"testing"

	"qdense/quantum"
)

func TestParseQASM(t *testing.T) {
	qasm := `OPENQASM 2.0;
include "qelib1.inc";

qreg q[3];
creg c[3];

// prepare GHZ
h q[0];
cx q[0], q[1];
CX q[0],q[2];   // upper case and no space
x q[2];
z q[1];`

	var c Circuit
	if err := c.ParseQASM(qasm); err != nil {
		t.Fatalf("ParseQASM error: %v", err)
	}
	for _, g := range c.Gates {
		t.Logf("  %s", g)
	}

	if c.NumQubits != 3 {
		t.Errorf("NumQubits = %d, want 3", c.NumQubits)
	}

	want := []quantum.Gate{
		quantum.NewGate(quantum.GateH, 0),
		quantum.NewCNOT(1, 0),
		quantum.NewCNOT(2, 0),
		quantum.NewGate(quantum.GateX, 2),
		quantum.NewGate(quantum.GateZ, 1),
	}
	if len(c.Gates) != len(want) {
		t.Fatalf("expected %d gates, got %d", len(want), len(c.Gates))
	}
	for i := range want {
		if c.Gates[i] != want[i] {
			t.Errorf("gate %d: got %s, want %s", i, c.Gates[i], want[i])
		}
	}
}

func TestParseQASMErrors(t *testing.T) {
	tests := []struct {
		name  string
		qasm  string
		line  string
		isErr error
	}{
		{"unsupported gate", "qreg q[2];\ny q[0];", "line 2", quantum.ErrUnknownGate},
		{"measure", "qreg q[1];\nh q[0];\nmeasure q[0] -> c[0];", "line 3", nil},
		{"cx with one qubit", "qreg q[2];\ncx q[0];", "line 2", nil},
		{"h with two qubits", "qreg q[2];\nh q[0], q[1];", "line 2", nil},
		{"other register name", "qreg r[2];", "line 1", nil},
		{"parameterized gate", "qreg q[1];\nrx(pi/2) q[0];", "line 2", nil},
	}

	for _, tt := range tests {
		var c Circuit
		err := c.ParseQASM(tt.qasm)
		if err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.line) {
			t.Errorf("%s: error %q does not name %s", tt.name, err, tt.line)
		}
		if tt.isErr != nil && !errors.Is(err, tt.isErr) {
			t.Errorf("%s: error %q is not %v", tt.name, err, tt.isErr)
		}
	}
}

func TestParseQASMKeepsCircuitOnError(t *testing.T) {
	c := GHZ(3)
	if err := c.ParseQASM("qreg q[2];\nswap q[0], q[1];"); err == nil {
		t.Fatal("expected error for swap")
	}
	if c.NumQubits != 3 || len(c.Gates) != 3 {
		t.Errorf("circuit changed after failed parse: %d qubits, %d gates", c.NumQubits, len(c.Gates))
	}
}

func TestRoundTripQASM(t *testing.T) {
	c := DeutschJozsa()

	qasm := c.ToQASM()
	t.Logf("Round-trip QASM output:\n%s", qasm)
	if !strings.Contains(qasm, "cx q[0], q[3];") {
		t.Errorf("expected 'cx q[0], q[3];' (control first) in QASM, got:\n%s", qasm)
	}

	var c2 Circuit
	if err := c2.ParseQASM(qasm); err != nil {
		t.Fatalf("round-trip parse: %v", err)
	}
	if c2.NumQubits != c.NumQubits {
		t.Errorf("round-trip NumQubits = %d, want %d", c2.NumQubits, c.NumQubits)
	}
	if len(c2.Gates) != len(c.Gates) {
		t.Fatalf("round-trip: expected %d gates, got %d", len(c.Gates), len(c2.Gates))
	}
	for i := range c.Gates {
		if c2.Gates[i] != c.Gates[i] {
			t.Errorf("round-trip gate %d: got %s, want %s", i, c2.Gates[i], c.Gates[i])
		}
	}
}

func TestCircuitEditing(t *testing.T) {
	c := Circuit{NumQubits: 3}
	c.AddGate(quantum.GateH, 0)
	c.AddGate(quantum.GateCNOT, 2, 0)
	c.InsertGate(1, quantum.NewGate(quantum.GateX, 1))
	c.InsertGate(99, quantum.NewGate(quantum.GateZ, 2))

	want := []string{"H(0)", "X(1)", "CX(target=2, control=0)", "Z(2)"}
	for i, g := range c.Gates {
		if g.String() != want[i] {
			t.Errorf("gate %d = %s, want %s", i, g, want[i])
		}
	}

	c.RemoveGatesOnQubit(2)
	if len(c.Gates) != 2 {
		t.Fatalf("after RemoveGatesOnQubit(2): %d gates, want 2", len(c.Gates))
	}

	c.RemoveGate(0)
	c.RemoveGate(5)
	if len(c.Gates) != 1 || c.Gates[0].String() != "X(1)" {
		t.Errorf("after RemoveGate(0): %v", c.Gates)
	}
}

func TestCircuitValidate(t *testing.T) {
	c := Circuit{NumQubits: 2}
	c.AddGate(quantum.GateCNOT, 1, 1)
	if err := c.Validate(); !errors.Is(err, quantum.ErrSameQubit) {
		t.Errorf("Validate() = %v, want ErrSameQubit", err)
	}

	c = Circuit{NumQubits: 2}
	c.AddGate(quantum.GateH, 2)
	if err := c.Validate(); !errors.Is(err, quantum.ErrQubitOutOfRange) {
		t.Errorf("Validate() = %v, want ErrQubitOutOfRange", err)
	}

	if err := (&Circuit{}).Validate(); !errors.Is(err, quantum.ErrNoQubits) {
		t.Errorf("empty Validate() = %v, want ErrNoQubits", err)
	}
}

func TestSimulateGHZ(t *testing.T) {
	for n := 1; n <= 6; n++ {
		reg, err := SimulateCircuit(GHZ(n), -1)
		if err != nil {
			t.Fatalf("GHZ(%d): %v", n, err)
		}
		for i, a := range reg.State() {
			want := 0.0
			if i == 0 || i == reg.Dim()-1 {
				want = 1 / math.Sqrt2
			}
			if math.Abs(a-want) > 1e-9 {
				t.Errorf("GHZ(%d)[%d] = %g, want %g", n, i, a, want)
			}
		}
	}
}

func TestSimulateUpTo(t *testing.T) {
	c := GHZ(3)

	reg, err := SimulateCircuit(c, 0)
	if err != nil {
		t.Fatal(err)
	}
	if reg.Amplitude(0) != 1 {
		t.Errorf("no gates: amplitude(0) = %g, want 1", reg.Amplitude(0))
	}

	reg, err = SimulateCircuit(c, 1)
	if err != nil {
		t.Fatal(err)
	}
	// H on qubit 0 only: |000⟩ and |100⟩.
	if math.Abs(reg.Amplitude(4)-1/math.Sqrt2) > 1e-9 {
		t.Errorf("after H: amplitude(4) = %g, want %g", reg.Amplitude(4), 1/math.Sqrt2)
	}
}

func TestSimulateReportsFailingGate(t *testing.T) {
	c := Circuit{NumQubits: 2}
	c.AddGate(quantum.GateH, 0)
	c.AddGate(quantum.GateX, 5)

	_, err := SimulateCircuit(&c, -1)
	if !errors.Is(err, quantum.ErrQubitOutOfRange) {
		t.Fatalf("expected ErrQubitOutOfRange, got %v", err)
	}
	if !strings.Contains(err.Error(), "gate 1") {
		t.Errorf("error %q does not name gate 1", err)
	}
}

func TestDeutschJozsaIsBalanced(t *testing.T) {
	reg, err := SimulateCircuit(DeutschJozsa(), -1)
	if err != nil {
		t.Fatal(err)
	}
	// A balanced oracle leaves the input register in |111⟩ with certainty.
	probs := reg.QubitProbabilities()
	for q := range 3 {
		if math.Abs(probs[q].Prob1-1) > 1e-9 {
			t.Errorf("input qubit %d: P1 = %g, want 1", q, probs[q].Prob1)
		}
	}
	if math.Abs(reg.Norm()-1) > 1e-9 {
		t.Errorf("norm = %g, want 1", reg.Norm())
	}
}

func TestBasisLabel(t *testing.T) {
	tests := []struct {
		i, n int
		want string
	}{
		{0, 1, "0"},
		{1, 1, "1"},
		{2, 3, "010"},
		{7, 3, "111"},
		{4, 4, "0100"},
	}
	for _, tt := range tests {
		if got := basisLabel(tt.i, tt.n); got != tt.want {
			t.Errorf("basisLabel(%d, %d) = %q, want %q", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestWriteState(t *testing.T) {
	reg, err := SimulateCircuit(GHZ(2), -1)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	writeState(&sb, reg, 1e-9)
	out := sb.String()
	for _, want := range []string{"|00⟩", "|11⟩", "0.707107", "0.500000"} {
		if !strings.Contains(out, want) {
			t.Errorf("state table missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "|01⟩") {
		t.Errorf("state table lists a zero amplitude:\n%s", out)
	}
}
