package quantum

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// GateKind identifies one of the fixed gates the register can apply.
type GateKind uint8

const (
	GateX GateKind = iota + 1
	GateZ
	GateH
	GateCNOT
)

var gateNames = map[GateKind]string{
	GateX:    "X",
	GateZ:    "Z",
	GateH:    "H",
	GateCNOT: "CX",
}

func (k GateKind) String() string {
	if name, ok := gateNames[k]; ok {
		return name
	}
	return fmt.Sprintf("GateKind(%d)", uint8(k))
}

// Controlled reports whether the gate acts on a control qubit as well as a target.
func (k GateKind) Controlled() bool {
	return k == GateCNOT
}

// ParseGateKind maps a gate name (x, z, h, cx or cnot, any case) to its kind.
func ParseGateKind(name string) (GateKind, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "X":
		return GateX, nil
	case "Z":
		return GateZ, nil
	case "H":
		return GateH, nil
	case "CX", "CNOT":
		return GateCNOT, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGate, name)
}

// Gate describes one gate application. Control is -1 for single-qubit gates.
type Gate struct {
	Kind    GateKind
	Target  int
	Control int
}

// NewGate builds a single-qubit gate descriptor.
func NewGate(kind GateKind, target int) Gate {
	return Gate{Kind: kind, Target: target, Control: -1}
}

// NewCNOT builds a CNOT descriptor. The argument order follows ApplyCNOT.
func NewCNOT(target, control int) Gate {
	return Gate{Kind: GateCNOT, Target: target, Control: control}
}

func (g Gate) String() string {
	if g.Kind.Controlled() {
		return fmt.Sprintf("%s(target=%d, control=%d)", g.Kind, g.Target, g.Control)
	}
	return fmt.Sprintf("%s(%d)", g.Kind, g.Target)
}

// Validate checks the gate against a register of n qubits.
func (g Gate) Validate(n int) error {
	if _, ok := gateNames[g.Kind]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownGate, g.Kind)
	}
	if g.Target < 0 || g.Target >= n {
		return fmt.Errorf("%w: target %d, register has %d qubits", ErrQubitOutOfRange, g.Target, n)
	}
	if !g.Kind.Controlled() {
		return nil
	}
	if g.Control < 0 || g.Control >= n {
		return fmt.Errorf("%w: control %d, register has %d qubits", ErrQubitOutOfRange, g.Control, n)
	}
	if g.Control == g.Target {
		return fmt.Errorf("%w: qubit %d", ErrSameQubit, g.Target)
	}
	return nil
}

const invSqrt2 = 1 / math.Sqrt2

// Fixed 2×2 blocks, row-major.
var (
	identity   = mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	pauliX     = mat.NewDense(2, 2, []float64{0, 1, 1, 0})
	pauliZ     = mat.NewDense(2, 2, []float64{1, 0, 0, -1})
	hadamard   = mat.NewDense(2, 2, []float64{invSqrt2, invSqrt2, invSqrt2, -invSqrt2})
	projector0 = mat.NewDense(2, 2, []float64{1, 0, 0, 0})
	projector1 = mat.NewDense(2, 2, []float64{0, 0, 0, 1})
)

// role is the part a single qubit plays in a gate application.
type role uint8

const (
	roleIdle role = iota
	roleTarget
	roleControl
)

func roleOf(q int, g Gate) role {
	switch {
	case q == g.Target:
		return roleTarget
	case g.Kind.Controlled() && q == g.Control:
		return roleControl
	default:
		return roleIdle
	}
}

// term maps each qubit role to the 2×2 block tensored in at that position.
type term map[role]*mat.Dense

// gateTerms lists, per gate kind, the tensor chains whose sum is the full operator.
// CNOT = (P0 on control, I on target) + (P1 on control, X on target).
var gateTerms = map[GateKind][]term{
	GateX: {{roleIdle: identity, roleTarget: pauliX}},
	GateZ: {{roleIdle: identity, roleTarget: pauliZ}},
	GateH: {{roleIdle: identity, roleTarget: hadamard}},
	GateCNOT: {
		{roleIdle: identity, roleTarget: identity, roleControl: projector0},
		{roleIdle: identity, roleTarget: pauliX, roleControl: projector1},
	},
}
