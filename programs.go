package main

import "qdense/quantum"

// GHZ returns the n-qubit GHZ preparation: H on qubit 0, then a CNOT from
// qubit 0 onto every other qubit.
func GHZ(n int) *Circuit {
	c := &Circuit{NumQubits: n}
	c.AddGate(quantum.GateH, 0)
	for q := 1; q < n; q++ {
		c.AddGate(quantum.GateCNOT, q, 0)
	}
	return c
}

// DeutschJozsa returns the 4-qubit Deutsch–Jozsa circuit with a balanced
// oracle: qubits 0-2 are the input register, qubit 3 is the ancilla.
func DeutschJozsa() *Circuit {
	c := &Circuit{NumQubits: 4}

	// Superpose the inputs, ancilla to |−⟩.
	c.AddGate(quantum.GateH, 0)
	c.AddGate(quantum.GateH, 1)
	c.AddGate(quantum.GateH, 2)
	c.AddGate(quantum.GateX, 3)

	// Oracle.
	c.AddGate(quantum.GateX, 0)
	c.AddGate(quantum.GateX, 2)
	c.AddGate(quantum.GateH, 3)
	c.AddGate(quantum.GateCNOT, 3, 0)
	c.AddGate(quantum.GateCNOT, 3, 1)
	c.AddGate(quantum.GateCNOT, 3, 2)
	c.AddGate(quantum.GateX, 0)
	c.AddGate(quantum.GateX, 2)

	// Interfere.
	c.AddGate(quantum.GateH, 0)
	c.AddGate(quantum.GateH, 1)
	c.AddGate(quantum.GateH, 2)
	return c
}
