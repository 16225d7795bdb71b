package quantum

import "errors"

var (
	// ErrNoQubits is returned when a register is requested with zero qubits.
	ErrNoQubits = errors.New("quantum: register needs at least one qubit")

	// ErrTooManyQubits is returned when 2^n (or the 2^n × 2^n operator) cannot be addressed.
	ErrTooManyQubits = errors.New("quantum: too many qubits")

	// ErrQubitOutOfRange is returned when a gate names a qubit outside [0, n).
	ErrQubitOutOfRange = errors.New("quantum: qubit index out of range")

	// ErrSameQubit is returned when a CNOT uses one qubit as both target and control.
	ErrSameQubit = errors.New("quantum: target and control must differ")

	// ErrUnknownGate is returned for a gate kind outside the fixed gate set.
	ErrUnknownGate = errors.New("quantum: unknown gate")
)
