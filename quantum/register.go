package quantum

import (
	"fmt"
	"math"
	"math/bits"

	"gonum.org/v1/gonum/mat"
)

// addressBits is the widest allocation the Go runtime hands out: 2^48 bytes
// on 64-bit platforms, 2^31 on 32-bit ones.
const addressBits = 31 + (bits.UintSize/64)*17

// MaxQubits is the largest register whose 2^n × 2^n float64 operator still
// fits in addressBits. Practical limits are far lower.
const MaxQubits = (addressBits - 3) / 2

// Register is a dense real state vector over n qubits.
//
// A Register is not safe for concurrent use.
type Register struct {
	n     int
	dim   int
	state *mat.VecDense
}

// New returns an n-qubit register in the |0…0⟩ basis state.
func New(n int) (*Register, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNoQubits, n)
	}
	if n > MaxQubits {
		return nil, fmt.Errorf("%w: got %d, limit %d", ErrTooManyQubits, n, MaxQubits)
	}
	dim := 1 << n
	state := mat.NewVecDense(dim, nil)
	state.SetVec(0, 1)
	return &Register{n: n, dim: dim, state: state}, nil
}

// NumQubits returns the qubit count fixed at construction.
func (r *Register) NumQubits() int { return r.n }

// Dim returns 2^n, the length of the state vector.
func (r *Register) Dim() int { return r.dim }

// ApplyX applies the Pauli-X (NOT) gate to target.
func (r *Register) ApplyX(target int) error {
	return r.Apply(NewGate(GateX, target))
}

// ApplyZ applies the Pauli-Z gate to target.
func (r *Register) ApplyZ(target int) error {
	return r.Apply(NewGate(GateZ, target))
}

// ApplyH applies the Hadamard gate to target.
func (r *Register) ApplyH(target int) error {
	return r.Apply(NewGate(GateH, target))
}

// ApplyCNOT flips target when control is |1⟩.
func (r *Register) ApplyCNOT(target, control int) error {
	return r.Apply(NewCNOT(target, control))
}

// Apply builds the full operator for g and replaces the state with
// operator · state. On error the state is left untouched.
func (r *Register) Apply(g Gate) error {
	op, err := Operator(r.n, g)
	if err != nil {
		return fmt.Errorf("apply %s: %w", g, err)
	}
	next := mat.NewVecDense(r.dim, nil)
	next.MulVec(op, r.state)
	r.state = next
	return nil
}

// State returns a copy of the amplitudes, indexed by basis state.
func (r *Register) State() []float64 {
	out := make([]float64, r.dim)
	copy(out, r.state.RawVector().Data)
	return out
}

// Amplitude returns the amplitude of basis state i.
func (r *Register) Amplitude(i int) float64 {
	return r.state.AtVec(i)
}

// Norm returns the Euclidean norm of the state. Gates are orthogonal, so it
// stays at 1 up to rounding.
func (r *Register) Norm() float64 {
	return mat.Norm(r.state, 2)
}

// Probabilities returns the squared amplitude of every basis state.
func (r *Register) Probabilities() []float64 {
	probs := make([]float64, r.dim)
	for i := range probs {
		a := r.state.AtVec(i)
		probs[i] = a * a
	}
	return probs
}

// QubitProbability holds the marginal probabilities of one qubit.
type QubitProbability struct {
	Prob0 float64
	Prob1 float64
}

// QubitProbabilities returns the marginal |0⟩/|1⟩ probabilities per qubit.
// Qubit 0 is the most significant bit of the basis index.
func (r *Register) QubitProbabilities() []QubitProbability {
	probs := make([]QubitProbability, r.n)
	for i := range r.dim {
		a := r.state.AtVec(i)
		p := a * a
		for q := range r.n {
			if i&r.mask(q) != 0 {
				probs[q].Prob1 += p
			} else {
				probs[q].Prob0 += p
			}
		}
	}
	return probs
}

// Clone returns an independent copy of the register.
func (r *Register) Clone() *Register {
	return &Register{n: r.n, dim: r.dim, state: mat.VecDenseCopyOf(r.state)}
}

// mask returns the basis-index bit of qubit q.
func (r *Register) mask(q int) int {
	return 1 << (r.n - 1 - q)
}

// approxEqual compares two amplitudes within tol.
func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// Equal reports whether two registers hold the same state within tol.
func (r *Register) Equal(other *Register, tol float64) bool {
	if r.n != other.n {
		return false
	}
	for i := range r.dim {
		if !approxEqual(r.state.AtVec(i), other.state.AtVec(i), tol) {
			return false
		}
	}
	return true
}
