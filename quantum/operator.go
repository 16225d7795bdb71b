package quantum

import "gonum.org/v1/gonum/mat"

// Operator builds the 2^n × 2^n matrix that applies g to a register of n
// qubits and acts as the identity on every other qubit.
//
// Qubit 0 is the leftmost tensor factor, so it is the most significant bit of
// a basis-state index. Memory is O(4^n); nothing is cached between calls.
func Operator(n int, g Gate) (*mat.Dense, error) {
	if n <= 0 {
		return nil, ErrNoQubits
	}
	if n > MaxQubits {
		return nil, ErrTooManyQubits
	}
	if err := g.Validate(n); err != nil {
		return nil, err
	}

	var op *mat.Dense
	for _, t := range gateTerms[g.Kind] {
		chain := fold(n, func(q int) *mat.Dense { return t[roleOf(q, g)] })
		if op == nil {
			op = chain
			continue
		}
		op.Add(op, chain)
	}
	return op, nil
}

// fold tensors together the blocks chosen for qubits 0..n-1, in qubit order.
func fold(n int, block func(q int) *mat.Dense) *mat.Dense {
	acc := mat.DenseCopyOf(block(0))
	for q := 1; q < n; q++ {
		acc = Kron(acc, block(q))
	}
	return acc
}
