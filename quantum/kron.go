package quantum

import "gonum.org/v1/gonum/mat"

// Kron returns the Kronecker (tensor) product a ⊗ b.
//
// The result is partitioned into a grid of b-sized blocks; the block at grid
// position (i, j) is b scaled by a[i, j]. A zero-sized operand yields an empty
// matrix.
func Kron(a, b mat.Matrix) *mat.Dense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar*br == 0 || ac*bc == 0 {
		return &mat.Dense{}
	}

	out := mat.NewDense(ar*br, ac*bc, nil)
	for i := range ar {
		for j := range ac {
			v := a.At(i, j)
			if v == 0 {
				continue
			}
			block := out.Slice(i*br, (i+1)*br, j*bc, (j+1)*bc).(*mat.Dense)
			block.Scale(v, b)
		}
	}
	return out
}
