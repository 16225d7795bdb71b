package quantum

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func eye(n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for i := range n {
		d.Set(i, i, 1)
	}
	return d
}

func TestKronIdentity(t *testing.T) {
	tests := []struct{ a, b int }{
		{1, 1},
		{1, 2},
		{2, 1},
		{2, 2},
		{2, 4},
		{3, 2},
		{4, 4},
	}

	for _, tt := range tests {
		got := Kron(eye(tt.a), eye(tt.b))
		if !mat.Equal(got, eye(tt.a*tt.b)) {
			t.Errorf("Kron(I%d, I%d) = %v, want I%d", tt.a, tt.b, mat.Formatted(got), tt.a*tt.b)
		}
	}
}

func TestKronBlocks(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	b := mat.NewDense(2, 2, []float64{0, 5, 6, 7})
	want := mat.NewDense(4, 4, []float64{
		0, 5, 0, 10,
		6, 7, 12, 14,
		0, 15, 0, 20,
		18, 21, 24, 28,
	})

	got := Kron(a, b)
	if !mat.Equal(got, want) {
		t.Errorf("Kron(a, b) =\n%v\nwant\n%v", mat.Formatted(got), mat.Formatted(want))
	}
}

func TestKronMatchesGonum(t *testing.T) {
	tests := []struct {
		name string
		a, b *mat.Dense
	}{
		{"H⊗X", hadamard, pauliX},
		{"P0⊗Z", projector0, pauliZ},
		{"X⊗H⊗P1", Kron(pauliX, hadamard), projector1},
		{"3x3⊗2x2", mat.NewDense(3, 3, []float64{1, -2, 0, 4, 0.5, 6, 0, 8, -9}), hadamard},
	}

	for _, tt := range tests {
		var want mat.Dense
		want.Kronecker(tt.a, tt.b)
		got := Kron(tt.a, tt.b)
		if !mat.EqualApprox(got, &want, 1e-12) {
			t.Errorf("%s: Kron differs from mat.Dense.Kronecker:\n%v\nwant\n%v",
				tt.name, mat.Formatted(got), mat.Formatted(&want))
		}
	}
}

func TestKronDoesNotAliasOperands(t *testing.T) {
	a := mat.DenseCopyOf(pauliX)
	b := mat.DenseCopyOf(hadamard)
	_ = Kron(a, b)
	if !mat.Equal(a, pauliX) || !mat.Equal(b, hadamard) {
		t.Errorf("Kron mutated its operands")
	}
}

func TestKronEmpty(t *testing.T) {
	got := Kron(&mat.Dense{}, eye(2))
	if !got.IsEmpty() {
		r, c := got.Dims()
		t.Errorf("Kron(empty, I2) has dims %dx%d, want empty", r, c)
	}
}
