package ops

import "github.com/tenso-ml/tenso/internal/matrix"

// MulOp represents elementwise multiplication: output = a ⊙ b.
//
// Backward: d(a⊙b)/da = b, d(a⊙b)/db = a.
type MulOp struct{ Binary }

// Name returns "mul".
func (MulOp) Name() string { return "mul" }

// Forward computes a ⊙ b.
func (MulOp) Forward(inputs []*matrix.Matrix) *matrix.Matrix {
	return inputs[0].Mul(inputs[1])
}

// Backward returns [b ⊙ delta, a ⊙ delta].
func (MulOp) Backward(inputs []*matrix.Matrix, _, delta *matrix.Matrix) []*matrix.Matrix {
	return []*matrix.Matrix{inputs[1].Mul(delta), inputs[0].Mul(delta)}
}
