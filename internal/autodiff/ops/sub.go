package ops

import "github.com/tenso-ml/tenso/internal/matrix"

// SubOp represents elementwise subtraction: output = a - b.
//
// It behaves as the addition of the negated right operand, so
// d(a-b)/da = 1 and d(a-b)/db = -1.
type SubOp struct{ Binary }

// Name returns "sub".
func (SubOp) Name() string { return "sub" }

// Forward computes a - b.
func (SubOp) Forward(inputs []*matrix.Matrix) *matrix.Matrix {
	return inputs[0].Sub(inputs[1])
}

// Backward returns [delta, -delta].
func (SubOp) Backward(_ []*matrix.Matrix, _, delta *matrix.Matrix) []*matrix.Matrix {
	return []*matrix.Matrix{delta, delta.Scale(-1)}
}
