package ops

import "github.com/tenso-ml/tenso/internal/matrix"

// AddOp represents elementwise addition: output = a + b.
//
// Backward: d(a+b)/da = 1, d(a+b)/db = 1.
type AddOp struct{ Binary }

// Name returns "add".
func (AddOp) Name() string { return "add" }

// Forward computes a + b.
func (AddOp) Forward(inputs []*matrix.Matrix) *matrix.Matrix {
	return inputs[0].Add(inputs[1])
}

// Backward passes the delta through unchanged to both inputs.
func (AddOp) Backward(_ []*matrix.Matrix, _, delta *matrix.Matrix) []*matrix.Matrix {
	return []*matrix.Matrix{delta, delta}
}
