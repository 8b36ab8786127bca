package ops

import "github.com/tenso-ml/tenso/internal/matrix"

// TransposeOp swaps rows and columns. Its backward pass transposes the delta.
type TransposeOp struct{ Unary }

// Name returns "transpose".
func (TransposeOp) Name() string { return "transpose" }

// Forward computes xᵗ.
func (TransposeOp) Forward(inputs []*matrix.Matrix) *matrix.Matrix {
	return inputs[0].Transpose()
}

// Backward returns deltaᵗ.
func (TransposeOp) Backward(_ []*matrix.Matrix, _, delta *matrix.Matrix) []*matrix.Matrix {
	return []*matrix.Matrix{delta.Transpose()}
}
