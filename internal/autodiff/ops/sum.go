package ops

import "github.com/tenso-ml/tenso/internal/matrix"

// SumOp reduces the input to a 1x1 matrix holding the sum of all cells.
//
// Backward broadcasts the scalar delta to every input cell.
type SumOp struct{ Unary }

// Name returns "sum".
func (SumOp) Name() string { return "sum" }

// Forward computes Σx.
func (SumOp) Forward(inputs []*matrix.Matrix) *matrix.Matrix {
	return inputs[0].Sum()
}

// Backward returns a matrix shaped like the input filled with delta.
func (SumOp) Backward(inputs []*matrix.Matrix, _, delta *matrix.Matrix) []*matrix.Matrix {
	x := inputs[0]
	return []*matrix.Matrix{matrix.Full(x.Rows(), x.Cols(), delta.Scalar())}
}
