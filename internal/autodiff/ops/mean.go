package ops

import "github.com/tenso-ml/tenso/internal/matrix"

// MeanOp reduces the input to a 1x1 matrix holding the mean of all cells.
//
// Backward broadcasts delta/count to every input cell.
type MeanOp struct{ Unary }

// Name returns "mean".
func (MeanOp) Name() string { return "mean" }

// Forward computes Σx / count.
func (MeanOp) Forward(inputs []*matrix.Matrix) *matrix.Matrix {
	return inputs[0].Mean()
}

// Backward returns a matrix shaped like the input filled with delta/count.
func (MeanOp) Backward(inputs []*matrix.Matrix, _, delta *matrix.Matrix) []*matrix.Matrix {
	x := inputs[0]
	return []*matrix.Matrix{matrix.Full(x.Rows(), x.Cols(), delta.Scalar()/float32(x.Len()))}
}
