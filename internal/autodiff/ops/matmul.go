package ops

import "github.com/tenso-ml/tenso/internal/matrix"

// MatMulOp represents matrix multiplication: output = a·b.
//
// Backward pass:
//   - dA = delta·bᵗ
//   - dB = aᵗ·delta
type MatMulOp struct{ Binary }

// Name returns "matmul".
func (MatMulOp) Name() string { return "matmul" }

// Forward computes a·b.
func (MatMulOp) Forward(inputs []*matrix.Matrix) *matrix.Matrix {
	return inputs[0].MatMul(inputs[1])
}

// Backward computes input deltas for matrix multiplication.
func (MatMulOp) Backward(inputs []*matrix.Matrix, _, delta *matrix.Matrix) []*matrix.Matrix {
	a, b := inputs[0], inputs[1]
	return []*matrix.Matrix{
		delta.MatMul(b.Transpose()),
		a.Transpose().MatMul(delta),
	}
}
