package ops

import (
	"fmt"

	"github.com/tenso-ml/tenso/internal/matrix"
)

// PowOp raises every cell to a constant power: output = x^p.
//
// Backward: d(x^p)/dx = p·x^(p-1).
type PowOp struct {
	Unary
	Exponent float32
}

// Name returns "pow(p)".
func (op PowOp) Name() string { return fmt.Sprintf("pow(%g)", op.Exponent) }

// Forward computes x^p.
func (op PowOp) Forward(inputs []*matrix.Matrix) *matrix.Matrix {
	return inputs[0].Pow(op.Exponent)
}

// Backward returns p·x^(p-1) ⊙ delta.
func (op PowOp) Backward(inputs []*matrix.Matrix, _, delta *matrix.Matrix) []*matrix.Matrix {
	return []*matrix.Matrix{inputs[0].Pow(op.Exponent - 1).Scale(op.Exponent).Mul(delta)}
}
