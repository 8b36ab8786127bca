package ops

import (
	"fmt"

	"github.com/tenso-ml/tenso/internal/matrix"
)

// ScaleOp multiplies every cell by a constant factor.
type ScaleOp struct {
	Unary
	Factor float32
}

// Name returns "scale(factor)".
func (op ScaleOp) Name() string { return fmt.Sprintf("scale(%g)", op.Factor) }

// Forward computes factor·x.
func (op ScaleOp) Forward(inputs []*matrix.Matrix) *matrix.Matrix {
	return inputs[0].Scale(op.Factor)
}

// Backward returns factor·delta.
func (op ScaleOp) Backward(_ []*matrix.Matrix, _, delta *matrix.Matrix) []*matrix.Matrix {
	return []*matrix.Matrix{delta.Scale(op.Factor)}
}
