package ops

import (
	"math"

	"github.com/tenso-ml/tenso/internal/matrix"
)

// ExpOp represents the natural exponential: output = exp(x).
type ExpOp struct{ Unary }

// Name returns "exp".
func (ExpOp) Name() string { return "exp" }

// Forward computes exp(x) cellwise.
func (ExpOp) Forward(inputs []*matrix.Matrix) *matrix.Matrix {
	return inputs[0].Map(func(v float32) float32 {
		return float32(math.Exp(float64(v)))
	})
}

// Backward returns exp(x) ⊙ delta; the output already holds exp(x).
func (ExpOp) Backward(_ []*matrix.Matrix, output, delta *matrix.Matrix) []*matrix.Matrix {
	return []*matrix.Matrix{output.Mul(delta)}
}
