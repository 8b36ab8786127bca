package ops

import (
	"math"

	"github.com/tenso-ml/tenso/internal/matrix"
)

// SigmoidOp represents the sigmoid activation: σ(x) = 1 / (1 + exp(-x)).
type SigmoidOp struct{ Unary }

// Name returns "sigmoid".
func (SigmoidOp) Name() string { return "sigmoid" }

// Forward computes σ(x) cellwise.
func (SigmoidOp) Forward(inputs []*matrix.Matrix) *matrix.Matrix {
	return inputs[0].Map(sigmoid)
}

// Backward computes the gradient for sigmoid.
//
// dσ/dx = σ(x)·(1 - σ(x)); the cached output already holds σ(x).
func (SigmoidOp) Backward(_ []*matrix.Matrix, output, delta *matrix.Matrix) []*matrix.Matrix {
	return []*matrix.Matrix{output.ZipMap(delta, func(s, d float32) float32 {
		return s * (1 - s) * d
	})}
}

func sigmoid(v float32) float32 {
	return float32(1 / (1 + math.Exp(-float64(v))))
}
