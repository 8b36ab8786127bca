package ops

import (
	"math"

	"github.com/tenso-ml/tenso/internal/matrix"
)

// TanhOp represents the hyperbolic tangent activation.
type TanhOp struct{ Unary }

// Name returns "tanh".
func (TanhOp) Name() string { return "tanh" }

// Forward computes tanh(x) cellwise.
func (TanhOp) Forward(inputs []*matrix.Matrix) *matrix.Matrix {
	return inputs[0].Map(func(v float32) float32 {
		return float32(math.Tanh(float64(v)))
	})
}

// Backward computes the gradient for tanh.
//
// d(tanh(x))/dx = 1 - tanh²(x), read from the cached output.
func (TanhOp) Backward(_ []*matrix.Matrix, output, delta *matrix.Matrix) []*matrix.Matrix {
	return []*matrix.Matrix{output.ZipMap(delta, func(t, d float32) float32 {
		return (1 - t*t) * d
	})}
}
