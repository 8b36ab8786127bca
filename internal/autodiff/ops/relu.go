package ops

import (
	"fmt"

	"github.com/tenso-ml/tenso/internal/matrix"
)

// ReLUOp represents the rectified linear unit: max(0, x).
//
// Backward: delta where x > 0, else 0.
type ReLUOp struct{ Unary }

// Name returns "relu".
func (ReLUOp) Name() string { return "relu" }

// Forward computes max(0, x) cellwise.
func (ReLUOp) Forward(inputs []*matrix.Matrix) *matrix.Matrix {
	return inputs[0].Map(func(v float32) float32 { return max(v, 0) })
}

// Backward masks the delta by the sign of the input.
func (ReLUOp) Backward(inputs []*matrix.Matrix, _, delta *matrix.Matrix) []*matrix.Matrix {
	return []*matrix.Matrix{inputs[0].ZipMap(delta, func(x, d float32) float32 {
		if x > 0 {
			return d
		}
		return 0
	})}
}

// LeakyReLUOp is ReLU with a small slope for negative inputs:
// x for x > 0, slope·x otherwise.
type LeakyReLUOp struct {
	Unary
	Slope float32
}

// Name returns "leaky_relu(slope)".
func (op LeakyReLUOp) Name() string { return fmt.Sprintf("leaky_relu(%g)", op.Slope) }

// Forward computes the leaky rectifier cellwise.
func (op LeakyReLUOp) Forward(inputs []*matrix.Matrix) *matrix.Matrix {
	return inputs[0].Map(func(v float32) float32 {
		if v > 0 {
			return v
		}
		return op.Slope * v
	})
}

// Backward passes delta where x > 0 and slope·delta elsewhere.
func (op LeakyReLUOp) Backward(inputs []*matrix.Matrix, _, delta *matrix.Matrix) []*matrix.Matrix {
	return []*matrix.Matrix{inputs[0].ZipMap(delta, func(x, d float32) float32 {
		if x > 0 {
			return d
		}
		return op.Slope * d
	})}
}
