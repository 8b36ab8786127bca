package ops

import (
	"math"

	"github.com/tenso-ml/tenso/internal/matrix"
)

// LogOp represents the natural logarithm: output = ln(x).
//
// Non-positive cells produce -Inf or NaN as math.Log does.
type LogOp struct{ Unary }

// Name returns "log".
func (LogOp) Name() string { return "log" }

// Forward computes ln(x) cellwise.
func (LogOp) Forward(inputs []*matrix.Matrix) *matrix.Matrix {
	return inputs[0].Map(func(v float32) float32 {
		return float32(math.Log(float64(v)))
	})
}

// Backward returns delta / x.
func (LogOp) Backward(inputs []*matrix.Matrix, _, delta *matrix.Matrix) []*matrix.Matrix {
	return []*matrix.Matrix{delta.ZipMap(inputs[0], func(d, x float32) float32 {
		return d / x
	})}
}
