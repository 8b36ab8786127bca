package ops

import (
	"math"

	"github.com/tenso-ml/tenso/internal/matrix"
)

// SoftmaxOp normalizes each column into a probability distribution.
// Columns are samples, matching the W·x layout of the nn package.
//
// Forward (for each column):
//
//	softmax(x)_i = exp(x_i - max(x)) / Σ_j exp(x_j - max(x))
//
// Backward is the Jacobian-vector product (diag(s) - s·sᵗ)·delta, which
// per column simplifies to:
//
//	dx_j = s_j · (delta_j - Σ_i delta_i·s_i)
type SoftmaxOp struct{ Unary }

// Name returns "softmax".
func (SoftmaxOp) Name() string { return "softmax" }

// Forward computes the column-wise softmax.
func (SoftmaxOp) Forward(inputs []*matrix.Matrix) *matrix.Matrix {
	x := inputs[0]
	out := matrix.Zeros(x.Rows(), x.Cols())
	for c := 0; c < x.Cols(); c++ {
		peak := float32(math.Inf(-1))
		for r := 0; r < x.Rows(); r++ {
			peak = max(peak, x.At(r, c))
		}

		var total float64
		for r := 0; r < x.Rows(); r++ {
			e := math.Exp(float64(x.At(r, c) - peak))
			out.Set(r, c, float32(e))
			total += e
		}
		for r := 0; r < x.Rows(); r++ {
			out.Set(r, c, float32(float64(out.At(r, c))/total))
		}
	}
	return out
}

// Backward computes the softmax JVP column by column.
func (SoftmaxOp) Backward(_ []*matrix.Matrix, output, delta *matrix.Matrix) []*matrix.Matrix {
	dx := matrix.Zeros(output.Rows(), output.Cols())
	for c := 0; c < output.Cols(); c++ {
		var dot float32
		for r := 0; r < output.Rows(); r++ {
			dot += delta.At(r, c) * output.At(r, c)
		}
		for r := 0; r < output.Rows(); r++ {
			s := output.At(r, c)
			dx.Set(r, c, s*(delta.At(r, c)-dot))
		}
	}
	return []*matrix.Matrix{dx}
}
