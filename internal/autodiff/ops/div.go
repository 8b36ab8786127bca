package ops

import "github.com/tenso-ml/tenso/internal/matrix"

// DivOp represents elementwise division: output = a / b.
//
// Backward:
//   - d(a/b)/da = 1/b
//   - d(a/b)/db = -a/b² = -output/b
type DivOp struct{ Binary }

// Name returns "div".
func (DivOp) Name() string { return "div" }

// Forward computes a / b.
func (DivOp) Forward(inputs []*matrix.Matrix) *matrix.Matrix {
	return inputs[0].ZipMap(inputs[1], func(a, b float32) float32 { return a / b })
}

// Backward returns [delta / b, -delta ⊙ output / b].
func (DivOp) Backward(inputs []*matrix.Matrix, output, delta *matrix.Matrix) []*matrix.Matrix {
	b := inputs[1]
	gradA := delta.ZipMap(b, func(d, bv float32) float32 { return d / bv })
	gradB := gradA.ZipMap(output, func(g, o float32) float32 { return -g * o })
	return []*matrix.Matrix{gradA, gradB}
}
