package autodiff

import (
	"github.com/pkg/errors"

	"github.com/tenso-ml/tenso/internal/matrix"
)

// Variable is a trainable matrix with a gradient accumulator of the same
// shape.
//
// Backward passes add into the accumulator; it is only cleared by
// TakeGradient or ZeroGrad, so several backward passes may contribute
// before an optimizer step. A Variable may be referenced by any number of
// graphs.
type Variable struct {
	value *matrix.Matrix
	grad  *matrix.Matrix
}

// NewVariable creates a Variable holding value with a zero gradient.
func NewVariable(value *matrix.Matrix) *Variable {
	return &Variable{
		value: value,
		grad:  matrix.Zeros(value.Rows(), value.Cols()),
	}
}

// Value returns the current value. Optimizers update it in place.
func (v *Variable) Value() *matrix.Matrix {
	return v.value
}

// SetValue replaces the value. The size must not change.
func (v *Variable) SetValue(m *matrix.Matrix) {
	if !m.SameSize(v.value) {
		panic(errors.Wrapf(matrix.ErrShapeMismatch, "set value: %v vs %v", m.Size(), v.value.Size()))
	}
	v.value = m
}

// Gradient returns the live accumulator. Callers must not modify it.
func (v *Variable) Gradient() *matrix.Matrix {
	return v.grad
}

// TakeGradient returns the accumulated gradient and clears the accumulator.
func (v *Variable) TakeGradient() *matrix.Matrix {
	return v.grad.TakeClear()
}

// ZeroGrad clears the accumulator.
func (v *Variable) ZeroGrad() {
	v.grad.Zero()
}

// Size returns the [rows, cols] of the value.
func (v *Variable) Size() [2]int {
	return v.value.Size()
}

func (v *Variable) accumulate(delta *matrix.Matrix) {
	v.grad.ZipApply(delta, func(g, d float32) float32 { return g + d })
}
