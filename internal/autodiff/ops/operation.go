// Package ops defines the differentiable operation kernels of the graph.
//
// Each kernel implements the Operation interface, which provides:
//   - Forward: computes the output matrix from the input matrices
//   - Backward: maps the output delta to one delta per input (the VJP)
//
// Kernels are pure: they never mutate their arguments and keep no state
// between calls, so one kernel value may back any number of graph nodes.
//
// Supported operations:
//   - AddOp, SubOp, MulOp, DivOp: elementwise arithmetic
//   - ScaleOp: multiplication by a constant
//   - MatMulOp: matrix multiplication (dA = delta·Bᵗ, dB = Aᵗ·delta)
//   - TransposeOp, PowOp, SumOp, MeanOp
//   - ExpOp, LogOp
//   - SigmoidOp, TanhOp, ReLUOp, LeakyReLUOp, SoftmaxOp: activations
package ops

import "github.com/tenso-ml/tenso/internal/matrix"

// Operation is a forward/backward kernel pair.
type Operation interface {
	// Name identifies the kernel in diagnostics.
	Name() string

	// Arity is the number of inputs the kernel consumes (1 or 2).
	Arity() int

	// Forward computes the output for the given inputs.
	Forward(inputs []*matrix.Matrix) *matrix.Matrix

	// Backward computes one delta per input given the inputs, the output
	// produced by Forward for them, and the delta of that output.
	//
	// Example for AddOp:
	//   inputs: [a, b]
	//   delta: dL/d(a+b)
	//   returns: [delta, delta]
	Backward(inputs []*matrix.Matrix, output, delta *matrix.Matrix) []*matrix.Matrix
}

// Unary is embedded by single-input kernels.
type Unary struct{}

// Arity returns 1.
func (Unary) Arity() int { return 1 }

// Binary is embedded by two-input kernels.
type Binary struct{}

// Arity returns 2.
func (Binary) Arity() int { return 2 }
