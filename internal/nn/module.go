// Package nn implements neural network building blocks on top of autodiff
// graphs.
//
// This package provides:
//   - Model interface: builds its forward graph and enumerates Variables
//   - Linear: fully connected layer over column vectors
//   - Sequential: container for stacking models
//   - Activations: Identity, Sigmoid, Tanh, ReLU, LeakyReLU, Softmax
//   - MSE loss and a Trainer driving forward/backward/step
package nn

import "github.com/tenso-ml/tenso/internal/autodiff"

// Model is the base interface for network components.
//
// Forward adds the component's nodes to g, consuming x, and returns the
// output node. Inputs are column vectors: a sample with n features is an
// [n, 1] matrix.
type Model interface {
	Forward(g *autodiff.Graph, x autodiff.NodeID) autodiff.NodeID

	// ForEachVariable calls fn for every trainable Variable, nested
	// components included.
	ForEachVariable(fn func(v *autodiff.Variable))
}

// Parameters collects the Variables of m in enumeration order.
func Parameters(m Model) []*autodiff.Variable {
	var vars []*autodiff.Variable
	m.ForEachVariable(func(v *autodiff.Variable) {
		vars = append(vars, v)
	})
	return vars
}
