package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/tenso-ml/tenso/internal/autodiff"
	"github.com/tenso-ml/tenso/internal/matrix"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = act(W·x + b)
// where:
//   - x is the input column with shape [in, 1]
//   - W is the weight matrix with shape [out, in]
//   - b is the bias column with shape [out, 1]
//
// Weights and biases are drawn from N(0, 1).
type Linear struct {
	in, out    int
	weight     *autodiff.Variable
	bias       *autodiff.Variable
	activation Activation
}

// NewLinear creates a Linear layer. A nil activation means Identity and a
// nil src uses the global random source.
func NewLinear(in, out int, activation Activation, src rand.Source) *Linear {
	if activation == nil {
		activation = Identity{}
	}
	return &Linear{
		in:         in,
		out:        out,
		weight:     autodiff.NewVariable(matrix.Randn(out, in, 0, 1, src)),
		bias:       autodiff.NewVariable(matrix.Randn(out, 1, 0, 1, src)),
		activation: activation,
	}
}

// Forward adds act(W·x + b) to g.
func (l *Linear) Forward(g *autodiff.Graph, x autodiff.NodeID) autodiff.NodeID {
	z := g.Add(g.MatMul(g.Variable(l.weight), x), g.Variable(l.bias))
	return l.activation.Apply(g, z)
}

// ForEachVariable yields the weight then the bias.
func (l *Linear) ForEachVariable(fn func(v *autodiff.Variable)) {
	fn(l.weight)
	fn(l.bias)
}

// Weight returns the [out, in] weight Variable.
func (l *Linear) Weight() *autodiff.Variable { return l.weight }

// Bias returns the [out, 1] bias Variable.
func (l *Linear) Bias() *autodiff.Variable { return l.bias }

// String describes the layer shape.
func (l *Linear) String() string {
	return fmt.Sprintf("Linear(%d -> %d, %s)", l.in, l.out, l.activation.Name())
}
