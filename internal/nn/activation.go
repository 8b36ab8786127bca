package nn

import (
	"fmt"

	"github.com/tenso-ml/tenso/internal/autodiff"
)

// Activation adds a pointwise (or column-wise) nonlinearity to a graph.
type Activation interface {
	Apply(g *autodiff.Graph, x autodiff.NodeID) autodiff.NodeID
	Name() string
}

// Identity passes its input through unchanged.
type Identity struct{}

// Apply returns x.
func (Identity) Apply(_ *autodiff.Graph, x autodiff.NodeID) autodiff.NodeID { return x }

// Name returns "identity".
func (Identity) Name() string { return "identity" }

// Sigmoid applies the logistic function 1 / (1 + exp(-x)).
type Sigmoid struct{}

// Apply adds a sigmoid node.
func (Sigmoid) Apply(g *autodiff.Graph, x autodiff.NodeID) autodiff.NodeID { return g.Sigmoid(x) }

// Name returns "sigmoid".
func (Sigmoid) Name() string { return "sigmoid" }

// Tanh applies the hyperbolic tangent.
type Tanh struct{}

// Apply adds a tanh node.
func (Tanh) Apply(g *autodiff.Graph, x autodiff.NodeID) autodiff.NodeID { return g.Tanh(x) }

// Name returns "tanh".
func (Tanh) Name() string { return "tanh" }

// ReLU applies max(0, x).
type ReLU struct{}

// Apply adds a relu node.
func (ReLU) Apply(g *autodiff.Graph, x autodiff.NodeID) autodiff.NodeID { return g.ReLU(x) }

// Name returns "relu".
func (ReLU) Name() string { return "relu" }

// LeakyReLU applies x for x > 0 and Slope·x otherwise.
type LeakyReLU struct {
	Slope float32
}

// Apply adds a leaky relu node.
func (a LeakyReLU) Apply(g *autodiff.Graph, x autodiff.NodeID) autodiff.NodeID {
	return g.LeakyReLU(x, a.Slope)
}

// Name returns "leaky_relu(slope)".
func (a LeakyReLU) Name() string { return fmt.Sprintf("leaky_relu(%g)", a.Slope) }

// Softmax normalizes each column into a probability distribution.
type Softmax struct{}

// Apply adds a softmax node.
func (Softmax) Apply(g *autodiff.Graph, x autodiff.NodeID) autodiff.NodeID { return g.Softmax(x) }

// Name returns "softmax".
func (Softmax) Name() string { return "softmax" }

// ParseActivation maps a name such as "sigmoid" or "leaky_relu" to an
// Activation. Leaky ReLU uses a slope of 0.1.
func ParseActivation(name string) (Activation, error) {
	switch name {
	case "identity", "none", "":
		return Identity{}, nil
	case "sigmoid":
		return Sigmoid{}, nil
	case "tanh":
		return Tanh{}, nil
	case "relu":
		return ReLU{}, nil
	case "leaky_relu":
		return LeakyReLU{Slope: 0.1}, nil
	case "softmax":
		return Softmax{}, nil
	default:
		return nil, fmt.Errorf("unknown activation %q", name)
	}
}
