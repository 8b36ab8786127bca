package nn

import (
	"math/rand/v2"

	"github.com/tenso-ml/tenso/internal/autodiff"
)

// FeedForward is a stack of Linear layers built one layer at a time.
//
// Example:
//
//	net := nn.NewFeedForward(2, src).
//	    Push(5, nn.Sigmoid{}).
//	    Push(1, nn.Sigmoid{})
type FeedForward struct {
	in     int
	src    rand.Source
	layers []*Linear
}

// NewFeedForward starts a network taking [in, 1] inputs. Layers added with
// Push draw their initial values from src.
func NewFeedForward(in int, src rand.Source) *FeedForward {
	if in <= 0 {
		panic("nn: feed-forward input width must be positive")
	}
	return &FeedForward{in: in, src: src}
}

// Push appends a Linear layer with out units and returns f.
func (f *FeedForward) Push(out int, activation Activation) *FeedForward {
	f.layers = append(f.layers, NewLinear(f.OutputSize(), out, activation, f.src))
	return f
}

// InputSize returns the expected input height.
func (f *FeedForward) InputSize() int { return f.in }

// OutputSize returns the height of the last layer, or the input height if
// no layer was pushed.
func (f *FeedForward) OutputSize() int {
	if len(f.layers) == 0 {
		return f.in
	}
	return f.layers[len(f.layers)-1].out
}

// Layers returns the layers in forward order.
func (f *FeedForward) Layers() []*Linear { return f.layers }

// Forward feeds x through every layer.
func (f *FeedForward) Forward(g *autodiff.Graph, x autodiff.NodeID) autodiff.NodeID {
	out := x
	for _, l := range f.layers {
		out = l.Forward(g, out)
	}
	return out
}

// ForEachVariable yields each layer's weight then bias.
func (f *FeedForward) ForEachVariable(fn func(v *autodiff.Variable)) {
	for _, l := range f.layers {
		l.ForEachVariable(fn)
	}
}
