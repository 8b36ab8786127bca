// Package autodiff implements reverse-mode automatic differentiation over
// tiled matrices.
//
// Architecture:
//   - Graph: an arena of node records addressed by stable NodeID handles
//   - Leaves: Constant, Placeholder (rebindable input) and Variable
//   - Op records: an ops.Operation kernel plus input handles and the cached
//     output of the last forward pass
//   - Variable: a persistent value and gradient accumulator that outlives
//     any single graph and is updated by an optimizer
//
// A record's inputs always have smaller handles than the record itself, so
// the arena is in topological order. Run walks it forwards; Back walks it
// backwards, summing deltas per record so contributions reaching the same
// node along different paths add up.
//
// Usage:
//
//	w := autodiff.NewVariable(matrix.Randn(1, 2, 0, 1, nil))
//	g := autodiff.NewGraph()
//	x := g.Placeholder(nil)
//	loss := g.Sum(g.Pow(g.MatMul(g.Variable(w), x), 2))
//
//	g.SetInput(x, sample)
//	g.Run(loss)
//	g.Back(loss)        // w.Gradient() now holds dLoss/dw
package autodiff

import "github.com/pkg/errors"

// Precondition violations. Graph methods panic with an error wrapping one
// of these.
var (
	// ErrBackwardFromNonScalar is raised by Back on a node whose output is
	// not 1x1.
	ErrBackwardFromNonScalar = errors.New("autodiff: backward from non-scalar node without delta")

	// ErrNotEvaluated is raised when an op output is needed before Run
	// computed it.
	ErrNotEvaluated = errors.New("autodiff: node not evaluated")

	// ErrUnboundPlaceholder is raised when Run reaches a placeholder with no
	// input bound.
	ErrUnboundPlaceholder = errors.New("autodiff: placeholder has no input")

	// ErrUnknownNode is raised for handles that do not belong to the graph,
	// and for operations whose input count does not match their arity.
	ErrUnknownNode = errors.New("autodiff: unknown node")
)
