package nn

import "github.com/tenso-ml/tenso/internal/autodiff"

// LossFunc builds a scalar loss node from a prediction and a target.
type LossFunc func(g *autodiff.Graph, pred, target autodiff.NodeID) autodiff.NodeID

// MSE computes Mean Squared Error loss.
//
// Loss = mean((target - pred)²)
func MSE(g *autodiff.Graph, pred, target autodiff.NodeID) autodiff.NodeID {
	return g.Mean(g.Pow(g.Sub(target, pred), 2))
}

// SSE computes the summed squared error.
//
// Loss = sum((target - pred)²)
func SSE(g *autodiff.Graph, pred, target autodiff.NodeID) autodiff.NodeID {
	return g.Sum(g.Pow(g.Sub(target, pred), 2))
}
