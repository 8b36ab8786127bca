package autodiff

import "github.com/tenso-ml/tenso/internal/autodiff/ops"

// Add returns a node computing a + b.
func (g *Graph) Add(a, b NodeID) NodeID { return g.Apply(ops.AddOp{}, a, b) }

// Sub returns a node computing a - b.
func (g *Graph) Sub(a, b NodeID) NodeID { return g.Apply(ops.SubOp{}, a, b) }

// Mul returns a node computing the elementwise product a ⊙ b.
func (g *Graph) Mul(a, b NodeID) NodeID { return g.Apply(ops.MulOp{}, a, b) }

// Div returns a node computing the elementwise quotient a / b.
func (g *Graph) Div(a, b NodeID) NodeID { return g.Apply(ops.DivOp{}, a, b) }

// MatMul returns a node computing the matrix product a·b.
func (g *Graph) MatMul(a, b NodeID) NodeID { return g.Apply(ops.MatMulOp{}, a, b) }

// Scale returns a node computing s·a.
func (g *Graph) Scale(a NodeID, s float32) NodeID { return g.Apply(ops.ScaleOp{Factor: s}, a) }

// Transpose returns a node computing aᵗ.
func (g *Graph) Transpose(a NodeID) NodeID { return g.Apply(ops.TransposeOp{}, a) }

// Pow returns a node raising every cell of a to p.
func (g *Graph) Pow(a NodeID, p float32) NodeID { return g.Apply(ops.PowOp{Exponent: p}, a) }

// Sum returns a 1x1 node holding the sum of a.
func (g *Graph) Sum(a NodeID) NodeID { return g.Apply(ops.SumOp{}, a) }

// Mean returns a 1x1 node holding the mean of a.
func (g *Graph) Mean(a NodeID) NodeID { return g.Apply(ops.MeanOp{}, a) }

// Sigmoid returns a node applying the logistic function to a.
func (g *Graph) Sigmoid(a NodeID) NodeID { return g.Apply(ops.SigmoidOp{}, a) }

// Tanh returns a node applying the hyperbolic tangent to a.
func (g *Graph) Tanh(a NodeID) NodeID { return g.Apply(ops.TanhOp{}, a) }

// Exp returns a node computing exp(a).
func (g *Graph) Exp(a NodeID) NodeID { return g.Apply(ops.ExpOp{}, a) }

// Log returns a node computing ln(a).
func (g *Graph) Log(a NodeID) NodeID { return g.Apply(ops.LogOp{}, a) }

// ReLU returns a node applying max(0, x) to a.
func (g *Graph) ReLU(a NodeID) NodeID { return g.Apply(ops.ReLUOp{}, a) }

// LeakyReLU returns a node applying the leaky rectifier with the given
// negative slope to a.
func (g *Graph) LeakyReLU(a NodeID, slope float32) NodeID {
	return g.Apply(ops.LeakyReLUOp{Slope: slope}, a)
}

// Softmax returns a node normalizing each column of a.
func (g *Graph) Softmax(a NodeID) NodeID { return g.Apply(ops.SoftmaxOp{}, a) }
