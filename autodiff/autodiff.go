// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// matrix computation graphs.
//
// A Graph records constants, placeholders, Variables and operations.
// Run evaluates a node; Back propagates from a 1x1 node and accumulates
// gradients into the Variables it depends on.
//
// Example:
//
//	import (
//	    "github.com/tenso-ml/tenso/autodiff"
//	    "github.com/tenso-ml/tenso/matrix"
//	)
//
//	func main() {
//	    w := autodiff.NewVariable(matrix.Full(1, 3, 0.5))
//
//	    g := autodiff.NewGraph()
//	    x := g.Placeholder(matrix.FromSlice(3, 1, []float32{1, 2, 3}))
//	    loss := g.Sum(g.MatMul(g.Variable(w), x))
//
//	    g.Run(loss)
//	    g.Back(loss)
//	    fmt.Printf("%v\n", w.Gradient())
//	}
package autodiff

import (
	"github.com/tenso-ml/tenso/internal/autodiff"
	"github.com/tenso-ml/tenso/internal/autodiff/ops"
	"github.com/tenso-ml/tenso/internal/matrix"
)

// Graph is an arena of computation nodes.
type Graph = autodiff.Graph

// NodeID is a handle to a node in a Graph.
type NodeID = autodiff.NodeID

// Kind tells which variant a node is.
type Kind = autodiff.Kind

// Node kinds.
const (
	KindConstant    = autodiff.KindConstant
	KindPlaceholder = autodiff.KindPlaceholder
	KindVariable    = autodiff.KindVariable
	KindOp          = autodiff.KindOp
)

// Variable is a trainable matrix with a gradient accumulator.
type Variable = autodiff.Variable

// Operation is a differentiable kernel usable with Graph.Apply.
type Operation = ops.Operation

// Precondition errors carried by panics.
var (
	ErrBackwardFromNonScalar = autodiff.ErrBackwardFromNonScalar
	ErrNotEvaluated          = autodiff.ErrNotEvaluated
	ErrUnboundPlaceholder    = autodiff.ErrUnboundPlaceholder
	ErrUnknownNode           = autodiff.ErrUnknownNode
)

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// NewVariable creates a Variable holding value with a zero gradient.
func NewVariable(value *matrix.Matrix) *Variable {
	return autodiff.NewVariable(value)
}
