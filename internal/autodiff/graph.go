package autodiff

import (
	"github.com/pkg/errors"

	"github.com/tenso-ml/tenso/internal/autodiff/ops"
	"github.com/tenso-ml/tenso/internal/matrix"
)

// NodeID is a stable handle to a record in a Graph.
type NodeID int

// Kind tells which variant a graph record is.
type Kind uint8

// Record kinds.
const (
	KindConstant Kind = iota
	KindPlaceholder
	KindVariable
	KindOp
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindPlaceholder:
		return "placeholder"
	case KindVariable:
		return "variable"
	case KindOp:
		return "op"
	default:
		return "unknown"
	}
}

type record struct {
	kind     Kind
	op       ops.Operation
	inputs   []NodeID
	value    *matrix.Matrix // leaf binding, or op output of the last Run
	variable *Variable
}

// Graph is an arena of computation nodes.
//
// A Graph is not safe for concurrent use. Graphs that share no Variables
// may run on separate goroutines.
type Graph struct {
	records   []record
	variables map[*Variable]NodeID
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		records:   make([]record, 0, 64),
		variables: make(map[*Variable]NodeID),
	}
}

// Len returns the number of records.
func (g *Graph) Len() int {
	return len(g.records)
}

// Reset drops every record so the graph can be rebuilt.
// Variables keep their values and gradients.
func (g *Graph) Reset() {
	g.records = g.records[:0]
	clear(g.variables)
}

// Kind returns the variant of node id.
func (g *Graph) Kind(id NodeID) Kind {
	return g.record(id).kind
}

// Constant adds a leaf that always evaluates to m and ignores deltas.
func (g *Graph) Constant(m *matrix.Matrix) NodeID {
	return g.push(record{kind: KindConstant, value: m})
}

// Placeholder adds a rebindable leaf. m may be nil; it must be bound with
// SetInput before the placeholder is evaluated.
func (g *Graph) Placeholder(m *matrix.Matrix) NodeID {
	return g.push(record{kind: KindPlaceholder, value: m})
}

// SetInput binds m to placeholder id for subsequent forward passes.
func (g *Graph) SetInput(id NodeID, m *matrix.Matrix) {
	rec := g.record(id)
	if rec.kind != KindPlaceholder {
		panic(errors.Wrapf(ErrUnknownNode, "set input: node %d is a %s, not a placeholder", id, rec.kind))
	}
	rec.value = m
}

// Variable adds a leaf for v. Adding the same Variable twice returns the
// existing handle.
func (g *Graph) Variable(v *Variable) NodeID {
	if id, ok := g.variables[v]; ok {
		return id
	}
	id := g.push(record{kind: KindVariable, variable: v})
	g.variables[v] = id
	return id
}

// Apply adds an op node computing op over inputs.
func (g *Graph) Apply(op ops.Operation, inputs ...NodeID) NodeID {
	if len(inputs) != op.Arity() {
		panic(errors.Wrapf(ErrUnknownNode, "%s: got %d inputs, want %d", op.Name(), len(inputs), op.Arity()))
	}
	for _, in := range inputs {
		g.record(in)
	}
	return g.push(record{kind: KindOp, op: op, inputs: inputs})
}

// Inputs returns the input handles of node id (nil for leaves).
func (g *Graph) Inputs(id NodeID) []NodeID {
	return g.record(id).inputs
}

// Run evaluates node id and everything it depends on, each node once, and
// returns its output. Outputs are cached on the nodes until the next Run.
func (g *Graph) Run(id NodeID) *matrix.Matrix {
	reach := g.reachable(id)
	for i := 0; i <= int(id); i++ {
		if !reach[i] {
			continue
		}
		rec := &g.records[i]
		switch rec.kind {
		case KindPlaceholder:
			if rec.value == nil {
				panic(errors.Wrapf(ErrUnboundPlaceholder, "node %d", i))
			}
		case KindOp:
			rec.value = rec.op.Forward(g.inputValues(rec))
		}
	}
	return g.Value(id)
}

// Value returns the current output of node id: the bound matrix of a leaf
// or the cached output of an op.
func (g *Graph) Value(id NodeID) *matrix.Matrix {
	rec := g.record(id)
	switch rec.kind {
	case KindVariable:
		return rec.variable.Value()
	case KindPlaceholder:
		if rec.value == nil {
			panic(errors.Wrapf(ErrUnboundPlaceholder, "node %d", id))
		}
	case KindOp:
		if rec.value == nil {
			panic(errors.Wrapf(ErrNotEvaluated, "node %d (%s)", id, rec.op.Name()))
		}
	}
	return rec.value
}

// Variables returns the distinct Variables that node id depends on, in
// handle order.
func (g *Graph) Variables(id NodeID) []*Variable {
	reach := g.reachable(id)
	var vars []*Variable
	for i, ok := range reach {
		if ok && g.records[i].kind == KindVariable {
			vars = append(vars, g.records[i].variable)
		}
	}
	return vars
}

func (g *Graph) push(rec record) NodeID {
	g.records = append(g.records, rec)
	return NodeID(len(g.records) - 1)
}

func (g *Graph) record(id NodeID) *record {
	if id < 0 || int(id) >= len(g.records) {
		panic(errors.Wrapf(ErrUnknownNode, "node %d of %d", id, len(g.records)))
	}
	return &g.records[id]
}

func (g *Graph) inputValues(rec *record) []*matrix.Matrix {
	values := make([]*matrix.Matrix, len(rec.inputs))
	for j, in := range rec.inputs {
		values[j] = g.Value(in)
	}
	return values
}

// reachable marks every record node id depends on, id included.
func (g *Graph) reachable(id NodeID) []bool {
	g.record(id)

	reach := make([]bool, int(id)+1)
	stack := []NodeID{id}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if reach[n] {
			continue
		}
		reach[n] = true
		stack = append(stack, g.records[n].inputs...)
	}
	return reach
}
