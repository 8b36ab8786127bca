package autodiff

import (
	"github.com/pkg/errors"

	"github.com/tenso-ml/tenso/internal/matrix"
)

// Back propagates a seed delta of 1 from node id, whose output must be 1x1,
// and accumulates gradients into every Variable it depends on.
//
// Run must have evaluated id first.
func (g *Graph) Back(id NodeID) {
	out := g.Value(id)
	if out.Rows() != 1 || out.Cols() != 1 {
		panic(errors.Wrapf(ErrBackwardFromNonScalar, "node %d has size %v", id, out.Size()))
	}
	g.propagate(id, matrix.Full(1, 1, 1))
}

// BackDelta propagates delta, which must match the output size of node id.
func (g *Graph) BackDelta(id NodeID, delta *matrix.Matrix) {
	out := g.Value(id)
	if !out.SameSize(delta) {
		panic(errors.Wrapf(matrix.ErrShapeMismatch, "delta %v for node %d of size %v", delta.Size(), id, out.Size()))
	}
	g.propagate(id, delta)
}

// propagate walks the arena from root down to 0. Deltas reaching a record
// along several paths are summed before the record's own kernel runs.
func (g *Graph) propagate(root NodeID, seed *matrix.Matrix) {
	needs := g.needsGrad(root)
	if !needs[root] {
		return
	}

	deltas := make([]*matrix.Matrix, int(root)+1)
	deltas[root] = seed
	for i := int(root); i >= 0; i-- {
		delta := deltas[i]
		if delta == nil {
			continue
		}
		deltas[i] = nil

		rec := &g.records[i]
		switch rec.kind {
		case KindVariable:
			rec.variable.accumulate(delta)
		case KindOp:
			inputDeltas := rec.op.Backward(g.inputValues(rec), g.Value(NodeID(i)), delta)
			for j, in := range rec.inputs {
				if !needs[in] {
					continue
				}
				if deltas[in] == nil {
					deltas[in] = inputDeltas[j]
				} else {
					deltas[in] = deltas[in].Add(inputDeltas[j])
				}
			}
		}
	}
}

// needsGrad marks the records under root through which a delta can reach a
// Variable. Everything else is skipped by propagate.
func (g *Graph) needsGrad(root NodeID) []bool {
	reach := g.reachable(root)
	needs := make([]bool, len(reach))
	for i, ok := range reach {
		if !ok {
			continue
		}
		rec := &g.records[i]
		switch rec.kind {
		case KindVariable:
			needs[i] = true
		case KindOp:
			for _, in := range rec.inputs {
				needs[i] = needs[i] || needs[in]
			}
		}
	}
	return needs
}
