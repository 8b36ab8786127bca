// Package optim implements optimization algorithms for training models
// built on autodiff graphs.
//
// An Optimizer owns the set of trainable Variables and an update Rule.
// Backward passes accumulate gradients on the Variables; Step hands each
// (value, gradient) pair to the Rule and clears the gradient.
//
// Example usage:
//
//	opt := optim.New(optim.NewSGD(optim.SGDConfig{LR: 0.1}))
//	opt.RegisterModel(model)
//
//	for epoch := range epochs {
//	    for _, sample := range samples {
//	        g.SetInput(x, sample.Input)
//	        g.SetInput(y, sample.Target)
//	        g.Run(loss)
//	        g.Back(loss)
//	    }
//	    opt.Step()
//	}
package optim

import (
	"github.com/tenso-ml/tenso/internal/autodiff"
	"github.com/tenso-ml/tenso/internal/matrix"
)

// Rule updates a value in place from its accumulated gradient.
//
// Implementations may keep per-value state keyed by the value pointer;
// the Optimizer always passes the same matrix for a given Variable unless
// the Variable's value is replaced.
type Rule interface {
	Update(value, grad *matrix.Matrix)
}

// VariableSource is implemented by models that can enumerate their
// trainable Variables.
type VariableSource interface {
	ForEachVariable(fn func(v *autodiff.Variable))
}

// Optimizer applies a Rule to a deduplicated set of Variables.
type Optimizer struct {
	rule      Rule
	variables []*autodiff.Variable
	seen      map[*autodiff.Variable]struct{}
}

// New creates an Optimizer with no registered Variables.
func New(rule Rule) *Optimizer {
	return &Optimizer{
		rule: rule,
		seen: make(map[*autodiff.Variable]struct{}),
	}
}

// Register adds Variables. Registering a Variable again is a no-op.
func (o *Optimizer) Register(vars ...*autodiff.Variable) {
	for _, v := range vars {
		if _, ok := o.seen[v]; ok {
			continue
		}
		o.seen[v] = struct{}{}
		o.variables = append(o.variables, v)
	}
}

// RegisterModel registers every Variable the model enumerates.
func (o *Optimizer) RegisterModel(src VariableSource) {
	src.ForEachVariable(func(v *autodiff.Variable) {
		o.Register(v)
	})
}

// RegisterGraph registers every Variable that root depends on.
func (o *Optimizer) RegisterGraph(g *autodiff.Graph, root autodiff.NodeID) {
	o.Register(g.Variables(root)...)
}

// Variables returns the registered Variables in registration order.
func (o *Optimizer) Variables() []*autodiff.Variable {
	return o.variables
}

// Len returns the number of registered Variables.
func (o *Optimizer) Len() int {
	return len(o.variables)
}

// Rule returns the update rule.
func (o *Optimizer) Rule() Rule {
	return o.rule
}

// Step updates every registered Variable from its accumulated gradient and
// clears the gradient. A second Step without a new backward pass leaves
// values unchanged for rules that ignore zero gradients.
func (o *Optimizer) Step() {
	for _, v := range o.variables {
		o.rule.Update(v.Value(), v.TakeGradient())
	}
}

// ZeroGrad clears every registered gradient without updating values.
func (o *Optimizer) ZeroGrad() {
	for _, v := range o.variables {
		v.ZeroGrad()
	}
}
