// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers that update autodiff Variables from
// their accumulated gradients.
//
// Example:
//
//	opt := optim.New(optim.NewSGD(optim.SGDConfig{LR: 0.1}))
//	opt.RegisterModel(model)
//
//	g.Run(loss)
//	g.Back(loss)
//	opt.Step()
package optim

import "github.com/tenso-ml/tenso/internal/optim"

// Optimizer applies a Rule to a set of Variables.
type Optimizer = optim.Optimizer

// Rule updates a value in place from its gradient.
type Rule = optim.Rule

// VariableSource enumerates trainable Variables.
type VariableSource = optim.VariableSource

// SGD is gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD.
type SGDConfig = optim.SGDConfig

// Adam is the Adam update rule.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam.
type AdamConfig = optim.AdamConfig

// New creates an Optimizer using rule.
func New(rule Rule) *Optimizer {
	return optim.New(rule)
}

// NewSGD creates an SGD rule. A zero LR defaults to 0.01.
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// NewAdam creates an Adam rule with defaults for zero fields.
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}
