// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks on autodiff graphs.
//
// # Overview
//
// This package contains:
//   - Layers: Linear, FeedForward, Sequential
//   - Activations: Identity, Sigmoid, Tanh, ReLU, LeakyReLU, Softmax
//   - Loss functions: MSE, SSE
//   - Trainer: forward, backward and optimizer steps over samples
//
// # Basic Usage
//
//	net := nn.NewFeedForward(2, rand.NewPCG(1, 2)).
//	    Push(5, nn.Sigmoid{}).
//	    Push(1, nn.Sigmoid{})
//
//	trainer := nn.NewTrainer(net, optim.NewSGD(optim.SGDConfig{LR: 0.1}), nn.TrainerConfig{})
//	for range 1000 {
//	    loss := trainer.Epoch(samples)
//	}
package nn

import (
	"math/rand/v2"

	"github.com/tenso-ml/tenso/internal/autodiff"
	"github.com/tenso-ml/tenso/internal/nn"
	"github.com/tenso-ml/tenso/internal/optim"
)

// Model builds its forward graph and enumerates its Variables.
type Model = nn.Model

// Activation adds a nonlinearity to a graph.
type Activation = nn.Activation

// Activations.
type (
	Identity  = nn.Identity
	Sigmoid   = nn.Sigmoid
	Tanh      = nn.Tanh
	ReLU      = nn.ReLU
	LeakyReLU = nn.LeakyReLU
	Softmax   = nn.Softmax
)

// Linear is a fully connected layer y = act(W·x + b).
type Linear = nn.Linear

// FeedForward is a stack of Linear layers.
type FeedForward = nn.FeedForward

// Sequential chains models.
type Sequential = nn.Sequential

// LossFunc builds a scalar loss node.
type LossFunc = nn.LossFunc

// Sample is one training pair.
type Sample = nn.Sample

// Trainer drives training of a Model.
type Trainer = nn.Trainer

// TrainerConfig holds Trainer settings.
type TrainerConfig = nn.TrainerConfig

// NewLinear creates a Linear layer with N(0, 1) initial values.
func NewLinear(in, out int, activation Activation, src rand.Source) *Linear {
	return nn.NewLinear(in, out, activation, src)
}

// NewFeedForward starts a network taking [in, 1] inputs.
func NewFeedForward(in int, src rand.Source) *FeedForward {
	return nn.NewFeedForward(in, src)
}

// NewSequential creates a Sequential container.
func NewSequential(models ...Model) *Sequential {
	return nn.NewSequential(models...)
}

// NewTrainer builds the training graph for model.
func NewTrainer(model Model, rule optim.Rule, config TrainerConfig) *Trainer {
	return nn.NewTrainer(model, rule, config)
}

// MSE computes mean((target - pred)²).
func MSE(g *autodiff.Graph, pred, target autodiff.NodeID) autodiff.NodeID {
	return nn.MSE(g, pred, target)
}

// SSE computes sum((target - pred)²).
func SSE(g *autodiff.Graph, pred, target autodiff.NodeID) autodiff.NodeID {
	return nn.SSE(g, pred, target)
}

// Parameters collects the Variables of m.
func Parameters(m Model) []*autodiff.Variable {
	return nn.Parameters(m)
}
