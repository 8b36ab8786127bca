package nn

import (
	"github.com/tenso-ml/tenso/internal/autodiff"
	"github.com/tenso-ml/tenso/internal/matrix"
	"github.com/tenso-ml/tenso/internal/optim"
)

// Sample is one (input, target) training pair of column vectors.
type Sample struct {
	Input  *matrix.Matrix
	Target *matrix.Matrix
}

// TrainerConfig holds Trainer settings.
type TrainerConfig struct {
	// Loss builds the objective (default: MSE).
	Loss LossFunc

	// BatchSize is the number of samples whose gradients accumulate
	// before each optimizer step. Zero steps once per epoch.
	BatchSize int
}

// Trainer drives forward, backward and optimizer steps for a Model.
//
// The graph is built once with placeholders for the input and target and
// re-run for every sample.
type Trainer struct {
	model     Model
	optimizer *optim.Optimizer
	config    TrainerConfig

	graph  *autodiff.Graph
	input  autodiff.NodeID
	target autodiff.NodeID
	output autodiff.NodeID
	loss   autodiff.NodeID
}

// NewTrainer builds the training graph for model and registers its
// Variables with a new Optimizer using rule.
func NewTrainer(model Model, rule optim.Rule, config TrainerConfig) *Trainer {
	if config.Loss == nil {
		config.Loss = MSE
	}

	g := autodiff.NewGraph()
	x := g.Placeholder(nil)
	y := g.Placeholder(nil)
	out := model.Forward(g, x)
	loss := config.Loss(g, out, y)

	opt := optim.New(rule)
	opt.RegisterModel(model)

	return &Trainer{
		model:     model,
		optimizer: opt,
		config:    config,
		graph:     g,
		input:     x,
		target:    y,
		output:    out,
		loss:      loss,
	}
}

// Optimizer returns the optimizer owning the model's Variables.
func (t *Trainer) Optimizer() *optim.Optimizer { return t.optimizer }

// Graph returns the training graph.
func (t *Trainer) Graph() *autodiff.Graph { return t.graph }

// Step runs one sample forward and backward, accumulating gradients
// without updating the Variables. It returns the sample loss.
func (t *Trainer) Step(s Sample) float32 {
	t.graph.SetInput(t.input, s.Input)
	t.graph.SetInput(t.target, s.Target)
	loss := t.graph.Run(t.loss).Scalar()
	t.graph.Back(t.loss)
	return loss
}

// Epoch runs every sample once in order, stepping the optimizer after each
// batch, and returns the average loss.
func (t *Trainer) Epoch(samples []Sample) float32 {
	if len(samples) == 0 {
		return 0
	}

	var total float32
	pending := 0
	for _, s := range samples {
		total += t.Step(s)
		pending++
		if t.config.BatchSize > 0 && pending == t.config.BatchSize {
			t.optimizer.Step()
			pending = 0
		}
	}
	if pending > 0 {
		t.optimizer.Step()
	}
	return total / float32(len(samples))
}

// Predict evaluates the model on input and returns a copy of its output.
func (t *Trainer) Predict(input *matrix.Matrix) *matrix.Matrix {
	t.graph.SetInput(t.input, input)
	return t.graph.Run(t.output).Clone()
}

// Loss evaluates the objective on s without touching gradients.
func (t *Trainer) Loss(s Sample) float32 {
	t.graph.SetInput(t.input, s.Input)
	t.graph.SetInput(t.target, s.Target)
	return t.graph.Run(t.loss).Scalar()
}

// Accuracy returns the fraction of samples whose predicted class (the
// largest output row) matches the target's largest row.
func (t *Trainer) Accuracy(samples []Sample) float32 {
	if len(samples) == 0 {
		return 0
	}

	correct := 0
	for _, s := range samples {
		if Argmax(t.Predict(s.Input)) == Argmax(s.Target) {
			correct++
		}
	}
	return float32(correct) / float32(len(samples))
}

// Argmax returns the row of the largest value in the first column of m.
// Ties resolve to the lowest row.
func Argmax(m *matrix.Matrix) int {
	best := 0
	for y := 1; y < m.Rows(); y++ {
		if m.At(y, 0) > m.At(best, 0) {
			best = y
		}
	}
	return best
}
