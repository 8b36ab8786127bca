package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenso-ml/tenso/internal/autodiff"
	"github.com/tenso-ml/tenso/internal/matrix"
	"github.com/tenso-ml/tenso/internal/optim"
)

func TestSGD_SimpleUpdate(t *testing.T) {
	x := autodiff.NewVariable(matrix.FromSlice(1, 1, []float32{2}))
	opt := optim.New(optim.NewSGD(optim.SGDConfig{LR: 0.1}))
	opt.Register(x)

	// loss = 3x, dloss/dx = 3
	g := autodiff.NewGraph()
	loss := g.Sum(g.Scale(g.Variable(x), 3))
	g.Run(loss)
	g.Back(loss)

	opt.Step()

	// Expected: x_new = 2.0 - 0.1 * 3.0 = 1.7
	assert.InDelta(t, 1.7, x.Value().Scalar(), 1e-6)
	assert.Equal(t, float32(0), x.Gradient().Scalar())
}

func TestSGD_EveryCell(t *testing.T) {
	w := autodiff.NewVariable(matrix.FromSlice(2, 2, []float32{1, 2, 3, 4}))
	opt := optim.New(optim.NewSGD(optim.SGDConfig{LR: 0.5}))
	opt.Register(w)

	g := autodiff.NewGraph()
	g.BackDelta(g.Variable(w), matrix.FromSlice(2, 2, []float32{2, -2, 4, 0}))
	opt.Step()

	assert.Equal(t, []float32{0, 3, 1, 4}, w.Value().Data())
	assert.Equal(t, []float32{0, 0, 0, 0}, w.Gradient().Data())
}

func TestStep_RepeatedIsNoOp(t *testing.T) {
	w := autodiff.NewVariable(matrix.FromSlice(1, 2, []float32{1, 1}))
	opt := optim.New(optim.NewSGD(optim.SGDConfig{LR: 0.1}))
	opt.Register(w)

	g := autodiff.NewGraph()
	loss := g.Sum(g.Variable(w))
	g.Run(loss)
	g.Back(loss)

	opt.Step()
	after := w.Value().Clone()
	opt.Step()

	assert.True(t, w.Value().Equal(after))
	assert.InDelta(t, 0.9, after.At(0, 0), 1e-6)
}

func TestStep_UsesAccumulatedGradient(t *testing.T) {
	w := autodiff.NewVariable(matrix.FromSlice(1, 1, []float32{0}))
	opt := optim.New(optim.NewSGD(optim.SGDConfig{LR: 1}))
	opt.Register(w)

	g := autodiff.NewGraph()
	loss := g.Sum(g.Scale(g.Variable(w), 2))
	for i := 0; i < 3; i++ {
		g.Run(loss)
		g.Back(loss)
	}
	opt.Step()

	assert.Equal(t, float32(-6), w.Value().Scalar())
}

func TestRegister_Idempotent(t *testing.T) {
	a := autodiff.NewVariable(matrix.Zeros(1, 1))
	b := autodiff.NewVariable(matrix.Zeros(1, 1))
	opt := optim.New(optim.NewSGD(optim.SGDConfig{}))

	opt.Register(a, b, a)
	opt.Register(b)

	require.Equal(t, 2, opt.Len())
	assert.Same(t, a, opt.Variables()[0])
	assert.Same(t, b, opt.Variables()[1])
}

func TestRegister_DoubleRegistrationStepsOnce(t *testing.T) {
	w := autodiff.NewVariable(matrix.FromSlice(1, 1, []float32{1}))
	opt := optim.New(optim.NewSGD(optim.SGDConfig{LR: 1}))
	opt.Register(w)
	opt.Register(w)

	g := autodiff.NewGraph()
	loss := g.Sum(g.Variable(w))
	g.Run(loss)
	g.Back(loss)
	opt.Step()

	assert.Equal(t, float32(0), w.Value().Scalar())
}

type pair struct{ a, b *autodiff.Variable }

func (p pair) ForEachVariable(fn func(v *autodiff.Variable)) {
	fn(p.a)
	fn(p.b)
}

func TestRegisterModel(t *testing.T) {
	p := pair{
		a: autodiff.NewVariable(matrix.Zeros(2, 1)),
		b: autodiff.NewVariable(matrix.Zeros(1, 1)),
	}
	opt := optim.New(optim.NewSGD(optim.SGDConfig{}))
	opt.RegisterModel(p)
	opt.RegisterModel(p)

	assert.Equal(t, 2, opt.Len())
}

func TestRegisterGraph(t *testing.T) {
	a := autodiff.NewVariable(matrix.Zeros(1, 1))
	b := autodiff.NewVariable(matrix.Zeros(1, 1))
	unused := autodiff.NewVariable(matrix.Zeros(1, 1))

	g := autodiff.NewGraph()
	g.Variable(unused)
	loss := g.Sum(g.Add(g.Variable(a), g.Mul(g.Variable(b), g.Variable(a))))

	opt := optim.New(optim.NewSGD(optim.SGDConfig{}))
	opt.RegisterGraph(g, loss)

	require.Equal(t, 2, opt.Len())
	assert.NotContains(t, opt.Variables(), unused)
}

func TestZeroGrad(t *testing.T) {
	w := autodiff.NewVariable(matrix.FromSlice(1, 1, []float32{5}))
	opt := optim.New(optim.NewSGD(optim.SGDConfig{LR: 1}))
	opt.Register(w)

	g := autodiff.NewGraph()
	loss := g.Sum(g.Variable(w))
	g.Run(loss)
	g.Back(loss)

	opt.ZeroGrad()
	opt.Step()

	assert.Equal(t, float32(5), w.Value().Scalar())
}

func TestSGD_Defaults(t *testing.T) {
	sgd := optim.NewSGD(optim.SGDConfig{})
	assert.Equal(t, float32(0.01), sgd.LR())

	sgd.SetLR(0.5)
	assert.Equal(t, float32(0.5), sgd.LR())
}

// halving is a substitute rule: the graph and optimizer need no changes.
type halving struct{}

func (halving) Update(value, _ *matrix.Matrix) {
	value.Apply(func(v float32) float32 { return v / 2 })
}

func TestCustomRule(t *testing.T) {
	w := autodiff.NewVariable(matrix.FromSlice(1, 1, []float32{8}))
	opt := optim.New(halving{})
	opt.Register(w)

	opt.Step()
	opt.Step()

	assert.Equal(t, float32(2), w.Value().Scalar())
	assert.IsType(t, halving{}, opt.Rule())
}

func TestSGD_Momentum(t *testing.T) {
	rule := optim.NewSGD(optim.SGDConfig{LR: 0.1, Momentum: 0.9})
	value := matrix.FromSlice(1, 1, []float32{1})

	rule.Update(value, matrix.Full(1, 1, 1))
	assert.InDelta(t, 0.9, value.Scalar(), 1e-6)

	// velocity = 0.9*1 + 1 = 1.9
	rule.Update(value, matrix.Full(1, 1, 1))
	assert.InDelta(t, 0.71, value.Scalar(), 1e-6)
	assert.Equal(t, float32(0.9), rule.Momentum())
}

func TestSGD_InvalidMomentumPanics(t *testing.T) {
	assert.Panics(t, func() { optim.NewSGD(optim.SGDConfig{Momentum: 1}) })
}

func TestAdam_FirstStepMovesByLR(t *testing.T) {
	rule := optim.NewAdam(optim.AdamConfig{LR: 0.1})
	value := matrix.FromSlice(1, 2, []float32{1, 1})

	rule.Update(value, matrix.FromSlice(1, 2, []float32{2, -0.5}))

	// Bias-corrected first step is lr * g / |g|.
	assert.InDeltaSlice(t, []float32{0.9, 1.1}, value.Data(), 1e-5)
	assert.Equal(t, 1, rule.Timestep(value))
	assert.Equal(t, 0, rule.Timestep(matrix.Zeros(1, 1)))
}

func TestAdam_MinimizesQuadratic(t *testing.T) {
	w := autodiff.NewVariable(matrix.FromSlice(2, 1, []float32{3, -2}))
	opt := optim.New(optim.NewAdam(optim.AdamConfig{LR: 0.1}))
	opt.Register(w)

	g := autodiff.NewGraph()
	loss := g.Sum(g.Pow(g.Variable(w), 2))
	first := g.Run(loss).Scalar()
	for range 200 {
		g.Run(loss)
		g.Back(loss)
		opt.Step()
	}

	assert.Less(t, g.Run(loss).Scalar(), first/10)
}
