package optim

import (
	"math"

	"github.com/tenso-ml/tenso/internal/matrix"
)

// Adam implements the Adam (Adaptive Moment Estimation) update rule.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	value = value - lr * m_hat / (sqrt(v_hat) + eps)
//
// Moments and the timestep t are tracked per value. Unlike plain SGD, a
// Step with a zero gradient still moves values while momentum remains.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	lr    float32
	beta1 float32
	beta2 float32
	eps   float32
	state map[*matrix.Matrix]*adamState
}

type adamState struct {
	m, v *matrix.Matrix
	t    int
}

// AdamConfig holds configuration for Adam.
type AdamConfig struct {
	LR    float32    // Learning rate (default: 0.001)
	Betas [2]float32 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float32    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates an Adam rule, filling in defaults for zero fields.
func NewAdam(config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		lr:    config.LR,
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
		state: make(map[*matrix.Matrix]*adamState),
	}
}

// Update applies one Adam step to value in place.
func (a *Adam) Update(value, grad *matrix.Matrix) {
	st, ok := a.state[value]
	if !ok {
		st = &adamState{
			m: matrix.Zeros(value.Rows(), value.Cols()),
			v: matrix.Zeros(value.Rows(), value.Cols()),
		}
		a.state[value] = st
	}
	st.t++

	beta1, beta2 := a.beta1, a.beta2
	st.m.ZipApply(grad, func(m, g float32) float32 {
		return beta1*m + (1-beta1)*g
	})
	st.v.ZipApply(grad, func(v, g float32) float32 {
		return beta2*v + (1-beta2)*g*g
	})

	biasCorrection1 := float32(1 - math.Pow(float64(beta1), float64(st.t)))
	biasCorrection2 := float32(1 - math.Pow(float64(beta2), float64(st.t)))
	lr, eps := a.lr, a.eps
	step := st.m.ZipMap(st.v, func(m, v float32) float32 {
		mHat := m / biasCorrection1
		vHat := v / biasCorrection2
		return lr * mHat / (float32(math.Sqrt(float64(vHat))) + eps)
	})
	value.ZipApply(step, func(v, s float32) float32 { return v - s })
}

// LR returns the current learning rate.
func (a *Adam) LR() float32 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float32) {
	a.lr = lr
}

// Timestep returns how many updates value has received.
func (a *Adam) Timestep(value *matrix.Matrix) int {
	if st, ok := a.state[value]; ok {
		return st.t
	}
	return 0
}
