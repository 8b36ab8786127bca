package optim

import "github.com/tenso-ml/tenso/internal/matrix"

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	value = value - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	value = value - lr * velocity
type SGD struct {
	lr         float32
	momentum   float32
	velocities map[*matrix.Matrix]*matrix.Matrix
}

// SGDConfig holds configuration for SGD.
type SGDConfig struct {
	LR       float32 // Learning rate (default: 0.01)
	Momentum float32 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates an SGD rule.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Momentum < 0 || config.Momentum >= 1 {
		panic("optim: SGD momentum must be in [0, 1)")
	}
	return &SGD{
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*matrix.Matrix]*matrix.Matrix),
	}
}

// Update applies one SGD step to value in place.
func (s *SGD) Update(value, grad *matrix.Matrix) {
	lr := s.lr
	if s.momentum == 0 {
		value.ZipApply(grad, func(v, g float32) float32 {
			return v - lr*g
		})
		return
	}

	vel, ok := s.velocities[value]
	if !ok {
		vel = matrix.Zeros(value.Rows(), value.Cols())
		s.velocities[value] = vel
	}
	momentum := s.momentum
	vel.ZipApply(grad, func(v, g float32) float32 {
		return momentum*v + g
	})
	value.ZipApply(vel, func(v, u float32) float32 {
		return v - lr*u
	})
}

// LR returns the current learning rate.
func (s *SGD) LR() float32 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float32) {
	s.lr = lr
}

// Momentum returns the momentum factor.
func (s *SGD) Momentum() float32 {
	return s.momentum
}
