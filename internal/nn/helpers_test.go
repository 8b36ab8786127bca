package nn_test

import (
	"math/rand/v2"

	"github.com/tenso-ml/tenso/internal/matrix"
	"github.com/tenso-ml/tenso/internal/nn"
)

func seeded(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

func column(values ...float32) *matrix.Matrix {
	return matrix.FromSlice(len(values), 1, values)
}

func xorSamples() []nn.Sample {
	return []nn.Sample{
		{Input: column(0, 0), Target: column(0)},
		{Input: column(0, 1), Target: column(1)},
		{Input: column(1, 0), Target: column(1)},
		{Input: column(1, 1), Target: column(0)},
	}
}
