// Package dataset provides sample sets for training: the XOR truth table
// and MNIST digits read from IDX files.
package dataset

import "github.com/tenso-ml/tenso/internal/nn"

// XOR returns the four XOR samples as [2, 1] inputs with [1, 1] targets.
func XOR() []nn.Sample {
	samples := make([]nn.Sample, 0, 4)
	for _, row := range [][3]float32{
		{0, 0, 0},
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	} {
		samples = append(samples, nn.Sample{
			Input:  column(row[0], row[1]),
			Target: column(row[2]),
		})
	}
	return samples
}

// Split divides samples into a training and a validation part, the latter
// holding the trailing ratio of the samples.
func Split(samples []nn.Sample, ratio float32) (train, validation []nn.Sample) {
	idx := int(float32(len(samples)) * (1 - ratio))
	idx = max(0, min(idx, len(samples)))
	return samples[:idx], samples[idx:]
}
