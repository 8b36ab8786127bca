package main

import (
	"flag"
	"fmt"
	"math/rand/v2"

	"github.com/tenso-ml/tenso/internal/dataset"
	"github.com/tenso-ml/tenso/internal/nn"
	"github.com/tenso-ml/tenso/internal/optim"
)

func runXOR(args []string) error {
	flags := flag.NewFlagSet("xor", flag.ContinueOnError)
	epochs := flags.Int("epochs", 2000, "Number of training epochs")
	lr := flags.Float64("lr", 0.1, "Learning rate for SGD")
	hidden := flags.Int("hidden", 5, "Hidden layer width")
	seed := flags.Uint64("seed", 42, "Seed for weight initialization")
	report := flags.Int("report", 200, "Print the loss every N epochs (0 = only final)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *hidden <= 0 || *epochs <= 0 {
		return fmt.Errorf("epochs and hidden must be positive")
	}

	src := rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15)
	net := nn.NewFeedForward(2, src).
		Push(*hidden, nn.Sigmoid{}).
		Push(1, nn.Sigmoid{})
	trainer := nn.NewTrainer(net, optim.NewSGD(optim.SGDConfig{LR: float32(*lr)}), nn.TrainerConfig{BatchSize: 1})
	samples := dataset.XOR()

	fmt.Printf("XOR: 2 -> %d -> 1 sigmoid, SGD lr=%.3f, %d epochs\n", *hidden, *lr, *epochs)

	var loss float32
	for epoch := 1; epoch <= *epochs; epoch++ {
		loss = trainer.Epoch(samples)
		if *report > 0 && epoch%*report == 0 {
			fmt.Printf("Epoch %5d/%d: Loss=%.6f\n", epoch, *epochs, loss)
		}
	}

	fmt.Printf("Final loss: %.6f\n", loss)
	for _, s := range samples {
		out := trainer.Predict(s.Input)
		fmt.Printf("  %v xor %v -> %.4f (want %v)\n", s.Input.At(0, 0), s.Input.At(1, 0), out.Scalar(), s.Target.Scalar())
	}
	return nil
}
