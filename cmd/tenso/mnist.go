package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/tenso-ml/tenso/internal/dataset"
	"github.com/tenso-ml/tenso/internal/nn"
	"github.com/tenso-ml/tenso/internal/optim"
)

func runMNIST(args []string) error {
	flags := flag.NewFlagSet("mnist", flag.ContinueOnError)
	images := flags.String("images", "", "IDX image file (e.g. train-images-idx3-ubyte)")
	labels := flags.String("labels", "", "IDX label file (e.g. train-labels-idx1-ubyte)")
	maxSamples := flags.Int("samples", 1000, "Max samples to load (0 = all)")
	epochs := flags.Int("epochs", 5, "Number of training epochs")
	lr := flags.Float64("lr", 0.05, "Learning rate")
	batch := flags.Int("batch", 16, "Samples per optimizer step")
	hidden := flags.String("hidden", "32", "Comma-separated hidden layer widths")
	activation := flags.String("activation", "sigmoid", "Hidden activation (sigmoid, tanh, relu, leaky_relu)")
	seed := flags.Uint64("seed", 1, "Seed for weight initialization")
	optimizer := flags.String("optimizer", "sgd", "Update rule (sgd, adam)")
	momentum := flags.Float64("momentum", 0, "SGD momentum factor")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *images == "" || *labels == "" {
		return fmt.Errorf("-images and -labels are required")
	}

	widths, err := parseWidths(*hidden)
	if err != nil {
		return err
	}
	act, err := nn.ParseActivation(*activation)
	if err != nil {
		return err
	}
	rule, err := newRule(*optimizer, float32(*lr), float32(*momentum))
	if err != nil {
		return err
	}

	fmt.Printf("Loading MNIST from %s, %s\n", *images, *labels)
	samples, err := dataset.LoadMNIST(*images, *labels, *maxSamples)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("MNIST files not found; download and gunzip the IDX files first")
		}
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no samples in %s", *images)
	}
	train, val := dataset.Split(samples, 0.2)
	fmt.Printf("   Train: %d samples, Val: %d samples\n", len(train), len(val))

	src := rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15)
	net := nn.NewFeedForward(samples[0].Input.Rows(), src)
	for _, w := range widths {
		net.Push(w, act)
	}
	net.Push(dataset.Classes, nn.Sigmoid{})

	trainer := nn.NewTrainer(net, rule, nn.TrainerConfig{BatchSize: *batch})
	fmt.Printf("   Model has %d trainable variables\n", trainer.Optimizer().Len())

	for epoch := 1; epoch <= *epochs; epoch++ {
		loss := trainer.Epoch(train)
		fmt.Printf("Epoch %2d/%d: Loss=%.4f, Train Acc=%.2f%%, Val Acc=%.2f%%\n",
			epoch, *epochs, loss, trainer.Accuracy(train)*100, trainer.Accuracy(val)*100)
	}
	return nil
}

func newRule(name string, lr, momentum float32) (optim.Rule, error) {
	switch name {
	case "sgd":
		if momentum < 0 || momentum >= 1 {
			return nil, fmt.Errorf("momentum must be in [0, 1), got %g", momentum)
		}
		return optim.NewSGD(optim.SGDConfig{LR: lr, Momentum: momentum}), nil
	case "adam":
		return optim.NewAdam(optim.AdamConfig{LR: lr}), nil
	default:
		return nil, fmt.Errorf("unknown optimizer %q", name)
	}
}

func parseWidths(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	widths := make([]int, 0, len(parts))
	for _, p := range parts {
		w, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || w <= 0 {
			return nil, fmt.Errorf("invalid hidden width %q", p)
		}
		widths = append(widths, w)
	}
	return widths, nil
}
