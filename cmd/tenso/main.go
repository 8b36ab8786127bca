// Package main provides the Tenso CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("Tenso %s\n", version)
	case "xor":
		err = runXOR(os.Args[2:])
	case "mnist":
		err = runMNIST(os.Args[2:])
	case "help", "-h", "-help", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tenso %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Tenso - tiled matrices with reverse-mode autodiff")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  xor        Train a small network on XOR")
	fmt.Println("  mnist      Train a feed-forward classifier on MNIST IDX files")
	fmt.Println("  version    Show version")
}
