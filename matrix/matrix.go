// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides dense float32 matrices stored as 16x16 tiles.
//
// Every matrix is a grid of fixed-size chunks. Cells beyond the logical
// size are padding and always hold zero, so tiles can be combined without
// edge handling.
//
// Example:
//
//	import "github.com/tenso-ml/tenso/matrix"
//
//	func main() {
//	    a := matrix.FromSlice(2, 2, []float32{1, 2, 3, 4})
//	    b := matrix.Identity(2)
//	    fmt.Printf("%v\n", a.MatMul(b))
//	}
package matrix

import (
	"math/rand/v2"

	"github.com/tenso-ml/tenso/internal/matrix"
)

// ChunkWidth is the side length of a tile.
const ChunkWidth = matrix.ChunkWidth

// Matrix is a dense float32 matrix.
type Matrix = matrix.Matrix

// Chunk is one ChunkWidth x ChunkWidth tile.
type Chunk = matrix.Chunk

// Precondition errors carried by panics.
var (
	ErrShapeMismatch  = matrix.ErrShapeMismatch
	ErrDegenerateSize = matrix.ErrDegenerateSize
	ErrOutOfBounds    = matrix.ErrOutOfBounds
)

// Zeros creates a rows x cols matrix of zeros.
func Zeros(rows, cols int) *Matrix {
	return matrix.Zeros(rows, cols)
}

// Full creates a rows x cols matrix with every cell set to value.
func Full(rows, cols int, value float32) *Matrix {
	return matrix.Full(rows, cols, value)
}

// Identity creates an n x n identity matrix.
func Identity(n int) *Matrix {
	return matrix.Identity(n)
}

// Randn creates a matrix with cells drawn from N(mean, std²).
// A nil src uses the global source.
func Randn(rows, cols int, mean, std float32, src rand.Source) *Matrix {
	return matrix.Randn(rows, cols, mean, std, src)
}

// FromSlice creates a matrix from row-major data.
func FromSlice(rows, cols int, data []float32) *Matrix {
	return matrix.FromSlice(rows, cols, data)
}
