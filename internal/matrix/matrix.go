// Package matrix implements tiled dense 2-D float32 matrices.
//
// A Matrix is stored as a row-major grid of fixed-size Chunks. Edge chunks
// may extend past the logical size; those padding cells are always zero and
// are never read or written as data.
package matrix

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Matrix is a dense rows x cols matrix backed by a grid of Chunks.
type Matrix struct {
	rows, cols           int
	chunkRows, chunkCols int
	chunks               []Chunk
}

// Zeros creates a rows x cols matrix filled with zeros.
func Zeros(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(errors.Wrapf(ErrDegenerateSize, "size [%d %d]", rows, cols))
	}

	chunkRows, chunkCols := chunkCount(rows), chunkCount(cols)
	return &Matrix{
		rows:      rows,
		cols:      cols,
		chunkRows: chunkRows,
		chunkCols: chunkCols,
		chunks:    make([]Chunk, chunkRows*chunkCols),
	}
}

// Full creates a rows x cols matrix with every cell set to value.
func Full(rows, cols int, value float32) *Matrix {
	m := Zeros(rows, cols)
	m.Apply(func(float32) float32 { return value })
	return m
}

// Identity creates an n x n identity matrix.
func Identity(n int) *Matrix {
	m := Zeros(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Randn creates a rows x cols matrix with values drawn from N(mean, std²).
// A nil src uses the global random source.
func Randn(rows, cols int, mean, std float32, src rand.Source) *Matrix {
	dist := distuv.Normal{Mu: float64(mean), Sigma: float64(std), Src: src}

	m := Zeros(rows, cols)
	m.Apply(func(float32) float32 { return float32(dist.Rand()) })
	return m
}

// FromSlice creates a rows x cols matrix from row-major data.
// len(data) must equal rows*cols.
func FromSlice(rows, cols int, data []float32) *Matrix {
	m := Zeros(rows, cols)
	if len(data) != rows*cols {
		panic(errors.Wrapf(ErrShapeMismatch, "from slice: %d values for size [%d %d]", len(data), rows, cols))
	}

	i := 0
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			m.chunkAt(y, x).SetUnbounded(y, x, data[i])
			i++
		}
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Size returns [rows, cols].
func (m *Matrix) Size() [2]int { return [2]int{m.rows, m.cols} }

// Len returns the number of logical cells.
func (m *Matrix) Len() int { return m.rows * m.cols }

// ChunkSize returns the dimensions of the chunk grid.
func (m *Matrix) ChunkSize() [2]int { return [2]int{m.chunkRows, m.chunkCols} }

// SameSize reports whether m and other have identical dimensions.
func (m *Matrix) SameSize(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}

// At returns the value at row y, column x.
func (m *Matrix) At(y, x int) float32 {
	m.checkCoord(y, x)
	return m.chunkAt(y, x).GetUnbounded(y, x)
}

// Set writes the value at row y, column x.
func (m *Matrix) Set(y, x int, v float32) {
	m.checkCoord(y, x)
	m.chunkAt(y, x).SetUnbounded(y, x, v)
}

// Scalar returns the single value of a 1x1 matrix.
func (m *Matrix) Scalar() float32 {
	if m.rows != 1 || m.cols != 1 {
		panic(errors.Wrapf(ErrShapeMismatch, "scalar: size %v is not [1 1]", m.Size()))
	}
	return m.chunks[0].data[0]
}

// Data returns a row-major copy of the logical cells.
func (m *Matrix) Data() []float32 {
	out := make([]float32, 0, m.Len())
	for y := 0; y < m.rows; y++ {
		for x := 0; x < m.cols; x++ {
			out = append(out, m.chunkAt(y, x).GetUnbounded(y, x))
		}
	}
	return out
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	chunks := make([]Chunk, len(m.chunks))
	copy(chunks, m.chunks)
	return &Matrix{
		rows:      m.rows,
		cols:      m.cols,
		chunkRows: m.chunkRows,
		chunkCols: m.chunkCols,
		chunks:    chunks,
	}
}

// TakeClear returns a copy of m and zeroes m in place.
func (m *Matrix) TakeClear() *Matrix {
	taken := m.Clone()
	m.Zero()
	return taken
}

// Zero clears every cell in place.
func (m *Matrix) Zero() {
	for i := range m.chunks {
		m.chunks[i].Zero()
	}
}

// Equal reports whether m and other have the same size and identical cells.
func (m *Matrix) Equal(other *Matrix) bool {
	return m.ApproxEqual(other, 0)
}

// ApproxEqual reports whether m and other have the same size and every pair
// of cells differs by at most tol.
func (m *Matrix) ApproxEqual(other *Matrix, tol float32) bool {
	if !m.SameSize(other) {
		return false
	}
	for i := range m.chunks {
		a, b := &m.chunks[i].data, &other.chunks[i].data
		for j := range a {
			d := a[j] - b[j]
			if d > tol || -d > tol {
				return false
			}
		}
	}
	return true
}

func (m *Matrix) checkCoord(y, x int) {
	if y < 0 || y >= m.rows || x < 0 || x >= m.cols {
		panic(errors.Wrapf(ErrOutOfBounds, "coordinate (%d, %d) in size %v", y, x, m.Size()))
	}
}

func (m *Matrix) chunkAt(y, x int) *Chunk {
	return &m.chunks[(y>>chunkShift)*m.chunkCols+x>>chunkShift]
}

func (m *Matrix) chunk(cy, cx int) *Chunk {
	return &m.chunks[cy*m.chunkCols+cx]
}

// extent returns how many rows and columns of tile (cy, cx) hold data.
func (m *Matrix) extent(cy, cx int) (int, int) {
	return min(ChunkWidth, m.rows-cy<<chunkShift), min(ChunkWidth, m.cols-cx<<chunkShift)
}
