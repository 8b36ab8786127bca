package matrix

import (
	"math"

	"github.com/tenso-ml/tenso/internal/parallel"
)

// Map returns a new matrix with f applied to every valid cell.
func (m *Matrix) Map(f func(v float32) float32) *Matrix {
	out := m.Clone()
	out.Apply(f)
	return out
}

// Apply replaces every valid cell v with f(v) in place.
// Padding cells are left untouched.
func (m *Matrix) Apply(f func(v float32) float32) {
	for cy := 0; cy < m.chunkRows; cy++ {
		for cx := 0; cx < m.chunkCols; cx++ {
			h, w := m.extent(cy, cx)
			data := &m.chunk(cy, cx).data
			for y := 0; y < h; y++ {
				row := data[y<<chunkShift : y<<chunkShift+w]
				for x, v := range row {
					row[x] = f(v)
				}
			}
		}
	}
}

// ZipMap returns a new matrix with f applied pairwise to the cells of m and
// other. Both matrices must have the same size.
func (m *Matrix) ZipMap(other *Matrix, f func(a, b float32) float32) *Matrix {
	out := m.Clone()
	out.zipApply("zip map", other, f)
	return out
}

// ZipApply replaces every valid cell a of m with f(a, b), b being the
// matching cell of other. Both matrices must have the same size.
func (m *Matrix) ZipApply(other *Matrix, f func(a, b float32) float32) {
	m.zipApply("zip apply", other, f)
}

func (m *Matrix) zipApply(op string, other *Matrix, f func(a, b float32) float32) {
	if !m.SameSize(other) {
		shapeMismatch(op, m, other)
	}
	for cy := 0; cy < m.chunkRows; cy++ {
		for cx := 0; cx < m.chunkCols; cx++ {
			h, w := m.extent(cy, cx)
			dst, src := &m.chunk(cy, cx).data, &other.chunk(cy, cx).data
			for y := 0; y < h; y++ {
				base := y << chunkShift
				for x := base; x < base+w; x++ {
					dst[x] = f(dst[x], src[x])
				}
			}
		}
	}
}

// Reduce folds every valid cell into a 1x1 matrix, starting from init.
//
// Cells are visited tile by tile in row-major grid order and row-major
// within each tile. f must be commutative and associative; the order is
// fixed so results are reproducible.
func (m *Matrix) Reduce(f func(acc, v float32) float32, init float32) *Matrix {
	acc := init
	for cy := 0; cy < m.chunkRows; cy++ {
		for cx := 0; cx < m.chunkCols; cx++ {
			h, w := m.extent(cy, cx)
			data := &m.chunk(cy, cx).data
			for y := 0; y < h; y++ {
				for _, v := range data[y<<chunkShift : y<<chunkShift+w] {
					acc = f(acc, v)
				}
			}
		}
	}

	out := Zeros(1, 1)
	out.chunks[0].data[0] = acc
	return out
}

// Transpose returns the cols x rows transpose of m.
//
// Tile (cy, cx) moves to (cx, cy) and its contents are transposed.
func (m *Matrix) Transpose() *Matrix {
	out := Zeros(m.cols, m.rows)
	for cy := 0; cy < m.chunkRows; cy++ {
		for cx := 0; cx < m.chunkCols; cx++ {
			*out.chunk(cx, cy) = *m.chunk(cy, cx).Transpose()
		}
	}
	return out
}

// MatMul returns the matrix product m·other.
// m.Cols() must equal other.Rows().
func (m *Matrix) MatMul(other *Matrix) *Matrix {
	return m.MatMulWith(other, parallel.DefaultConfig())
}

// MatMulWith is MatMul with an explicit schedule for the destination tiles.
// Every schedule produces bit-identical results.
func (m *Matrix) MatMulWith(other *Matrix, cfg parallel.Config) *Matrix {
	if m.cols != other.rows {
		shapeMismatch("matmul", m, other)
	}

	out := Zeros(m.rows, other.cols)
	inner := m.chunkCols
	parallel.ForTiles(out.chunkRows, out.chunkCols, func(cy, cx int) {
		dst := out.chunk(cy, cx)
		for ci := 0; ci < inner; ci++ {
			dst.MatMulAdd(m.chunk(cy, ci), other.chunk(ci, cx))
		}
	}, cfg)
	return out
}

// Add returns m + other elementwise.
func (m *Matrix) Add(other *Matrix) *Matrix {
	out := m.Clone()
	out.zipApply("add", other, func(a, b float32) float32 { return a + b })
	return out
}

// Sub returns m - other elementwise.
func (m *Matrix) Sub(other *Matrix) *Matrix {
	out := m.Clone()
	out.zipApply("sub", other, func(a, b float32) float32 { return a - b })
	return out
}

// Mul returns the elementwise (Hadamard) product of m and other.
func (m *Matrix) Mul(other *Matrix) *Matrix {
	out := m.Clone()
	out.zipApply("mul", other, func(a, b float32) float32 { return a * b })
	return out
}

// Scale returns s·m.
func (m *Matrix) Scale(s float32) *Matrix {
	return m.Map(func(v float32) float32 { return s * v })
}

// Pow returns m with every cell raised to p.
func (m *Matrix) Pow(p float32) *Matrix {
	return m.Map(func(v float32) float32 { return pow(v, p) })
}

// Sum returns the 1x1 sum of all cells.
func (m *Matrix) Sum() *Matrix {
	return m.Reduce(func(acc, v float32) float32 { return acc + v }, 0)
}

// Mean returns the 1x1 arithmetic mean of all cells.
func (m *Matrix) Mean() *Matrix {
	sum := m.Sum()
	sum.chunks[0].data[0] /= float32(m.Len())
	return sum
}

// Max returns the largest cell value.
func (m *Matrix) Max() float32 {
	return m.Reduce(func(acc, v float32) float32 { return max(acc, v) }, float32(math.Inf(-1))).Scalar()
}

// pow skips the float64 round trip for the exponents losses use.
func pow(v, p float32) float32 {
	switch p {
	case 1:
		return v
	case 2:
		return v * v
	case 3:
		return v * v * v
	}
	return float32(math.Pow(float64(v), float64(p)))
}
