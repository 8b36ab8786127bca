package matrix

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/tenso-ml/tenso/internal/parallel"
)

func seeded(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// oddSizes covers single tiles, exact tile multiples and ragged edges.
var oddSizes = [][2]int{
	{1, 1}, {2, 3}, {16, 16}, {17, 17}, {5, 33}, {40, 3}, {32, 48},
}

func TestZeros(t *testing.T) {
	m := Zeros(17, 33)

	assert.Equal(t, [2]int{17, 33}, m.Size())
	assert.Equal(t, [2]int{2, 3}, m.ChunkSize())
	assert.Len(t, m.chunks, 6)
	assert.Equal(t, float32(0), m.Sum().Scalar())
}

func TestZeros_DegenerateSize(t *testing.T) {
	requirePanicIs(t, ErrDegenerateSize, func() { Zeros(0, 3) })
	requirePanicIs(t, ErrDegenerateSize, func() { Zeros(3, 0) })
	requirePanicIs(t, ErrDegenerateSize, func() { Full(-1, 2, 1) })
}

func TestFromSlice(t *testing.T) {
	m := FromSlice(2, 3, []float32{1, 2, 3, 4, 5, 6})

	assert.Equal(t, float32(1), m.At(0, 0))
	assert.Equal(t, float32(3), m.At(0, 2))
	assert.Equal(t, float32(4), m.At(1, 0))
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, m.Data())
}

func TestFromSlice_LengthMismatch(t *testing.T) {
	requirePanicIs(t, ErrShapeMismatch, func() { FromSlice(2, 2, []float32{1, 2, 3}) })
}

func TestAtSet_Bounds(t *testing.T) {
	m := Zeros(3, 20)
	m.Set(2, 19, 4)
	assert.Equal(t, float32(4), m.At(2, 19))

	requirePanicIs(t, ErrOutOfBounds, func() { m.At(3, 0) })
	requirePanicIs(t, ErrOutOfBounds, func() { m.Set(0, 20, 1) })
}

func TestFull_PaddingStaysZero(t *testing.T) {
	m := Full(17, 17, 1)

	// Cell (16, 16) lives in the last tile; everything else in it is padding.
	last := m.chunk(1, 1)
	assert.Equal(t, float32(1), last.Get(0, 0))
	assert.Equal(t, float32(0), last.Get(0, 1))
	assert.Equal(t, float32(0), last.Get(1, 0))
}

func TestSum_EdgeChunks(t *testing.T) {
	for _, size := range oddSizes {
		t.Run(fmt.Sprintf("%dx%d", size[0], size[1]), func(t *testing.T) {
			m := Zeros(size[0], size[1])
			var want float32
			for y := 0; y < size[0]; y++ {
				for x := 0; x < size[1]; x++ {
					v := float32((y*7+x*3)%11) - 5
					m.Set(y, x, v)
					want += v
				}
			}
			assert.Equal(t, want, m.Sum().Scalar())
		})
	}
}

func TestSum_SeventeenOnes(t *testing.T) {
	assert.Equal(t, float32(289), Full(17, 17, 1).Sum().Scalar())
	// Map must not turn padding into data either.
	assert.Equal(t, float32(289), Zeros(17, 17).Map(func(v float32) float32 { return v + 1 }).Sum().Scalar())
}

func TestSum_Scenario(t *testing.T) {
	a := FromSlice(2, 2, []float32{0, 1, 2, 3})
	sum := a.Sum()

	assert.Equal(t, [2]int{1, 1}, sum.Size())
	assert.True(t, sum.Equal(FromSlice(1, 1, []float32{6})))
}

func TestReduce_Order(t *testing.T) {
	// Tile-then-cell order: the whole first tile before the second.
	m := Zeros(1, 18)
	for x := 0; x < 18; x++ {
		m.Set(0, x, float32(x))
	}

	var seen []float32
	m.Reduce(func(acc, v float32) float32 {
		seen = append(seen, v)
		return acc
	}, 0)

	assert.Equal(t, m.Data(), seen)
}

func TestMean(t *testing.T) {
	m := FromSlice(2, 3, []float32{1, 2, 3, 4, 5, 6})
	assert.InDelta(t, 3.5, m.Mean().Scalar(), 1e-6)
}

func TestMax(t *testing.T) {
	m := FromSlice(2, 2, []float32{-3, -1, -7, -2})
	assert.Equal(t, float32(-1), m.Max())
}

func TestElementwise(t *testing.T) {
	a := FromSlice(2, 2, []float32{1, 2, 3, 4})
	b := FromSlice(2, 2, []float32{5, 6, 7, 8})

	assert.Equal(t, []float32{6, 8, 10, 12}, a.Add(b).Data())
	assert.Equal(t, []float32{-4, -4, -4, -4}, a.Sub(b).Data())
	assert.Equal(t, []float32{5, 12, 21, 32}, a.Mul(b).Data())
	assert.Equal(t, []float32{0.5, 1, 1.5, 2}, a.Scale(0.5).Data())
	assert.Equal(t, []float32{1, 4, 9, 16}, a.Pow(2).Data())
	assert.Equal(t, []float32{1, 2, 3, 4}, a.Data(), "operands must be unchanged")
}

func TestElementwise_ShapeMismatch(t *testing.T) {
	a := Zeros(2, 3)
	b := Zeros(3, 2)

	requirePanicIs(t, ErrShapeMismatch, func() { a.Add(b) })
	requirePanicIs(t, ErrShapeMismatch, func() { a.Sub(b) })
	requirePanicIs(t, ErrShapeMismatch, func() { a.Mul(b) })
	requirePanicIs(t, ErrShapeMismatch, func() { a.ZipApply(b, func(p, _ float32) float32 { return p }) })
}

func TestTranspose_Involution(t *testing.T) {
	for _, size := range oddSizes {
		t.Run(fmt.Sprintf("%dx%d", size[0], size[1]), func(t *testing.T) {
			a := Randn(size[0], size[1], 0, 1, seeded(uint64(size[0]*100+size[1])))
			at := a.Transpose()

			require.Equal(t, [2]int{size[1], size[0]}, at.Size())
			for y := 0; y < size[0]; y++ {
				for x := 0; x < size[1]; x++ {
					require.Equal(t, a.At(y, x), at.At(x, y))
				}
			}
			assert.True(t, at.Transpose().Equal(a))
		})
	}
}

func TestMatMul_Identity(t *testing.T) {
	a := FromSlice(2, 2, []float32{1, 2, 3, 4})
	assert.True(t, a.MatMul(Identity(2)).Equal(a))
}

func TestMatMul_Small(t *testing.T) {
	a := FromSlice(2, 3, []float32{1, 2, 3, 4, 5, 6})
	b := FromSlice(3, 2, []float32{7, 8, 9, 10, 11, 12})

	got := a.MatMul(b)
	assert.Equal(t, [2]int{2, 2}, got.Size())
	assert.Equal(t, []float32{58, 64, 139, 154}, got.Data())
}

func TestMatMul_ShapeMismatch(t *testing.T) {
	requirePanicIs(t, ErrShapeMismatch, func() { Zeros(2, 3).MatMul(Zeros(2, 3)) })
}

func TestMatMul_MatchesGonum(t *testing.T) {
	cases := []struct{ m, k, n int }{
		{1, 1, 1},
		{3, 17, 5},
		{33, 20, 47},
		{16, 16, 16},
		{40, 64, 9},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%dx%dx%d", tc.m, tc.k, tc.n), func(t *testing.T) {
			a := Randn(tc.m, tc.k, 0, 1, seeded(1))
			b := Randn(tc.k, tc.n, 0, 1, seeded(2))

			var want mat.Dense
			want.Mul(toDense(a), toDense(b))

			got := a.MatMul(b)
			require.Equal(t, [2]int{tc.m, tc.n}, got.Size())
			for y := 0; y < tc.m; y++ {
				for x := 0; x < tc.n; x++ {
					w := want.At(y, x)
					assert.InDelta(t, w, float64(got.At(y, x)), 1e-4*math.Max(1, math.Abs(w)))
				}
			}
		})
	}
}

func TestMatMul_TransposeIdentity(t *testing.T) {
	// (A·B)ᵗ == Bᵗ·Aᵗ
	a := Randn(19, 35, 0, 1, seeded(3))
	b := Randn(35, 21, 0, 1, seeded(4))

	left := a.MatMul(b).Transpose()
	right := b.Transpose().MatMul(a.Transpose())

	assert.True(t, left.ApproxEqual(right, 1e-4))
}

func TestMatMul_ParallelMatchesSequential(t *testing.T) {
	a := Randn(70, 50, 0, 1, seeded(5))
	b := Randn(50, 90, 0, 1, seeded(6))

	seq := a.MatMulWith(b, parallel.Sequential())
	par := a.MatMulWith(b, parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1})

	assert.True(t, seq.Equal(par))
}

func TestMatMul_PaddingStaysZero(t *testing.T) {
	a := Full(17, 18, 1)
	b := Full(18, 19, 1)

	got := a.MatMul(b)
	assert.Equal(t, float32(17*19*18), got.Sum().Scalar())

	last := got.chunk(1, 1)
	assert.Equal(t, float32(18), last.Get(0, 2))
	assert.Equal(t, float32(0), last.Get(0, 3))
	assert.Equal(t, float32(0), last.Get(1, 0))
}

func TestRandn_Moments(t *testing.T) {
	m := Randn(64, 64, 3, 0.5, seeded(7))

	mean := m.Mean().Scalar()
	variance := m.Map(func(v float32) float32 { return (v - mean) * (v - mean) }).Mean().Scalar()

	assert.InDelta(t, 3, mean, 0.05)
	assert.InDelta(t, 0.25, variance, 0.05)
}

func TestTakeClear(t *testing.T) {
	m := FromSlice(1, 2, []float32{3, 4})
	taken := m.TakeClear()

	assert.Equal(t, []float32{3, 4}, taken.Data())
	assert.Equal(t, []float32{0, 0}, m.Data())
}

func TestScalar_NonScalar(t *testing.T) {
	requirePanicIs(t, ErrShapeMismatch, func() { Zeros(1, 2).Scalar() })
}

func TestFormat(t *testing.T) {
	m := FromSlice(2, 2, []float32{1, -2.5, 3, 4})

	want := "" +
		" --------------- \n" +
		"|  1.00  -2.50  |\n" +
		"|  3.00   4.00  |\n" +
		" --------------- \n"
	assert.Equal(t, want, fmt.Sprintf("%v", m))
	assert.Equal(t, want, m.String())

	assert.Contains(t, fmt.Sprintf("%.3v", m), "-2.500")
	assert.Equal(t, "%!d(matrix=2x2)", fmt.Sprintf("%d", m))
}

func toDense(m *Matrix) *mat.Dense {
	data := m.Data()
	f64 := make([]float64, len(data))
	for i, v := range data {
		f64[i] = float64(v)
	}
	return mat.NewDense(m.Rows(), m.Cols(), f64)
}

func BenchmarkMatMul(b *testing.B) {
	for _, n := range []int{64, 256} {
		x := Randn(n, n, 0, 1, seeded(8))
		y := Randn(n, n, 0, 1, seeded(9))
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x.MatMul(y)
			}
		})
	}
}
