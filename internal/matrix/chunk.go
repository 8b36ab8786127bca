package matrix

import "github.com/pkg/errors"

const (
	chunkShift = 4

	// ChunkWidth is the side length of a tile.
	ChunkWidth = 1 << chunkShift

	chunkMask = ChunkWidth - 1
	chunkLen  = ChunkWidth * ChunkWidth
)

// Chunk is a fixed-size dense ChunkWidth x ChunkWidth tile of float32 values,
// stored row-major. It is the unit of storage of a Matrix and the unit of
// work of the blocked matrix multiply.
type Chunk struct {
	data [chunkLen]float32
}

// Zero clears every cell.
func (c *Chunk) Zero() {
	c.data = [chunkLen]float32{}
}

// Map returns a new tile with f applied to every cell.
func (c *Chunk) Map(f func(y, x int, v float32) float32) *Chunk {
	result := &Chunk{}
	i := 0
	for y := 0; y < ChunkWidth; y++ {
		for x := 0; x < ChunkWidth; x++ {
			result.data[i] = f(y, x, c.data[i])
			i++
		}
	}
	return result
}

// MapMut applies f to every cell in place.
func (c *Chunk) MapMut(f func(y, x int, v float32) float32) {
	i := 0
	for y := 0; y < ChunkWidth; y++ {
		for x := 0; x < ChunkWidth; x++ {
			c.data[i] = f(y, x, c.data[i])
			i++
		}
	}
}

// Get returns the cell at tile-local coordinate (y, x).
func (c *Chunk) Get(y, x int) float32 {
	checkChunkCoord(y, x)
	return c.data[y<<chunkShift+x]
}

// Set writes the cell at tile-local coordinate (y, x).
func (c *Chunk) Set(y, x int, v float32) {
	checkChunkCoord(y, x)
	c.data[y<<chunkShift+x] = v
}

// GetUnbounded returns the cell addressed by a global matrix coordinate,
// masked into this tile.
func (c *Chunk) GetUnbounded(y, x int) float32 {
	return c.data[(y&chunkMask)<<chunkShift+x&chunkMask]
}

// SetUnbounded writes the cell addressed by a global matrix coordinate,
// masked into this tile.
func (c *Chunk) SetUnbounded(y, x int, v float32) {
	c.data[(y&chunkMask)<<chunkShift+x&chunkMask] = v
}

// ZipMap returns a new tile with f applied pairwise to c and other.
func (c *Chunk) ZipMap(other *Chunk, f func(a, b float32) float32) *Chunk {
	result := &Chunk{}
	for i := range c.data {
		result.data[i] = f(c.data[i], other.data[i])
	}
	return result
}

// Transpose returns a new tile with (y, x) swapped to (x, y).
func (c *Chunk) Transpose() *Chunk {
	result := &Chunk{}
	for y := 0; y < ChunkWidth; y++ {
		for x := 0; x < ChunkWidth; x++ {
			result.data[x<<chunkShift+y] = c.data[y<<chunkShift+x]
		}
	}
	return result
}

// MatMul returns the dense tile product c·other.
func (c *Chunk) MatMul(other *Chunk) *Chunk {
	result := &Chunk{}
	result.MatMulAdd(c, other)
	return result
}

// MatMulAdd accumulates the tile product a·b into c.
//
// The loop runs y-i-x so the innermost loop walks contiguous rows of b and c.
func (c *Chunk) MatMulAdd(a, b *Chunk) {
	for y := 0; y < ChunkWidth; y++ {
		row := c.data[y<<chunkShift : (y+1)<<chunkShift]
		for i := 0; i < ChunkWidth; i++ {
			av := a.data[y<<chunkShift+i]
			brow := b.data[i<<chunkShift : (i+1)<<chunkShift]
			for x := range row {
				row[x] += av * brow[x]
			}
		}
	}
}

func checkChunkCoord(y, x int) {
	if y < 0 || y >= ChunkWidth || x < 0 || x >= ChunkWidth {
		panic(errors.Wrapf(ErrOutOfBounds, "chunk coordinate (%d, %d), width %d", y, x, ChunkWidth))
	}
}

// chunkCount returns how many tiles are needed to cover n cells.
func chunkCount(n int) int {
	return (n + chunkMask) >> chunkShift
}
