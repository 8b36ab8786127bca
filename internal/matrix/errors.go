package matrix

import "github.com/pkg/errors"

// Precondition violations. Operations panic with an error wrapping one of
// these; they signal a caller bug and are never returned.
var (
	// ErrShapeMismatch is raised when operand sizes are incompatible for an
	// elementwise operation or a matrix multiply.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrDegenerateSize is raised when constructing a matrix with a zero or
	// negative dimension.
	ErrDegenerateSize = errors.New("matrix: degenerate size")

	// ErrOutOfBounds is raised by bounds-checked element access.
	ErrOutOfBounds = errors.New("matrix: index out of bounds")
)

func shapeMismatch(op string, a, b *Matrix) {
	panic(errors.Wrapf(ErrShapeMismatch, "%s: %v vs %v", op, a.Size(), b.Size()))
}
