package pattern

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrInvalidDimension reports a matrix constructed with a non-positive extent.
	ErrInvalidDimension = errors.New("pattern: invalid dimension")
	// ErrIndexOutOfBounds reports access outside the matrix extent.
	ErrIndexOutOfBounds = errors.New("pattern: index out of bounds")
	// ErrInvalidFormat reports a key that cannot be decoded into a square matrix.
	ErrInvalidFormat = errors.New("pattern: invalid key format")
	// ErrInvalidValue reports a cell value that has no single-digit key symbol.
	ErrInvalidValue = errors.New("pattern: value out of range")
)

// MaxValue is the largest cell value a key can encode.
const MaxValue = 9

// parallelThreshold is the element count above which Equal and
// RotateClockwise split work across goroutines.
const parallelThreshold = 128

// Matrix stores a small rows x cols grid of cell values in row-major order.
type Matrix struct {
	rows, cols int
	data       []uint8
}

// New allocates a zeroed matrix with the given dimensions.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	return &Matrix{rows: rows, cols: cols, data: make([]uint8, rows*cols)}, nil
}

// FromCorners builds a 2x2 matrix from the four corner values.
func FromCorners(tl, tr, bl, br uint8) (*Matrix, error) {
	for _, v := range [4]uint8{tl, tr, bl, br} {
		if v > MaxValue {
			return nil, fmt.Errorf("%w: %d", ErrInvalidValue, v)
		}
	}
	return &Matrix{rows: 2, cols: 2, data: []uint8{tl, tr, bl, br}}, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the value at (row, col).
func (m *Matrix) At(row, col int) (uint8, error) {
	if !m.inBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrIndexOutOfBounds, row, col, m.rows, m.cols)
	}
	return m.data[row*m.cols+col], nil
}

// Set writes v at (row, col). Values above MaxValue are rejected.
func (m *Matrix) Set(row, col int, v uint8) error {
	if !m.inBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrIndexOutOfBounds, row, col, m.rows, m.cols)
	}
	if v > MaxValue {
		return fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidValue, v, row, col)
	}
	m.data[row*m.cols+col] = v
	return nil
}

func (m *Matrix) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// Corners returns the four values of a 2x2 matrix as top-left, top-right,
// bottom-left, bottom-right. ok is false for any other shape.
func (m *Matrix) Corners() (tl, tr, bl, br uint8, ok bool) {
	if m.rows != 2 || m.cols != 2 {
		return 0, 0, 0, 0, false
	}
	return m.data[0], m.data[1], m.data[2], m.data[3], true
}

// Equal reports whether both matrices have the same shape and values.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	if len(m.data) < parallelThreshold {
		return equalRange(m.data, other.data, 0, len(m.data))
	}

	var g errgroup.Group
	mismatch := make([]bool, chunkCount(len(m.data)))
	forEachChunk(len(m.data), func(chunk, lo, hi int) {
		g.Go(func() error {
			mismatch[chunk] = !equalRange(m.data, other.data, lo, hi)
			return nil
		})
	})
	_ = g.Wait()
	for _, miss := range mismatch {
		if miss {
			return false
		}
	}
	return true
}

func equalRange(a, b []uint8, lo, hi int) bool {
	for i := lo; i < hi; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// RotateClockwise returns a new cols x rows matrix holding m rotated by 90
// degrees clockwise: element (i, j) moves to (j, rows-1-i).
func (m *Matrix) RotateClockwise() *Matrix {
	out := &Matrix{rows: m.cols, cols: m.rows, data: make([]uint8, len(m.data))}
	if m.rows <= parallelThreshold || m.cols <= parallelThreshold {
		m.rotateRows(out, 0, m.rows)
		return out
	}

	var g errgroup.Group
	forEachChunk(m.rows, func(_, lo, hi int) {
		g.Go(func() error {
			m.rotateRows(out, lo, hi)
			return nil
		})
	})
	_ = g.Wait()
	return out
}

// rotateRows writes source rows [lo, hi) into out. Distinct row ranges touch
// distinct destination columns.
func (m *Matrix) rotateRows(out *Matrix, lo, hi int) {
	for i := lo; i < hi; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*out.cols+(m.rows-1-i)] = m.data[i*m.cols+j]
		}
	}
}

func chunkCount(n int) int {
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

func forEachChunk(n int, fn func(chunk, lo, hi int)) {
	chunks := chunkCount(n)
	size := (n + chunks - 1) / chunks
	for c := 0; c < chunks; c++ {
		lo := c * size
		hi := lo + size
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		fn(c, lo, hi)
	}
}

// Encode concatenates the cell values in row-major order, one decimal digit
// per cell. Every constructor and Set keep values within MaxValue.
func (m *Matrix) Encode() string {
	var b strings.Builder
	b.Grow(len(m.data))
	for _, v := range m.data {
		b.WriteByte('0' + v)
	}
	return b.String()
}

// String implements fmt.Stringer using the key encoding.
func (m *Matrix) String() string { return m.Encode() }

// Decode parses a key produced by Encode back into a square matrix.
func Decode(key string) (*Matrix, error) {
	size := int(math.Sqrt(float64(len(key))))
	if len(key) == 0 || size*size != len(key) {
		return nil, fmt.Errorf("%w: length %d of %q is not a perfect square", ErrInvalidFormat, len(key), key)
	}
	m, err := New(size, size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: symbol %q at %d in %q", ErrInvalidFormat, c, i, key)
		}
		m.data[i] = c - '0'
	}
	return m, nil
}
