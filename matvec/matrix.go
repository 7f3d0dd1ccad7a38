package matvec

import "fmt"

// Matrix is a dense M×N grid of float64 entries stored row-major in a
// single backing slice: entry (i,j) lives at data[i*cols+j].
// The zero value is not usable; construct via NewMatrix, NewMatrixFromRows,
// Identity or Hilbert.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix returns a zero-filled m×n matrix.
// Returns ErrEmptyData if m < 1 or n < 1.
func NewMatrix(m, n int) (*Matrix, error) {
	if m < 1 || n < 1 {
		return nil, ErrEmptyData
	}

	return &Matrix{rows: m, cols: n, data: make([]float64, m*n)}, nil
}

// NewMatrixFromRows copies a rectangular 2-D slice into a fresh matrix.
// Returns ErrEmptyData for zero rows or zero columns and ErrNonRectangular
// when rows differ in length.
func NewMatrixFromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyData
	}
	n := len(rows[0])
	for i := range rows {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNonRectangular, i, len(rows[i]), n)
		}
	}
	A, err := NewMatrix(len(rows), n)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		copy(A.data[i*n:(i+1)*n], rows[i])
	}

	return A, nil
}

// Identity returns the n×n identity matrix.
// Returns ErrEmptyData if n < 1.
func Identity(n int) (*Matrix, error) {
	I, err := NewMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// Hilbert returns the n×n Hilbert matrix, H[i,j] = 1/(i+j+1).
// Returns ErrEmptyData if n < 1.
func Hilbert(n int) (*Matrix, error) {
	H, err := NewMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			H.data[i*n+j] = 1 / float64(i+j+1)
		}
	}

	return H, nil
}

// Rows returns the number of rows M.
func (A *Matrix) Rows() int { return A.rows }

// Cols returns the number of columns N.
func (A *Matrix) Cols() int { return A.cols }

// Dims returns (M, N).
func (A *Matrix) Dims() (r, c int) { return A.rows, A.cols }

// At returns entry (i,j). Panics with ErrIndexOutOfRange if either index is
// out of range.
func (A *Matrix) At(i, j int) float64 {
	A.mustIndex(i, j)

	return A.data[i*A.cols+j]
}

// Set overwrites entry (i,j). Panics with ErrIndexOutOfRange if either
// index is out of range.
func (A *Matrix) Set(i, j int, x float64) {
	A.mustIndex(i, j)
	A.data[i*A.cols+j] = x
}

// Row returns row i as a fresh row-oriented vector.
// Panics with ErrIndexOutOfRange if i is out of range.
func (A *Matrix) Row(i int) *Vector {
	if i < 0 || i >= A.rows {
		panic(fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, i, A.rows))
	}
	v := &Vector{data: make([]float64, A.cols), orient: Row}
	copy(v.data, A.data[i*A.cols:(i+1)*A.cols])

	return v
}

// Column returns column j as a fresh column-oriented vector.
// Panics with ErrIndexOutOfRange if j is out of range.
func (A *Matrix) Column(j int) *Vector {
	if j < 0 || j >= A.cols {
		panic(fmt.Errorf("%w: column %d of %d", ErrIndexOutOfRange, j, A.cols))
	}
	v := &Vector{data: make([]float64, A.rows), orient: Column}
	for i := 0; i < A.rows; i++ {
		v.data[i] = A.data[i*A.cols+j]
	}

	return v
}

// Clone returns a deep copy of A.
func (A *Matrix) Clone() *Matrix {
	B := &Matrix{rows: A.rows, cols: A.cols, data: make([]float64, len(A.data))}
	copy(B.data, A.data)

	return B
}

// AsRows exports the matrix as a fresh 2-D slice, row by row.
func (A *Matrix) AsRows() [][]float64 {
	out := make([][]float64, A.rows)
	for i := 0; i < A.rows; i++ {
		out[i] = make([]float64, A.cols)
		copy(out[i], A.data[i*A.cols:(i+1)*A.cols])
	}

	return out
}

// mustIndex panics with ErrIndexOutOfRange unless (i,j) addresses an entry.
func (A *Matrix) mustIndex(i, j int) {
	if i < 0 || i >= A.rows || j < 0 || j >= A.cols {
		panic(fmt.Errorf("%w: entry (%d,%d) of %dx%d matrix", ErrIndexOutOfRange, i, j, A.rows, A.cols))
	}
}
