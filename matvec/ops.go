package matvec

import "fmt"

// SetColumn overwrites column j of A in place with v's entries:
// A[i,j] = v[i] for every row i. It is the only mutating operation in the
// package and touches nothing but its receiver.
//
// Returns ErrDimensionMismatch when v.Len() != A.Rows() and
// ErrIndexOutOfRange when j is outside [0, A.Cols()).
func (A *Matrix) SetColumn(v *Vector, j int) error {
	if v.Len() != A.rows {
		return fmt.Errorf("%w: column of %d entries into %d rows", ErrDimensionMismatch, v.Len(), A.rows)
	}
	if j < 0 || j >= A.cols {
		return fmt.Errorf("%w: column %d of %d", ErrIndexOutOfRange, j, A.cols)
	}
	for i := 0; i < A.rows; i++ {
		A.data[i*A.cols+j] = v.data[i]
	}

	return nil
}

// Transpose returns a new N×M matrix B with B[j,i] = A[i,j].
// A is never mutated.
func (A *Matrix) Transpose() *Matrix {
	B := &Matrix{rows: A.cols, cols: A.rows, data: make([]float64, len(A.data))}
	for i := 0; i < A.rows; i++ {
		for j := 0; j < A.cols; j++ {
			B.data[j*B.cols+i] = A.data[i*A.cols+j]
		}
	}

	return B
}

// Scale returns s·A as a new matrix.
func (A *Matrix) Scale(s float64) *Matrix {
	B := A.Clone()
	for i := range B.data {
		B.data[i] *= s
	}

	return B
}

// Mul returns the matrix product A·B as a new matrix.
// Returns ErrDimensionMismatch unless A.Cols() == B.Rows().
func (A *Matrix) Mul(B *Matrix) (*Matrix, error) {
	if A.cols != B.rows {
		return nil, fmt.Errorf("%w: %dx%d times %dx%d", ErrDimensionMismatch, A.rows, A.cols, B.rows, B.cols)
	}
	C := &Matrix{rows: A.rows, cols: B.cols, data: make([]float64, A.rows*B.cols)}
	for i := 0; i < A.rows; i++ {
		for k := 0; k < A.cols; k++ {
			aik := A.data[i*A.cols+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < B.cols; j++ {
				C.data[i*C.cols+j] += aik * B.data[k*B.cols+j]
			}
		}
	}

	return C, nil
}

// MulVec returns the matrix-vector product A·v as a fresh column vector of
// length A.Rows().
//
// v must be column-oriented (ErrOrientation otherwise) with
// v.Len() == A.Cols() (ErrDimensionMismatch otherwise).
func (A *Matrix) MulVec(v *Vector) (*Vector, error) {
	if v.orient != Column {
		return nil, fmt.Errorf("%w: matrix-vector product needs a column vector", ErrOrientation)
	}
	if v.Len() != A.cols {
		return nil, fmt.Errorf("%w: %dx%d times %d-entry vector", ErrDimensionMismatch, A.rows, A.cols, v.Len())
	}
	out := &Vector{data: make([]float64, A.rows), orient: Column}
	for i := 0; i < A.rows; i++ {
		s := 0.0
		for j := 0; j < A.cols; j++ {
			s += A.data[i*A.cols+j] * v.data[j]
		}
		out.data[i] = s
	}

	return out, nil
}
