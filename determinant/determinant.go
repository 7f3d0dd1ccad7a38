package determinant

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/matvec"
)

var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("determinant: matrix must not be nil")
	// ErrNotSquare indicates an input matrix with Rows() != Cols().
	ErrNotSquare = errors.New("determinant: matrix must be square")
	// ErrTooSmall indicates an input matrix smaller than 2x2.
	ErrTooSmall = errors.New("determinant: matrix must be at least 2x2")
	// ErrIndexOutOfRange indicates drop indices outside [0, N).
	ErrIndexOutOfRange = errors.New("determinant: drop index out of range")
)

// SubMatrix returns the (N−1)×(N−1) minor of the N×N matrix A obtained by
// deleting row dropRow and column dropCol. The relative order of the
// surviving rows and columns is preserved, and the result never aliases A.
//
// Time Complexity: O(N²)
func SubMatrix(A *matvec.Matrix, dropRow, dropCol int) (*matvec.Matrix, error) {
	n, err := squareDims(A)
	if err != nil {
		return nil, err
	}
	if dropRow < 0 || dropRow >= n || dropCol < 0 || dropCol >= n {
		return nil, fmt.Errorf("%w: drop (%d,%d) of %dx%d matrix", ErrIndexOutOfRange, dropRow, dropCol, n, n)
	}

	B, err := matvec.NewMatrix(n-1, n-1)
	if err != nil {
		return nil, err
	}
	br := 0
	for r := 0; r < n; r++ {
		if r == dropRow {
			continue
		}
		bc := 0
		for c := 0; c < n; c++ {
			if c == dropCol {
				continue
			}
			B.Set(br, bc, A.At(r, c))
			bc++
		}
		br++
	}

	return B, nil
}

// Determinant computes det(A) for a square matrix A of dimension N ≥ 2 by
// cofactor expansion along row 0, bottoming out at the 2×2 base case.
//
// Time Complexity: O(N!)
func Determinant(A *matvec.Matrix) (float64, error) {
	n, err := squareDims(A)
	if err != nil {
		return 0, err
	}

	return expand(A, n)
}

// expand performs one level of the Laplace expansion; A is known square of
// dimension n ≥ 2.
func expand(A *matvec.Matrix, n int) (float64, error) {
	if n == 2 {
		return A.At(0, 0)*A.At(1, 1) - A.At(0, 1)*A.At(1, 0), nil
	}

	det := 0.0
	sign := 1.0
	for j := 0; j < n; j++ {
		minor, err := SubMatrix(A, 0, j)
		if err != nil {
			return 0, err
		}
		sub, err := expand(minor, n-1)
		if err != nil {
			return 0, err
		}
		det += sign * A.At(0, j) * sub
		sign = -sign
	}

	return det, nil
}

// squareDims validates A as a square matrix of dimension ≥ 2 and returns N.
func squareDims(A *matvec.Matrix) (int, error) {
	if A == nil {
		return 0, ErrNilMatrix
	}
	r, c := A.Dims()
	if r != c {
		return 0, fmt.Errorf("%w: got %dx%d", ErrNotSquare, r, c)
	}
	if r < 2 {
		return 0, fmt.Errorf("%w: got %dx%d", ErrTooSmall, r, c)
	}

	return r, nil
}
