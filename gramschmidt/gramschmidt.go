package gramschmidt

import (
	"math"

	"github.com/katalvlaran/linalg/matvec"
)

// GramSchmidt factorizes the M×N matrix A, whose columns are assumed
// linearly independent, into Q (M×N, orthonormal columns) and R (N×N,
// upper-triangular, non-negative diagonal) with A = Q·R up to
// floating-point tolerance.
//
// A nil opts pointer selects DefaultOptions. A is never mutated; Q and R
// are freshly allocated.
//
// A column whose residual norm falls at or below the tolerance is reported
// through the outputs — unnormalized column in Q, zero diagonal entry in
// R — rather than as an error. See the package documentation for the exact
// update order.
func GramSchmidt(A *matvec.Matrix, opts *Options) (Q, R *matvec.Matrix, err error) {
	if A == nil {
		return nil, nil, ErrNilMatrix
	}
	tol := DefaultTolerance
	if opts != nil {
		tol = opts.Tolerance
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		return nil, nil, ErrBadTolerance
	}

	m, n := A.Dims()
	if Q, err = matvec.NewMatrix(m, n); err != nil {
		return nil, nil, err
	}
	if R, err = matvec.NewMatrix(n, n); err != nil {
		return nil, nil, err
	}

	for j := 0; j < n; j++ {
		// Seed column j of Q with the original column of A.
		v := A.Column(j)
		if err = Q.SetColumn(v, j); err != nil {
			return nil, nil, err
		}

		// Remove the projection onto each finalized column. Coefficients are
		// taken against the original column v; the subtraction re-reads the
		// current state of Q[:,j], so it accumulates.
		for i := 0; i < j; i++ {
			q := Q.Column(i)
			r, dotErr := q.Dot(v)
			if dotErr != nil {
				return nil, nil, dotErr
			}
			R.Set(i, j, r)

			reduced, subErr := Q.Column(j).Sub(q.Scale(r))
			if subErr != nil {
				return nil, nil, subErr
			}
			if err = Q.SetColumn(reduced, j); err != nil {
				return nil, nil, err
			}
		}

		// Normalize unless the residual is degenerate; a degenerate column
		// keeps R[j,j] = 0 and stays unnormalized.
		residual := Q.Column(j)
		if nrm := residual.Norm(); nrm > tol {
			R.Set(j, j, nrm)
			if err = Q.SetColumn(residual.Scale(1/nrm), j); err != nil {
				return nil, nil, err
			}
		}
	}

	return Q, R, nil
}
