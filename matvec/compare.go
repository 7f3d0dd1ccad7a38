package matvec

import "math"

// EpsEqual reports whether two scalars differ by less than eps.
func EpsEqual(x, y, eps float64) bool {
	return math.Abs(x-y) < eps
}

// EqualApprox reports whether v and w have the same length and an L1
// distance (sum of absolute entry differences) below tol. Orientation is
// ignored: a row and a column vector with the same entries compare equal.
func (v *Vector) EqualApprox(w *Vector, tol float64) bool {
	if v.Len() != w.Len() {
		return false
	}
	l1 := 0.0
	for i := range v.data {
		l1 += math.Abs(v.data[i] - w.data[i])
	}

	return l1 < tol
}

// EqualApprox reports whether A and B have the same dimensions and an L1
// distance (sum of absolute entry differences) below tol.
func (A *Matrix) EqualApprox(B *Matrix, tol float64) bool {
	if A.rows != B.rows || A.cols != B.cols {
		return false
	}
	l1 := 0.0
	for i := range A.data {
		l1 += math.Abs(A.data[i] - B.data[i])
	}

	return l1 < tol
}
