// Package determinant computes determinants of square matrices by cofactor
// (Laplace) expansion, together with the square-submatrix extraction the
// expansion is built on.
//
// Algorithm outline:
//
//  1. Base case N = 2:
//     det(A) = A[0,0]·A[1,1] − A[0,1]·A[1,0].
//  2. Recursive case N > 2, expanding along row 0:
//     det(A) = Σ_{j=0..N-1} (−1)^j · A[0,j] · det(SubMatrix(A, 0, j)),
//     where the sign starts at +1 for j = 0 and alternates.
//
// SubMatrix(A, i, j) deletes row i and column j from an N×N matrix and
// returns the fresh (N−1)×(N−1) minor with the relative order of the
// surviving rows and columns preserved. The result never aliases A.
//
// Complexity:
//
//	Time   = O(N!) — each level of the expansion extracts N minors.
//	Memory = O(N²) per recursion level, depth N.
//
// The factorial cost is an accepted property of cofactor expansion; the
// package targets the small matrices for which the expansion is the
// textbook reference, not large-scale numerics.
//
// Errors:
//   - ErrNilMatrix        — nil input matrix.
//   - ErrNotSquare        — input matrix with Rows() != Cols().
//   - ErrTooSmall         — input smaller than 2×2.
//   - ErrIndexOutOfRange  — drop indices outside [0, N).
package determinant
