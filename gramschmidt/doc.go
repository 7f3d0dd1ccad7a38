// Package gramschmidt orthogonalizes the columns of a dense matrix and
// produces its QR factorization: for an M×N input A with linearly
// independent columns, GramSchmidt returns an M×N matrix Q with orthonormal
// columns and an N×N upper-triangular matrix R such that A = Q·R to within
// floating-point tolerance.
//
// Algorithm outline, column by column for j = 0..N−1:
//
//  1. Copy column j of A into column j of Q.
//  2. For each finalized column i < j:
//     R[i,j] = ⟨Q[:,i], A[:,j]⟩   (coefficient against the original column)
//     Q[:,j] = Q[:,j] − R[i,j]·Q[:,i]
//     The subtraction re-reads the current state of Q[:,j], so projections
//     accumulate across the inner loop.
//  3. Let nrm = ‖Q[:,j]‖. If nrm exceeds the tolerance, set R[j,j] = nrm
//     and divide Q[:,j] by nrm. Otherwise the column is treated as
//     degenerate: R[j,j] stays 0 and Q[:,j] stays unnormalized. This is a
//     soft outcome signaling near-linear-dependence, not an error.
//
// Entries of R below the diagonal are never written, so R is
// upper-triangular by construction, with non-negative diagonal.
//
// Column independence is a precondition, not a validated one: the only
// dependence detection is the norm-tolerance test above.
//
// The orthogonalization of column j depends on every finalized column
// before it, so the outer loop is inherently sequential.
//
// Complexity:
//
//	Time   = O(M·N²)
//	Memory = O(M·N) for Q plus O(N²) for R, both freshly allocated.
//
// Errors:
//   - ErrNilMatrix    — nil input matrix.
//   - ErrBadTolerance — tolerance not a positive finite number.
package gramschmidt
