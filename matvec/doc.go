// Package matvec provides the dense containers the rest of the library
// computes on: a row-major Matrix of float64 entries and a Vector tagged
// with an orientation (Column or Row).
//
// Containers:
//
//   - Matrix — an M×N grid, M ≥ 1, N ≥ 1, stored row-major in one backing
//     slice. Constructed zero-filled (NewMatrix), from a rectangular 2-D
//     slice (NewMatrixFromRows), or via Identity / Hilbert.
//   - Vector — a length-N sequence, N ≥ 1, tagged Column or Row. The tag
//     affects only how the vector composes with matrices (MulVec, Hadamard);
//     it never changes the arithmetic itself.
//
// Access semantics:
//
//   - At/Set mirror Go slice indexing: an out-of-range index panics with
//     ErrIndexOutOfRange. Same for Row(i) and Column(j).
//   - Every shape-level operation (SetColumn, Add, Sub, Hadamard, Dot, Mul,
//     MulVec) validates operand dimensions eagerly and returns a sentinel
//     error before touching any data.
//   - All operations return freshly allocated results; SetColumn is the one
//     in-place mutation, and it mutates only its receiver.
//
// Comparison:
//
//	Floating-point results are not bit-identical across platforms, so the
//	package ships EqualApprox on both containers: equal dimensions plus an
//	L1 distance below the caller's tolerance. Exact (==) comparison is only
//	appropriate for operations that move values without arithmetic, such as
//	SetColumn followed by Column.
//
// Errors:
//
//	ErrEmptyData         – construction with fewer than one row or column.
//	ErrNonRectangular    – NewMatrixFromRows given rows of differing lengths.
//	ErrDimensionMismatch – operand shapes/lengths incompatible.
//	ErrIndexOutOfRange   – row/column index outside valid bounds.
//	ErrOrientation       – vector orientation does not fit the operation.
package matvec
