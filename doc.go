// Package linalg is a compact toolkit for dense, double-precision linear
// algebra — fixed-size row-major matrices and orientation-tagged vectors,
// plus the classic textbook algorithms built on top of them.
//
// 🚀 What is linalg?
//
//	A small, pure-Go library that brings together:
//		• Dense container: row-major Matrix and Column/Row-tagged Vector
//		• Constructors: zero, identity, Hilbert, from-rows / from-slice
//		• Arithmetic: add, subtract, scale, Hadamard, inner product, norm,
//		  matrix product, matrix-vector product, transpose, column replace
//		• Minors: square submatrix extraction (delete one row + one column)
//		• Determinant: recursive cofactor (Laplace) expansion along row 0
//		• QR: Gram-Schmidt orthogonalization with a norm tolerance
//
// ✨ Why choose linalg?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable failures – sentinel errors, eager shape checks
//   - Pure Go – no cgo, no hidden deps
//   - Honest numerics – tolerance-based comparisons baked into the API
//
// Everything is organized under three subpackages:
//
//	matvec/      — Matrix & Vector types, arithmetic, formatting, comparison
//	determinant/ — square-submatrix extraction & cofactor determinant
//	gramschmidt/ — Gram-Schmidt orthogonalization producing A = Q·R
//
// Quick ASCII example:
//
//	    ⎡1 1 0⎤                 ⎡q₁ q₂ q₃⎤ ⎡r₁₁ r₁₂ r₁₃⎤
//	A = ⎢1 0 1⎥   = Q·R with Q= ⎢ │  │  │⎥,⎢ 0  r₂₂ r₂₃⎥
//	    ⎣0 1 1⎦                 ⎣ │  │  │⎦ ⎣ 0   0  r₃₃⎦
//
// All operations are synchronous and purely computational: each call reads
// its caller-owned inputs and returns fresh outputs; SetColumn is the only
// in-place mutation in the library.
//
//	go get github.com/katalvlaran/linalg
package linalg
