package matvec

import "errors"

var (
	// ErrEmptyData indicates a container was constructed with fewer than one row or column.
	ErrEmptyData = errors.New("matvec: data must have at least one row and one column")
	// ErrNonRectangular indicates a 2-D input with rows of differing lengths.
	ErrNonRectangular = errors.New("matvec: all rows must have the same length")
	// ErrDimensionMismatch indicates operand shapes or lengths are incompatible.
	ErrDimensionMismatch = errors.New("matvec: operand dimensions do not match")
	// ErrIndexOutOfRange indicates a row or column index outside valid bounds.
	ErrIndexOutOfRange = errors.New("matvec: index out of range")
	// ErrOrientation indicates a vector whose orientation does not fit the operation.
	ErrOrientation = errors.New("matvec: vector orientation does not fit the operation")
)
