package gramschmidt

import "errors"

// DefaultTolerance is the norm threshold below which a residual column is
// treated as degenerate (near-linearly-dependent).
const DefaultTolerance = 1e-6

var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("gramschmidt: matrix must not be nil")
	// ErrBadTolerance indicates a tolerance that is not a positive finite number.
	ErrBadTolerance = errors.New("gramschmidt: tolerance must be a positive finite number")
)

// Options configures the Gram-Schmidt process.
//
// Fields:
//   - Tolerance — residual columns with Euclidean norm at or below this
//     threshold are left unnormalized and get a zero diagonal entry in R.
//     Must be a positive finite number.
//
// Example:
//
//	opts := gramschmidt.DefaultOptions()
//	opts.Tolerance = 1e-9
//	Q, R, err := gramschmidt.GramSchmidt(A, &opts)
type Options struct {
	Tolerance float64
}

// DefaultOptions returns the canonical configuration: Tolerance = DefaultTolerance.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}
