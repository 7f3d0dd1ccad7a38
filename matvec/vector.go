package matvec

import (
	"fmt"
	"math"
)

// Orientation tags a Vector as a column or a row.
//
// The tag decides how the vector composes with matrices — Matrix.MulVec
// consumes column vectors, Hadamard requires matching tags — but it never
// alters element-wise arithmetic.
type Orientation uint8

const (
	// Column vectors map into a matrix's row index (the default).
	Column Orientation = iota
	// Row vectors map into a matrix's column index.
	Row
)

// String returns "column" or "row".
func (o Orientation) String() string {
	if o == Row {
		return "row"
	}

	return "column"
}

// Vector is a fixed-length sequence of float64 entries with an orientation
// tag. The zero value is not usable; construct via NewVector,
// NewVectorFromSlice or Ones.
type Vector struct {
	data   []float64
	orient Orientation
}

// NewVector returns a zero-filled column vector of length n.
// Returns ErrEmptyData if n < 1.
func NewVector(n int) (*Vector, error) {
	if n < 1 {
		return nil, ErrEmptyData
	}

	return &Vector{data: make([]float64, n)}, nil
}

// NewVectorFromSlice copies data into a fresh vector with the given
// orientation. The input slice is never aliased.
// Returns ErrEmptyData if data is empty.
func NewVectorFromSlice(data []float64, orient Orientation) (*Vector, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	v := &Vector{data: make([]float64, len(data)), orient: orient}
	copy(v.data, data)

	return v, nil
}

// Ones returns a column vector of length n with every entry set to 1.
// Returns ErrEmptyData if n < 1.
func Ones(n int) (*Vector, error) {
	v, err := NewVector(n)
	if err != nil {
		return nil, err
	}
	for i := range v.data {
		v.data[i] = 1
	}

	return v, nil
}

// Len returns the number of entries.
func (v *Vector) Len() int { return len(v.data) }

// Orient returns the orientation tag.
func (v *Vector) Orient() Orientation { return v.orient }

// At returns entry i. Panics with ErrIndexOutOfRange if i is out of range.
func (v *Vector) At(i int) float64 {
	v.mustIndex(i)

	return v.data[i]
}

// Set overwrites entry i. Panics with ErrIndexOutOfRange if i is out of range.
func (v *Vector) Set(i int, x float64) {
	v.mustIndex(i)
	v.data[i] = x
}

// Clone returns a deep copy of v, orientation included.
func (v *Vector) Clone() *Vector {
	c := &Vector{data: make([]float64, len(v.data)), orient: v.orient}
	copy(c.data, v.data)

	return c
}

// T returns a clone of v with the opposite orientation.
func (v *Vector) T() *Vector {
	c := v.Clone()
	if c.orient == Column {
		c.orient = Row
	} else {
		c.orient = Column
	}

	return c
}

// AsSlice returns a fresh copy of the entries.
func (v *Vector) AsSlice() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Add returns v + w as a new vector with v's orientation.
// Returns ErrDimensionMismatch if the lengths differ.
func (v *Vector) Add(w *Vector) (*Vector, error) {
	if w.Len() != v.Len() {
		return nil, fmt.Errorf("%w: add %d to %d entries", ErrDimensionMismatch, w.Len(), v.Len())
	}
	out := v.Clone()
	for i := range out.data {
		out.data[i] += w.data[i]
	}

	return out, nil
}

// Sub returns v − w as a new vector with v's orientation.
// Returns ErrDimensionMismatch if the lengths differ.
func (v *Vector) Sub(w *Vector) (*Vector, error) {
	if w.Len() != v.Len() {
		return nil, fmt.Errorf("%w: subtract %d from %d entries", ErrDimensionMismatch, w.Len(), v.Len())
	}
	out := v.Clone()
	for i := range out.data {
		out.data[i] -= w.data[i]
	}

	return out, nil
}

// Scale returns s·v as a new vector with v's orientation.
func (v *Vector) Scale(s float64) *Vector {
	out := v.Clone()
	for i := range out.data {
		out.data[i] *= s
	}

	return out
}

// Hadamard returns the point-wise product v∘w as a new vector.
// Both length and orientation must match.
func (v *Vector) Hadamard(w *Vector) (*Vector, error) {
	if w.Len() != v.Len() {
		return nil, fmt.Errorf("%w: hadamard of %d and %d entries", ErrDimensionMismatch, v.Len(), w.Len())
	}
	if w.orient != v.orient {
		return nil, fmt.Errorf("%w: hadamard of %s and %s vectors", ErrOrientation, v.orient, w.orient)
	}
	out := v.Clone()
	for i := range out.data {
		out.data[i] *= w.data[i]
	}

	return out, nil
}

// Dot returns the inner product Σ v[i]·w[i]. Orientation is ignored;
// only the lengths must agree.
func (v *Vector) Dot(w *Vector) (float64, error) {
	if w.Len() != v.Len() {
		return 0, fmt.Errorf("%w: dot of %d and %d entries", ErrDimensionMismatch, v.Len(), w.Len())
	}
	ip := 0.0
	for i := range v.data {
		ip += v.data[i] * w.data[i]
	}

	return ip, nil
}

// Norm returns the Euclidean norm sqrt(Σ v[i]²).
func (v *Vector) Norm() float64 {
	nv := 0.0
	for _, x := range v.data {
		nv += x * x
	}

	return math.Sqrt(nv)
}

// mustIndex panics with ErrIndexOutOfRange unless 0 ≤ i < Len().
func (v *Vector) mustIndex(i int) {
	if i < 0 || i >= len(v.data) {
		panic(fmt.Errorf("%w: entry %d of %d", ErrIndexOutOfRange, i, len(v.data)))
	}
}
