package matvec_test

import (
	"testing"

	"github.com/katalvlaran/linalg/matvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewVector_Empty verifies that zero or negative lengths are rejected.
func TestNewVector_Empty(t *testing.T) {
	_, err := matvec.NewVector(0)
	assert.ErrorIs(t, err, matvec.ErrEmptyData, "length 0 must error")

	_, err = matvec.NewVector(-3)
	assert.ErrorIs(t, err, matvec.ErrEmptyData, "negative length must error")

	_, err = matvec.NewVectorFromSlice(nil, matvec.Column)
	assert.ErrorIs(t, err, matvec.ErrEmptyData, "empty slice must error")
}

// TestNewVector_Defaults verifies zero fill and the column default.
func TestNewVector_Defaults(t *testing.T) {
	v, err := matvec.NewVector(3)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, matvec.Column, v.Orient(), "new vectors default to column orientation")
	assert.Equal(t, []float64{0, 0, 0}, v.AsSlice())
}

// TestNewVectorFromSlice_Copies verifies the input slice is never aliased.
func TestNewVectorFromSlice_Copies(t *testing.T) {
	src := []float64{1, 2, 3}
	v, err := matvec.NewVectorFromSlice(src, matvec.Row)
	require.NoError(t, err)
	src[0] = 99

	assert.Equal(t, 1.0, v.At(0), "mutating the source slice must not affect the vector")
	assert.Equal(t, matvec.Row, v.Orient())
}

// TestOnes fills every entry with 1.
func TestOnes(t *testing.T) {
	v, err := matvec.Ones(4)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1}, v.AsSlice())
}

// TestVector_AtSet verifies element access and the out-of-range panic.
func TestVector_AtSet(t *testing.T) {
	v, err := matvec.NewVector(2)
	require.NoError(t, err)

	v.Set(1, 2.5)
	assert.Equal(t, 2.5, v.At(1))

	assert.Panics(t, func() { v.At(2) }, "At past the end must panic")
	assert.Panics(t, func() { v.Set(-1, 0) }, "Set before the start must panic")
}

// TestVector_CloneAndT verifies deep copy and orientation flip.
func TestVector_CloneAndT(t *testing.T) {
	v, err := matvec.NewVectorFromSlice([]float64{1, 2}, matvec.Column)
	require.NoError(t, err)

	c := v.Clone()
	c.Set(0, 42)
	assert.Equal(t, 1.0, v.At(0), "clone must not share storage")

	r := v.T()
	assert.Equal(t, matvec.Row, r.Orient(), "T flips column to row")
	assert.Equal(t, v.AsSlice(), r.AsSlice(), "T keeps the entries")
	assert.Equal(t, matvec.Column, r.T().Orient(), "double T restores the orientation")
}

// TestVector_AddSub verifies element-wise addition and subtraction.
func TestVector_AddSub(t *testing.T) {
	v, err := matvec.NewVectorFromSlice([]float64{1, 2, 3}, matvec.Column)
	require.NoError(t, err)
	w, err := matvec.NewVectorFromSlice([]float64{4, 5, 6}, matvec.Column)
	require.NoError(t, err)

	sum, err := v.Add(w)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7, 9}, sum.AsSlice())

	diff, err := w.Sub(v)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 3}, diff.AsSlice())

	assert.Equal(t, []float64{1, 2, 3}, v.AsSlice(), "operands must stay untouched")

	short, err := matvec.NewVector(2)
	require.NoError(t, err)
	_, err = v.Add(short)
	assert.ErrorIs(t, err, matvec.ErrDimensionMismatch, "length mismatch must error")
	_, err = v.Sub(short)
	assert.ErrorIs(t, err, matvec.ErrDimensionMismatch, "length mismatch must error")
}

// TestVector_ScaleHadamard verifies scalar and point-wise products.
func TestVector_ScaleHadamard(t *testing.T) {
	v, err := matvec.NewVectorFromSlice([]float64{1, -2, 3}, matvec.Column)
	require.NoError(t, err)

	assert.Equal(t, []float64{2, -4, 6}, v.Scale(2).AsSlice())

	w, err := matvec.NewVectorFromSlice([]float64{2, 3, 4}, matvec.Column)
	require.NoError(t, err)
	had, err := v.Hadamard(w)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, -6, 12}, had.AsSlice())

	_, err = v.Hadamard(w.T())
	assert.ErrorIs(t, err, matvec.ErrOrientation, "mixed orientations must error")

	short, err := matvec.NewVector(2)
	require.NoError(t, err)
	_, err = v.Hadamard(short)
	assert.ErrorIs(t, err, matvec.ErrDimensionMismatch, "length mismatch must error")
}

// TestVector_DotNorm verifies the inner product and the Euclidean norm.
func TestVector_DotNorm(t *testing.T) {
	v, err := matvec.NewVectorFromSlice([]float64{1, 2, 3}, matvec.Column)
	require.NoError(t, err)
	w, err := matvec.NewVectorFromSlice([]float64{4, 5, 6}, matvec.Column)
	require.NoError(t, err)

	ip, err := v.Dot(w)
	require.NoError(t, err)
	assert.Equal(t, 32.0, ip)

	// Dot ignores orientation, only lengths must agree.
	ip, err = v.Dot(w.T())
	require.NoError(t, err)
	assert.Equal(t, 32.0, ip)

	short, err := matvec.NewVector(2)
	require.NoError(t, err)
	_, err = v.Dot(short)
	assert.ErrorIs(t, err, matvec.ErrDimensionMismatch, "length mismatch must error")

	pyth, err := matvec.NewVectorFromSlice([]float64{3, 4}, matvec.Column)
	require.NoError(t, err)
	assert.Equal(t, 5.0, pyth.Norm())
}
