package matvec_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/matvec"
)

// ExampleMatrix_String renders the 2×2 identity with the default options:
// precision 5, comma separator, aligned columns.
func ExampleMatrix_String() {
	I, _ := matvec.Identity(2)
	fmt.Println(I)
	// Output:
	// [[1.00000, 0.00000],
	//  [0.00000, 1.00000]]
}

// ExampleMatrix_SetColumn overwrites one column in place — the only
// mutating operation in the package.
func ExampleMatrix_SetColumn() {
	A, _ := matvec.NewMatrixFromRows([][]float64{{1, 2}, {3, 4}})
	v, _ := matvec.NewVectorFromSlice([]float64{9, 8}, matvec.Column)
	if err := A.SetColumn(v, 1); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(A)
	// Output:
	// [[1.00000, 9.00000],
	//  [3.00000, 8.00000]]
}

// ExampleVector_Dot computes an inner product and a Euclidean norm.
func ExampleVector_Dot() {
	v, _ := matvec.NewVectorFromSlice([]float64{1, 2, 3}, matvec.Column)
	w, _ := matvec.NewVectorFromSlice([]float64{4, 5, 6}, matvec.Column)

	ip, _ := v.Dot(w)
	fmt.Printf("dot=%.0f\n", ip)

	pyth, _ := matvec.NewVectorFromSlice([]float64{3, 4}, matvec.Column)
	fmt.Printf("norm=%.0f\n", pyth.Norm())
	// Output:
	// dot=32
	// norm=5
}
