// SPDX-License-Identifier: MIT

package narray_test

import (
	"fmt"

	"github.com/katalvlaran/conjugate/narray"
)

// ExampleAdd demonstrates implicit broadcasting: a column against a
// row yields the full outer grid.
func ExampleAdd() {
	col, _ := narray.New(narray.Shape{2, 1}, []float64{10, 20})
	row := narray.FromSlice([]float64{1, 2, 3})

	sum, err := narray.Add(col, row)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sum.Shape(), sum.Data())

	// Output:
	// (2, 3) [11 12 13 21 22 23]
}

// ExampleArray_SumLeading collapses repeated observations onto a
// parameter batch.
func ExampleArray_SumLeading() {
	obs, _ := narray.New(narray.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	sums, err := obs.SumLeading(1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sums.Shape(), sums.Data())

	// Output:
	// (3) [5 7 9]
}
