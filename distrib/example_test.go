// SPDX-License-Identifier: MIT

package distrib_test

import (
	"fmt"

	"github.com/katalvlaran/conjugate/distrib"
	"github.com/katalvlaran/conjugate/narray"
)

// ExampleNewBeta builds a small batch of Beta priors and reads their
// analytic moments.
func ExampleNewBeta() {
	b, err := distrib.NewBeta(
		narray.FromSlice([]float64{1, 2, 4}), narray.Scalar(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("batch:", b.BatchShape())
	fmt.Printf("means: %.2f\n", b.Mean().Data())

	// Output:
	// batch: (3)
	// means: [0.20 0.33 0.50]
}

// ExampleNewGamma shows the shape/rate parameterization.
func ExampleNewGamma() {
	g, err := distrib.NewGamma(narray.Scalar(5), narray.Scalar(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("mean = %.2f, variance = %.2f\n",
		g.Mean().Item(), g.Variance().Item())

	// Output:
	// mean = 2.50, variance = 1.25
}
