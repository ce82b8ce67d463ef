// SPDX-License-Identifier: MIT

package compound_test

import (
	"fmt"

	"github.com/katalvlaran/conjugate/compound"
	"github.com/katalvlaran/conjugate/narray"
)

// ExampleNewBetaBinomial builds a Beta-Binomial over 10 trials and
// performs the conjugate update after observing 3 successes.
func ExampleNewBetaBinomial() {
	bb, err := compound.NewBetaBinomial(
		narray.Scalar(2), narray.Scalar(3), narray.Scalar(10))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(bb)
	fmt.Printf("mean = %.2f\n", bb.Mean().Item())

	post, err := bb.PosteriorLatent(narray.Scalar(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("posterior = Beta(%.0f, %.0f)\n",
		post.Concentration1().Item(), post.Concentration0().Item())

	// Output:
	// BetaBinomial(concentration1=2, concentration0=3, totalCount=10)
	// mean = 4.00
	// posterior = Beta(5, 10)
}

// ExampleBetaBinomial_EnumerateSupport lists the finite support of a
// small batch.
func ExampleBetaBinomial_EnumerateSupport() {
	bb, err := compound.NewBetaBinomial(
		narray.FromSlice([]float64{1, 2}), narray.Scalar(1), narray.Scalar(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	vals, err := bb.EnumerateSupport(true)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(vals.Shape(), vals.Data())

	// Output:
	// (4, 2) [0 0 1 1 2 2 3 3]
}

// ExampleNewGammaPoisson shows the compound moments and the conjugate
// update after four observed counts.
func ExampleNewGammaPoisson() {
	gp, err := compound.NewGammaPoisson(narray.Scalar(5), narray.Scalar(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("mean = %.2f, variance = %.2f\n",
		gp.Mean().Item(), gp.Variance().Item())

	post, err := gp.PosteriorLatent(narray.FromSlice([]float64{1, 4, 0, 2}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("posterior = Gamma(%.0f, %.0f)\n",
		post.Concentration().Item(), post.Rate().Item())

	// Output:
	// mean = 2.50, variance = 3.75
	// posterior = Gamma(12, 6)
}
