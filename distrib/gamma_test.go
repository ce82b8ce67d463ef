// SPDX-License-Identifier: MIT

package distrib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/conjugate/distrib"
	"github.com/katalvlaran/conjugate/narray"
)

// TestNewGamma_BroadcastAndValidation covers alignment and domain
// checks in the shape/rate parameterization.
func TestNewGamma_BroadcastAndValidation(t *testing.T) {
	g, err := distrib.NewGamma(
		narray.Scalar(5), narray.FromSlice([]float64{1, 2}))
	require.NoError(t, err)
	assert.Equal(t, narray.Shape{2}, g.BatchShape())
	assert.Equal(t, []float64{5, 5}, g.Concentration().Data())

	_, err = distrib.NewGamma(narray.Scalar(1), narray.Scalar(-2), distrib.WithValidation())
	assert.ErrorIs(t, err, distrib.ErrParam, "negative rate")

	_, err = distrib.NewGamma(narray.Scalar(1), nil)
	assert.ErrorIs(t, err, distrib.ErrNilParam)
}

// TestGamma_LogProb cross-checks against distuv, whose Beta field is
// the rate.
func TestGamma_LogProb(t *testing.T) {
	g, err := distrib.NewGamma(narray.Scalar(5), narray.Scalar(2))
	require.NoError(t, err)

	ref := distuv.Gamma{Alpha: 5, Beta: 2}
	for _, x := range []float64{0.1, 1, 2.5, 7, 20} {
		lp, err := g.LogProb(narray.Scalar(x))
		require.NoError(t, err)
		assert.InDelta(t, ref.LogProb(x), lp.Item(), 1e-10, "x=%v", x)
	}

	strict, err := distrib.NewGamma(narray.Scalar(5), narray.Scalar(2), distrib.WithValidation())
	require.NoError(t, err)
	_, err = strict.LogProb(narray.Scalar(-1))
	assert.ErrorIs(t, err, distrib.ErrSupport)
}

// TestGamma_MomentsExpandSample covers α/β, α/β², expansion, and a
// seeded sample mean.
func TestGamma_MomentsExpandSample(t *testing.T) {
	g, err := distrib.NewGamma(narray.Scalar(5), narray.Scalar(2))
	require.NoError(t, err)
	assert.InDelta(t, 2.5, g.Mean().Item(), 1e-12)
	assert.InDelta(t, 1.25, g.Variance().Item(), 1e-12)

	big, err := g.Expand(narray.Shape{3})
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 2.5, 2.5}, big.Mean().Data(), "expanded moments broadcast")

	draws, err := g.Sample(rand.NewSource(5), narray.Shape{20000})
	require.NoError(t, err)
	data := draws.Data()
	assert.Greater(t, data[0], 0.0, "support (0, ∞)")
	assert.InDelta(t, 2.5, stat.Mean(data, nil), 0.05, "sample mean vs α/β")
}
